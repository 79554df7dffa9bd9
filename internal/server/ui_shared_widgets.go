package server

// uiSharedWidgetsJS activates hover tooltips and click popovers. Both
// read their copy from data attributes and render into floating nodes
// appended to document.body, so they never reparent the anchor.
const uiSharedWidgetsJS = `
function ensureHoverWidgetStyles() {
  if (document.getElementById('bantu-hover-widget-styles')) {
    return;
  }
  var style = document.createElement('style');
  style.id = 'bantu-hover-widget-styles';
  style.textContent =
    '.bantu-tooltip {' +
    '  position: absolute; z-index: 80; max-width: 240px; padding: 6px 9px;' +
    '  border-radius: 7px; background: #2b2118; color: #fffdf8;' +
    '  font-size: 12px; line-height: 1.35; pointer-events: none;' +
    '  box-shadow: 0 6px 18px rgba(43, 33, 24, 0.25);' +
    '}' +
    '.bantu-popover {' +
    '  position: absolute; z-index: 80; max-width: 280px; padding: 10px 12px;' +
    '  border: 1px solid #e7d9c6; border-radius: 9px; background: #fffdf8;' +
    '  color: #2b2118; font-size: 13px; line-height: 1.4;' +
    '  box-shadow: 0 10px 24px rgba(43, 33, 24, 0.18);' +
    '}' +
    '.bantu-popover h4 { margin: 0 0 6px; font-size: 13px; }';
  document.head.appendChild(style);
}

function placeFloating(node, anchor) {
  var rect = anchor.getBoundingClientRect();
  var top = rect.top + window.scrollY - node.offsetHeight - 8;
  if (top < window.scrollY + 4) {
    top = rect.bottom + window.scrollY + 8;
  }
  var left = rect.left + window.scrollX + (rect.width - node.offsetWidth) / 2;
  if (left < 4) {
    left = 4;
  }
  node.style.top = top + 'px';
  node.style.left = left + 'px';
}

function attachTooltip(anchor) {
  var node = null;
  function show() {
    if (node !== null) {
      return;
    }
    node = document.createElement('div');
    node.className = 'bantu-tooltip';
    node.textContent = anchor.getAttribute('data-bantu-tooltip') || '';
    document.body.appendChild(node);
    placeFloating(node, anchor);
  }
  function hide() {
    if (node === null) {
      return;
    }
    node.remove();
    node = null;
  }
  anchor.addEventListener('mouseenter', show);
  anchor.addEventListener('mouseleave', hide);
  anchor.addEventListener('focus', show);
  anchor.addEventListener('blur', hide);
}

var openPopover = null;
var popoverDismissBound = false;

function closeOpenPopover() {
  if (openPopover === null) {
    return;
  }
  openPopover.node.remove();
  openPopover = null;
}

function attachPopover(anchor) {
  anchor.addEventListener('click', function (event) {
    event.preventDefault();
    event.stopPropagation();
    if (openPopover !== null && openPopover.anchor === anchor) {
      closeOpenPopover();
      return;
    }
    closeOpenPopover();
    var node = document.createElement('div');
    node.className = 'bantu-popover';
    var title = anchor.getAttribute('data-bantu-popover-title') || '';
    var body = anchor.getAttribute('data-bantu-popover') || '';
    node.innerHTML =
      (title !== '' ? '<h4>' + escapeHtml(title) + '</h4>' : '') +
      '<div>' + escapeHtml(body) + '</div>';
    document.body.appendChild(node);
    placeFloating(node, anchor);
    openPopover = { anchor: anchor, node: node };
  });
}

function initHoverWidgets(root) {
  ensureHoverWidgetStyles();
  var scope = root || document;
  scope.querySelectorAll('[data-bantu-tooltip]').forEach(function (anchor) {
    if (anchor.dataset.bantuWidgetBound === '1') {
      return;
    }
    anchor.dataset.bantuWidgetBound = '1';
    attachTooltip(anchor);
  });
  scope.querySelectorAll('[data-bantu-popover]').forEach(function (anchor) {
    if (anchor.dataset.bantuWidgetBound === '1') {
      return;
    }
    anchor.dataset.bantuWidgetBound = '1';
    attachPopover(anchor);
  });
  if (!popoverDismissBound) {
    popoverDismissBound = true;
    document.addEventListener('click', function (event) {
      if (openPopover !== null && !openPopover.node.contains(event.target)) {
        closeOpenPopover();
      }
    });
  }
}
`
