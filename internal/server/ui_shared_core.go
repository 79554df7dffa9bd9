package server

// uiSharedCoreJS holds helpers every page script leans on. Anything
// that ends up inside element markup goes through escapeHtml first.
const uiSharedCoreJS = `
function escapeHtml(value) {
  return String(value == null ? '' : value).replace(/[&<>"']/g, function (ch) {
    return { '&': '&amp;', '<': '&lt;', '>': '&gt;', '"': '&quot;', "'": '&#39;' }[ch];
  });
}

function avatarImageUrl(name) {
  return '/static/uploads/' + encodeURIComponent(name || 'default.jpg');
}

function uploadImageUrl(name) {
  return '/static/uploads/' + encodeURIComponent(name);
}

function createDebouncer(waitMs) {
  var timer = null;
  return function (fn) {
    if (timer !== null) {
      window.clearTimeout(timer);
    }
    timer = window.setTimeout(function () {
      timer = null;
      fn();
    }, waitMs);
  };
}
`
