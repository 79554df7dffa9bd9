package server

// uiSharedAlertsJS auto-dismisses flash alerts. One timer covers every
// alert present at init; alerts injected later are left alone.
const uiSharedAlertsJS = `
function dismissAlert(alert) {
  alert.style.transition = 'opacity 0.3s ease';
  alert.style.opacity = '0';
  window.setTimeout(function () {
    alert.remove();
  }, 300);
}

function initAlertAutoDismiss(ttlMs) {
  var alerts = Array.prototype.slice.call(
    document.querySelectorAll('.alert[data-bantu-dismiss]')
  );
  alerts.forEach(function (alert) {
    var close = alert.querySelector('.alert-close');
    if (close !== null) {
      close.addEventListener('click', function () {
        dismissAlert(alert);
      });
    }
  });
  if (alerts.length === 0) {
    return;
  }
  window.setTimeout(function () {
    alerts.forEach(function (alert) {
      if (alert.isConnected) {
        dismissAlert(alert);
      }
    });
  }, ttlMs);
}
`
