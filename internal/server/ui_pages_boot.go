package server

// uiPagesBootJS is the entry point each page calls from its inline
// boot script, passing the knobs the server injected from config.
const uiPagesBootJS = `
function initPageBehaviors(opts) {
  opts = opts || {};
  initHoverWidgets(document);
  initAlertAutoDismiss(opts.alertDismissMs || 5000);
  initFormValidation();
  initImagePreviews();
  registerAction('like', handleLikeToggle);
  initActionRouter();
  initSearchRedirect({
    minChars: opts.searchMinChars,
    debounceMs: opts.searchDebounceMs
  });

  var feed = document.getElementById('feed');
  if (feed !== null) {
    var reveal = createRevealObserver();
    feed.querySelectorAll('.fade-in').forEach(function (card) {
      reveal.observe(card);
    });
    createFeedLoader({
      feedId: 'feed',
      thresholdPx: opts.scrollThresholdPx,
      onCardAppended: function (card) {
        reveal.observe(card);
      }
    }).start();
  }
}
`
