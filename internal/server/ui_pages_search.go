package server

// uiPagesSearchJS redirects to the upstream search page once the query
// settles. Queries under the minimum length are ignored.
const uiPagesSearchJS = `
function initSearchRedirect(opts) {
  var input = document.getElementById(opts.inputId || 'search-input');
  if (input === null) {
    return;
  }
  var minChars = opts.minChars || 2;
  var debounce = createDebouncer(opts.debounceMs || 500);
  input.addEventListener('input', function () {
    debounce(function () {
      var query = input.value.trim();
      if (query.length < minChars) {
        return;
      }
      window.location.href = '/search?q=' + encodeURIComponent(query);
    });
  });
}
`
