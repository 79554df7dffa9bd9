package server

// uiPagesAPIJS wraps fetch for the JSON endpoints. Every call carries
// an abort timer so a hung request rejects instead of pinning the
// caller's in-flight flag forever.
const uiPagesAPIJS = `
async function apiJSON(path, options) {
  var opts = options || {};
  var controller = new AbortController();
  var timer = window.setTimeout(function () {
    controller.abort();
  }, opts.timeoutMs || 10000);
  try {
    var response = await fetch(path, {
      method: opts.method || 'GET',
      headers: opts.headers || {},
      body: opts.body,
      cache: 'no-store',
      credentials: 'same-origin',
      signal: controller.signal
    });
    if (!response.ok) {
      throw new Error('request failed: ' + response.status + ' ' + path);
    }
    return await response.json();
  } finally {
    window.clearTimeout(timer);
  }
}
`
