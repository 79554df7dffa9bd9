package server

// uiPagesFeedJS pages the feed as the reader nears the bottom. All
// pagination state lives in the loader returned by createFeedLoader,
// nothing global. The server renders page 1, so the cursor starts at 1
// and advances before each fetch; a page that fails stays consumed.
const uiPagesFeedJS = `
function createFeedLoader(opts) {
  var feed = document.getElementById(opts.feedId || 'feed');
  var thresholdPx = opts.thresholdPx || 500;
  var state = { page: 1, inflight: false, exhausted: false };

  function exhaust() {
    state.exhausted = true;
    window.removeEventListener('scroll', onScroll);
  }

  async function loadNextPage() {
    if (feed === null || state.inflight || state.exhausted) {
      return;
    }
    state.inflight = true;
    state.page += 1;
    try {
      var data = await apiJSON('/api/feed?page=' + state.page);
      var posts = data.posts || [];
      if (posts.length === 0) {
        exhaust();
        return;
      }
      posts.forEach(function (post) {
        var card = renderPostCard(post);
        feed.appendChild(card);
        if (opts.onCardAppended) {
          opts.onCardAppended(card);
        }
      });
      if (data.has_next === false) {
        exhaust();
      }
    } catch (err) {
      console.error('feed page ' + state.page + ' failed to load:', err);
    } finally {
      state.inflight = false;
    }
  }

  function onScroll() {
    if (state.inflight || state.exhausted) {
      return;
    }
    if (window.innerHeight + window.scrollY >= document.body.offsetHeight - thresholdPx) {
      loadNextPage();
    }
  }

  return {
    state: state,
    loadNextPage: loadNextPage,
    start: function () {
      window.addEventListener('scroll', onScroll);
    }
  };
}
`
