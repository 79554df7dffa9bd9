package server

// uiPagesActionsJS routes clicks through a single delegated listener.
// Handlers register under the element's data-action value, and lookup
// walks up from the click target so clicks on a button's children
// still resolve. Buttons in cards appended later need no extra wiring.
const uiPagesActionsJS = `
var actionHandlers = {};
var likesInFlight = {};

function registerAction(name, handler) {
  actionHandlers[name] = handler;
}

function initActionRouter() {
  document.addEventListener('click', function (event) {
    var trigger = event.target.closest('[data-action]');
    if (trigger === null) {
      return;
    }
    var handler = actionHandlers[trigger.dataset.action];
    if (!handler) {
      return;
    }
    event.preventDefault();
    handler(trigger, event);
  });
}

function applyLikeState(button, liked, likeCount) {
  button.classList.toggle('liked', liked);
  button.setAttribute('aria-pressed', liked ? 'true' : 'false');
  var count = button.querySelector('.like-count');
  if (count !== null) {
    count.textContent = String(likeCount);
  }
}

async function handleLikeToggle(button) {
  var postId = button.dataset.postId;
  if (!postId || likesInFlight[postId]) {
    return;
  }
  likesInFlight[postId] = true;
  try {
    var result = await apiJSON('/api/post/' + postId + '/like', { method: 'POST' });
    applyLikeState(button, result.liked === true, result.like_count || 0);
  } catch (err) {
    console.error('like toggle failed for post ' + postId + ':', err);
  } finally {
    delete likesInFlight[postId];
  }
}
`
