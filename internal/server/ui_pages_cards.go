package server

// uiPagesCardsJS builds post card markup for feed pages fetched after
// the first. It must stay in lockstep with the server-side template in
// internal/feed/render.go: same classes, same attributes, and every
// upstream-authored field escaped.
const uiPagesCardsJS = `
function renderPostCard(post) {
  var author = post.author || {};
  var username = author.username || '';
  var html = '';
  html += '<header class="post-header">';
  html += '<a class="post-author" href="/profile/' + encodeURIComponent(username) + '">';
  html += '<img class="author-avatar" src="' + avatarImageUrl(author.profile_image) + '" alt="' + escapeHtml(username) + '"' +
    ' onerror="this.onerror=null;this.src=\'/static/images/default.jpg\'" />';
  html += '<span class="author-name">' + escapeHtml(username) + '</span>';
  html += '</a>';
  html += '<time class="post-timestamp">' + escapeHtml(post.created_at) + '</time>';
  html += '</header>';
  if (post.title) {
    html += '<h3 class="post-title">' + escapeHtml(post.title) + '</h3>';
  }
  html += '<p class="post-content">' + escapeHtml(post.content) + '</p>';
  if (post.image) {
    html += '<img class="post-image" src="' + uploadImageUrl(post.image) + '" alt="" loading="lazy" />';
  }
  html += '<footer class="post-footer">';
  html += '<button type="button" class="like-btn' + (post.liked ? ' liked' : '') + '"' +
    ' data-action="like" data-post-id="' + post.id + '" aria-pressed="' + (post.liked ? 'true' : 'false') + '">';
  html += '<span class="like-heart" aria-hidden="true">&#9829;</span>';
  html += '<span class="like-count">' + (post.like_count || 0) + '</span>';
  html += '</button>';
  html += '<a class="comment-link" href="/post/' + post.id + '">' +
    '<span class="comment-count">' + (post.comment_count || 0) + '</span> comments</a>';
  html += '</footer>';

  var card = document.createElement('article');
  card.className = 'post-card fade-in';
  card.dataset.postId = String(post.id);
  card.innerHTML = html;
  return card;
}
`
