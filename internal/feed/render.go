package feed

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// The server renders page 1 of the feed with this template; the client
// renders every later page with renderPostCard in /ui/pages.js. The two must
// produce the same classes and attributes, and both escape every
// upstream-authored field.
const cardTemplateText = `{{range .}}<article class="post-card fade-in" data-post-id="{{.ID}}">
  <header class="post-header">
    <a class="post-author" href="/profile/{{.Author.Username}}">
      <img class="author-avatar" src="{{avatarURL .Author.ProfileImage}}" alt="{{.Author.Username}}" onerror="this.onerror=null;this.src='/static/images/default.jpg'" />
      <span class="author-name">{{.Author.Username}}</span>
    </a>
    <time class="post-timestamp">{{.CreatedAt}}</time>
  </header>
{{- if .Title}}
  <h3 class="post-title">{{.Title}}</h3>
{{- end}}
  <p class="post-content">{{.Content}}</p>
{{- if .Image}}
  <img class="post-image" src="{{uploadURL .Image}}" alt="" loading="lazy" />
{{- end}}
  <footer class="post-footer">
    <button type="button" class="like-btn{{if .Liked}} liked{{end}}" data-action="like" data-post-id="{{.ID}}" aria-pressed="{{.Liked}}">
      <span class="like-heart" aria-hidden="true">&#9829;</span>
      <span class="like-count">{{.LikeCount}}</span>
    </button>
    <a class="comment-link" href="/post/{{.ID}}"><span class="comment-count">{{.CommentCount}}</span> comments</a>
  </footer>
</article>
{{end}}`

var cardTemplate = template.Must(template.New("post-cards").Funcs(template.FuncMap{
	"avatarURL": AvatarURL,
	"uploadURL": UploadURL,
}).Parse(cardTemplateText))

// AvatarURL resolves a profile image filename under the upstream's uploads
// path, falling back to the stock avatar when the account has none.
func AvatarURL(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "default.jpg"
	}
	return "/static/uploads/" + name
}

func UploadURL(name string) string {
	return "/static/uploads/" + strings.TrimSpace(name)
}

func CardsHTML(posts []Post) (template.HTML, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, posts); err != nil {
		return "", fmt.Errorf("render post cards: %w", err)
	}
	return template.HTML(buf.String()), nil
}
