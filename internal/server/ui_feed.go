package server

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mwasi01/bantuafrica/internal/config"
	"github.com/mwasi01/bantuafrica/internal/feed"
)

// uiTopbarHTML is shared by every page template. The search box feeds
// the debounced redirect and the About button carries the popover.
const uiTopbarHTML = `
<header class="topbar">
  <a class="brand" href="/">
    <img src="/bantu-logo.png" alt="" />
    <span>{{.SiteName}}<div class="tagline">{{.Tagline}}</div></span>
  </a>
  <div class="search-box">
    <input id="search-input" type="text" placeholder="Search stories and people" autocomplete="off" />
  </div>
  <nav>
    <a class="nav-btn" href="/post/new" data-bantu-tooltip="Share a new story">New post</a>
    <a class="nav-btn" href="/profile/update" data-bantu-tooltip="Update your picture and bio">Profile</a>
    <a class="nav-btn" href="/login">Login</a>
    <button class="nav-btn" type="button"
      data-bantu-popover-title="{{.SiteName}}"
      data-bantu-popover="{{.Tagline}}. Stories load as you scroll; use the search box to find people and posts.">About</button>
  </nav>
</header>`

// uiBootScriptHTML loads the two scripts and starts the page behaviors
// with the knobs from config.
const uiBootScriptHTML = `
<script src="/ui/shared.js"></script>
<script src="/ui/pages.js"></script>
<script>
document.addEventListener('DOMContentLoaded', function () {
  initPageBehaviors({
    alertDismissMs: {{.Behavior.AlertDismissMs}},
    scrollThresholdPx: {{.Behavior.ScrollThresholdPx}},
    searchMinChars: {{.Behavior.SearchMinChars}},
    searchDebounceMs: {{.Behavior.SearchDebounceMs}}
  });
});
</script>`

const feedPageCSS = `
.post-card {
  background: var(--panel);
  border: 1px solid var(--line);
  border-radius: 12px;
  box-shadow: var(--shadow);
  padding: 16px;
  margin-bottom: 14px;
}
.fade-in { opacity: 0; transform: translateY(14px); transition: opacity 0.5s ease, transform 0.5s ease; }
.fade-in.visible { opacity: 1; transform: none; }
.post-header { display: flex; align-items: center; gap: 10px; margin-bottom: 8px; }
.post-author { display: flex; align-items: center; gap: 8px; color: var(--ink); font-weight: 600; }
.post-author:hover { text-decoration: none; color: var(--accent); }
.author-avatar { width: 34px; height: 34px; border-radius: 50%; object-fit: cover; border: 1px solid var(--line); }
.post-timestamp { margin-left: auto; color: var(--muted); font-size: 12px; }
.post-title { margin: 4px 0 6px; font-size: 17px; }
.post-content { margin: 0 0 10px; font-size: 14px; line-height: 1.5; white-space: pre-wrap; }
.post-image { max-width: 100%; border-radius: 10px; border: 1px solid var(--line); }
.post-footer { display: flex; align-items: center; gap: 14px; margin-top: 10px; }
.like-btn {
  display: inline-flex;
  align-items: center;
  gap: 6px;
  padding: 5px 11px;
  border: 1px solid var(--line);
  border-radius: 16px;
  background: var(--panel);
  color: var(--muted);
  font-size: 13px;
  cursor: pointer;
}
.like-btn:hover { border-color: var(--accent); color: var(--accent); }
.like-btn.liked { background: var(--accent-soft); border-color: var(--accent); color: var(--accent); }
.comment-link { color: var(--muted); font-size: 13px; }
.feed-empty { text-align: center; padding: 30px 0; }
`

const feedPageTemplateText = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.SiteName}} - Home</title>
<link rel="icon" type="image/png" href="/bantu-favicon.png" />
<style>` + uiPageChromeCSS + feedPageCSS + `</style>
</head>
<body>` + uiTopbarHTML + `
<main>
{{- if .UpstreamDown}}
  <div class="alert alert-warning" data-bantu-dismiss>
    The feed is unreachable right now. Showing an empty page; try again shortly.
    <button type="button" class="alert-close" aria-label="Close">&times;</button>
  </div>
{{- end}}
  <div id="feed">{{.Cards}}</div>
{{- if .Empty}}
  <div class="card feed-empty">
    <h2>No stories yet</h2>
    <p class="muted">Be the first: <a href="/post/new">share a story</a>.</p>
  </div>
{{- end}}
</main>` + uiBootScriptHTML + `
</body>
</html>`

var feedPageTemplate = template.Must(template.New("feed-page").Parse(feedPageTemplateText))

type feedPageData struct {
	SiteName     string
	Tagline      string
	Behavior     config.Behavior
	Cards        template.HTML
	UpstreamDown bool
	Empty        bool
}

// feedPageHandler renders the home page with page 1 of the feed already
// in the document. The page scripts take over from page 2.
func (s *site) feedPageHandler(w http.ResponseWriter, r *http.Request) {
	data := feedPageData{
		SiteName: s.cfg.Site.Name,
		Tagline:  s.cfg.Site.Tagline,
		Behavior: s.cfg.Behavior,
	}

	page, err := s.upstream.FetchFeedPage(r.Context(), 1, r.Header)
	if err != nil {
		slog.Warn("feed page 1 unavailable", "err", err)
		data.UpstreamDown = true
	} else {
		cards, renderErr := feed.CardsHTML(page.Posts)
		if renderErr != nil {
			slog.Error("render feed cards", "err", renderErr)
			http.Error(w, "failed to render feed", http.StatusInternalServerError)
			return
		}
		data.Cards = cards
		data.Empty = len(page.Posts) == 0
	}

	renderPage(w, feedPageTemplate, data)
}

func renderPage(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		slog.Error("render page", "template", tmpl.Name(), "err", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
