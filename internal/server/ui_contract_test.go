package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwasi01/bantuafrica/internal/config"
	"github.com/mwasi01/bantuafrica/internal/feed"
)

const feedPage1JSON = `{
	"posts": [
		{
			"id": 7,
			"title": "Sunrise over Kampala",
			"content": "Tea & stories",
			"image": "kampala.jpg",
			"created_at": "Aug 12, 2026 07:45 AM",
			"author": {"username": "amara", "profile_image": "amara.png"},
			"like_count": 5,
			"comment_count": 2,
			"liked": true
		},
		{
			"id": 8,
			"content": "status only",
			"created_at": "Aug 12, 2026 08:02 AM",
			"author": {"username": "zuri"},
			"like_count": 0,
			"comment_count": 0,
			"liked": false
		}
	],
	"has_next": true, "has_prev": false, "page": 1, "pages": 4
}`

func TestFeedPageServerRendersPageOne(t *testing.T) {
	var gotPage, gotCookie string
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotCookie = r.Header.Get("Cookie")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedPage1JSON))
	}))
	defer up.Close()

	cfg := config.Default()
	cfg.Upstream.URL = up.URL
	cfg.Behavior = config.Behavior{
		AlertDismissMs:    7100,
		ScrollThresholdPx: 640,
		SearchMinChars:    3,
		SearchDebounceMs:  450,
	}
	s, err := newSite(cfg)
	if err != nil {
		t.Fatalf("build site: %v", err)
	}
	front := httptest.NewServer(buildRouter(s))
	defer front.Close()

	req, err := http.NewRequest(http.MethodGet, front.URL+"/", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Cookie", "session=feedtest")
	resp, err := front.Client().Do(req)
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	html := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET / status=%d body=%s", resp.StatusCode, html)
	}
	if gotPage != "1" {
		t.Fatalf("server-side render must fetch page 1, got %q", gotPage)
	}
	if gotCookie != "session=feedtest" {
		t.Fatalf("inbound cookie not forwarded to upstream, got %q", gotCookie)
	}

	requireContainsAll(t, html, "feed page",
		"<title>Bantu - Home</title>",
		`<script src="/ui/shared.js"></script>`,
		`<script src="/ui/pages.js"></script>`,
		`id="search-input"`,
		`href="/post/new"`,
		`href="/profile/update"`,
		`href="/login"`,
		`data-bantu-tooltip="Share a new story"`,
		"data-bantu-popover",
		`<div id="feed">`,
		"initPageBehaviors({",
		"alertDismissMs:", "7100",
		"scrollThresholdPx:", "640",
		"searchMinChars:", "3",
		"searchDebounceMs:", "450",
	)
	requireNotContainsAll(t, html, "feed page",
		`class="alert alert-warning"`,
		"No stories yet",
	)

	// Page 1 cards come pre-rendered from the upstream payload.
	requireContainsAll(t, html, "rendered cards",
		`data-post-id="7"`,
		`href="/profile/amara"`,
		"/static/uploads/amara.png",
		"Sunrise over Kampala",
		"Tea &amp; stories",
		"/static/uploads/kampala.jpg",
		`class="like-btn liked"`,
		`<span class="like-count">5</span>`,
		`href="/post/7"`,
		`<span class="comment-count">2</span>`,
		`data-post-id="8"`,
		"/static/uploads/default.jpg",
	)

	if got := strings.Count(html, `<article class="post-card`); got != 2 {
		t.Fatalf("expected 2 rendered cards, got %d", got)
	}
	if got := strings.Count(html, `<h3 class="post-title">`); got != 1 {
		t.Fatalf("post without title must omit the title block, count=%d", got)
	}
	if got := strings.Count(html, `<img class="post-image"`); got != 1 {
		t.Fatalf("post without image must omit the image block, count=%d", got)
	}
}

func TestFeedPageRendersWarningWhenUpstreamDown(t *testing.T) {
	cfg := config.Default()
	cfg.Upstream.URL = "http://127.0.0.1:1"
	cfg.Upstream.TimeoutSeconds = 1
	s, err := newSite(cfg)
	if err != nil {
		t.Fatalf("build site: %v", err)
	}
	front := httptest.NewServer(buildRouter(s))
	defer front.Close()

	resp := mustJSONRequest(t, front.Client(), http.MethodGet, front.URL+"/", nil)
	html := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("page must render despite a dead upstream, status=%d", resp.StatusCode)
	}
	requireContainsAll(t, html, "degraded feed page",
		`class="alert alert-warning" data-bantu-dismiss`,
		"feed is unreachable",
		`<div id="feed">`,
		`<script src="/ui/pages.js"></script>`,
	)
	requireNotContainsAll(t, html, "degraded feed page",
		`<article class="post-card`,
		"No stories yet",
	)
}

func TestFeedPageEmptyFeedShowsInvite(t *testing.T) {
	stub := &feedStub{body: emptyFeedJSON}
	front, _ := newTestFrontend(t, stub)

	resp := mustJSONRequest(t, front.Client(), http.MethodGet, front.URL+"/", nil)
	html := readBody(t, resp)

	requireContainsAll(t, html, "empty feed page",
		"No stories yet",
		`href="/post/new"`,
	)
	requireNotContainsAll(t, html, "empty feed page",
		`<article class="post-card`,
		`class="alert alert-warning"`,
	)
}

func TestComposePageServesValidatedForm(t *testing.T) {
	stub := &feedStub{body: emptyFeedJSON}
	front, _ := newTestFrontend(t, stub)

	resp := mustJSONRequest(t, front.Client(), http.MethodGet, front.URL+"/post/new", nil)
	html := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /post/new status=%d", resp.StatusCode)
	}
	requireContainsAll(t, html, "compose page",
		"<title>Bantu - New post</title>",
		`class="needs-validation" novalidate`,
		`method="post" action="/post/new"`,
		`enctype="multipart/form-data"`,
		`name="content" required`,
		`type="file" accept="image/*"`,
		`id="imagePreview"`,
		"invalid-feedback",
		`<script src="/ui/shared.js"></script>`,
		"initPageBehaviors({",
	)
}

func TestProfilePageServesPreviewTargetOverride(t *testing.T) {
	stub := &feedStub{body: emptyFeedJSON}
	front, _ := newTestFrontend(t, stub)

	resp := mustJSONRequest(t, front.Client(), http.MethodGet, front.URL+"/profile/update", nil)
	html := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /profile/update status=%d", resp.StatusCode)
	}
	requireContainsAll(t, html, "profile page",
		"<title>Bantu - Update profile</title>",
		`action="/profile/update"`,
		`name="username" type="text" required`,
		`name="bio"`,
		`data-preview-target="#avatarPreview"`,
		`id="avatarPreview"`,
		"needs-validation",
	)
}

func TestSharedScriptContract(t *testing.T) {
	stub := &feedStub{body: emptyFeedJSON}
	front, _ := newTestFrontend(t, stub)

	resp := mustJSONRequest(t, front.Client(), http.MethodGet, front.URL+"/ui/shared.js", nil)
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "javascript") {
		t.Fatalf("shared.js content type %q", ct)
	}
	if cc := resp.Header.Get("Cache-Control"); !strings.Contains(cc, "no-store") {
		t.Fatalf("shared.js cache-control %q", cc)
	}
	js := readBody(t, resp)

	requireContainsAll(t, js, "shared js",
		"function escapeHtml(value)",
		"function createDebouncer(waitMs)",
		"'/static/uploads/' + encodeURIComponent(name || 'default.jpg')",
		"function initHoverWidgets(root)",
		"[data-bantu-tooltip]",
		"[data-bantu-popover]",
		"mouseenter",
		"bantuWidgetBound",
		"function initAlertAutoDismiss(ttlMs)",
		"'.alert[data-bantu-dismiss]'",
		"alert.isConnected",
	)
}

func TestPagesScriptContract(t *testing.T) {
	stub := &feedStub{body: emptyFeedJSON}
	front, _ := newTestFrontend(t, stub)

	resp := mustJSONRequest(t, front.Client(), http.MethodGet, front.URL+"/ui/pages.js", nil)
	js := readBody(t, resp)

	// Bounded requests: every fetch carries an abort timer and never
	// caches.
	requireContainsAll(t, js, "pages js api",
		"function apiJSON(",
		"new AbortController()",
		"controller.abort()",
		"cache: 'no-store'",
		"credentials: 'same-origin'",
		"signal: controller.signal",
		"window.clearTimeout(timer)",
	)

	// Card template escapes every upstream-authored field and skips
	// optional blocks.
	requireContainsAll(t, js, "pages js cards",
		"function renderPostCard(post)",
		"escapeHtml(username)",
		"escapeHtml(post.title)",
		"escapeHtml(post.content)",
		"escapeHtml(post.created_at)",
		"if (post.title)",
		"if (post.image)",
		"avatarImageUrl(author.profile_image)",
		"'post-card fade-in'",
	)

	// Delegated click router with a serialized like toggle; the UI only
	// changes from the server's response.
	requireContainsAll(t, js, "pages js actions",
		"function registerAction(name, handler)",
		"event.target.closest('[data-action]')",
		"'/api/post/' + postId + '/like'",
		"{ method: 'POST' }",
		"applyLikeState(button, result.liked === true, result.like_count || 0)",
		"button.classList.toggle('liked', liked)",
		"count.textContent = String(likeCount)",
		"delete likesInFlight[postId]",
	)

	// Feed loader owns its state, advances the cursor before fetching,
	// and exhausts permanently on an empty page.
	requireContainsAll(t, js, "pages js feed",
		"function createFeedLoader(opts)",
		"var state = { page: 1, inflight: false, exhausted: false };",
		"state.page += 1;",
		"apiJSON('/api/feed?page=' + state.page)",
		"if (posts.length === 0)",
		"state.inflight || state.exhausted",
		"window.removeEventListener('scroll', onScroll)",
		"document.body.offsetHeight - thresholdPx",
	)
	cursorIdx := strings.Index(js, "state.page += 1;")
	fetchIdx := strings.Index(js, "apiJSON('/api/feed?page='")
	if cursorIdx < 0 || fetchIdx < 0 || cursorIdx > fetchIdx {
		t.Fatalf("cursor must advance before the fetch (cursor=%d fetch=%d)", cursorIdx, fetchIdx)
	}

	requireContainsAll(t, js, "pages js reveal",
		"function createRevealObserver()",
		"threshold: 0.1",
		"observer.unobserve(entry.target)",
		"classList.add('visible')",
	)

	requireContainsAll(t, js, "pages js forms",
		"form.checkValidity()",
		"event.preventDefault()",
		"event.stopPropagation()",
		"form.classList.add('was-validated')",
		`input[type="file"][accept*="image"]`,
		"input.dataset.previewTarget || '#imagePreview'",
		"reader.readAsDataURL(file)",
	)

	requireContainsAll(t, js, "pages js search",
		"function initSearchRedirect(opts)",
		"createDebouncer(opts.debounceMs || 500)",
		"query.length < minChars",
		"'/search?q=' + encodeURIComponent(query)",
	)

	requireContainsAll(t, js, "pages js boot",
		"function initPageBehaviors(opts)",
		"registerAction('like', handleLikeToggle)",
		"initActionRouter()",
		"onCardAppended",
		"reveal.observe(card)",
	)
}

// Every helper the boot sequence calls must exist in the served pair of
// scripts; a missing one would only surface as a console error at
// runtime.
func TestBootSequenceCallsOnlyDefinedFunctions(t *testing.T) {
	combined := uiSharedJS + uiPagesJS
	for _, name := range []string{
		"initHoverWidgets",
		"initAlertAutoDismiss",
		"initFormValidation",
		"initImagePreviews",
		"registerAction",
		"initActionRouter",
		"initSearchRedirect",
		"createFeedLoader",
		"createRevealObserver",
		"renderPostCard",
		"handleLikeToggle",
		"apiJSON",
		"escapeHtml",
		"createDebouncer",
	} {
		if !strings.Contains(combined, "function "+name+"(") {
			t.Errorf("scripts do not define %s", name)
		}
	}
}

// The client card template and the server-side renderer must produce the
// same structure; the loader appends client cards into the same feed the
// server seeded.
func TestClientAndServerCardTemplatesStayInLockstep(t *testing.T) {
	rendered, err := feed.CardsHTML([]feed.Post{{
		ID:           12,
		Title:        "Market day",
		Content:      "Tomatoes everywhere",
		Image:        "market.jpg",
		CreatedAt:    "Aug 25, 2026 09:00 AM",
		Author:       feed.Author{Username: "kofi", ProfileImage: "kofi.png"},
		LikeCount:    4,
		CommentCount: 1,
		Liked:        true,
	}})
	if err != nil {
		t.Fatalf("render server cards: %v", err)
	}
	serverHTML := string(rendered)
	clientJS := uiSharedCoreJS + uiPagesCardsJS

	for _, token := range []string{
		"post-card fade-in",
		"data-post-id",
		"post-header",
		"post-author",
		"author-avatar",
		"author-name",
		"post-timestamp",
		"post-title",
		"post-content",
		"post-image",
		"post-footer",
		"like-btn",
		`data-action="like"`,
		"like-heart",
		"like-count",
		"comment-link",
		"comment-count",
		"/static/uploads/",
		"/static/images/default.jpg",
		"/profile/",
		"aria-pressed",
		`loading="lazy"`,
		"&#9829;",
	} {
		if !strings.Contains(serverHTML, token) {
			t.Errorf("server card template lost %q", token)
		}
		if !strings.Contains(clientJS, token) {
			t.Errorf("client card template lost %q", token)
		}
	}
}

func TestLogoAndFaviconServedFromAssetDir(t *testing.T) {
	stub := &feedStub{body: emptyFeedJSON}
	front, _ := newTestFrontend(t, stub)

	tmp := t.TempDir()
	for _, name := range []string{"bantu-logo.png", "bantu-favicon.png"} {
		if err := os.WriteFile(filepath.Join(tmp, name), []byte("\x89PNG\r\n\x1a\n"), 0o644); err != nil {
			t.Fatalf("write asset: %v", err)
		}
	}
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})

	for _, path := range []string{"/bantu-logo.png", "/bantu-favicon.png", "/favicon.ico"} {
		resp := mustJSONRequest(t, front.Client(), http.MethodGet, front.URL+path, nil)
		body := readBody(t, resp)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s status=%d", path, resp.StatusCode)
		}
		if !strings.HasPrefix(body, "\x89PNG") {
			t.Fatalf("GET %s did not serve the asset bytes", path)
		}
	}
}

func TestLogoMissingAssetAnswers404(t *testing.T) {
	stub := &feedStub{body: emptyFeedJSON}
	front, _ := newTestFrontend(t, stub)

	tmp := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})

	resp := mustJSONRequest(t, front.Client(), http.MethodGet, front.URL+"/bantu-logo.png", nil)
	_ = readBody(t, resp)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing asset should 404, got %d", resp.StatusCode)
	}
}
