package server

import (
	"html/template"
	"net/http"

	"github.com/mwasi01/bantuafrica/internal/config"
)

const composePageTemplateText = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.SiteName}} - New post</title>
<link rel="icon" type="image/png" href="/bantu-favicon.png" />
<style>` + uiPageChromeCSS + `</style>
</head>
<body>` + uiTopbarHTML + `
<main>
  <div class="card">
    <h2>Share a story</h2>
    <form class="needs-validation" novalidate method="post" action="/post/new" enctype="multipart/form-data">
      <label for="post-title">Title</label>
      <input id="post-title" name="title" type="text" maxlength="120" placeholder="Optional headline" />
      <label for="post-content">Story</label>
      <textarea id="post-content" name="content" required placeholder="What is happening?"></textarea>
      <div class="invalid-feedback">A story needs some words before it can go out.</div>
      <label for="post-image">Photo</label>
      <input id="post-image" name="image" type="file" accept="image/*"
        data-bantu-tooltip="JPEG or PNG, shown at full card width" />
      <img id="imagePreview" class="form-preview" alt="Selected photo preview" />
      <button class="btn-primary" type="submit">Publish</button>
    </form>
  </div>
</main>` + uiBootScriptHTML + `
</body>
</html>`

var composePageTemplate = template.Must(template.New("compose-page").Parse(composePageTemplateText))

type formPageData struct {
	SiteName string
	Tagline  string
	Behavior config.Behavior
}

// composePageHandler serves the new-post form. Submissions POST to the
// same path, which the router hands to the upstream proxy.
func (s *site) composePageHandler(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, composePageTemplate, formPageData{
		SiteName: s.cfg.Site.Name,
		Tagline:  s.cfg.Site.Tagline,
		Behavior: s.cfg.Behavior,
	})
}
