package server

import (
	"html/template"
	"net/http"
)

const profilePageTemplateText = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.SiteName}} - Update profile</title>
<link rel="icon" type="image/png" href="/bantu-favicon.png" />
<style>` + uiPageChromeCSS + `
.avatar-row { display: flex; align-items: center; gap: 14px; }
#avatarPreview { width: 84px; height: 84px; border-radius: 50%; object-fit: cover; margin-top: 0; }
</style>
</head>
<body>` + uiTopbarHTML + `
<main>
  <div class="card">
    <h2>Update profile</h2>
    <form class="needs-validation" novalidate method="post" action="/profile/update" enctype="multipart/form-data">
      <label for="profile-username">Username</label>
      <input id="profile-username" name="username" type="text" required minlength="3" maxlength="32"
        data-bantu-tooltip="3 to 32 characters, shown on every story you post" />
      <div class="invalid-feedback">Pick a username between 3 and 32 characters.</div>
      <label for="profile-bio">Bio</label>
      <textarea id="profile-bio" name="bio" maxlength="280" placeholder="A line or two about you"></textarea>
      <label for="profile-location">Location</label>
      <input id="profile-location" name="location" type="text" maxlength="64" placeholder="Nairobi, Lagos, Accra..." />
      <label for="profile-image">Profile picture</label>
      <div class="avatar-row">
        <input id="profile-image" name="profile_image" type="file" accept="image/*"
          data-preview-target="#avatarPreview" />
        <img id="avatarPreview" class="form-preview" alt="Profile picture preview" />
      </div>
      <button class="btn-primary" type="submit">Save profile</button>
    </form>
  </div>
</main>` + uiBootScriptHTML + `
</body>
</html>`

var profilePageTemplate = template.Must(template.New("profile-page").Parse(profilePageTemplateText))

func (s *site) profilePageHandler(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, profilePageTemplate, formPageData{
		SiteName: s.cfg.Site.Name,
		Tagline:  s.cfg.Site.Tagline,
		Behavior: s.cfg.Behavior,
	})
}
