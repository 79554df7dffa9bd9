package server

// uiPageChromeCSS carries the look shared by every page the service
// serves. Page templates append their own styles after this block.
const uiPageChromeCSS = `
:root {
  --bg: #faf6ef;
  --panel: #fffdf8;
  --ink: #2b2118;
  --muted: #7c6c5c;
  --line: #e7d9c6;
  --accent: #b4541b;
  --accent-soft: #f3e1d2;
  --ok: #2e7d32;
  --warn: #9a6a00;
  --bad: #b3261e;
  --shadow: 0 10px 24px rgba(43, 33, 24, 0.08);
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: "Segoe UI", system-ui, -apple-system, sans-serif;
  color: var(--ink);
  background:
    radial-gradient(900px 420px at 85% -10%, rgba(180, 84, 27, 0.12), transparent 60%),
    radial-gradient(700px 380px at -10% 0%, rgba(154, 106, 0, 0.10), transparent 55%),
    var(--bg);
  min-height: 100vh;
}
main { max-width: 760px; margin: 0 auto; padding: 18px 16px 60px; }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

.topbar {
  position: sticky;
  top: 0;
  z-index: 20;
  display: flex;
  align-items: center;
  gap: 14px;
  padding: 10px 18px;
  background: rgba(255, 253, 248, 0.92);
  border-bottom: 1px solid var(--line);
  backdrop-filter: blur(6px);
}
.brand { display: flex; align-items: center; gap: 10px; color: var(--ink); font-weight: 700; }
.brand img { width: 30px; height: 30px; border-radius: 8px; }
.brand .tagline { font-size: 12px; font-weight: 400; color: var(--muted); }
.topbar nav { margin-left: auto; display: flex; align-items: center; gap: 8px; }
.nav-btn {
  padding: 7px 12px;
  border: 1px solid var(--line);
  border-radius: 8px;
  background: var(--panel);
  color: var(--ink);
  font-size: 13px;
  cursor: pointer;
}
.nav-btn:hover { border-color: var(--accent); color: var(--accent); text-decoration: none; }

.card {
  background: var(--panel);
  border: 1px solid var(--line);
  border-radius: 12px;
  box-shadow: var(--shadow);
  padding: 16px;
  margin-bottom: 14px;
}
.card h2 { margin: 0 0 10px; font-size: 18px; }
.muted { color: var(--muted); font-size: 13px; }

.search-box { position: relative; min-width: 200px; }
.search-box input {
  width: 100%;
  padding: 7px 10px;
  border: 1px solid var(--line);
  border-radius: 8px;
  background: var(--panel);
  color: var(--ink);
  font-size: 13px;
}
.search-box input:focus { outline: none; border-color: var(--accent); }

.alert {
  display: flex;
  align-items: center;
  gap: 10px;
  padding: 10px 14px;
  margin-bottom: 12px;
  border: 1px solid var(--line);
  border-left: 4px solid var(--accent);
  border-radius: 10px;
  background: var(--panel);
  font-size: 14px;
}
.alert.alert-success { border-left-color: var(--ok); }
.alert.alert-warning { border-left-color: var(--warn); }
.alert.alert-danger { border-left-color: var(--bad); }
.alert .alert-close {
  margin-left: auto;
  border: 0;
  background: none;
  color: var(--muted);
  font-size: 16px;
  cursor: pointer;
}

form label { display: block; margin: 12px 0 4px; font-size: 13px; color: var(--muted); }
form input[type="text"], form input[type="url"], form textarea {
  width: 100%;
  padding: 9px 10px;
  border: 1px solid var(--line);
  border-radius: 8px;
  background: #fff;
  color: var(--ink);
  font-size: 14px;
}
form textarea { min-height: 110px; resize: vertical; }
form input:focus, form textarea:focus { outline: none; border-color: var(--accent); }
.invalid-feedback { display: none; color: var(--bad); font-size: 12px; margin-top: 4px; }
form.was-validated :invalid { border-color: var(--bad); }
form.was-validated :invalid ~ .invalid-feedback { display: block; }
.btn-primary {
  margin-top: 14px;
  padding: 9px 16px;
  border: 0;
  border-radius: 8px;
  background: var(--accent);
  color: #fff;
  font-size: 14px;
  cursor: pointer;
}
.btn-primary:hover { filter: brightness(1.08); }
.form-preview {
  display: none;
  max-width: 100%;
  max-height: 260px;
  margin-top: 10px;
  border-radius: 10px;
  border: 1px solid var(--line);
}
.form-preview.has-image { display: block; }
`
