package htmlview

import "html/template"

var cardsTemplate = template.Must(template.New("cards").Parse(`
{{- if .Empty -}}
<p class="repo-empty">{{.EmptyText}}</p>
{{- else -}}
{{- range .Cards }}
<a class="repo-card" href="{{.URL}}">
<h3 class="repo-name">{{.Name}}</h3>
{{- if .HasDescription }}
<p class="repo-description">{{.Description}}</p>
{{- else }}
<p class="repo-description"><em>{{$.NoDescription}}</em></p>
{{- end }}
<div class="repo-stars">{{.Stars}}</div>
</a>
{{- end }}
{{- end -}}
`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root { --bg: #ffffff; --text: #24292f; --text-secondary: #57606a; --card: #f6f8fa; }
[data-theme="dark"] { --bg: #0d1117; --text: #c9d1d9; --text-secondary: #8b949e; --card: #161b22; }
body { background: var(--bg); color: var(--text); font-family: sans-serif; margin: 2rem; }
.hidden { display: none; }
.repo-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(16rem, 1fr)); gap: 1rem; }
.repo-card { display: block; background: var(--card); color: inherit; padding: 1rem; border-radius: 6px; text-decoration: none; }
.repo-empty { text-align: center; color: var(--text-secondary); }
.avatar { width: 96px; height: 96px; border-radius: 50%; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<span id="themeIcon" class="theme-toggle">{{.Indicator}}</span>
</header>
<section id="welcomeSection"{{if not .Visible.welcome}} class="hidden"{{end}}>
<p>Search for a GitHub user to see their profile and repositories.</p>
</section>
<div id="loadingIndicator"{{if not .Visible.loading}} class="hidden"{{end}}>Loading...</div>
<div id="errorMessage" role="alert"{{if not .Visible.error}} class="hidden"{{end}}>{{.ErrorText}}</div>
<section id="userProfile"{{if not .Visible.profile}} class="hidden"{{end}}>
{{- with .Profile }}
<img id="avatar" class="avatar" src="{{.AvatarSrc}}" alt="{{.AvatarAlt}}">
<h2 id="username">{{.Login}}</h2>
<p id="fullName"{{if not .Name.Visible}} class="hidden"{{end}}>{{.Name.Text}}</p>
<p id="bio"{{if not .Bio.Visible}} class="hidden"{{end}}>{{.Bio.Text}}</p>
<p id="location"{{if not .Location.Visible}} class="hidden"{{end}}>{{.Location.Text}}</p>
<p><span id="followers">{{.Followers}}</span> followers · <span id="following">{{.Following}}</span> following</p>
<a id="githubLink" href="{{.ProfileURL}}" target="_blank" rel="noopener noreferrer">View on GitHub</a>
{{- end }}
</section>
<section id="repositoriesSection"{{if not .Visible.repositories}} class="hidden"{{end}}>
<h2>Repositories</h2>
<div id="repositoriesContainer" class="repo-grid">{{.Grid}}</div>
</section>
</body>
</html>
`))
