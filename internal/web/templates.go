package web

// baseTemplate holds the layout and the partials shared by every page.
// Each page template defines "content".
const baseTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Meta.Title}}</title>
  {{range .MetaTags}}{{if .Name}}<meta name="{{.Name}}" content="{{.Content}}">{{else}}<meta property="{{.Property}}" content="{{.Content}}">{{end}}
  {{end}}{{with .Meta.Canonical}}<link rel="canonical" href="{{.}}">
  {{end}}{{if .Ads.Enabled}}<meta name="google-adsense-account" content="{{.Ads.ClientID}}">
  {{end}}<link rel="stylesheet" href="/static/style.css">
  {{range .JSONLD}}<script type="application/ld+json">{{.}}</script>
  {{end}}<script id="nb-config" type="application/json">{{.ClientConfig}}</script>
  {{with .GAID}}<script async src="https://www.googletagmanager.com/gtag/js?id={{.}}"></script>
  <script>window.dataLayer = window.dataLayer || []; function gtag(){dataLayer.push(arguments);} gtag('js', new Date()); gtag('config', {{.}});</script>
  {{end}}{{if .Vercel}}<script>window.va = window.va || function () { (window.vaq = window.vaq || []).push(arguments); };</script>
  <script defer src="/_vercel/insights/script.js"></script>
  {{end}}
</head>
<body{{if .Ads.Enabled}} data-adsense-client="{{.Ads.ClientID}}"{{end}}{{if .Vitals}} data-vitals="on"{{end}}>
  <a class="skip-link" href="#main-content">Skip to main content</a>
  <header class="site-header">
    <div class="container header-inner">
      <a class="brand" href="/">🍌 {{.SiteName}}</a>
      <nav class="main-nav" aria-label="Main">
        {{range .Nav}}<a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</a>
        {{end}}
      </nav>
      <form class="header-search" action="/search" method="get" role="search">
        <input type="search" name="q" placeholder="Search prompts and tutorials" aria-label="Search">
      </form>
    </div>
  </header>
  <main id="main-content">
{{template "content" .}}
  </main>
  <footer class="site-footer">
    <div class="container footer-inner">
      <p>&copy; {{.Year}} {{.SiteName}}. Unofficial fan site for Nano Banana AI image editing.</p>
      <nav aria-label="Footer">
        <a href="/about">About</a>
        <a href="/community">Community</a>
        <a href="/contact">Contact</a>
        <a href="/privacy">Privacy</a>
        <a href="/terms">Terms</a>
        <a href="/sitemap.xml">Sitemap</a>
      </nav>
    </div>
  </footer>
  <div id="toaster" class="toaster" aria-live="polite"></div>
  <script src="/static/app.js" defer></script>
</body>
</html>
{{end}}

{{define "breadcrumbs"}}<nav class="breadcrumbs" aria-label="Breadcrumb"><ol>
  {{range $i, $c := .}}<li>{{if $i}}<span aria-hidden="true">/</span> {{end}}<a href="{{$c.Path}}">{{$c.Name}}</a></li>
  {{end}}
</ol></nav>{{end}}

{{define "promptCard"}}<article class="prompt-card">
  <a href="/prompts/{{.Slug}}" class="card-image"><img src="{{.Image}}" alt="{{.Title}}" loading="lazy" width="400" height="300"></a>
  <div class="card-body">
    <h3><a href="/prompts/{{.Slug}}">{{.Title}}</a></h3>
    <p>{{.Description}}</p>
    <div class="tags">{{range .Tags}}<span class="tag" style="background-color: {{.Color}}">{{.Label}}</span>{{end}}{{if .More}}<span class="tag tag-more">+{{.More}}</span>{{end}}</div>
    <button type="button" class="btn copy-btn" data-copy="{{.Prompt}}" data-slug="{{.Slug}}">Copy Prompt</button>
  </div>
</article>{{end}}

{{define "tutorialCard"}}<article class="tutorial-card">
  <a href="{{.Href}}" class="card-image"><img src="{{.Image}}" alt="{{.Title}}" loading="lazy" width="400" height="225"></a>
  <div class="card-body">
    <span class="badge {{.Colors.Bg}} {{.Colors.Text}}">{{.Category}}</span>
    <h3><a href="{{.Href}}">{{.Title}}</a></h3>
    <p>{{.Description}}</p>
    <p class="meta">{{.ReadTime}} · ★ {{printf "%.1f" .Rating}} · {{.Difficulty}}</p>
  </div>
</article>{{end}}

{{define "gallery"}}<div class="tag-filter">
  <a href="/prompts" class="chip{{if not .Tag}} active{{end}}">All <span>{{.Total}}</span></a>
  {{range .Tags}}<a href="{{.Href}}" class="chip{{if .Active}} active{{end}}" style="--tag-color: {{.Color}}">{{.Label}} <span>{{.Count}}</span></a>
  {{end}}
</div>
{{if .Cards}}<div class="card-grid">
  {{range .Cards}}{{template "promptCard" .}}
  {{end}}
</div>{{else}}<p class="empty">No prompts tagged “{{.TagLabel}}” yet. <a href="/prompts">Browse all prompts</a>.</p>{{end}}{{end}}`

const homeTemplate = `{{define "content"}}{{with .Page}}
<section class="hero">
  <div class="container">
    <h1>Nano Banana AI Prompts &amp; Tutorials</h1>
    <p class="lead">Copy-ready prompts for Google's Nano Banana image model, plus step-by-step guides from your first edit to API integration.</p>
    <p><a class="btn btn-primary" href="/prompts">Browse prompts</a> <a class="btn" href="/tutorials">Read tutorials</a></p>
  </div>
</section>
<section class="container section">
  <h2>Start learning</h2>
  <div class="card-grid">
    {{range .Featured}}{{template "tutorialCard" .}}
    {{end}}
  </div>
</section>
<section class="container section">
  <h2>Prompt library</h2>
  {{template "gallery" .Gallery}}
  {{adUnit "gallery" "horizontal"}}
</section>
{{end}}{{end}}`

const promptsTemplate = `{{define "content"}}{{with .Page}}
<section class="container section">
  <h1>{{.Heading}}</h1>
  <p class="lead">Browse {{.Total}} hand-picked Nano Banana prompts. Click a card for details or copy a prompt straight to your clipboard.</p>
  {{template "gallery" .}}
  {{adUnit "gallery" "horizontal"}}
</section>
{{end}}{{end}}`

const promptTemplate = `{{define "content"}}{{with .Page}}
<div class="container section prompt-detail">
  {{template "breadcrumbs" .Crumbs}}
  <article>
    <header>
      <span class="badge">{{.CategoryLabel}}</span>
      <h1>{{.Prompt.Title}}</h1>
      <p class="lead">{{.Prompt.Description}}</p>
      <div class="tags">{{range .Tags}}<a class="tag" href="/prompts?tag={{.Tag}}" style="background-color: {{.Color}}">{{.Label}}</a>{{end}}</div>
    </header>
    <figure class="preview"><img src="{{.Prompt.PreviewImage}}" alt="{{.Prompt.Title}}" width="800" height="600"></figure>
    {{if .Prompt.OriginalImages}}<section>
      <h2>Original images</h2>
      <div class="originals">{{range .Prompt.OriginalImages}}<img src="{{.}}" alt="Original input" loading="lazy" width="300" height="300">{{end}}</div>
    </section>{{end}}
    <section class="prompt-box">
      <h2>Prompt</h2>
      <pre id="prompt-text">{{.Prompt.Prompt}}</pre>
      <div class="actions">
        <button type="button" class="btn btn-primary copy-btn" data-copy="{{.Prompt.Prompt}}" data-slug="{{.Prompt.Slug}}">Copy Prompt</button>
        <button type="button" class="btn share-btn" data-title="{{.Prompt.Title}}" data-text="{{.Prompt.Description}}" data-url="{{.ShareURL}}">Share</button>
      </div>
    </section>
  </article>
  {{adUnit "prompt-detail" "fluid"}}
  {{if .Related}}<section class="section">
    <h2>Related prompts</h2>
    <div class="card-grid">{{range .Related}}{{template "promptCard" .}}{{end}}</div>
  </section>{{end}}
</div>
{{end}}{{end}}`

const tutorialsTemplate = `{{define "content"}}{{with .Page}}
<section class="container section">
  <h1>Nano Banana Tutorials</h1>
  <p class="lead">Step-by-step guides for every level, from the basics to production API workflows.</p>
  {{range .Groups}}{{if .Items}}<section class="section">
    <h2>{{.Label}}</h2>
    <div class="card-grid">{{range .Items}}{{template "tutorialCard" .}}{{end}}</div>
  </section>{{end}}{{end}}
  {{adUnit "tutorials" "horizontal"}}
</section>
{{end}}{{end}}`

const tutorialTemplate = `{{define "content"}}{{with .Page}}
<section class="tutorial-hero {{.T.Hero.GradientColors}}">
  <div class="container">
    <span class="badge">{{.T.Hero.Badge}}</span>
    <h1>{{.T.Title}}</h1>
    <p class="lead">{{.T.Description}}</p>
  </div>
  {{with .T.Hero.Image}}<img class="hero-image" src="{{.}}" alt="{{$.Page.T.Hero.ImageAlt}}" width="1200" height="630">{{end}}
</section>
<div class="container">{{template "breadcrumbs" .Crumbs}}</div>
<div class="container tutorial-layout">
  <div class="tutorial-main">
    <header class="tutorial-header">
      <div class="author">
        <img src="{{.Author.Avatar}}" alt="{{.Author.Name}}" width="40" height="40">
        <div><strong>{{.Author.Name}}</strong><br><small>{{.Author.Bio}}</small></div>
      </div>
      <ul class="stats">
        <li><span class="badge {{.Colors.Bg}} {{.Colors.Text}}">{{.T.Category}}</span></li>
        <li>{{.T.Difficulty}}</li>
        <li>{{.T.ReadTime}} read</li>
        <li>★ {{printf "%.1f" .T.Rating}} ({{.T.RatingCount}} ratings)</li>
        <li>{{.T.Views}} views</li>
        <li>Updated <time datetime="{{.T.UpdatedAt}}">{{.Updated}}</time></li>
      </ul>
      <div class="tags">{{range .T.Tags}}<span class="tag">{{.}}</span>{{end}}</div>
    </header>
    <div class="reading-progress" id="reading-progress">
      <span>Reading Progress</span> <span class="reading-progress-value">0%</span>
      <div class="progress-track"><div class="progress-bar"></div></div>
    </div>
    {{adUnit "tutorial-top" "horizontal"}}
    <article class="prose">{{.Body}}</article>
    {{adUnit "in-article" "fluid"}}
    {{if .Related}}<section class="next-steps">
      <h2>Next steps</h2>
      <div class="card-grid">{{range .Related}}{{template "tutorialCard" .}}{{end}}</div>
    </section>{{end}}
    <nav class="tutorial-nav" aria-label="Tutorial navigation">
      {{with .T.Navigation.Prev}}<a class="prev" href="{{.Href}}">← {{.Label}}</a>{{end}}
      {{with .T.Navigation.Next}}<a class="next" href="{{.Href}}">{{.Label}} →</a>{{end}}
    </nav>
    <section class="comments">
      <h2>Reader reviews</h2>
      {{range .Comments}}<div class="comment">
        <span class="avatar {{.Author.BgColor}} {{.Author.TextColor}}">{{.Author.Initials}}</span>
        <div>
          <strong>{{.Author.Name}}</strong> <span class="stars" aria-label="{{.Rating}} out of 5">{{stars .Rating}}</span> <small>{{.Date}}</small>
          <p>{{.Content}}</p>
          <small>{{.Likes}} found this helpful</small>
        </div>
      </div>{{end}}
    </section>
  </div>
  <aside class="tutorial-sidebar">
    {{if .T.TableOfContents}}<nav class="toc" aria-label="Table of contents">
      <h2>Contents</h2>
      <ol>{{range .T.TableOfContents}}<li class="toc-level-{{.Level}}"><a href="#{{.ID}}">{{.Title}}</a></li>{{end}}</ol>
    </nav>{{end}}
    {{adUnit "sidebar" "vertical"}}
  </aside>
</div>
{{end}}{{end}}`

const searchTemplate = `{{define "content"}}{{with .Page}}
<section class="container section">
  <h1>Search</h1>
  <form class="search-form" action="/search" method="get" role="search">
    <input type="search" name="q" value="{{.Query}}" placeholder="Try “portrait” or “logo”" aria-label="Search" autofocus>
    <button type="submit" class="btn btn-primary">Search</button>
  </form>
  {{if .Query}}<p class="result-count">{{len .Results}} result{{if ne (len .Results) 1}}s{{end}} for “{{.Query}}”</p>
  <ol class="search-results">{{range .Results}}<li>
    <span class="badge">{{.Kind}}</span> <a href="{{.Path}}">{{.Title}}</a>
    <p>{{.Summary}}</p>
  </li>{{end}}</ol>{{else}}<ol class="search-results" id="client-results"></ol>{{end}}
</section>
{{end}}{{end}}`

const notFoundTemplate = `{{define "content"}}
<section class="container section not-found">
  <h1>Page not found</h1>
  <p class="lead">The page you are looking for does not exist or has moved.</p>
  <p><a class="btn btn-primary" href="/">Go home</a> <a class="btn" href="/prompts">Browse prompts</a> <a class="btn" href="/tutorials">Read tutorials</a></p>
</section>
{{end}}`

const infoTemplate = `{{define "content"}}{{with .Page}}
<section class="container section info-page">
  <h1>{{.Title}}</h1>
  {{range .Paragraphs}}<p>{{.}}</p>
  {{end}}
  {{if .Links}}<ul>{{range .Links}}<li><a href="{{.Href}}">{{.Label}}</a></li>{{end}}</ul>{{end}}
</section>
{{end}}{{end}}`
