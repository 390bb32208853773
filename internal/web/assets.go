package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Static asset paths.
const (
	StylePath  = "/static/style.css"
	ScriptPath = "/static/app.js"
)

// RegisterStatic mounts the stylesheet and script.
func RegisterStatic(r chi.Router) {
	r.Get(StylePath, serveAsset("text/css; charset=utf-8", cssContent))
	r.Get(ScriptPath, serveAsset("text/javascript; charset=utf-8", jsContent))
}

// Assets returns every static asset keyed by path.
func Assets() map[string]string {
	return map[string]string{StylePath: cssContent, ScriptPath: jsContent}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}

// cssContent is the site stylesheet.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-muted: #f8f9fa;
  --text: #1f2937;
  --text-muted: #6b7280;
  --border: #e5e7eb;
  --accent: #f59e0b;
  --accent-dark: #d97706;
  --danger: #dc2626;
  --radius: 12px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 8px 24px rgba(0,0,0,0.12);
  --max-width: 1200px;
}

* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}
a { color: var(--accent-dark); text-decoration: none; }
a:hover { text-decoration: underline; }
img { max-width: 100%; height: auto; border-radius: var(--radius); }
.container { max-width: var(--max-width); margin: 0 auto; padding: 0 1rem; }
.section { padding: 2rem 0; }
.lead { font-size: 1.15rem; color: var(--text-muted); }

.skip-link { position: absolute; left: -9999px; top: 0; background: var(--text); color: #fff; padding: .5rem 1rem; z-index: 100; }
.skip-link:focus { left: 1rem; top: 1rem; }

.site-header { border-bottom: 1px solid var(--border); background: rgba(255,255,255,.95); position: sticky; top: 0; z-index: 50; }
.header-inner { display: flex; align-items: center; gap: 1.5rem; height: 64px; }
.brand { font-weight: 700; font-size: 1.2rem; color: var(--text); }
.main-nav { display: flex; gap: 1rem; flex: 1; }
.main-nav a { color: var(--text-muted); font-weight: 500; }
.main-nav a.active { color: var(--text); }
.header-search input { padding: .4rem .8rem; border: 1px solid var(--border); border-radius: 999px; min-width: 220px; }

.site-footer { border-top: 1px solid var(--border); margin-top: 3rem; padding: 2rem 0; color: var(--text-muted); font-size: .9rem; }
.footer-inner { display: flex; justify-content: space-between; flex-wrap: wrap; gap: 1rem; }
.footer-inner nav { display: flex; gap: 1rem; }

.hero { background: linear-gradient(135deg, #fef3c7, #fde68a); padding: 4rem 0; text-align: center; }
.hero h1 { font-size: 2.5rem; margin: 0 0 1rem; }

.btn { display: inline-block; padding: .55rem 1.1rem; border-radius: 8px; border: 1px solid var(--border); background: #fff; color: var(--text); font-weight: 600; cursor: pointer; font-size: .95rem; }
.btn:hover { text-decoration: none; box-shadow: var(--shadow); }
.btn-primary { background: var(--accent); border-color: var(--accent); color: #fff; }
.btn-primary:hover { background: var(--accent-dark); }
.btn[data-copied="true"] { background: #16a34a; border-color: #16a34a; color: #fff; }

.badge { display: inline-block; padding: .15rem .6rem; border-radius: 999px; background: var(--bg-muted); font-size: .8rem; font-weight: 600; }
.bg-green-100 { background: #dcfce7; } .text-green-800 { color: #166534; }
.bg-blue-100 { background: #dbeafe; } .text-blue-800 { color: #1e40af; }
.bg-purple-100 { background: #f3e8ff; } .text-purple-800 { color: #6b21a8; }
.bg-orange-100 { background: #ffedd5; } .text-orange-800 { color: #9a3412; }
.bg-pink-100 { background: #fce7f3; } .text-pink-800 { color: #9d174d; }
.bg-gray-100 { background: #f3f4f6; } .text-gray-800 { color: #1f2937; }

.tags { display: flex; flex-wrap: wrap; gap: .35rem; margin: .5rem 0; }
.tag { display: inline-block; padding: .1rem .55rem; border-radius: 999px; color: #fff; font-size: .75rem; font-weight: 600; background: #6b7280; }
.tag-more { background: var(--bg-muted); color: var(--text-muted); }

.tag-filter { display: flex; flex-wrap: wrap; gap: .5rem; margin: 1rem 0 1.5rem; }
.chip { padding: .3rem .8rem; border-radius: 999px; border: 1px solid var(--border); color: var(--text); font-size: .9rem; }
.chip span { color: var(--text-muted); font-size: .8rem; }
.chip.active { border-color: var(--tag-color, var(--accent)); background: var(--tag-color, var(--accent)); color: #fff; }
.chip.active span { color: rgba(255,255,255,.85); }

.card-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 1.25rem; }
.prompt-card, .tutorial-card { border: 1px solid var(--border); border-radius: var(--radius); overflow: hidden; background: #fff; display: flex; flex-direction: column; transition: box-shadow .2s; }
.prompt-card:hover, .tutorial-card:hover { box-shadow: var(--shadow-lg); }
.card-image img { border-radius: 0; width: 100%; aspect-ratio: 4 / 3; object-fit: cover; display: block; }
.card-body { padding: 1rem; display: flex; flex-direction: column; gap: .4rem; flex: 1; }
.card-body h3 { margin: 0; font-size: 1.05rem; }
.card-body h3 a { color: var(--text); }
.card-body p { margin: 0; color: var(--text-muted); font-size: .9rem; }
.card-body .copy-btn { margin-top: auto; }
.meta { font-size: .85rem; }
.empty { color: var(--text-muted); }

.breadcrumbs ol { list-style: none; display: flex; flex-wrap: wrap; gap: .4rem; padding: 0; margin: 1rem 0; font-size: .9rem; color: var(--text-muted); }

.prompt-detail .preview img { width: 100%; max-width: 800px; }
.originals { display: flex; gap: 1rem; flex-wrap: wrap; }
.originals img { max-width: 300px; }
.prompt-box pre { white-space: pre-wrap; background: var(--bg-muted); border: 1px solid var(--border); border-radius: var(--radius); padding: 1rem; font-size: .95rem; }
.actions { display: flex; gap: .75rem; }

.tutorial-hero { background: linear-gradient(135deg, #4f46e5, #06b6d4); color: #fff; padding: 3rem 0; }
.tutorial-hero .lead { color: rgba(255,255,255,.9); }
.tutorial-hero .badge { background: rgba(255,255,255,.2); color: #fff; }
.hero-image { display: block; max-width: var(--max-width); margin: 2rem auto 0; width: calc(100% - 2rem); }
.tutorial-layout { display: flex; gap: 2rem; align-items: flex-start; }
.tutorial-main { flex: 1; min-width: 0; max-width: 56rem; }
.tutorial-sidebar { width: 280px; position: sticky; top: 80px; }
.tutorial-header .author { display: flex; gap: .75rem; align-items: center; }
.tutorial-header .author img { border-radius: 50%; }
.stats { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 1rem; color: var(--text-muted); font-size: .9rem; }
.reading-progress { border: 1px solid var(--border); border-radius: var(--radius); padding: 1rem; margin: 1.5rem 0; font-size: .9rem; }
.reading-progress-value { float: right; color: var(--text-muted); }
.progress-track { height: 8px; background: var(--bg-muted); border-radius: 999px; margin-top: .5rem; overflow: hidden; }
.progress-bar { height: 100%; width: 0; background: var(--accent); transition: width .1s; }
.prose { font-size: 1.05rem; }
.prose h2 { margin-top: 2.5rem; border-bottom: 1px solid var(--border); padding-bottom: .3rem; scroll-margin-top: 80px; }
.prose h3 { scroll-margin-top: 80px; }
.prose pre { padding: 1rem; border-radius: 8px; overflow-x: auto; border: 1px solid var(--border); }
.prose table { border-collapse: collapse; width: 100%; }
.prose th, .prose td { border: 1px solid var(--border); padding: .5rem; }
.toc ol { list-style: none; padding: 0; }
.toc li { margin: .3rem 0; }
.toc .toc-level-3 { padding-left: 1rem; }
.toc a.active { font-weight: 700; }
.tutorial-nav { display: flex; justify-content: space-between; margin: 2rem 0; }
.comment { display: flex; gap: .75rem; padding: 1rem 0; border-bottom: 1px solid var(--border); }
.avatar { width: 40px; height: 40px; border-radius: 50%; display: flex; align-items: center; justify-content: center; font-weight: 700; background: var(--bg-muted); flex-shrink: 0; }
.stars { color: var(--accent); }

.search-form { display: flex; gap: .5rem; margin: 1rem 0; }
.search-form input { flex: 1; padding: .6rem 1rem; border: 1px solid var(--border); border-radius: 8px; font-size: 1rem; }
.search-results { list-style: none; padding: 0; }
.search-results li { padding: 1rem 0; border-bottom: 1px solid var(--border); }
.search-results p { margin: .25rem 0 0; color: var(--text-muted); }

.ad-container { margin: 2rem 0; min-height: 90px; }
.ad-vertical { min-height: 250px; }
.ad-fluid { min-height: 200px; }

.toaster { position: fixed; bottom: 1rem; right: 1rem; display: flex; flex-direction: column; gap: .5rem; z-index: 100; }
.toast { background: #fff; border: 1px solid var(--border); border-radius: var(--radius); box-shadow: var(--shadow-lg); padding: .9rem 1.1rem; min-width: 280px; max-width: 380px; animation: toast-in .2s ease-out; }
.toast.destructive { background: var(--danger); border-color: var(--danger); color: #fff; }
.toast strong { display: block; }
.toast p { margin: .2rem 0 0; font-size: .9rem; }
.toast .btn { margin-top: .6rem; }
@keyframes toast-in { from { transform: translateY(1rem); opacity: 0; } to { transform: none; opacity: 1; } }

@media (max-width: 900px) {
  .tutorial-layout { flex-direction: column; }
  .tutorial-sidebar { width: 100%; position: static; }
  .header-search { display: none; }
}
@media (prefers-reduced-motion: reduce) {
  html { scroll-behavior: auto; }
  .toast { animation: none; }
}
`

// jsContent is the client script: copy-to-clipboard with toasts, share,
// reading progress, lazy AdSense, client-side search for exported sites,
// and web-vitals beaconing.
const jsContent = `(function() {
  "use strict";

  var config = { resetDelayMs: 2000, toasts: {} };
  try {
    var el = document.getElementById("nb-config");
    if (el) config = JSON.parse(el.textContent);
  } catch (e) {}

  // ---- Toasts ----
  function toast(t) {
    if (!t) return;
    var root = document.getElementById("toaster");
    if (!root) return;
    var node = document.createElement("div");
    node.className = "toast" + (t.variant === "destructive" ? " destructive" : "");
    node.setAttribute("role", "status");
    var title = document.createElement("strong");
    title.textContent = t.title || "";
    node.appendChild(title);
    if (t.description) {
      var p = document.createElement("p");
      p.textContent = t.description;
      node.appendChild(p);
    }
    if (t.action && t.action.href) {
      var a = document.createElement("a");
      a.className = "btn btn-primary";
      a.href = t.action.href;
      a.textContent = t.action.label;
      if (t.action.new_tab) {
        a.target = "_blank";
        a.rel = "noopener noreferrer sponsored";
      }
      node.appendChild(a);
    }
    root.appendChild(node);
    setTimeout(function() { node.remove(); }, t.duration_ms || 5000);
  }

  // ---- Copy to clipboard ----
  function writeText(text) {
    if (navigator.clipboard && navigator.clipboard.writeText) {
      return navigator.clipboard.writeText(text);
    }
    return new Promise(function(resolve, reject) {
      var ta = document.createElement("textarea");
      ta.value = text;
      ta.style.position = "fixed";
      ta.style.opacity = "0";
      document.body.appendChild(ta);
      ta.select();
      var ok = false;
      try { ok = document.execCommand("copy"); } catch (e) {}
      ta.remove();
      ok ? resolve() : reject(new Error("copy failed"));
    });
  }

  var resetTimers = new WeakMap();

  function copy(btn) {
    var text = btn.getAttribute("data-copy") || "";
    if (text.trim().length === 0) {
      toast(config.toasts.error);
      return;
    }
    var label = btn.getAttribute("data-label") || btn.textContent;
    btn.setAttribute("data-label", label);
    writeText(text).then(function() {
      btn.setAttribute("data-copied", "true");
      btn.textContent = "Copied!";
      clearTimeout(resetTimers.get(btn));
      resetTimers.set(btn, setTimeout(function() {
        btn.removeAttribute("data-copied");
        btn.textContent = label;
      }, config.resetDelayMs));
      toast(btn.hasAttribute("data-no-promotion") ? config.toasts.success : config.toasts.promotion);
      var slug = btn.getAttribute("data-slug");
      if (slug) {
        fetch("/api/prompts/" + encodeURIComponent(slug) + "/copy", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ source: "web" }),
          keepalive: true
        }).catch(function() {});
      }
    }, function() {
      btn.removeAttribute("data-copied");
      toast(config.toasts.error);
    });
  }

  // ---- Share ----
  function share(btn) {
    var data = {
      title: btn.getAttribute("data-title") || document.title,
      text: btn.getAttribute("data-text") || "",
      url: btn.getAttribute("data-url") || window.location.href
    };
    if (navigator.share) {
      navigator.share(data).catch(function() {});
      return;
    }
    writeText(data.url).then(function() {
      toast(config.toasts.link_copied);
    }, function() {
      toast(config.toasts.error);
    });
  }

  document.addEventListener("click", function(e) {
    var btn = e.target.closest(".copy-btn");
    if (btn) { copy(btn); return; }
    btn = e.target.closest(".share-btn");
    if (btn) share(btn);
  });

  // ---- Reading progress ----
  var progress = document.getElementById("reading-progress");
  if (progress) {
    var bar = progress.querySelector(".progress-bar");
    var value = progress.querySelector(".reading-progress-value");
    var update = function() {
      var docHeight = document.documentElement.scrollHeight - window.innerHeight;
      var pct = docHeight > 0 ? Math.round((window.scrollY / docHeight) * 100) : 0;
      pct = Math.min(100, Math.max(0, pct));
      bar.style.width = pct + "%";
      value.textContent = pct + "%";
    };
    window.addEventListener("scroll", update, { passive: true });
    update();
  }

  // ---- Active table of contents entry ----
  var tocLinks = document.querySelectorAll(".toc a");
  if (tocLinks.length && "IntersectionObserver" in window) {
    var byId = {};
    tocLinks.forEach(function(a) { byId[a.getAttribute("href").slice(1)] = a; });
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (!entry.isIntersecting) return;
        tocLinks.forEach(function(a) { a.classList.remove("active"); });
        var link = byId[entry.target.id];
        if (link) link.classList.add("active");
      });
    }, { rootMargin: "0px 0px -70% 0px" });
    Object.keys(byId).forEach(function(id) {
      var h = document.getElementById(id);
      if (h) observer.observe(h);
    });
  }

  // ---- Client-side search (exported sites have no server) ----
  var clientResults = document.getElementById("client-results");
  var query = new URLSearchParams(window.location.search).get("q");
  if (clientResults && query) {
    var input = document.querySelector(".search-form input[name=q]");
    if (input) input.value = query;
    fetch("/search-index.json").then(function(r) { return r.json(); }).then(function(entries) {
      var terms = query.toLowerCase().split(/\s+/).filter(Boolean);
      entries.filter(function(e) {
        var hay = (e.title + " " + e.summary + " " + e.content).toLowerCase();
        return terms.every(function(t) { return hay.indexOf(t) !== -1; });
      }).forEach(function(e) {
        var li = document.createElement("li");
        var a = document.createElement("a");
        a.href = e.path;
        a.textContent = e.title;
        var p = document.createElement("p");
        p.textContent = e.summary;
        li.appendChild(a);
        li.appendChild(p);
        clientResults.appendChild(li);
      });
    }).catch(function() {});
  }

  // ---- AdSense, loaded after the page ----
  var adClient = document.body.getAttribute("data-adsense-client");
  if (adClient) {
    window.addEventListener("load", function() {
      var s = document.createElement("script");
      s.async = true;
      s.src = "https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js?client=" + encodeURIComponent(adClient);
      s.crossOrigin = "anonymous";
      document.head.appendChild(s);
      document.querySelectorAll("ins.adsbygoogle").forEach(function() {
        (window.adsbygoogle = window.adsbygoogle || []).push({});
      });
    });
  }

  // ---- Web vitals ----
  if (document.body.getAttribute("data-vitals") === "on" && "PerformanceObserver" in window) {
    var thresholds = {
      LCP: [2500, 4000], FID: [100, 300], CLS: [0.1, 0.25],
      FCP: [1800, 3000], TTFB: [800, 1800], INP: [200, 500]
    };
    var pending = {};
    var navType = "navigate";
    var nav = performance.getEntriesByType("navigation")[0];
    if (nav && nav.type) navType = nav.type.replace(/_/g, "-");
    var uid = "v1-" + Date.now() + "-" + Math.floor(Math.random() * 1e13);

    var record = function(name, value) {
      var t = thresholds[name];
      var prev = pending[name] ? pending[name].value : 0;
      var rating = value <= t[0] ? "good" : value <= t[1] ? "needs-improvement" : "poor";
      pending[name] = {
        id: uid + "-" + name, name: name, value: value, delta: value - prev,
        rating: rating, page: window.location.pathname, navigationType: navType
      };
      var reported = Math.round(name === "CLS" ? value * 1000 : value);
      if (window.gtag) {
        window.gtag("event", name, {
          event_category: "Web Vitals", event_label: pending[name].id,
          value: reported, non_interaction: true
        });
      }
      if (window.va) window.va("event", { name: name, value: reported, label: pending[name].id });
    };

    var flush = function() {
      var batch = Object.keys(pending).map(function(k) { return pending[k]; });
      if (!batch.length) return;
      pending = {};
      var body = JSON.stringify(batch);
      if (navigator.sendBeacon) {
        navigator.sendBeacon("/api/vitals", body);
      } else {
        fetch("/api/vitals", { method: "POST", body: body, keepalive: true }).catch(function() {});
      }
    };

    var observe = function(type, cb) {
      try {
        new PerformanceObserver(function(list) { list.getEntries().forEach(cb); })
          .observe({ type: type, buffered: true });
      } catch (e) {}
    };

    var start = function() {
      if (nav) record("TTFB", Math.max(0, nav.responseStart));
      observe("paint", function(e) { if (e.name === "first-contentful-paint") record("FCP", e.startTime); });
      observe("largest-contentful-paint", function(e) { record("LCP", e.startTime); });
      observe("first-input", function(e) { record("FID", e.processingStart - e.startTime); });
      var cls = 0;
      observe("layout-shift", function(e) { if (!e.hadRecentInput) { cls += e.value; record("CLS", cls); } });
      var inp = 0;
      observe("event", function(e) { if (e.interactionId && e.duration > inp) { inp = e.duration; record("INP", inp); } });
      document.addEventListener("visibilitychange", function() {
        if (document.visibilityState === "hidden") flush();
      });
    };

    if ("requestIdleCallback" in window) {
      window.requestIdleCallback(start, { timeout: 3500 });
    } else {
      setTimeout(start, 3500);
    }
  }
})();
`
