package server

import (
	"html/template"
	"net/http"

	"archive2svg/internal/keywords"
	"archive2svg/internal/logging"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Newspaper archive</title>
<style>
body { margin: 0; background: #0b0028; color: #fff; font-family: Arial, sans-serif; }
#controls { padding: 12px 20px; display: flex; gap: 16px; align-items: center; }
#tooltip { position: fixed; display: none; max-width: 400px; padding: 12px; border-radius: 4px;
  background: rgba(11, 0, 40, 0.85); box-shadow: 0 2px 10px rgba(0,0,0,0.2); line-height: 1.4; z-index: 1000; }
#tooltip a { color: #fff; font-weight: bold; }
#tooltip .kw { color: #bdffb4; }
#tooltip .excerpt { font-style: italic; color: #ddd; }
</style>
</head>
<body>
<div id="controls">
  <label>What has been said about... ? <select id="one">{{range .OptionsOne}}<option>{{.}}</option>{{end}}</select></label>
  <label>and about... ? <select id="two">{{range .OptionsTwo}}<option>{{.}}</option>{{end}}</select></label>
  <button id="reset">reset</button>
</div>
<div id="chart"></div>
<div id="tooltip"></div>
<script>
const tip = document.getElementById("tooltip");
const post = (url, body) => fetch(url, {method: "POST", body: JSON.stringify(body)});
const pointer = (ev) => post("/api/pointer", ev);

function showTooltip(t) {
  if (!t) { tip.style.display = "none"; return; }
  let html = "<div>" + t.date + "</div>";
  html += "<div><a target=\"_blank\" rel=\"noopener noreferrer\"></a> (" + t.word_count + " words)</div>";
  if (t.keywords_one) html += "<div><span class=\"kw\">#1 Keywords: </span><span class=\"k1\"></span></div>";
  if (t.keywords_two) html += "<div><span class=\"kw\">#2 Keywords: </span><span class=\"k2\"></span></div>";
  html += "<div class=\"excerpt\"></div>";
  tip.innerHTML = html;
  const a = tip.querySelector("a"); a.href = t.link; a.textContent = t.title;
  if (t.keywords_one) tip.querySelector(".k1").textContent = t.keywords_one.join(", ");
  if (t.keywords_two) tip.querySelector(".k2").textContent = t.keywords_two.join(", ");
  tip.querySelector(".excerpt").textContent = t.excerpt;
  tip.style.left = t.left + "px"; tip.style.top = t.top + "px"; tip.style.display = "block";
}

function refreshTooltip() {
  fetch("/api/tooltip").then(r => r.status === 200 ? r.json() : null).then(showTooltip);
}

function loadChart() {
  fetch("/api/chart.svg").then(r => r.text()).then(svg => {
    document.getElementById("chart").innerHTML = svg;
    document.querySelectorAll("circle.mark").forEach(c => {
      c.addEventListener("mouseenter", e => pointer({kind: "enter-mark", id: c.dataset.id, x: e.clientX, y: e.clientY}).then(refreshTooltip));
      c.addEventListener("mouseleave", () => pointer({kind: "leave-mark", id: c.dataset.id}));
    });
  });
}

function applySelection(sel) {
  document.getElementById("one").value = [...document.getElementById("one").options].find(o => o.value.split(" (")[0] === sel.one)?.value || "{{.PlaceholderOne}}";
  document.getElementById("two").value = [...document.getElementById("two").options].find(o => o.value.split(" (")[0] === sel.two)?.value || "{{.PlaceholderTwo}}";
  loadChart();
}

tip.addEventListener("mouseenter", () => pointer({kind: "enter-tooltip"}));
tip.addEventListener("mouseleave", () => pointer({kind: "leave-tooltip"}));
document.getElementById("one").addEventListener("change", e => post("/api/selection", {slot: 1, option: e.target.value}).then(r => r.json()).then(applySelection));
document.getElementById("two").addEventListener("change", e => post("/api/selection", {slot: 2, option: e.target.value}).then(r => r.json()).then(applySelection));
document.getElementById("reset").addEventListener("click", () => post("/api/selection", {reset: true}).then(r => r.json()).then(applySelection));

setInterval(refreshTooltip, 50);
fetch("/api/selection").then(r => r.json()).then(applySelection);
</script>
</body>
</html>
`))

type pageData struct {
	OptionsOne     []string
	OptionsTwo     []string
	PlaceholderOne string
	PlaceholderTwo string
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	var kws []string
	if s.ds != nil {
		kws = s.ds.Schema.Keywords
	}
	data := pageData{
		OptionsOne:     s.table.Options(keywords.PlaceholderOne, kws),
		OptionsTwo:     s.table.Options(keywords.PlaceholderTwo, kws),
		PlaceholderOne: keywords.PlaceholderOne,
		PlaceholderTwo: keywords.PlaceholderTwo,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Warn("render page", logging.Error(err))
	}
}
