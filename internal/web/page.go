package web

import (
	"html/template"

	"github.com/midbel/scatter"
)

type page struct {
	Title    string
	Loaded   bool
	Controls []scatter.Control
	Plot     template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.mark circle, .mark rect { transition-property: cx, cy, x, y; transition-duration: 500ms; }
.legend text { cursor: pointer; }
.legend-hidden { opacity: 0.4; }
</style>
</head>
<body>
<div>
<h1>{{.Title}}</h1>
<form id="selector">
{{range .Controls}}<h2>{{.Label}}</h2>
<select name="{{.Name}}">{{$sel := .Selected}}{{range .Options}}
<option{{if eq . $sel}} selected{{end}}>{{.}}</option>{{end}}
</select>
{{end}}</form>
{{if not .Loaded}}<p id="loading">loading dataset...</p>{{end}}
</div>
<div id="plot">{{.Plot}}</div>
<script>
(function() {
	const plot = document.getElementById("plot");
	if (!{{.Loaded}}) {
		setTimeout(() => location.reload(), 1000);
	}

	function morph(text) {
		const doc = new DOMParser().parseFromString(text, "image/svg+xml");
		const next = doc.documentElement;
		const curr = plot.querySelector("svg");
		if (!curr) {
			plot.innerHTML = text;
			return;
		}
		for (const id of ["axis", "legend"]) {
			const old = curr.querySelector("#" + id);
			const upd = next.querySelector("#" + id);
			if (old && upd) {
				old.replaceWith(document.importNode(upd, true));
			}
		}
		const marks = curr.querySelector("#marks");
		const fresh = next.querySelector("#marks");
		if (!marks || !fresh) {
			plot.innerHTML = text;
			return;
		}
		const keep = new Set();
		for (const g of fresh.querySelectorAll(".mark")) {
			keep.add(g.id);
			const old = marks.querySelector("#" + g.id);
			if (!old) {
				marks.appendChild(document.importNode(g, true));
				continue;
			}
			const src = g.firstElementChild, dst = old.firstElementChild;
			for (const attr of src.attributes) {
				dst.setAttribute(attr.name, attr.value);
			}
		}
		for (const g of Array.from(marks.querySelectorAll(".mark"))) {
			if (!keep.has(g.id)) {
				g.remove();
			}
		}
	}

	function post(url, body) {
		fetch(url, {method: "POST", body: new URLSearchParams(body)})
			.then(res => res.ok ? res.text() : Promise.reject(res.status))
			.then(morph)
			.catch(() => {});
	}

	document.getElementById("selector").addEventListener("change", (event) => {
		post("select", {axis: event.target.name, attribute: event.target.value});
	});
	plot.addEventListener("click", (event) => {
		const g = event.target.closest(".legend");
		if (g) {
			post("toggle", {index: g.id.replace("legend-", "")});
		}
	});
})();
</script>
</body>
</html>
`))
