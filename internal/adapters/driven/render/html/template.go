package html

// pageTemplate uses the house palette: heavy green
// #00534C, light green #00B388, warm yellow #F2C75C and light grey #F4F5F5.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { margin: 0; font-family: system-ui, sans-serif; background: #00534C; }
  .slide { display: none; box-sizing: border-box; width: 100vw; height: 100vh; padding: 6vh 8vw; }
  .slide.active { display: flex; flex-direction: column; }
  .slide.title { justify-content: center; align-items: center; text-align: center; background: #00534C; color: #F4F5F5; }
  .slide.title h1 { font-size: 4rem; margin: 0 0 1rem; }
  .slide.title p { color: #F2C75C; font-size: 2rem; margin: 0.25rem 0; }
  .slide.content, .slide.list { background: #00B388; color: #F4F5F5; }
  .slide h2 { font-size: 3rem; margin: 0 0 2rem; }
  .panel { background: #F4F5F5; color: #00534C; border-radius: 0.5rem; padding: 1.5rem 2rem; font-size: 1.5rem; margin-bottom: 2rem; }
  ul { list-style: none; padding: 0; font-size: 1.75rem; }
  li::before { content: "\2022"; color: #F2C75C; margin-right: 0.75rem; }
  a { color: #F2C75C; }
  .panel a { color: #00534C; }
  footer { position: fixed; right: 2rem; bottom: 1rem; color: #F4F5F5; font-size: 1rem; }
</style>
</head>
<body>
{{- range .Slides}}
<section class="slide {{.Kind}}" data-index="{{.Number}}">
{{- if eq .Kind "title"}}
  <h1>{{.Title}}</h1>
  {{- range .Subtitle}}
  <p>{{.}}</p>
  {{- end}}
{{- else}}
  <h2>{{.Title}}</h2>
  {{- if .Content}}
  <div class="panel">{{.Content}}</div>
  {{- end}}
  {{- if .Points}}
  <ul>
  {{- range .Points}}
    <li>{{.}}</li>
  {{- end}}
  </ul>
  {{- end}}
{{- end}}
</section>
{{- else}}
<section class="slide title active"><h1>No slides</h1></section>
{{- end}}
<footer id="counter"></footer>
<script>
(function () {
  var slides = document.querySelectorAll("section.slide[data-index]");
  var counter = document.getElementById("counter");
  var current = 0;
  function show(i) {
    if (!slides.length) { return; }
    current = Math.max(0, Math.min(slides.length - 1, i));
    slides.forEach(function (s, n) { s.classList.toggle("active", n === current); });
    counter.textContent = (current + 1) + " / {{.Total}}";
  }
  document.addEventListener("keydown", function (e) {
    if (e.key === "ArrowRight") { show(current + 1); }
    if (e.key === "ArrowLeft") { show(current - 1); }
  });
  show(0);
})();
</script>
</body>
</html>
`
