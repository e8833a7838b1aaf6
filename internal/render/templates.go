package render

// The pages are deliberately plain: static markup, one shared stylesheet
// inlined per page, no build tooling. The leaderboard page embeds the
// snapshot dataset so page scripts can read it without fetching the
// sidecar file.

const pageStyle = `
  body { font-family: 'Helvetica Neue', Arial, sans-serif; margin: 2rem auto; max-width: 72rem; color: #1a1a2e; }
  h1 { font-size: 1.6rem; }
  h2 { font-size: 1.15rem; margin-top: 2rem; border-bottom: 2px solid #16213e; padding-bottom: .25rem; }
  table { border-collapse: collapse; margin: .75rem 0 1.5rem; font-size: .85rem; }
  th, td { padding: .3rem .65rem; text-align: right; }
  th { background: #16213e; color: #fff; cursor: default; }
  td:first-child, th:first-child, td.name, th.name { text-align: left; }
  tr:nth-child(even) { background: #f0f2f8; }
  .clinch { color: #0a7d36; font-weight: bold; }
  .spotlight { background: #f0f2f8; border-left: 4px solid #16213e; padding: .5rem .75rem; }
  .charts { display: flex; flex-wrap: wrap; gap: 1rem; }
  svg { background: #fbfbfd; border: 1px solid #d8dbe8; }
  svg text { font-size: 11px; fill: #1a1a2e; }
  svg .axis { font-size: 12px; fill: #555; }
  svg .patch { fill: #fbfbfd; opacity: .85; }
  svg circle { fill: #2a52c8; }
  footer { margin-top: 2rem; font-size: .75rem; color: #888; }
`

const standingsTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Season}} Standings &amp; Sabermetrics</title>
<style>` + pageStyle + `</style>
</head>
<body>
<h1>{{.Season}} Season — Standings &amp; Team Sabermetrics</h1>
{{range .Divisions}}
<h2>{{.Name}}</h2>
<table>
<tr><th class="name">Team</th><th>W</th><th>L</th><th>GB</th><th>RS</th><th>RA</th><th>Pythag +/-</th><th>OBP</th><th>ISO</th><th>FIP</th><th>DER</th></tr>
{{range .Teams}}
<tr>
  <td class="name">{{.Name}}{{if .ClinchIndicator}} <span class="clinch">{{.ClinchIndicator}}</span>{{end}}</td>
  <td>{{.Wins}}</td>
  <td>{{.Losses}}</td>
  <td>{{.GamesBack}}</td>
  <td>{{.RunsScored}}</td>
  <td>{{.RunsAllowed}}</td>
  <td>{{fixed 1 (index .Derived "pythag")}}</td>
  <td>{{rate (index .Derived "obp")}}</td>
  <td>{{rate (index .Derived "iso")}}</td>
  <td>{{fixed 2 (index .Derived "fip")}}</td>
  <td>{{rate (index .Derived "der")}}</td>
</tr>
{{end}}
</table>
{{end}}
<h2>Team Comparisons</h2>
<div class="charts">
{{range .Charts}}
<figure>
<svg id="chart-{{.Slug}}" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
  <text class="axis" x="{{.Width}}" y="{{.Height}}" dx="-8" dy="-8" text-anchor="end">{{.XLabel}} →</text>
  <text class="axis" x="8" y="14">↑ {{.YLabel}}</text>
  {{range .Points}}<circle cx="{{.X}}" cy="{{.Y}}" r="4"></circle>
  {{end}}
  {{range .Labels}}<rect class="patch" x="{{.Box.X}}" y="{{.Box.Y}}" width="{{.Box.W}}" height="{{.Box.H}}"></rect><text x="{{.X}}" y="{{.Y}}" text-anchor="{{.Anchor}}">{{.Text}}</text>
  {{end}}
</svg>
<figcaption>{{.Title}}</figcaption>
</figure>
{{end}}
</div>
<footer>Regenerated from live season data. Zero-valued metrics mean the underlying denominator was zero.</footer>
</body>
</html>
`

const leadersTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Season}} Leaderboards</title>
<style>` + pageStyle + `</style>
</head>
<body>
<h1>{{.Season}} Season — Leaderboards</h1>
<p>Updated {{.Updated}}. Boards marked &#8224; include qualified players only.</p>
{{with .Spotlight}}
<p class="spotlight"><strong>Spotlight:</strong> {{.Name}} ({{.TeamLabel}}){{if eq .Role "pitcher"}} — {{fixed 2 (index .Derived "era")}} ERA, {{fixed 2 (index .Derived "fip")}} FIP, {{fixed 0 .Stats.StrikeOuts}} K{{else}} — {{rate (index .Derived "avg")}}/{{rate (index .Derived "obp")}}, {{fixed 0 .Stats.HomeRuns}} HR{{end}}</p>
{{end}}
<h2>Batting</h2>
{{range .BatterBoards}}
{{template "board" .}}
{{end}}
<h2>Pitching</h2>
{{range .PitcherBoards}}
{{template "board" .}}
{{end}}
<script id="dataset" type="application/json">{{.DatasetJSON}}</script>
<script>
// Expose the embedded dataset to page scripts and the browser console;
// the server-rendered boards above are the page content.
(function () {
  var data = JSON.parse(document.getElementById('dataset').textContent);
  window.sabrpage = { season: data.season, batters: data.batters, pitchers: data.pitchers };
})();
</script>
<footer>Data snapshot: <a href="leaders.json">leaders.json</a></footer>
</body>
</html>
{{define "board"}}
<h3>{{.Title}}{{if .Qualified}} &#8224;{{end}}</h3>
<table>
<tr><th>#</th><th class="name">Player</th><th class="name">Team</th><th>Age</th><th>{{.Title}}</th></tr>
{{$b := .}}
{{range $i, $p := .Players}}
<tr>
  <td>{{add1 $i}}</td>
  <td class="name">{{$p.Name}}</td>
  <td class="name">{{team $p}}</td>
  <td>{{$p.Age}}</td>
  <td>{{if $b.Rate}}{{rate (stat $p $b.Key)}}{{else}}{{fixed $b.Decimals (stat $p $b.Key)}}{{end}}</td>
</tr>
{{end}}
</table>
{{end}}
`
