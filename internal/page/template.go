package page

// builderTemplate is the whole builder page. Server-rendered: every
// interaction is a form post that re-renders the page with the new
// state, so the page works without any custom JavaScript beyond the
// chart init script embedded in the snippet.
const builderTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title }}</title>
<script src="{{ .ScriptURL }}"></script>
<style>
  :root { --ink: #1f2430; --muted: #6b7280; --line: #e5e7eb; --accent: #8884d8; }
  * { box-sizing: border-box; }
  body { margin: 0; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; color: var(--ink); background: #f8f9fb; }
  .wrap { max-width: 1080px; margin: 0 auto; padding: 24px 20px 60px; }
  h1 { font-size: 1.5rem; margin: 0 0 4px; }
  .version { color: var(--muted); font-size: 0.8rem; margin-bottom: 20px; }
  .notice { background: #fef3c7; border: 1px solid #fcd34d; border-radius: 6px; padding: 10px 14px; margin-bottom: 16px; }
  .grid { display: grid; grid-template-columns: 340px 1fr; gap: 20px; align-items: start; }
  .card { background: #fff; border: 1px solid var(--line); border-radius: 8px; padding: 16px; margin-bottom: 16px; }
  .card h2 { font-size: 1rem; margin: 0 0 10px; }
  .card h3 { font-size: 0.85rem; margin: 12px 0 4px; color: var(--muted); text-transform: uppercase; letter-spacing: 0.04em; }
  input[type=text], input[type=file] { width: 100%; padding: 7px 9px; border: 1px solid var(--line); border-radius: 5px; font-size: 0.9rem; }
  .row { display: flex; gap: 8px; margin-bottom: 8px; }
  button { padding: 7px 13px; border: 1px solid var(--line); border-radius: 5px; background: #fff; cursor: pointer; font-size: 0.85rem; }
  button.primary { background: var(--accent); border-color: var(--accent); color: #fff; }
  button.small { padding: 3px 9px; font-size: 0.75rem; }
  table { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
  th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid var(--line); }
  th { color: var(--muted); font-weight: 600; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  .kind-row { display: flex; gap: 8px; flex-wrap: wrap; }
  .kind-row button.selected { background: var(--accent); border-color: var(--accent); color: #fff; }
  .tpl { border-top: 1px solid var(--line); padding-top: 10px; margin-top: 10px; }
  .tpl:first-of-type { border-top: none; padding-top: 0; margin-top: 0; }
  .tpl .desc { color: var(--muted); font-size: 0.85rem; }
  .tpl .desc p { margin: 4px 0; }
  .tpl.active { border-left: 3px solid var(--accent); padding-left: 10px; }
  .tpl-actions { display: flex; gap: 8px; margin-top: 6px; }
  .export-row { display: flex; gap: 10px; margin-top: 12px; }
  .empty { color: var(--muted); padding: 28px 0; text-align: center; }
  a.button { display: inline-block; padding: 7px 13px; border: 1px solid var(--line); border-radius: 5px; text-decoration: none; color: var(--ink); font-size: 0.85rem; }
</style>
</head>
<body>
<div class="wrap">
  <h1>Chart Builder</h1>
  <div class="version">v{{ .Version }}</div>

  {{ if .Notice }}<div class="notice">{{ .Notice }}</div>{{ end }}

  <div class="grid">
    <div>
      <div class="card">
        <h2>Add Data</h2>
        <form method="post" action="/points">
          <div class="row">
            <input type="text" name="label" placeholder="Label" autocomplete="off">
            <input type="text" name="value" placeholder="Value" autocomplete="off">
          </div>
          <button type="submit" class="primary">Add point</button>
        </form>

        <h3>Import CSV</h3>
        <form method="post" action="/import" enctype="multipart/form-data">
          <div class="row"><input type="file" name="file" accept=".csv,text/csv"></div>
          <button type="submit">Import</button>
        </form>
      </div>

      <div class="card">
        <h2>Templates</h2>
        {{ range .Templates }}
        <div class="tpl{{ if .Active }} active{{ end }}">
          <strong>{{ .Name }}</strong>
          <div class="desc">{{ .Description }}</div>
          <div class="desc">{{ .Format }}</div>
          <div class="tpl-actions">
            <form method="post" action="/templates/load">
              <input type="hidden" name="slug" value="{{ .Slug }}">
              <button type="submit" class="small">Load</button>
            </form>
            {{ if .Active }}
            <a class="button small" href="/templates/example?slug={{ .Slug }}">Download example CSV</a>
            {{ end }}
          </div>
        </div>
        {{ end }}
      </div>
    </div>

    <div>
      <div class="card">
        <h2>Dataset</h2>
        {{ if .Dataset }}
        <table>
          <thead><tr><th>Label</th><th>Value</th><th></th></tr></thead>
          <tbody>
          {{ range $i, $p := .Dataset }}
            <tr>
              <td>{{ $p.Label }}</td>
              <td class="num">{{ $p.Value }}</td>
              <td>
                <form method="post" action="/points/delete">
                  <input type="hidden" name="index" value="{{ $i }}">
                  <button type="submit" class="small">Remove</button>
                </form>
              </td>
            </tr>
          {{ end }}
          </tbody>
        </table>
        <form method="post" action="/dataset/clear" style="margin-top:10px">
          <button type="submit" class="small">Clear all</button>
        </form>
        {{ else }}
        <div class="empty">No data yet. Add points, load a template, or import a CSV.</div>
        {{ end }}
      </div>

      {{ if .HasChart }}
      <div class="card">
        <h2>Preview</h2>
        <form method="post" action="/kind" class="kind-row">
          {{ range .Kinds }}
          <button type="submit" name="kind" value="{{ .Kind }}"{{ if .Selected }} class="selected"{{ end }}>{{ .Kind }}</button>
          {{ end }}
        </form>
        {{ .Snippet }}
        <div class="export-row">
          <a class="button" href="/export/image">Export PNG</a>
          <a class="button" href="/export/pdf">Export PDF</a>
        </div>
      </div>
      {{ end }}
    </div>
  </div>
</div>
</body>
</html>
`
