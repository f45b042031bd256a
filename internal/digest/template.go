package digest

const digestHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Job digest</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 720px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: #1f2937;
      color: #ffffff;
    }

    .header .count {
      font-size: 22px;
      font-weight: 700;
    }

    .header .meta {
      font-size: 13px;
      opacity: 0.85;
      margin-top: 4px;
    }

    .section {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
    }

    .section-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    table.jobs {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
    }

    table.jobs td {
      padding: 8px 8px 8px 0;
      border-bottom: 1px solid #f3f4f6;
      vertical-align: top;
    }

    td.idx {
      color: #9ca3af;
      white-space: nowrap;
      width: 28px;
    }

    td.where {
      color: #6b7280;
      max-width: 260px;
    }

    a {
      color: #2563eb;
      text-decoration: none;
    }

    .empty {
      padding: 32px 24px;
      text-align: center;
      color: #6b7280;
    }

    .footer {
      padding: 12px 24px;
      font-size: 12px;
      color: #9ca3af;
      border-top: 1px solid #f3f4f6;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="count">{{if .Count}}{{.Count}} matching jobs{{else}}No matching jobs{{end}}</div>
      <div class="meta">Generated {{.GeneratedAt}}</div>
    </div>

    {{if .Groups}}
      {{range .Groups}}
      <div class="section">
        <div class="section-title">{{.Source}}</div>
        <table class="jobs">
          {{range .Jobs}}
          <tr>
            <td class="idx">{{.Index}}</td>
            <td>
              {{if .Link}}<a href="{{.Link}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}
              <div class="where">{{.Company}}</div>
            </td>
            <td class="where">{{.Location}}</td>
          </tr>
          {{end}}
        </table>
      </div>
      {{end}}
    {{else}}
      <div class="empty">
        Nothing matched the configured keywords, experience band and locations
        in this run.
      </div>
    {{end}}

    <div class="footer">Sent by jobdigest.</div>
  </div>
</body>
</html>
`
