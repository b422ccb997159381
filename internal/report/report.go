package report

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/BartTuroShart/teller-connect-page/internal/models"
)

// Шаблон админской страницы. html/template экранирует все подставляемые
// значения, поэтому данные из upstream не могут внедрить разметку.
const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Sync Records</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 8px; text-align: left; vertical-align: top; }
th { background: #f4f4f4; }
pre { margin: 0; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>Sync Records</h1>
<p>Total: {{len .Rows}}</p>
<table>
<tr><th>Timestamp</th><th>Access Token (plaintext)</th><th>Accounts</th></tr>
{{range .Rows}}<tr><td>{{.Timestamp}}</td><td>{{.AccessToken}}</td><td><pre>{{.AccountsJSON}}</pre></td></tr>
{{end}}</table>
</body>
</html>
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

type row struct {
	Timestamp    string
	AccessToken  string
	AccountsJSON string
}

type reportData struct {
	Rows []row
}

// Render строит HTML страницу со списком записей синхронизаций: по строке на
// запись: время, токен доступа и дамп счетов в JSON. Если счета одной записи
// не сериализуются, в ее ячейку подставляется заглушка, страница целиком
// не ломается.
func Render(records []models.SyncRecord) (string, error) {
	data := reportData{Rows: make([]row, 0, len(records))}

	for _, record := range records {
		accountsJSON := "(accounts could not be serialized)"
		if dump, err := json.MarshalIndent(record.Accounts, "", "  "); err == nil {
			accountsJSON = string(dump)
		}
		data.Rows = append(data.Rows, row{
			Timestamp:    record.Timestamp,
			AccessToken:  record.AccessToken,
			AccountsJSON: accountsJSON,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
