// Package page builds the salin landing page: a short markdown introduction
// around the two copyable strings, exportable as markdown or HTML.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/gopartner/salin/pkg/copyhelper"
	"github.com/yuin/goldmark"
)

// Title is the page heading.
const Title = "Android SDK Installer for Termux"

// Markdown returns the page body for the given command and link actions.
func Markdown(command, link copyhelper.Action) string {
	var b strings.Builder
	b.WriteString("# " + Title + "\n\n")
	b.WriteString("Salin perintah berikut lalu jalankan di Termux:\n\n")
	b.WriteString("```sh\n" + command.Text + "\n```\n\n")
	b.WriteString("Kode sumber tersedia di repositori GitHub:\n\n")
	b.WriteString(link.Text + "\n")
	return b.String()
}

var htmlPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { max-width: 48em; margin: 2em auto; padding: 0 1em; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; line-height: 1.6; color: #1a1a1a; }
  code { background: #f4f4f4; padding: 0.15em 0.3em; border-radius: 3px; font-size: 0.9em; }
  pre { background: #f4f4f4; padding: 1em; border-radius: 4px; overflow-x: auto; }
  pre code { background: none; padding: 0; }
  button { margin-right: 0.5em; }
  #{{.StatusID}} { color: #2a7a2a; }
</style>
</head>
<body>
{{.Body}}
<p>
<button type="button" onclick="copyCommand()">Salin perintah</button>
<button type="button" onclick="copyLink()">Salin link</button>
</p>
<p id="{{.StatusID}}"></p>
<script>
function salinCopy(text, copied, failed) {
  navigator.clipboard.writeText(text)
    .then(function () { document.getElementById({{.StatusID}}).innerText = copied + text; })
    .catch(function (err) { console.error(failed + err); });
}
function copyCommand() { salinCopy({{.Command.Text}}, {{.Command.CopiedPrefix}}, {{.Command.FailedPrefix}}); }
function copyLink() { salinCopy({{.Link.Text}}, {{.Link.CopiedPrefix}}, {{.Link.FailedPrefix}}); }
</script>
</body>
</html>
`))

// ExportHTML renders the page as a self-contained HTML document with copy
// buttons and a status element identified by statusID.
func ExportHTML(command, link copyhelper.Action, statusID string) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(command, link)), &body); err != nil {
		return "", fmt.Errorf("converting markdown to HTML: %w", err)
	}

	var out bytes.Buffer
	err := htmlPage.Execute(&out, struct {
		Title    string
		Body     template.HTML
		StatusID string
		Command  copyhelper.Action
		Link     copyhelper.Action
	}{
		Title:    Title,
		Body:     template.HTML(body.String()),
		StatusID: statusID,
		Command:  command,
		Link:     link,
	})
	if err != nil {
		return "", fmt.Errorf("rendering HTML page: %w", err)
	}
	return out.String(), nil
}
