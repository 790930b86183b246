package page

import (
	"strings"
	"testing"

	"github.com/gopartner/salin/pkg/copyhelper"
)

func TestMarkdownContainsTexts(t *testing.T) {
	md := Markdown(copyhelper.CommandAction(), copyhelper.LinkAction())
	if !strings.HasPrefix(md, "# "+Title) {
		t.Errorf("missing title: %q", md)
	}
	if !strings.Contains(md, "```sh\nnpm start\n```") {
		t.Errorf("missing command block: %q", md)
	}
	if !strings.Contains(md, copyhelper.LinkText) {
		t.Errorf("missing link: %q", md)
	}
}

func TestExportHTML(t *testing.T) {
	html, err := ExportHTML(copyhelper.CommandAction(), copyhelper.LinkAction(), copyhelper.StatusID)
	if err != nil {
		t.Fatalf("ExportHTML: %v", err)
	}
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(html, `<h1>`+Title+`</h1>`) {
		t.Error("markdown heading not converted")
	}
	if !strings.Contains(html, `<p id="copiedText"></p>`) {
		t.Error("missing status element")
	}
	if !strings.Contains(html, `<code class="language-sh">npm start`) {
		t.Error("missing command code block")
	}
	if !strings.Contains(html, `"Teks berhasil disalin: "`) {
		t.Error("copied prefix should be emitted as a JS string")
	}
}

func TestExportHTMLEscapesTexts(t *testing.T) {
	cmd := copyhelper.CommandAction()
	cmd.Text = `echo "</script><b>x</b>"`
	html, err := ExportHTML(cmd, copyhelper.LinkAction(), copyhelper.StatusID)
	if err != nil {
		t.Fatalf("ExportHTML: %v", err)
	}
	script := html[strings.Index(html, "<script>"):]
	if strings.Count(script, "</script>") != 1 {
		t.Errorf("command text broke out of the script element:\n%s", script)
	}
}
