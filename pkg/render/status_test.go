package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestStatusLineOverwrites(t *testing.T) {
	s := NewStatusLine("copiedText")
	if s.ID() != "copiedText" {
		t.Errorf("id: got %q", s.ID())
	}
	if s.Text() != "" {
		t.Errorf("new status line should be empty, got %q", s.Text())
	}

	s.SetStatusText("Teks berhasil disalin: npm start")
	s.SetStatusText("Teks berhasil disalin: npm start")
	if s.Text() != "Teks berhasil disalin: npm start" {
		t.Errorf("text: got %q", s.Text())
	}
}

func TestLineDisplayWritesLine(t *testing.T) {
	var buf bytes.Buffer
	d := NewLineDisplay(&buf)

	d.SetStatusText("Link berhasil disalin: " + repoURL)

	out := ansi.Strip(buf.String())
	if out != "Link berhasil disalin: "+repoURL+"\n" {
		t.Errorf("unexpected output: %q", out)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("expected exactly one line, got %q", buf.String())
	}
}
