package sdg_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sermonguides/tools/sdg"
)

func TestRenderHTML(t *testing.T) {
	published := time.Date(2025, time.September, 14, 0, 0, 0, 0, time.Local)
	doc, err := sdg.RenderHTML("# Scripture\n\nRead *John 1* together.", "Kings Church", published)
	if err != nil {
		t.Fatalf("RenderHTML: unexpected error: %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<strong>Kings Church</strong>",
		"September 14, 2025",
		"<h1>Scripture</h1>",
		"<em>John 1</em>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("RenderHTML output does not contain %q", want)
		}
	}
}

func TestRenderHTMLEscapesHeading(t *testing.T) {
	doc, err := sdg.RenderHTML("body", `Kings <Church> & Co.`, time.Now())
	if err != nil {
		t.Fatalf("RenderHTML: unexpected error: %v", err)
	}
	if strings.Contains(doc, "<Church>") {
		t.Error("heading was not escaped")
	}
	if !strings.Contains(doc, "Kings &lt;Church&gt; &amp; Co.") {
		t.Errorf("escaped heading not found in:\n%s", doc)
	}
}

func TestWritePDFMissingBinary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "guide.pdf")
	err := sdg.WritePDF(context.Background(), filepath.Join(t.TempDir(), "no-such-binary"), "<html></html>", out)
	if err == nil {
		t.Error("WritePDF with a missing binary: got nil error")
	}
	if _, serr := os.Stat(out); serr == nil {
		t.Error("WritePDF left an output file behind after failing")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	if err := sdg.WriteFileAtomic(path, []byte("first version")); err != nil {
		t.Fatalf("WriteFileAtomic: unexpected error: %v", err)
	}
	if err := sdg.WriteFileAtomic(path, []byte("second version")); err != nil {
		t.Fatalf("WriteFileAtomic (replace): unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if got := string(data); got != "second version" {
		t.Errorf("file content: got %q, want the replacement", got)
	}
}
