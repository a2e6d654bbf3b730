package sdg

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os/exec"
	"strings"
	"time"

	"github.com/creachadair/atomicfile"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

var guideMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(ghtml.WithHardWraps()),
)

// guideShell wraps the rendered guide body in a complete letter-format
// document with the header table the printed guides carry.
const guideShell = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Small Group Discussion Guide</title>
    <style>
        @page {
            size: letter;
            margin: 1in;
        }
        body {
            font-family: Arial, sans-serif;
            font-size: 11pt;
            line-height: 1.6;
            color: #333;
        }
        h1 { font-size: 20pt; margin: 0.5em 0 0.3em; color: #1a1a1a; }
        h2 { font-size: 16pt; margin: 0.8em 0 0.3em; color: #2a2a2a; }
        h3 { font-size: 13pt; margin: 0.6em 0 0.2em; color: #3a3a3a; }
        p { margin: 0.3em 0 0.5em; }
        ul, ol { margin: 0.3em 0 0.5em; padding-left: 1.5em; }
        li { margin-bottom: 0.3em; }
        hr { border: none; border-top: 1px solid #ccc; margin: 1em 0; }
        blockquote {
            border-left: 3px solid #ccc;
            padding-left: 1em;
            margin-left: 0;
            font-style: italic;
            color: #555;
        }
    </style>
</head>
<body>
    <table style="width: 100%; margin-bottom: 20px; border-collapse: collapse;">
        <tr>
            <td style="width: 50%; vertical-align: top; padding: 0;">
                <strong>{{.Heading}}</strong>
            </td>
            <td style="width: 50%; vertical-align: top; text-align: right; padding: 0;">
                <em style="white-space: nowrap;">{{.Date}}</em>
            </td>
        </tr>
    </table>
    <hr>
    {{.Body}}
</body>
</html>
`

var guideTemplate = template.Must(template.New("guide").Parse(guideShell))

// RenderHTML converts the guide markdown into a complete styled HTML
// document carrying the organization heading and the guide date.
func RenderHTML(markdown, heading string, published time.Time) (string, error) {
	var body bytes.Buffer
	if err := guideMarkdown.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	var doc bytes.Buffer
	err := guideTemplate.Execute(&doc, struct {
		Heading string
		Date    string
		Body    template.HTML
	}{
		Heading: heading,
		Date:    published.Format("January 2, 2006"),
		Body:    template.HTML(body.String()),
	})
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}

// WritePDF renders htmlDoc to a PDF at path using the external wkhtmltopdf
// binary. An empty binPath looks up wkhtmltopdf on PATH.
func WritePDF(ctx context.Context, binPath, htmlDoc, path string) error {
	if binPath == "" {
		binPath = "wkhtmltopdf"
	}
	bin, err := exec.LookPath(binPath)
	if err != nil {
		return fmt.Errorf("wkhtmltopdf not found: %w", err)
	}
	cmd := exec.CommandContext(ctx, bin,
		"--page-size", "Letter",
		"--margin-top", "1in",
		"--margin-right", "1in",
		"--margin-bottom", "1in",
		"--margin-left", "1in",
		"--encoding", "UTF-8",
		"--enable-local-file-access",
		"-", path)
	cmd.Stdin = strings.NewReader(htmlDoc)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wkhtmltopdf: %v: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}

// WriteFileAtomic writes data to path, replacing any existing file only if
// the whole write succeeds.
func WriteFileAtomic(path string, data []byte) error {
	f, err := atomicfile.New(path, 0644)
	if err != nil {
		return err
	}
	defer f.Cancel()
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Close()
}
