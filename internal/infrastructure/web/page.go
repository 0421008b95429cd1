package web

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/doeshing/intent-apparatus/assets"
	"github.com/doeshing/intent-apparatus/internal/application/session"
	"github.com/doeshing/intent-apparatus/internal/domain"
)

// renderPage fills the index template. The examples catalogue is written as
// markdown and converted, so the panel and the CLI share one source for
// command documentation.
func renderPage(sess *session.Service) ([]byte, error) {
	tmpl, err := template.ParseFS(assets.WebFS, "web/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	examplesHTML, err := renderExamples(sess.Examples())
	if err != nil {
		return nil, err
	}

	_, _, info := sess.ScreenInfo()
	data := struct {
		ScreenInfo   string
		Backend      string
		ExamplesHTML template.HTML
	}{
		ScreenInfo:   info,
		Backend:      sess.Actuator.Describe(),
		ExamplesHTML: template.HTML(examplesHTML),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render index page: %w", err)
	}
	return buf.Bytes(), nil
}

// renderExamples converts the catalogue to HTML via markdown.
func renderExamples(catalogue map[domain.ActionCategory][]string) (string, error) {
	var md strings.Builder
	for _, category := range domain.Categories() {
		examples := catalogue[category]
		if len(examples) == 0 {
			continue
		}
		fmt.Fprintf(&md, "### %s\n\n", strings.ToUpper(string(category)))
		for _, example := range examples {
			fmt.Fprintf(&md, "- `%s`\n", example)
		}
		md.WriteString("\n")
	}

	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := converter.Convert([]byte(md.String()), &buf); err != nil {
		return "", fmt.Errorf("render examples: %w", err)
	}
	return buf.String(), nil
}
