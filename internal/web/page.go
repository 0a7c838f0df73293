// Package web provides the embedded page shell for the explorer UI.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/datawalker/backend/internal/models"
)

//go:embed templates/page.html
var templates embed.FS

var pageTmpl = template.Must(template.ParseFS(templates, "templates/page.html"))

// PageData feeds the page shell template.
type PageData struct {
	FileName    string
	Rows        string
	Columns     int
	ColumnNames string
	Artifact    template.HTML
}

// RenderPage wraps the artifact in the page shell for the given
// dataset metadata.
func RenderPage(info *models.FileInfo, artifact string) (string, error) {
	data := PageData{
		FileName:    info.Name,
		Rows:        FormatCount(info.Rows),
		Columns:     info.Columns,
		ColumnNames: strings.Join(info.ColumnNames, ", "),
		Artifact:    template.HTML(artifact),
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return buf.String(), nil
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
