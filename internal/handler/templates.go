package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"time"

	"github.com/itchan-dev/bbs/internal/domain"
	"github.com/itchan-dev/bbs/internal/markdown"
)

const (
	baseTemplate     = "base.html"
	partialsTemplate = "partials.html"
	tmplPath         = "templates"
	displayLayout    = "2006-01-02 15:04:05"
)

//go:embed templates/*.html
var TemplatesFS embed.FS

//go:embed static
var StaticFS embed.FS

// CommentView numbers a comment within its thread, starting at 1.
type CommentView struct {
	Number  int
	Comment *domain.Comment
}

func commentView(i int, c *domain.Comment) CommentView {
	return CommentView{Number: i + 1, Comment: c}
}

func formatTime(t time.Time) string {
	return t.Format(displayLayout)
}

func rfc3339(t time.Time) string {
	return t.Format(time.RFC3339)
}

// LoadTemplates parses every page in fsys/templates together with the base
// layout and partials, keyed by page file name.
func LoadTemplates(fsys fs.FS, textProcessor *markdown.TextProcessor) (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"formatTime":  formatTime,
		"rfc3339":     rfc3339,
		"markdown":    textProcessor.Render,
		"commentView": commentView,
	}

	files, err := fs.ReadDir(fsys, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, f := range files {
		name := f.Name()
		if path.Ext(name) != ".html" || name == baseTemplate || name == partialsTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).Funcs(funcs).ParseFS(fsys,
			path.Join(tmplPath, baseTemplate),
			path.Join(tmplPath, name),
			path.Join(tmplPath, partialsTemplate),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}
