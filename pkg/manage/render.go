package manage

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/tstromberg/tagpix/pkg/tagpix"
)

//go:embed assets/index.tmpl
var indexTmpl string

//go:embed assets/style.css
var styleText string

func renderIndex(s *tagpix.Session, f *flash) ([]byte, error) {
	tmpl, err := template.New("index").Funcs(tmplFunctions()).Parse(indexTmpl)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	cur, ok := s.Current()
	data := struct {
		Loaded  bool
		Current string
		Dir     string
		Index   int
		Len     int
		Text    string
		Tags    []string
		Presets []string
		Flash   *flash
	}{
		Loaded:  ok,
		Current: cur,
		Dir:     s.Dir(),
		Index:   s.Index(),
		Len:     s.Len(),
		Text:    s.Text(),
		Tags:    s.Tags(),
		Presets: s.Config().Presets,
		Flash:   f,
	}

	var tpl bytes.Buffer
	if err = tmpl.Execute(&tpl, data); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}

	return tpl.Bytes(), nil
}

// tmplFunctions are functions available to our templates.
func tmplFunctions() template.FuncMap {
	return template.FuncMap{
		"Inc": func(i int) int {
			return i + 1
		},
		"BasePath": filepath.Base,
	}
}
