package jalali

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"maps"
	"strings"
)

// Renderer executes a page template after localizing the date fields of its
// data sections.
type Renderer struct {
	tmpl     *template.Template
	sections []string
	logger   *slog.Logger
}

// NewRenderer parses body as an html/template named name with the date
// helpers available.
func NewRenderer(name, body string, opts ...Option) (*Renderer, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrNoTemplate
	}

	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	funcs := TemplateHelpers(cfg.HelperConfig())
	if len(cfg.Funcs) > 0 {
		maps.Copy(funcs, cfg.Funcs)
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("jalali: parse template %s: %w", name, err)
	}

	return &Renderer{
		tmpl:     tmpl,
		sections: cfg.SectionNames,
		logger:   cfg.Logger,
	}, nil
}

// Render localizes sections in place and executes the template into w.
// Sections must not be shared with concurrent renders.
func (r *Renderer) Render(w io.Writer, sections Sections) error {
	if r == nil || r.tmpl == nil {
		return ErrNoTemplate
	}

	for _, name := range r.sections {
		if _, ok := sections[name]; !ok {
			r.logger.Debug("section missing", "template", r.tmpl.Name(), "section", name)
			continue
		}
		LocateSections(sections, name)
		r.logger.Debug("section localized", "template", r.tmpl.Name(), "section", name)
	}

	if err := r.tmpl.Execute(w, map[string]any(sections)); err != nil {
		return fmt.Errorf("jalali: render %s: %w", r.tmpl.Name(), err)
	}
	return nil
}

// RenderFrom loads sections from loader and renders them into w.
func (r *Renderer) RenderFrom(w io.Writer, loader Loader) error {
	if loader == nil {
		return r.Render(w, nil)
	}
	sections, err := loader.Load()
	if err != nil {
		return fmt.Errorf("jalali: load sections for %s: %w", r.Name(), err)
	}
	return r.Render(w, sections)
}

// Name returns the template name.
func (r *Renderer) Name() string {
	if r == nil || r.tmpl == nil {
		return ""
	}
	return r.tmpl.Name()
}
