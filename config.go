package jalali

import (
	"html/template"
	"io"
	"log/slog"
	"maps"

	"golang.org/x/text/language"
)

// Config captures renderer setup.
type Config struct {
	SectionNames []string
	Locale       language.Tag
	Funcs        template.FuncMap
	Logger       *slog.Logger
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.SectionNames = normalizeNames(cfg.SectionNames)
	if len(cfg.SectionNames) == 0 {
		cfg.SectionNames = append([]string(nil), DefaultSectionNames...)
	}

	if cfg.Locale == language.Und {
		cfg.Locale = language.MustParse(DefaultLocale)
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg, nil
}

// WithSectionNames sets the sections localized before rendering, replacing
// DefaultSectionNames.
func WithSectionNames(names ...string) Option {
	return func(c *Config) error {
		c.SectionNames = append(c.SectionNames, names...)
		return nil
	}
}

// WithLocale sets the page locale exposed through the html_lang helper.
func WithLocale(locale string) Option {
	return func(c *Config) error {
		tag, err := parseLocale(locale)
		if err != nil {
			return err
		}
		c.Locale = tag
		return nil
	}
}

// WithFuncs adds template functions. Names that collide with the built-in
// helpers replace them.
func WithFuncs(funcs template.FuncMap) Option {
	return func(c *Config) error {
		if len(funcs) == 0 {
			return nil
		}
		if c.Funcs == nil {
			c.Funcs = make(template.FuncMap, len(funcs))
		}
		maps.Copy(c.Funcs, funcs)
		return nil
	}
}

// WithLogger sets the logger used for debug records while rendering.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// HelperConfig derives the template helper configuration.
func (cfg *Config) HelperConfig() HelperConfig {
	if cfg == nil {
		return HelperConfig{}
	}
	return HelperConfig{Locale: cfg.Locale}
}
