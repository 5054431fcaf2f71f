package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	jalali "github.com/goliatone/go-jalali"
)

type renderConfig struct {
	template    string
	out         string
	locale      string
	relativeURL string
	debug       bool
	sections    map[string]string
}

// sectionFlag collects repeated -section name=path values.
type sectionFlag struct {
	items map[string]string
	order []string
}

func (f *sectionFlag) String() string {
	parts := make([]string, 0, len(f.order))
	for _, name := range f.order {
		parts = append(parts, name+"="+f.items[name])
	}
	return strings.Join(parts, ",")
}

func (f *sectionFlag) Set(value string) error {
	name, path, ok := strings.Cut(value, "=")
	name = strings.TrimSpace(name)
	path = strings.TrimSpace(path)
	if !ok || name == "" || path == "" {
		return fmt.Errorf("invalid section %q (expected name=path)", value)
	}
	if f.items == nil {
		f.items = make(map[string]string)
	}
	if _, exists := f.items[name]; !exists {
		f.order = append(f.order, name)
	}
	f.items[name] = path
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		reportError(err)
	}

	logger := newLogger(os.Stderr, cfg.debug)

	if err := run(cfg, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "jalali-render: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (renderConfig, error) {
	var cfg renderConfig
	var sections sectionFlag

	fs := flag.NewFlagSet("jalali-render", flag.ContinueOnError)
	fs.StringVar(&cfg.template, "template", "", "path to the page template")
	fs.StringVar(&cfg.out, "out", "", "output file (defaults to stdout)")
	fs.StringVar(&cfg.locale, "locale", jalali.DefaultLocale, "page locale")
	fs.StringVar(&cfg.relativeURL, "url", "", "relative page URL, used to build breadCrumb")
	fs.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	fs.Var(&sections, "section", "data section as name=path.json|yaml. Repeat flag to add more.")

	if err := fs.Parse(args); err != nil {
		return renderConfig{}, err
	}

	if cfg.template == "" {
		return renderConfig{}, errors.New("-template is required")
	}
	cfg.sections = sections.items

	return cfg, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	}))
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// pageLoader reads the configured section files and adds the breadCrumb
// derived from the page URL.
func pageLoader(cfg renderConfig) jalali.Loader {
	return jalali.LoaderFunc(func() (jalali.Sections, error) {
		sections := jalali.Sections{}
		if len(cfg.sections) > 0 {
			files := jalali.NewFileLoader()
			for name, path := range cfg.sections {
				files.WithSection(name, path)
			}
			loaded, err := files.Load()
			if err != nil {
				return nil, err
			}
			sections = loaded
		}
		sections[jalali.SectionBreadCrumb] = jalali.BreadCrumb(cfg.relativeURL)
		return sections, nil
	})
}

func run(cfg renderConfig, logger *slog.Logger) error {
	body, err := os.ReadFile(cfg.template)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	renderer, err := jalali.NewRenderer(
		filepath.Base(cfg.template),
		string(body),
		jalali.WithLocale(cfg.locale),
		jalali.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := renderer.RenderFrom(&buf, pageLoader(cfg)); err != nil {
		return err
	}

	if cfg.out == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(cfg.out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("page rendered", "template", renderer.Name(), "out", cfg.out, "bytes", buf.Len())
	return nil
}
