package jalali

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader retrieves the data sections handed to a page template.
type Loader interface {
	Load() (Sections, error)
}

// LoaderFunc adapts a bare function to the Loader interface.
type LoaderFunc func() (Sections, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (Sections, error) {
	return fn()
}

// FileLoader reads one JSON or YAML file per section.
type FileLoader struct {
	paths map[string]string
}

func NewFileLoader() *FileLoader {
	return &FileLoader{paths: make(map[string]string)}
}

// WithSection registers the file backing section name.
func (l *FileLoader) WithSection(name, path string) *FileLoader {
	if l == nil || name == "" || path == "" {
		return l
	}
	if l.paths == nil {
		l.paths = make(map[string]string)
	}
	l.paths[name] = path
	return l
}

// Names returns the registered section names, sorted.
func (l *FileLoader) Names() []string {
	if l == nil || len(l.paths) == 0 {
		return nil
	}
	names := make([]string, 0, len(l.paths))
	for name := range l.paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *FileLoader) Load() (Sections, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("jalali: no section files configured")
	}

	sections := make(Sections, len(l.paths))
	for _, name := range l.Names() {
		path := l.paths[name]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("jalali: read %s: %w", path, err)
		}

		section, err := DecodeSection(path, data)
		if err != nil {
			return nil, fmt.Errorf("jalali: decode %s: %w", path, err)
		}
		sections[name] = section
	}
	return sections, nil
}

// DecodeSection parses data as JSON or YAML depending on the extension of
// path. The document root must be a mapping.
func DecodeSection(path string, data []byte) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeSectionJSON(data)
	case ".yaml", ".yml":
		return decodeSectionYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func decodeSectionJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidSection, raw)
	}
	return root, nil
}

func decodeSectionYAML(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	root, ok := stringKeys(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidSection, raw)
	}
	return root, nil
}

// stringKeys rewrites the map[any]any values yaml.v3 produces for mappings
// with non-string keys (e.g. "1399:") into map[string]any, recursively.
func stringKeys(value any) any {
	switch v := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = stringKeys(item)
		}
		return out
	case map[string]any:
		for key, item := range v {
			v[key] = stringKeys(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = stringKeys(item)
		}
		return v
	default:
		return value
	}
}
