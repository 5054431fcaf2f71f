package jalali

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileLoaderJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	websitePath := filepath.Join(dir, "website.json")
	writeFile(t, websitePath, `{
  "theme": "minimal",
  "launchDate": {"year": 1398, "month": 1, "day": 1}
}`)

	nodePath := filepath.Join(dir, "item.yaml")
	writeFile(t, nodePath, `
title: First post
publishDate:
  year: 1402
  month: 7
  day: 9
author:
  name: X
  birthDate: {year: 1370, month: 1, day: 1}
`)

	loader := NewFileLoader().
		WithSection(SectionWebsite, websitePath).
		WithSection(SectionNode, nodePath)

	sections, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if names := loader.Names(); len(names) != 2 || names[0] != SectionNode || names[1] != SectionWebsite {
		t.Fatalf("Names() = %v", names)
	}

	LocateSections(sections)

	website := sections[SectionWebsite].(map[string]any)
	if website["theme"] != "minimal" {
		t.Fatalf("theme = %#v", website["theme"])
	}
	if got := website["launchDate"]; got != New(1398, 1, 1) {
		t.Fatalf("launchDate = %#v", got)
	}

	node := sections[SectionNode].(map[string]any)
	if got := node["publishDate"]; got != New(1402, 7, 9) {
		t.Fatalf("publishDate = %#v", got)
	}
	if got := node["author"].(map[string]any)["birthDate"]; got != New(1370, 1, 1) {
		t.Fatalf("author.birthDate = %#v", got)
	}
}

func TestDecodeSectionErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    string
		wantErr error
	}{
		{"unsupported extension", "specs.toml", "a = 1", ErrUnsupportedFormat},
		{"json array root", "specs.json", "[1, 2]", ErrInvalidSection},
		{"yaml scalar root", "specs.yaml", "just text", ErrInvalidSection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSection(tt.path, []byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecodeSection error = %v; want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := DecodeSection("broken.json", []byte("{")); err == nil {
		t.Fatal("expected json syntax error")
	}
	if _, err := DecodeSection("broken.yml", []byte("a: [")); err == nil {
		t.Fatal("expected yaml syntax error")
	}
}

func TestFileLoaderErrors(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error for loader without sections")
	}

	missing := NewFileLoader().WithSection(SectionNode, filepath.Join(t.TempDir(), "missing.json"))
	if _, err := missing.Load(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoaderFunc(t *testing.T) {
	var loader Loader = LoaderFunc(func() (Sections, error) {
		return Sections{SectionNode: map[string]any{}}, nil
	})

	sections, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := sections[SectionNode]; !ok {
		t.Fatal("expected node section")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDecodeSectionYAMLNonStringKeys(t *testing.T) {
	data := `
archive:
  1399:
    publishDate: {year: 1399, month: 12, day: 29}
  true:
    posts:
      - {1: one}
`
	root, err := DecodeSection("archive.yaml", []byte(data))
	if err != nil {
		t.Fatalf("DecodeSection: %v", err)
	}

	archive, ok := root["archive"].(map[string]any)
	if !ok {
		t.Fatalf("archive = %T; want map[string]any", root["archive"])
	}
	posts := archive["true"].(map[string]any)["posts"].([]any)
	if _, ok := posts[0].(map[string]any); !ok {
		t.Fatalf("mapping inside sequence = %T; want map[string]any", posts[0])
	}

	Locate(root)

	year, ok := archive["1399"].(map[string]any)
	if !ok {
		t.Fatalf("archive[1399] = %T", archive["1399"])
	}
	if got := year["publishDate"]; got != New(1399, 12, 29) {
		t.Fatalf("publishDate = %#v", got)
	}
}
