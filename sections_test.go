package jalali

import (
	"reflect"
	"testing"
)

func TestLocateSectionsDefaults(t *testing.T) {
	sections := Sections{
		SectionWebsite: map[string]any{"launchDate": map[string]any{"year": 1398, "month": 1, "day": 1}},
		SectionTheme:   map[string]any{"releaseDate": map[string]any{"year": 1401, "month": 2, "day": 2}},
		SectionNode:    map[string]any{"publishDate": map[string]any{"year": 1402, "month": 7, "day": 9}},
		SectionItems: map[string]any{"children": map[string]any{
			"post": map[string]any{"specs": map[string]any{"date": map[string]any{"year": 1400, "month": 3, "day": 4}}},
		}},
		"other": map[string]any{"skipDate": map[string]any{"year": 1, "month": 1, "day": 1}},
	}

	LocateSections(sections)

	if got := sections[SectionWebsite].(map[string]any)["launchDate"]; got != New(1398, 1, 1) {
		t.Errorf("website launchDate = %#v", got)
	}
	if got := sections[SectionTheme].(map[string]any)["releaseDate"]; got != New(1401, 2, 2) {
		t.Errorf("theme releaseDate = %#v", got)
	}
	if got := sections[SectionNode].(map[string]any)["publishDate"]; got != New(1402, 7, 9) {
		t.Errorf("node publishDate = %#v", got)
	}
	post := sections[SectionItems].(map[string]any)["children"].(map[string]any)["post"].(map[string]any)
	if got := post["specs"].(map[string]any)["date"]; got != New(1400, 3, 4) {
		t.Errorf("item date = %#v", got)
	}
	if _, ok := sections["other"].(map[string]any)["skipDate"].(map[string]any); !ok {
		t.Error("sections outside the configured names must be left alone")
	}
}

func TestLocateSectionsNamed(t *testing.T) {
	sections := Sections{
		"custom":    map[string]any{"someDate": map[string]any{"year": 1400, "month": 1, "day": 1}},
		SectionNode: map[string]any{"publishDate": map[string]any{"year": 1402, "month": 7, "day": 9}},
	}

	LocateSections(sections, "custom", "absent")

	if got := sections["custom"].(map[string]any)["someDate"]; got != New(1400, 1, 1) {
		t.Errorf("custom someDate = %#v", got)
	}
	if _, ok := sections[SectionNode].(map[string]any)["publishDate"].(map[string]any); !ok {
		t.Error("unnamed section must not be localized")
	}

	LocateSections(nil)
}

func TestBreadCrumb(t *testing.T) {
	tests := []struct {
		url  string
		want []string
	}{
		{"", []string{}},
		{"/", []string{}},
		{"blog", []string{"blog"}},
		{"/blog//2023/post/", []string{"blog", "2023", "post"}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := BreadCrumb(tt.url); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("BreadCrumb(%q) = %#v; want %#v", tt.url, got, tt.want)
			}
		})
	}
}
