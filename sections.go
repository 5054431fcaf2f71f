package jalali

import "strings"

// Section names used by the site renderer.
const (
	SectionWebsite    = "websiteSpecs"
	SectionTheme      = "themeSpecs"
	SectionNode       = "nodeSpecs"
	SectionItems      = "items"
	SectionBreadCrumb = "breadCrumb"
)

// DefaultSectionNames lists the sections whose date fields are localized
// before a page renders. breadCrumb is passed through as is.
var DefaultSectionNames = []string{SectionWebsite, SectionTheme, SectionNode, SectionItems}

// Sections is the data handed to a page template, keyed by section name.
type Sections map[string]any

// LocateSections runs Locate once on each named section present in s.
// With no names, DefaultSectionNames is used.
func LocateSections(s Sections, names ...string) {
	if s == nil {
		return
	}
	if len(names) == 0 {
		names = DefaultSectionNames
	}
	for _, name := range names {
		if section, ok := s[name]; ok {
			Locate(section)
		}
	}
}

// BreadCrumb splits a relative page URL into its non-empty path segments.
func BreadCrumb(relativeURL string) []string {
	parts := strings.Split(relativeURL, "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
