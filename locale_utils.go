package jalali

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is the locale pages are rendered in unless configured otherwise.
const DefaultLocale = "fa-IR"

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func parseLocale(locale string) (language.Tag, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return language.Und, fmt.Errorf("jalali: empty locale")
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, fmt.Errorf("jalali: parse locale %q: %w", locale, err)
	}
	return tag, nil
}

// baseLanguage returns the bare language subtag of tag, e.g. "fa" for fa-IR.
func baseLanguage(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

func normalizeNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := seen[name]; exists {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}
