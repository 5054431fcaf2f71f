package jalali

import (
	"fmt"
	"html/template"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	Locale language.Tag
}

// TemplateHelpers exposes the date helpers to html/template. Values may be
// Date, *Date or raw year/month/day mappings that were not localized yet.
func TemplateHelpers(cfg HelperConfig) template.FuncMap {
	locale := cfg.Locale
	if locale == language.Und {
		locale = language.MustParse(DefaultLocale)
	}

	return template.FuncMap{
		"farsi_digits": func(value any) string {
			return ToFarsiDigits(fmt.Sprint(value))
		},
		"short_date": func(value any) (string, error) {
			date, err := templateDate(value)
			if err != nil {
				return "", err
			}
			return date.ShortForm(), nil
		},
		"long_date": func(value any) (string, error) {
			date, err := templateDate(value)
			if err != nil {
				return "", err
			}
			return date.LongForm(), nil
		},
		"compare_dates": func(a, b any) (int, error) {
			left, err := templateDate(a)
			if err != nil {
				return 0, err
			}
			right, err := templateDate(b)
			if err != nil {
				return 0, err
			}
			return left.Compare(right), nil
		},
		"sort_by_date": func(key string, collection any) ([]any, error) {
			return SortByDate(key, collection, false)
		},
		"sort_by_date_desc": func(key string, collection any) ([]any, error) {
			return SortByDate(key, collection, true)
		},
		"html_lang": func() string {
			return baseLanguage(locale)
		},
	}
}

func templateDate(value any) (Date, error) {
	date, ok := DateOf(value)
	if !ok {
		return Date{}, fmt.Errorf("jalali: %T is not a date", value)
	}
	return date, nil
}

// SortByDate returns the entries of collection ordered by the date stored
// under key, a dot separated path such as "specs.publishDate".
//
// collection may be a []any or a map[string]any, whose values are taken in
// key order. Entries without a date under key keep their relative order and
// go last.
func SortByDate(key string, collection any, descending bool) ([]any, error) {
	var entries []any
	switch c := collection.(type) {
	case nil:
		return nil, nil
	case []any:
		entries = append(entries, c...)
	case map[string]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries = make([]any, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, c[k])
		}
	default:
		return nil, fmt.Errorf("jalali: cannot sort %T by date", collection)
	}

	path := strings.Split(key, ".")
	dateAt := func(entry any) (Date, bool) {
		for _, segment := range path {
			m, ok := entry.(map[string]any)
			if !ok {
				return Date{}, false
			}
			entry = m[segment]
		}
		return DateOf(entry)
	}

	slices.SortStableFunc(entries, func(a, b any) int {
		da, okA := dateAt(a)
		db, okB := dateAt(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		if descending {
			return db.Compare(da)
		}
		return da.Compare(db)
	})

	return entries, nil
}
