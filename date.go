package jalali

import (
	"strconv"
	"strings"
)

// Date is a Solar Hijri calendar date. The fields are taken as given; no
// calendar conversion or range validation is performed.
type Date struct {
	Year  int
	Month int
	Day   int
}

// New builds a Date from calendar components.
func New(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ShortForm renders the date as year/month/day in Persian digits, without padding.
func (d Date) ShortForm() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(d.Year))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(d.Month))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(d.Day))
	return ToFarsiDigits(b.String())
}

// LongForm renders the date in words, e.g. "نهم مهر ماه ۱۴۰۲".
// It panics when Month or Day fall outside the lookup tables.
func (d Date) LongForm() string {
	return Ordinal(d.Day) + " " + MonthName(d.Month) + " " + monthWord + " " + ToFarsiDigits(strconv.Itoa(d.Year))
}

// Compare returns -1 if d precedes other, 1 if it follows and 0 when both
// dates have the same year, month and day.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year > other.Year:
		return 1
	case d.Year < other.Year:
		return -1
	case d.Month > other.Month:
		return 1
	case d.Month < other.Month:
		return -1
	case d.Day > other.Day:
		return 1
	case d.Day < other.Day:
		return -1
	}
	return 0
}

// Equal reports whether d and other name the same day.
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d follows other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// IsZero reports whether every component is zero, which is what a
// date-keyed mapping without year/month/day fields produces.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String implements fmt.Stringer using the short form.
func (d Date) String() string {
	return d.ShortForm()
}
