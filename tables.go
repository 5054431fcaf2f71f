package jalali

// monthNames holds the Solar Hijri month names, index 0 is Farvardin.
var monthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// ordinals holds the day-of-month ordinal words, index 0 is day 1.
var ordinals = [31]string{
	"یکم", "دوم", "سوم", "چهارم", "پنجم", "ششم", "هفتم", "هشتم", "نهم", "دهم",
	"یازدهم", "دوازدهم", "سیزدهم", "چهاردهم", "پانزدهم", "شانزدهم", "هفدهم",
	"هجدهم", "نوزدهم", "بیستم", "بیست و یکم", "بیست و دوم", "بیست و سوم",
	"بیست و چهارم", "بیست و پنجم", "بیست و ششم", "بیست و هفتم", "بیست و هشتم",
	"بیست و نهم", "سی‌ام", "سی و یکم",
}

// monthWord is inserted between the month name and the year in long dates.
const monthWord = "ماه"

// MonthName returns the name of month m (1-12). It panics when m is out of range.
func MonthName(m int) string {
	return monthNames[m-1]
}

// Ordinal returns the ordinal word for day d (1-31). It panics when d is out of range.
func Ordinal(d int) string {
	return ordinals[d-1]
}

// MonthNames returns a copy of the month name table.
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames[:])
	return out
}

// Ordinals returns a copy of the ordinal name table.
func Ordinals() []string {
	out := make([]string, len(ordinals))
	copy(out, ordinals[:])
	return out
}
