package suggestion

import "time"

// Date generators enumerate concrete calendar dates from name-based
// constraints. Unknown weekday or month names yield an empty result, never
// an error: downstream treats "nothing generated" as "no constraint".

// WeekdaysInMonth returns every date of the given month matching the given
// French weekday name, ascending. year == 0 picks the current year, rolling
// to the next one when the month has already fully elapsed relative to now.
func WeekdaysInMonth(weekdayName, monthName string, year int, now time.Time) []string {
	wd := weekdayIndex(foldText(weekdayName))
	mo := monthIndex(foldText(monthName))
	if wd < 0 || mo == 0 {
		return nil
	}
	return weekdayDates(wd, mo, resolveYear(mo, year, now))
}

// WeekendsInMonths unions the Saturdays and Sundays of each named month,
// sorted ascending. Months with unknown names are skipped.
func WeekendsInMonths(monthNames []string, year int, now time.Time) []string {
	var dates []string
	for _, name := range monthNames {
		mo := monthIndex(foldText(name))
		if mo == 0 {
			continue
		}
		y := resolveYear(mo, year, now)
		dates = append(dates, weekdayDates(6, mo, y)...)
		dates = append(dates, weekdayDates(0, mo, y)...)
	}
	var weekend []string
	for _, d := range dates {
		if isWeekendDate(d) {
			weekend = append(weekend, d)
		}
	}
	return uniqueSortedDates(weekend)
}

// weekendsForMonths is the numeric-index twin of WeekendsInMonths, used by
// the orchestrator after regex detection already resolved month numbers.
func weekendsForMonths(months []int, now time.Time) []string {
	var dates []string
	for _, mo := range months {
		if mo < 1 || mo > 12 {
			continue
		}
		y := resolveYear(mo, 0, now)
		dates = append(dates, weekdayDates(6, mo, y)...)
		dates = append(dates, weekdayDates(0, mo, y)...)
	}
	return uniqueSortedDates(dates)
}

// resolveYear picks the target year: explicit year wins; otherwise the
// current year, unless the month is strictly in the past, which rolls to
// next year.
func resolveYear(month, year int, now time.Time) int {
	if year > 0 {
		return year
	}
	y := now.Year()
	if month < int(now.Month()) {
		y++
	}
	return y
}

// weekdayDates lists the ISO dates of the month (1-based) in the year whose
// weekday equals wd (0=Sunday .. 6=Saturday), ascending.
func weekdayDates(wd, month, year int) []string {
	var out []string
	d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d.Month() == time.Month(month) {
		if int(d.Weekday()) == wd {
			out = append(out, d.Format(isoDate))
		}
		d = d.AddDate(0, 0, 1)
	}
	return out
}
