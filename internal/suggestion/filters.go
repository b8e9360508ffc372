package suggestion

import "time"

// Date window clamping and the filter pipeline. Every filter fails open:
// when a constraint would empty the list, the unfiltered input is kept, per
// the "absence of a match is not an error" policy.

// ClampToWindow intersects dates with the allowed window, preserving the
// input order. An absent or empty window leaves dates untouched.
func ClampToWindow(dates, allowed []string) []string {
	if len(allowed) == 0 {
		return dates
	}
	window := make(map[string]bool, len(allowed))
	for _, d := range allowed {
		window[d] = true
	}
	var out []string
	for _, d := range dates {
		if window[d] {
			out = append(out, d)
		}
	}
	return out
}

// filterByMonths keeps dates whose month is in the mentioned set. Fails open
// when nothing survives.
func filterByMonths(dates []string, months []int) []string {
	if len(months) == 0 {
		return dates
	}
	want := make(map[int]bool, len(months))
	for _, m := range months {
		want[m] = true
	}
	var out []string
	for _, d := range dates {
		t, ok := parseISODate(d)
		if !ok {
			continue
		}
		if want[int(t.Month())] {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return dates
	}
	return out
}

// filterByPeriod keeps the month half named by "fin <mois>" (day >= 15) or
// "début <mois>" (day <= 15). Fails open when nothing survives.
func filterByPeriod(dates []string, period string) []string {
	if period == "" {
		return dates
	}
	var out []string
	for _, d := range dates {
		t, ok := parseISODate(d)
		if !ok {
			continue
		}
		switch period {
		case "end":
			if t.Day() >= 15 {
				out = append(out, d)
			}
		case "start":
			if t.Day() <= 15 {
				out = append(out, d)
			}
		}
	}
	if len(out) == 0 {
		return dates
	}
	return out
}

// applyParsedInput narrows dates by the structured intent's weekday, month
// and period fields, applied additively (AND). Invalid field values are
// ignored; an empty result fails open.
func applyParsedInput(dates []string, parsed *ParsedTemporalInput) []string {
	if parsed == nil {
		return dates
	}
	wantDay := make(map[int]bool)
	for _, d := range parsed.DaysOfWeek {
		if d >= 0 && d <= 6 {
			wantDay[d] = true
		}
	}
	var out []string
	for _, d := range dates {
		t, ok := parseISODate(d)
		if !ok {
			continue
		}
		if len(wantDay) > 0 && !wantDay[int(t.Weekday())] {
			continue
		}
		if parsed.Month >= 1 && parsed.Month <= 12 && int(t.Month()) != parsed.Month {
			continue
		}
		switch parsed.Period {
		case "end":
			if t.Day() < 15 {
				continue
			}
		case "start":
			if t.Day() > 15 {
				continue
			}
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return dates
	}
	return out
}

// enforceWeekendPair reduces a weekend-flavored list of more than two dates
// to its first Saturday and first Sunday. Without a full pair the list is
// left untouched.
func enforceWeekendPair(dates []string, text string) []string {
	if len(dates) <= 2 || !mentionsSaturdayOrSunday(text) {
		return dates
	}
	firstSat, firstSun := "", ""
	for _, d := range dates {
		t, ok := parseISODate(d)
		if !ok {
			continue
		}
		if t.Weekday() == time.Saturday && firstSat == "" {
			firstSat = d
		}
		if t.Weekday() == time.Sunday && firstSun == "" {
			firstSun = d
		}
	}
	if firstSat == "" || firstSun == "" {
		return dates
	}
	return uniqueSortedDates([]string{firstSat, firstSun})
}
