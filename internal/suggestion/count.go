package suggestion

import (
	"regexp"
	"strings"
	"time"
)

// Slot count control: how many slots the request actually asks for, and how
// to shrink a surplus without losing spread.

var countWords = map[string]int{
	"un": 1, "une": 1, "deux": 2, "trois": 3, "quatre": 4, "cinq": 5,
}

// explicitCountRE ties a count word to a slot/date noun ("deux créneaux",
// "trois dates", "un après-midi").
var explicitCountRE = regexp.MustCompile(
	`\b(un|une|deux|trois|quatre|cinq)\s+(creneaux?|dates?|soirees?|matins?|matinees?|apres-midis?|apres midis?)\b`)

// detectExpectedCount recognizes an explicit slot/date count in the folded
// text. "un créneau" is ignored in meal and partnership contexts, where the
// business rule wants multiple sittings regardless of phrasing, and when
// several weekdays are named (the request spans days, one slot cannot).
func detectExpectedCount(text string, tag contextTag) (int, bool) {
	m := explicitCountRE.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n := countWords[m[1]]
	if n == 1 && strings.HasPrefix(m[2], "creneau") {
		if tag == ctxPartnership || mentionsMeal(text) || len(weekdaysMentioned(text)) >= 2 {
			return 0, false
		}
	}
	return n, true
}

// contextualMax returns the context-driven slot ceiling used when no
// explicit count was given.
func contextualMax(text string, tag contextTag, specificDate bool) int {
	if mentionsMeal(text) && specificDate && tag != ctxPartnership {
		if strings.Contains(text, " ou ") {
			return 2
		}
		return 1
	}
	switch tag {
	case ctxVideoCall, ctxJogging, ctxCommittee:
		return 2
	case ctxVisit, ctxMeeting, ctxLunch, ctxPartnership:
		return 3
	case ctxFestival, ctxSocial:
		return 5
	}
	return 3
}

// limitSlots trims a surplus down to target. When several dates are
// represented and they fit the target it keeps one slot per distinct date;
// otherwise it falls back to evenly spaced sampling over the original list,
// preserving spread instead of truncating one end.
func limitSlots(slots []TimeSlot, target int) []TimeSlot {
	if target <= 0 || len(slots) <= target {
		return slots
	}

	distinct := make(map[string]bool)
	for _, s := range slots {
		if len(s.Dates) > 0 {
			distinct[s.Dates[0]] = true
		}
	}
	if len(distinct) > 1 && len(distinct) <= target {
		var perDate []TimeSlot
		seen := make(map[string]bool)
		for _, s := range slots {
			if len(s.Dates) == 0 || seen[s.Dates[0]] {
				continue
			}
			seen[s.Dates[0]] = true
			perDate = append(perDate, s)
			if len(perDate) == target {
				break
			}
		}
		return perDate
	}

	step := len(slots) / target
	if step < 1 {
		step = 1
	}
	out := make([]TimeSlot, 0, target)
	used := make(map[int]bool)
	for i := 0; i < target; i++ {
		idx := i * step
		if idx >= len(slots) {
			idx = len(slots) - 1
		}
		if used[idx] {
			continue
		}
		used[idx] = true
		out = append(out, slots[idx])
	}
	return out
}

// completeMissingDates synthesizes one slot per date left without any, as
// long as the target count allows it. When the text pairs "soir" and
// "matin", the weekday decides the daypart (Friday evening, weekend
// morning); otherwise the context template or a morning default applies.
func completeMissingDates(slots []TimeSlot, dates []string, text string, tag contextTag, target int) []TimeSlot {
	if len(dates) < 2 {
		return slots
	}
	covered := make(map[string]bool)
	for _, s := range slots {
		for _, d := range s.Dates {
			covered[d] = true
		}
	}
	wantsBothDayparts := strings.Contains(text, "soir") && strings.Contains(text, "matin")
	for _, d := range dates {
		if covered[d] {
			continue
		}
		if target > 0 && len(slots) >= target {
			break
		}
		start := 9 * 60
		if wantsBothDayparts {
			if t, ok := parseISODate(d); ok {
				switch t.Weekday() {
				case time.Friday:
					start = 18 * 60
				case time.Saturday, time.Sunday:
					start = 9 * 60
				default:
					start = 18 * 60
				}
			}
		} else if generated := contextualSlots(tag, []string{d}, text); len(generated) > 0 {
			slots = append(slots, generated[0])
			covered[d] = true
			continue
		}
		slots = append(slots, makeSlot(d, start, 60))
		covered[d] = true
	}
	return slots
}
