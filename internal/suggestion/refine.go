package suggestion

import (
	"strings"
	"time"
)

// Refine turns a raw AI-produced date/time suggestion into a
// calendar-correct, business-rule-compliant one. It is total and pure:
// every unrecognized input falls through to a safe default, nothing is
// mutated, and identical inputs always produce identical output (the clock
// is injected through opts.Now).
//
// The fixed sequence: pattern shortcuts (weekend across months, every
// weekday of a month), window clamping and the filter pipeline, weekend
// pair enforcement, duration rules over existing slots, contextual and
// explicit-time fallback generation, the generic three-slot default, the
// meal single-slot override, cross-date completion, count limiting, and
// finally the type upgrade.
func Refine(s Suggestion, opts Options) Suggestion {
	if s.Type == TypeForm {
		return s
	}

	text := foldText(opts.UserInput)
	now := opts.now()
	allowed := opts.AllowedDates
	if len(allowed) == 0 && opts.ParsedTemporalInput != nil {
		allowed = opts.ParsedTemporalInput.AllowedDates
	}

	out := Suggestion{Title: s.Title, Type: s.Type}

	// Date resolution: generation shortcuts first, filter pipeline otherwise.
	dates := resolveDates(s.Dates, text, allowed, opts.ParsedTemporalInput, now)
	dates = enforceWeekendPair(dates, text)
	dates = uniqueSortedDates(dates)
	out.Dates = dates

	// Existing slots: enforce slot-date containment, then duration rules.
	slots := retainSlots(s.TimeSlots, dates)
	slots = applyDurationRules(slots, text)

	tag := detectContext(text)
	specificDate := hasSpecificDay(text) || len(dates) == 1

	target, explicit := detectExpectedCount(text, tag)
	if !explicit {
		target = contextualMax(text, tag, specificDate)
	}

	// Fallback generation when the provider under-supplied slots.
	if len(slots) < target {
		candidates := contextualSlots(tag, dates, text)
		if len(candidates) == 0 {
			candidates = slotsFromClockMentions(extractClockMentions(text), dates)
		}
		slots = mergeSlots(slots, candidates)
	}

	// Nothing inferable at all: generic three-slot default over the dates.
	if len(slots) == 0 && len(dates) > 0 {
		slots = []TimeSlot{
			{Start: "09:00", End: "10:00", Dates: append([]string(nil), dates...)},
			{Start: "11:00", End: "12:00", Dates: append([]string(nil), dates...)},
			{Start: "14:00", End: "15:00", Dates: append([]string(nil), dates...)},
		}
	}

	// Generated slots obey the same context rules as provider ones.
	slots = applyDurationRules(slots, text)

	// Meal on a specific date collapses to a single sitting (two when the
	// request hesitates with "ou"). Partnership is exempt: always three.
	if mentionsMeal(text) && specificDate && tag != ctxPartnership {
		keep := 1
		if strings.Contains(text, " ou ") {
			keep = 2
		}
		slots = capSlots(slots, keep)
	}

	if len(dates) > 1 {
		slots = completeMissingDates(slots, dates, text, tag, target)
	}

	if !onePerDaySemantics(text) {
		slots = limitSlots(slots, target)
	}

	sortSlots(slots)
	out.TimeSlots = slots
	if len(slots) > 0 {
		out.Type = TypeDateTime
	} else {
		out.Type = TypeDate
	}
	return out
}

// resolveDates picks the final candidate dates: a generation shortcut when
// the phrasing asks for one, otherwise the clamped and filtered input dates.
func resolveDates(input []string, text string, allowed []string, parsed *ParsedTemporalInput, now time.Time) []string {
	months := monthsMentioned(text)

	// "un week-end en juin ou juillet": generate the weekends of the named
	// months instead of filtering.
	if mentionsWeekend(text) && len(months) >= 2 {
		generated := ClampToWindow(weekendsForMonths(months, now), allowed)
		if len(generated) > 0 {
			return generated
		}
	}

	// "tous les samedis de mars": enumerate the matching dates directly.
	if wd, mo, ok := everyWeekdayOfMonth(text); ok {
		generated := ClampToWindow(weekdayDates(wd, mo, resolveYear(mo, 0, now)), allowed)
		if len(generated) > 0 {
			return generated
		}
	}

	dates := ClampToWindow(input, allowed)
	if len(dates) == 0 && len(allowed) > 0 {
		// Disjoint window: the window itself is the best candidate set.
		dates = append([]string(nil), allowed...)
	}

	if parsed != nil {
		return applyParsedInput(dates, parsed)
	}
	dates = filterByMonths(dates, months)
	if period, _, ok := periodOfMonth(text); ok {
		dates = filterByPeriod(dates, period)
	}
	return dates
}

// retainSlots keeps the input slots whose dates survive in the final date
// list, trimming each slot's date set to that list.
func retainSlots(slots []TimeSlot, dates []string) []TimeSlot {
	if len(slots) == 0 {
		return nil
	}
	keep := make(map[string]bool, len(dates))
	for _, d := range dates {
		keep[d] = true
	}
	var out []TimeSlot
	for _, s := range slots {
		if minutesOf(s.Start) < 0 || minutesOf(s.End) < 0 || minutesOf(s.End) <= minutesOf(s.Start) {
			continue
		}
		var kept []string
		for _, d := range s.Dates {
			if keep[d] {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, TimeSlot{Start: s.Start, End: s.End, Dates: kept})
	}
	return out
}

// mergeSlots appends candidates to existing slots, deduplicating on the
// (start, end, sorted dates) key so the outcome does not depend on which
// generator ran first.
func mergeSlots(existing, candidates []TimeSlot) []TimeSlot {
	seen := make(map[string]bool, len(existing))
	out := make([]TimeSlot, 0, len(existing)+len(candidates))
	for _, s := range existing {
		k := slotKey(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	for _, s := range candidates {
		k := slotKey(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}

// onePerDaySemantics reports phrasing that unambiguously wants one slot on
// every day, which exempts the result from count limiting.
func onePerDaySemantics(text string) bool {
	return strings.Contains(text, "chaque jour") ||
		strings.Contains(text, "par jour") ||
		strings.Contains(text, "tous les jours")
}
