package suggestion

import "time"

// The contextual slot generator is the fallback used when the AI provider
// under-supplied time slots: an ordered table mapping activity contexts to
// concrete slot templates over the surviving dates. A context with no usable
// template returns nothing, which sends the orchestrator to the generic
// three-slot default.

func makeSlot(date string, startMin, durationMin int) TimeSlot {
	return TimeSlot{
		Start: clockOf(startMin),
		End:   clockOf(startMin + durationMin),
		Dates: []string{date},
	}
}

// datesOnWeekday filters dates to the given weekday, keeping order.
func datesOnWeekday(dates []string, wd time.Weekday) []string {
	var out []string
	for _, d := range dates {
		if t, ok := parseISODate(d); ok && t.Weekday() == wd {
			out = append(out, d)
		}
	}
	return out
}

// contextualSlots generates fallback slot candidates for the detected
// context over the given dates. Returns nil when no template applies.
func contextualSlots(tag contextTag, dates []string, text string) []TimeSlot {
	if len(dates) == 0 {
		return nil
	}
	first := dates[0]

	switch tag {
	case ctxStandup, ctxExpress:
		// Three short morning slots on the first date.
		return []TimeSlot{
			makeSlot(first, 8*60, 30),
			makeSlot(first, 8*60+30, 30),
			makeSlot(first, 9*60, 30),
		}

	case ctxVideoCall:
		// Video calls live in the evening window; two back-to-back slots.
		slots := []TimeSlot{makeSlot(first, 18*60, 60)}
		second := first
		if len(dates) > 1 {
			second = dates[1]
		}
		slots = append(slots, makeSlot(second, 19*60, 60))
		return slots

	case ctxParentTeacher:
		// Two 90-minute evening slots on up to two dates.
		slots := []TimeSlot{makeSlot(first, 18*60+30, 90)}
		if len(dates) > 1 {
			slots = append(slots, makeSlot(dates[1], 18*60+30, 90))
		}
		return slots

	case ctxFestival:
		// One morning slot on the first Saturday found.
		if sats := datesOnWeekday(dates, time.Saturday); len(sats) > 0 {
			return []TimeSlot{makeSlot(sats[0], 10*60, 60)}
		}
		return nil

	case ctxHomework:
		// Wednesday 17:00 and/or Friday 18:00, when those weekdays are present.
		var slots []TimeSlot
		if weds := datesOnWeekday(dates, time.Wednesday); len(weds) > 0 {
			slots = append(slots, makeSlot(weds[0], 17*60, 60))
		}
		if fris := datesOnWeekday(dates, time.Friday); len(fris) > 0 {
			slots = append(slots, makeSlot(fris[0], 18*60, 60))
		}
		return slots

	case ctxChoir:
		// Saturday morning and Sunday afternoon rehearsals, two hours each.
		var slots []TimeSlot
		if sats := datesOnWeekday(dates, time.Saturday); len(sats) > 0 {
			slots = append(slots, makeSlot(sats[0], 10*60, 120))
		}
		if suns := datesOnWeekday(dates, time.Sunday); len(suns) > 0 {
			slots = append(slots, makeSlot(suns[0], 15*60, 120))
		}
		return slots

	case ctxPhoto:
		// Up to three Sunday-morning sessions of three hours.
		var slots []TimeSlot
		for _, d := range datesOnWeekday(dates, time.Sunday) {
			slots = append(slots, makeSlot(d, 9*60, 180))
			if len(slots) == 3 {
				break
			}
		}
		return slots

	case ctxBrunch:
		// Two 90-minute late-morning slots.
		slots := []TimeSlot{makeSlot(first, 11*60+30, 90)}
		if len(dates) > 1 {
			slots = append(slots, makeSlot(dates[1], 11*60+30, 90))
		}
		return slots

	case ctxPartnership:
		// Partnership lunches always propose exactly three sittings on a
		// single date, even when the request names a specific day.
		return []TimeSlot{
			makeSlot(first, 11*60+30, 60),
			makeSlot(first, 12*60, 60),
			makeSlot(first, 12*60+30, 60),
		}

	case ctxLunch:
		if hasSpecificDay(text) || len(dates) == 1 {
			return []TimeSlot{makeSlot(first, 12*60+30, 60)}
		}
		var slots []TimeSlot
		for _, d := range dates {
			slots = append(slots, makeSlot(d, 12*60+30, 60))
			if len(slots) == 3 {
				break
			}
		}
		return slots

	case ctxEvening:
		return daypartSlots(dates, 18*60)
	case ctxAfternoon:
		return daypartSlots(dates, 14*60)
	case ctxMorning:
		return daypartSlots(dates, 9*60)
	}

	return nil
}

// daypartSlots builds up to three one-hour slots of the same daypart across
// successive dates.
func daypartSlots(dates []string, startMin int) []TimeSlot {
	var slots []TimeSlot
	for _, d := range dates {
		slots = append(slots, makeSlot(d, startMin, 60))
		if len(slots) == 3 {
			break
		}
	}
	return slots
}
