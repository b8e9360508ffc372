package suggestion

// The duration rule engine rewrites existing slots from the declarative
// contextLimits table. Rules are applied independently and in a fixed order,
// so contexts compose (a weekend video call is shortened, then filtered).
// No rule ever produces a slot with End <= Start.

// applyDurationRules rewrites slots according to every context whose
// keywords appear in the folded text.
func applyDurationRules(slots []TimeSlot, text string) []TimeSlot {
	if len(slots) == 0 {
		return slots
	}

	if anyKeyword("stand-up", "standup", "express", "rapide")(text) {
		slots = forceDuration(slots, contextLimits[ctxExpress].durationMin)
	}
	if anyKeyword("reunion d'equipe", "equipe pedagogique", "equipe enseignante")(text) {
		slots = stretchDuration(slots, contextLimits[ctxTeamMeeting].minDuration)
	}
	if anyKeyword("visio")(text) {
		limit := contextLimits[ctxVideoCall]
		slots = filterHourWindow(slots, limit.hourMin, limit.hourMax)
		slots = capSlots(slots, limit.maxSlots)
	}
	if mentionsWeekend(text) {
		slots = keepWeekendSlots(slots)
		slots = capSlots(slots, weekendLimit.maxSlots)
	}
	return slots
}

// forceDuration sets every slot's end to start + minutes.
func forceDuration(slots []TimeSlot, minutes int) []TimeSlot {
	if minutes <= 0 {
		return slots
	}
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		start := minutesOf(s.Start)
		if start < 0 {
			continue
		}
		s.End = clockOf(start + minutes)
		if minutesOf(s.End) <= start {
			continue
		}
		out = append(out, s)
	}
	return out
}

// stretchDuration extends slots shorter than minutes; longer slots keep
// their end time.
func stretchDuration(slots []TimeSlot, minutes int) []TimeSlot {
	if minutes <= 0 {
		return slots
	}
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		start := minutesOf(s.Start)
		end := minutesOf(s.End)
		if start < 0 {
			continue
		}
		if end-start < minutes {
			s.End = clockOf(start + minutes)
		}
		if minutesOf(s.End) <= start {
			continue
		}
		out = append(out, s)
	}
	return out
}

// filterHourWindow drops slots starting before hourMin or ending after
// hourMax. An emptied list is valid output: "no compatible time" is a
// legitimate result, not a fault.
func filterHourWindow(slots []TimeSlot, hourMin, hourMax int) []TimeSlot {
	var out []TimeSlot
	for _, s := range slots {
		start := minutesOf(s.Start)
		end := minutesOf(s.End)
		if start < 0 || end < 0 {
			continue
		}
		if hourMin > 0 && start < hourMin*60 {
			continue
		}
		if hourMax > 0 && end > hourMax*60 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// keepWeekendSlots restricts each slot's dates to Saturdays and Sundays,
// dropping slots left without any date.
func keepWeekendSlots(slots []TimeSlot) []TimeSlot {
	var out []TimeSlot
	for _, s := range slots {
		var dates []string
		for _, d := range s.Dates {
			if isWeekendDate(d) {
				dates = append(dates, d)
			}
		}
		if len(dates) == 0 {
			continue
		}
		s.Dates = dates
		out = append(out, s)
	}
	return out
}

func capSlots(slots []TimeSlot, max int) []TimeSlot {
	if max <= 0 || len(slots) <= max {
		return slots
	}
	return slots[:max]
}
