package suggestion

import "strconv"

// clockMention is one explicit "10h" / "14h30" occurrence in the request.
type clockMention struct {
	hour   int
	minute int
}

func (c clockMention) start() string {
	return clockOf(c.hour*60 + c.minute)
}

// extractClockMentions scans folded text for literal clock mentions, in
// order of appearance. Hours above 23 are ignored.
func extractClockMentions(text string) []clockMention {
	var out []clockMention
	for _, m := range clockTimeRE.FindAllStringSubmatch(text, -1) {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour > 23 {
			continue
		}
		minute := 0
		if m[2] != "" {
			minute, err = strconv.Atoi(m[2])
			if err != nil || minute > 59 {
				continue
			}
		}
		out = append(out, clockMention{hour: hour, minute: minute})
	}
	return out
}

// slotsFromClockMentions turns each mentioned time into a one-hour slot,
// paired one-to-one with the candidate dates. When times outnumber dates the
// final date is reused.
func slotsFromClockMentions(mentions []clockMention, dates []string) []TimeSlot {
	if len(mentions) == 0 || len(dates) == 0 {
		return nil
	}
	slots := make([]TimeSlot, 0, len(mentions))
	for i, m := range mentions {
		date := dates[len(dates)-1]
		if i < len(dates) {
			date = dates[i]
		}
		start := m.hour*60 + m.minute
		slots = append(slots, TimeSlot{
			Start: clockOf(start),
			End:   clockOf(start + 60),
			Dates: []string{date},
		})
	}
	return slots
}
