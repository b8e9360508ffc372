package suggestion

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Type tags the kind of suggestion the AI provider produced.
type Type string

const (
	// TypeDate proposes calendar dates without specific times.
	TypeDate Type = "date"
	// TypeDateTime proposes calendar dates with specific time slots.
	TypeDateTime Type = "datetime"
	// TypeForm is a questionnaire suggestion; the refinement engine leaves it untouched.
	TypeForm Type = "form"
)

// TimeSlot is a start/end time range proposed for one or more dates.
// A slot whose Dates has several entries is "shared" across those dates.
type TimeSlot struct {
	Start string   `json:"start"` // HH:MM, 24-hour
	End   string   `json:"end"`   // HH:MM, 24-hour, same day, End > Start
	Dates []string `json:"dates"` // ISO dates (YYYY-MM-DD), non-empty
}

// Suggestion is the date/time proposal being refined. Title passes through
// unchanged; Dates and TimeSlots are rewritten by the engine.
type Suggestion struct {
	Title     string     `json:"title"`
	Type      Type       `json:"type"`
	Dates     []string   `json:"dates"`
	TimeSlots []TimeSlot `json:"timeSlots,omitempty"`
}

// ParsedTemporalInput is a richer, already-structured description of the
// user's temporal intent, supplied by callers that ran a dedicated NLP date
// parser. When present it replaces the regex re-derivation of the same facts.
type ParsedTemporalInput struct {
	// DaysOfWeek holds preferred days (0=Sunday .. 6=Saturday).
	DaysOfWeek []int `json:"daysOfWeek,omitempty"`
	// Month is the target month (1=January .. 12), 0 when unconstrained.
	Month int `json:"month,omitempty"`
	// Period narrows to a half of the month: "start" (day <= 15) or "end" (day >= 15).
	Period string `json:"period,omitempty"`
	// MealContext flags a meal-type request (lunch, dinner, brunch).
	MealContext bool `json:"mealContext,omitempty"`
	// AllowedDates optionally restates the booking window.
	AllowedDates []string `json:"allowedDates,omitempty"`
}

// Options carries the request context for a refinement call.
type Options struct {
	// UserInput is the verbatim free-text request the AI provider saw.
	UserInput string `json:"userInput"`
	// AllowedDates is the closed set of dates the output must be a subset of.
	AllowedDates []string `json:"allowedDates,omitempty"`
	// ParsedTemporalInput, when present, is used instead of regex detection
	// for weekday/month/period constraints.
	ParsedTemporalInput *ParsedTemporalInput `json:"parsedTemporalInput,omitempty"`
	// Now pins the engine's clock for year-rollover decisions. Zero means
	// time.Now(); tests pass a fixed instant.
	Now time.Time `json:"-"`
}

const isoDate = "2006-01-02"

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// parseISODate parses YYYY-MM-DD. Malformed values are reported via ok=false
// and treated as absent by every caller.
func parseISODate(s string) (time.Time, bool) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func isWeekendDate(s string) bool {
	t, ok := parseISODate(s)
	if !ok {
		return false
	}
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// minutesOf converts "HH:MM" to minutes since midnight, -1 when malformed.
func minutesOf(hhmm string) int {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return -1
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// clockOf formats minutes since midnight as "HH:MM", clamped to 23:59.
func clockOf(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > 23*60+59 {
		minutes = 23*60 + 59
	}
	h := minutes / 60
	m := minutes % 60
	return pad2(h) + ":" + pad2(m)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// slotKey identifies a slot for deduplication: start, end and the sorted
// date set.
func slotKey(s TimeSlot) string {
	dates := append([]string(nil), s.Dates...)
	sort.Strings(dates)
	return s.Start + "|" + s.End + "|" + strings.Join(dates, ",")
}

// sortSlots orders slots by first date then start time for stable output.
func sortSlots(slots []TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		di, dj := "", ""
		if len(slots[i].Dates) > 0 {
			di = slots[i].Dates[0]
		}
		if len(slots[j].Dates) > 0 {
			dj = slots[j].Dates[0]
		}
		if di != dj {
			return di < dj
		}
		return slots[i].Start < slots[j].Start
	})
}

// uniqueSortedDates dedupes and sorts ISO dates ascending.
func uniqueSortedDates(dates []string) []string {
	seen := make(map[string]bool, len(dates))
	var out []string
	for _, d := range dates {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
