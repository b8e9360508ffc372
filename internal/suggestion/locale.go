package suggestion

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The French calendar vocabulary lives in lookup tables so another locale is
// a new set of table rows, not new branches. All matching happens on folded
// text: lower-cased, diacritics removed via Unicode decomposition.

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText lower-cases the input and strips combining marks, so "Décembre"
// and "decembre" match the same table rows.
func foldText(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// frenchWeekdays maps folded weekday names to time.Weekday numbering
// (0=Sunday .. 6=Saturday).
var frenchWeekdays = map[string]int{
	"dimanche": 0,
	"lundi":    1,
	"mardi":    2,
	"mercredi": 3,
	"jeudi":    4,
	"vendredi": 5,
	"samedi":   6,
}

// frenchMonths maps folded month names to 1-based month numbers.
var frenchMonths = map[string]int{
	"janvier":   1,
	"fevrier":   2,
	"mars":      3,
	"avril":     4,
	"mai":       5,
	"juin":      6,
	"juillet":   7,
	"aout":      8,
	"septembre": 9,
	"octobre":   10,
	"novembre":  11,
	"decembre":  12,
}

var (
	// weekendRE matches week-end phrasing, including the spelled-out pair.
	weekendRE = regexp.MustCompile(`week[\s-]?end|samedi et dimanche`)
	// clockTimeRE matches explicit clock mentions like "10h" or "14h30".
	clockTimeRE = regexp.MustCompile(`\b(\d{1,2})h(\d{2})?\b`)
	// everyWeekdayOfMonthRE matches "tous les samedis de mars" phrasing.
	everyWeekdayOfMonthRE = regexp.MustCompile(`tous les ([a-z]+?)s?\s+(?:de\s+|d'|du\s+)?([a-z]+)`)
	// periodOfMonthRE matches "fin novembre" / "debut novembre" phrasing.
	periodOfMonthRE = regexp.MustCompile(`(fin|debut)\s+(?:de\s+|du\s+|d')?([a-z]+)`)
	// specificDayRE matches "le 15" style explicit day-of-month phrasing.
	specificDayRE = regexp.MustCompile(`\ble (\d{1,2})\b`)
)

// weekdayIndex resolves a folded weekday name (singular or plural) to its
// numeric index, or -1 when unknown.
func weekdayIndex(name string) int {
	name = strings.TrimSpace(name)
	if idx, ok := frenchWeekdays[name]; ok {
		return idx
	}
	if idx, ok := frenchWeekdays[strings.TrimSuffix(name, "s")]; ok {
		return idx
	}
	return -1
}

// monthIndex resolves a folded month name to 1..12, or 0 when unknown.
func monthIndex(name string) int {
	return frenchMonths[strings.TrimSpace(name)]
}

// mentionsWeekend reports whether the folded text asks for a weekend.
func mentionsWeekend(text string) bool {
	return weekendRE.MatchString(text) ||
		(strings.Contains(text, "samedi") && strings.Contains(text, "dimanche"))
}

// mentionsSaturdayOrSunday reports weekend-adjacent phrasing used by the
// weekend coverage rule.
func mentionsSaturdayOrSunday(text string) bool {
	return weekendRE.MatchString(text) ||
		strings.Contains(text, "samedi") ||
		strings.Contains(text, "dimanche")
}

// monthsMentioned returns the 1-based month numbers named in the folded
// text, in order of first appearance.
func monthsMentioned(text string) []int {
	type hit struct {
		pos   int
		month int
	}
	var hits []hit
	for name, num := range frenchMonths {
		if pos := indexWord(text, name); pos >= 0 {
			hits = append(hits, hit{pos: pos, month: num})
		}
	}
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].pos < hits[i].pos {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}
	var months []int
	for _, h := range hits {
		months = append(months, h.month)
	}
	return months
}

// weekdaysMentioned returns the weekday indices named in the folded text.
func weekdaysMentioned(text string) []int {
	var days []int
	for name, num := range frenchWeekdays {
		if indexWord(text, name) >= 0 || indexWord(text, name+"s") >= 0 {
			days = append(days, num)
		}
	}
	return days
}

// indexWord finds a whole-word occurrence of w in text, or -1.
// "mai" must not match inside "maison".
func indexWord(text, w string) int {
	from := 0
	for {
		i := strings.Index(text[from:], w)
		if i < 0 {
			return -1
		}
		i += from
		beforeOK := i == 0 || !isLetter(text[i-1])
		after := i + len(w)
		afterOK := after >= len(text) || !isLetter(text[after])
		if beforeOK && afterOK {
			return i
		}
		from = i + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// everyWeekdayOfMonth detects "tous les <weekday> de <month>" phrasing and
// resolves both names. ok is false when either name is unknown.
func everyWeekdayOfMonth(text string) (weekday, month int, ok bool) {
	m := everyWeekdayOfMonthRE.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	wd := weekdayIndex(m[1])
	mo := monthIndex(m[2])
	if wd < 0 || mo == 0 {
		return 0, 0, false
	}
	return wd, mo, true
}

// periodOfMonth detects "fin <mois>" / "début <mois>" phrasing. period is
// "end" or "start"; month may be 0 when the month name is unknown.
func periodOfMonth(text string) (period string, month int, ok bool) {
	m := periodOfMonthRE.FindStringSubmatch(text)
	if m == nil {
		return "", 0, false
	}
	switch m[1] {
	case "fin":
		period = "end"
	case "debut":
		period = "start"
	}
	return period, monthIndex(m[2]), true
}

// hasSpecificDay reports "le 15"-style explicit day phrasing.
func hasSpecificDay(text string) bool {
	return specificDayRE.MatchString(text)
}
