package suggestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refineOpts(text string, allowed ...string) Options {
	return Options{UserInput: text, AllowedDates: allowed, Now: fixedNow}
}

func TestRefineFormPassthrough(t *testing.T) {
	in := Suggestion{Title: "Sondage cantine", Type: TypeForm}
	assert.Equal(t, in, Refine(in, refineOpts("peu importe")))
}

func TestRefineStandupExpress(t *testing.T) {
	in := Suggestion{Title: "Stand-up", Type: TypeDate, Dates: []string{"2025-11-12"}}
	out := Refine(in, refineOpts("Organise un stand-up express demain matin"))

	require.NotEmpty(t, out.TimeSlots)
	assert.Equal(t, TypeDateTime, out.Type)
	assert.Contains(t, []string{"08:00", "08:30", "09:00"}, out.TimeSlots[0].Start)
	for _, s := range out.TimeSlots {
		assert.LessOrEqual(t, minutesOf(s.End)-minutesOf(s.Start), 30)
	}
}

func TestRefineFestivalSaturdayMorning(t *testing.T) {
	in := Suggestion{
		Title: "Réunion kermesse",
		Type:  TypeDate,
		Dates: []string{"2025-11-15", "2025-11-16", "2025-11-22"},
	}
	out := Refine(in, refineOpts("Propose un créneau samedi 10h pour la réunion de préparation kermesse"))

	found := false
	for _, s := range out.TimeSlots {
		for _, d := range s.Dates {
			if isWeekendDate(d) && s.Start == "10:00" {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a saturday slot starting 10:00, got %v", out.TimeSlots)
}

func TestRefineWindowIntersection(t *testing.T) {
	in := Suggestion{
		Title: "Point projet",
		Type:  TypeDate,
		Dates: []string{"2025-11-12", "2025-11-15", "2025-11-20", "2025-12-01"},
	}
	out := Refine(in, refineOpts("Planifie un point projet",
		"2025-11-18", "2025-11-19", "2025-11-20", "2025-11-21"))

	assert.Equal(t, []string{"2025-11-20"}, out.Dates)
	assert.NotContains(t, out.Dates, "2025-12-01")
}

func TestRefineWeekendWindowFallback(t *testing.T) {
	in := Suggestion{Title: "Escapade", Type: TypeDate}
	out := Refine(in, refineOpts("Repère un week-end où partir deux jours en juin",
		"2025-11-15", "2025-11-16"))

	assert.Equal(t, []string{"2025-11-15", "2025-11-16"}, out.Dates)
	for _, s := range out.TimeSlots {
		for _, d := range s.Dates {
			assert.True(t, isWeekendDate(d))
		}
	}
}

func TestRefineGenericDefault(t *testing.T) {
	in := Suggestion{Title: "Réunion", Type: TypeDate, Dates: []string{"2025-11-12"}}
	out := Refine(in, refineOpts("Planifie une réunion."))

	require.Len(t, out.TimeSlots, 3)
	assert.Equal(t, TypeDateTime, out.Type)
	assert.Equal(t, "09:00", out.TimeSlots[0].Start)
	assert.Equal(t, "10:00", out.TimeSlots[0].End)
	assert.Equal(t, "11:00", out.TimeSlots[1].Start)
	assert.Equal(t, "12:00", out.TimeSlots[1].End)
	assert.Equal(t, "14:00", out.TimeSlots[2].Start)
	assert.Equal(t, "15:00", out.TimeSlots[2].End)
}

func TestRefineDeterminism(t *testing.T) {
	in := Suggestion{
		Title:     "Dîner",
		Type:      TypeDateTime,
		Dates:     []string{"2025-11-14", "2025-11-15"},
		TimeSlots: []TimeSlot{slot("19:00", "20:00", "2025-11-14")},
	}
	opts := refineOpts("un dîner vendredi soir ou samedi matin")

	first := Refine(in, opts)
	second := Refine(in, opts)
	assert.Equal(t, first, second)
}

func TestRefineTypeUpgrade(t *testing.T) {
	// No dates and no slots: nothing to propose, type stays date.
	out := Refine(Suggestion{Title: "Vide", Type: TypeDateTime}, refineOpts("quelque chose"))
	assert.Equal(t, TypeDate, out.Type)
	assert.Empty(t, out.TimeSlots)

	// Slots present: type is upgraded.
	out = Refine(Suggestion{Title: "Point", Type: TypeDate, Dates: []string{"2025-11-12"}},
		refineOpts("Planifie une réunion."))
	assert.Equal(t, TypeDateTime, out.Type)
}

func TestRefineVideoCallWindow(t *testing.T) {
	in := Suggestion{
		Title: "Visio",
		Type:  TypeDateTime,
		Dates: []string{"2025-11-12", "2025-11-13", "2025-11-14"},
		TimeSlots: []TimeSlot{
			slot("10:00", "11:00", "2025-11-12"),
			slot("18:00", "19:00", "2025-11-13"),
		},
	}
	out := Refine(in, refineOpts("Cale une visio avec l'équipe produit"))

	require.NotEmpty(t, out.TimeSlots)
	assert.LessOrEqual(t, len(out.TimeSlots), 2)
	for _, s := range out.TimeSlots {
		assert.GreaterOrEqual(t, minutesOf(s.Start), 18*60)
		assert.LessOrEqual(t, minutesOf(s.End), 20*60)
	}
}

func TestRefineTeamMeetingDuration(t *testing.T) {
	in := Suggestion{
		Title:     "Réunion d'équipe",
		Type:      TypeDateTime,
		Dates:     []string{"2025-11-12"},
		TimeSlots: []TimeSlot{slot("09:00", "09:30", "2025-11-12")},
	}
	out := Refine(in, refineOpts("Réunion d'équipe pédagogique"))

	require.NotEmpty(t, out.TimeSlots)
	for _, s := range out.TimeSlots {
		assert.GreaterOrEqual(t, minutesOf(s.End)-minutesOf(s.Start), 60)
	}
}

func TestRefineWeekendPairReduction(t *testing.T) {
	in := Suggestion{
		Title: "Week-end",
		Type:  TypeDate,
		Dates: []string{"2025-11-15", "2025-11-16", "2025-11-17", "2025-11-18"},
	}
	out := Refine(in, refineOpts("Un week-end pour souffler"))

	assert.Equal(t, []string{"2025-11-15", "2025-11-16"}, out.Dates)
}

func TestRefineEveryWeekdayOfMonth(t *testing.T) {
	in := Suggestion{Title: "Répétitions", Type: TypeDate, Dates: []string{"2025-11-12"}}
	out := Refine(in, refineOpts("Prévois tous les samedis de mars"))

	// March already elapsed at the fixed clock, so the dates roll to 2026.
	assert.Equal(t, []string{"2026-03-07", "2026-03-14", "2026-03-21", "2026-03-28"}, out.Dates)
}

func TestRefineWeekendAcrossMonths(t *testing.T) {
	in := Suggestion{Title: "Escapade", Type: TypeDate}
	out := Refine(in, refineOpts("Trouve un week-end en juin ou juillet"))

	// First Saturday/Sunday pair of June 2026 after the rollover.
	assert.Equal(t, []string{"2026-06-06", "2026-06-07"}, out.Dates)
	for _, s := range out.TimeSlots {
		for _, d := range s.Dates {
			assert.True(t, isWeekendDate(d))
		}
	}
}

func TestRefineExplicitCount(t *testing.T) {
	in := Suggestion{
		Title: "Entretiens",
		Type:  TypeDate,
		Dates: []string{"2025-11-12", "2025-11-13", "2025-11-14"},
	}
	out := Refine(in, refineOpts("Propose deux créneaux pour la réunion"))

	assert.Len(t, out.TimeSlots, 2)
}

func TestRefineMealSpecificDate(t *testing.T) {
	in := Suggestion{Title: "Déjeuner client", Type: TypeDate, Dates: []string{"2025-11-12"}}
	out := Refine(in, refineOpts("Organise un déjeuner le 12 avec le client"))

	require.Len(t, out.TimeSlots, 1)
	assert.Equal(t, "12:30", out.TimeSlots[0].Start)
	assert.Equal(t, "13:30", out.TimeSlots[0].End)
}

func TestRefinePartnershipThreeSittings(t *testing.T) {
	in := Suggestion{Title: "Partenariat", Type: TypeDate, Dates: []string{"2025-11-12", "2025-11-13"}}
	out := Refine(in, refineOpts("Déjeuner de partenariat avec la mairie"))

	require.Len(t, out.TimeSlots, 3)
	starts := []string{out.TimeSlots[0].Start, out.TimeSlots[1].Start, out.TimeSlots[2].Start}
	assert.Equal(t, []string{"11:30", "12:00", "12:30"}, starts)
	for _, s := range out.TimeSlots {
		assert.Equal(t, []string{"2025-11-12"}, s.Dates)
	}
}

func TestRefineSlotDateContainment(t *testing.T) {
	in := Suggestion{
		Title: "Atelier",
		Type:  TypeDateTime,
		Dates: []string{"2025-11-12", "2025-11-20"},
		TimeSlots: []TimeSlot{
			slot("09:00", "10:00", "2025-11-12"),
			slot("09:00", "10:00", "2025-12-25"), // outside the final dates
		},
	}
	out := Refine(in, refineOpts("Un atelier", "2025-11-12", "2025-11-20"))

	dateSet := make(map[string]bool)
	for _, d := range out.Dates {
		dateSet[d] = true
	}
	for _, s := range out.TimeSlots {
		for _, d := range s.Dates {
			assert.True(t, dateSet[d], "slot date %s not in output dates %v", d, out.Dates)
		}
	}
}

func TestRefineDropsInvalidSlots(t *testing.T) {
	in := Suggestion{
		Title: "Point",
		Type:  TypeDateTime,
		Dates: []string{"2025-11-12"},
		TimeSlots: []TimeSlot{
			slot("15:00", "14:00", "2025-11-12"), // inverted
			slot("xx:00", "16:00", "2025-11-12"), // unparseable
			slot("10:00", "11:00", "2025-11-12"),
		},
	}
	out := Refine(in, refineOpts("Garde le point tel quel"))

	for _, s := range out.TimeSlots {
		assert.Greater(t, minutesOf(s.End), minutesOf(s.Start))
	}
}

func TestRefineOnePerDaySkipsLimiting(t *testing.T) {
	in := Suggestion{
		Title: "Créneaux quotidiens",
		Type:  TypeDate,
		Dates: []string{"2025-11-12", "2025-11-13", "2025-11-14", "2025-11-17", "2025-11-18"},
	}
	out := Refine(in, refineOpts("Un jogging chaque jour de la semaine"))

	// Five dates, each keeps its slot despite the jogging cap of two.
	covered := make(map[string]bool)
	for _, s := range out.TimeSlots {
		for _, d := range s.Dates {
			covered[d] = true
		}
	}
	for _, d := range out.Dates {
		assert.True(t, covered[d], "date %s left without a slot", d)
	}
}
