package suggestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(start, end string, dates ...string) TimeSlot {
	return TimeSlot{Start: start, End: end, Dates: dates}
}

func TestApplyDurationRulesExpress(t *testing.T) {
	slots := []TimeSlot{
		slot("09:00", "10:30", "2025-11-12"),
		slot("14:00", "15:00", "2025-11-12"),
	}
	got := applyDurationRules(slots, "un stand-up express")
	require.Len(t, got, 2)
	assert.Equal(t, "09:30", got[0].End)
	assert.Equal(t, "14:30", got[1].End)
}

func TestApplyDurationRulesTeamMeeting(t *testing.T) {
	slots := []TimeSlot{
		slot("09:00", "09:30", "2025-11-12"), // stretched
		slot("14:00", "16:00", "2025-11-12"), // already long enough
	}
	got := applyDurationRules(slots, "reunion d'equipe pedagogique")
	require.Len(t, got, 2)
	assert.Equal(t, "10:00", got[0].End)
	assert.Equal(t, "16:00", got[1].End)
}

func TestApplyDurationRulesVideoCall(t *testing.T) {
	slots := []TimeSlot{
		slot("10:00", "11:00", "2025-11-12"), // too early
		slot("18:00", "19:00", "2025-11-12"),
		slot("19:00", "20:00", "2025-11-13"),
		slot("19:30", "20:30", "2025-11-14"), // ends past the window
		slot("18:30", "19:30", "2025-11-15"), // beyond the cap
	}
	got := applyDurationRules(slots, "une visio en soiree")
	require.Len(t, got, 2)
	for _, s := range got {
		assert.GreaterOrEqual(t, minutesOf(s.Start), 18*60)
		assert.LessOrEqual(t, minutesOf(s.End), 20*60)
	}
}

func TestApplyDurationRulesWeekend(t *testing.T) {
	slots := []TimeSlot{
		slot("10:00", "11:00", "2025-11-12"),               // weekday only, dropped
		slot("10:00", "11:00", "2025-11-12", "2025-11-15"), // trimmed to the Saturday
		slot("15:00", "16:00", "2025-11-16"),
	}
	got := applyDurationRules(slots, "un week-end a deux")
	require.Len(t, got, 2)
	assert.Equal(t, []string{"2025-11-15"}, got[0].Dates)
	assert.Equal(t, []string{"2025-11-16"}, got[1].Dates)
}

func TestApplyDurationRulesCompose(t *testing.T) {
	// A weekend video call is shortened by nothing, but window-filtered and
	// weekend-filtered in sequence.
	slots := []TimeSlot{
		slot("18:00", "19:00", "2025-11-15"),
		slot("18:00", "19:00", "2025-11-17"),
	}
	got := applyDurationRules(slots, "une visio ce week-end")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"2025-11-15"}, got[0].Dates)
}

func TestDurationRulesNeverInvertSlots(t *testing.T) {
	got := applyDurationRules([]TimeSlot{slot("23:45", "23:55", "2025-11-12")}, "express")
	for _, s := range got {
		assert.Greater(t, minutesOf(s.End), minutesOf(s.Start))
	}
}

func TestApplyDurationRulesNoContext(t *testing.T) {
	slots := []TimeSlot{slot("09:00", "10:30", "2025-11-12")}
	got := applyDurationRules(slots, "planifie une reunion.")
	assert.Equal(t, slots, got)
}
