package suggestion

import (
	"reflect"
	"testing"
)

func TestFoldText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Décembre", "decembre"},
		{"FÉVRIER", "fevrier"},
		{"début août", "debut aout"},
		{"déjà plié", "deja plie"},
		{"no accents", "no accents"},
	}
	for _, tt := range tests {
		if got := foldText(tt.in); got != tt.want {
			t.Errorf("foldText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"lundi", 1},
		{"samedis", 6},
		{"dimanche", 0},
		{"vendredi", 5},
		{"mercredis", 3},
		{"noday", -1},
	}
	for _, tt := range tests {
		if got := weekdayIndex(tt.in); got != tt.want {
			t.Errorf("weekdayIndex(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMonthsMentioned(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"single month", "un pique-nique en juin", []int{6}},
		{"two months in order", "en juin ou juillet", []int{6, 7}},
		{"accented folded", foldText("début Décembre"), []int{12}},
		{"mai not in maison", "dans la maison", nil},
		{"none", "un creneau rapide", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := monthsMentioned(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("monthsMentioned(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMentionsWeekend(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"un week-end en juin", true},
		{"ce weekend", true},
		{"samedi et dimanche", true},
		{"samedi prochain", false},
		{"une reunion lundi", false},
	}
	for _, tt := range tests {
		if got := mentionsWeekend(tt.text); got != tt.want {
			t.Errorf("mentionsWeekend(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestEveryWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		text    string
		wantDay int
		wantMo  int
		wantHit bool
	}{
		{"tous les samedis de mars", 6, 3, true},
		{"tous les lundis d'octobre", 1, 10, true},
		{"tous les jours de mai", 0, 0, false},
		{"une soiree en mars", 0, 0, false},
	}
	for _, tt := range tests {
		day, mo, ok := everyWeekdayOfMonth(tt.text)
		if ok != tt.wantHit || day != tt.wantDay || mo != tt.wantMo {
			t.Errorf("everyWeekdayOfMonth(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.text, day, mo, ok, tt.wantDay, tt.wantMo, tt.wantHit)
		}
	}
}

func TestPeriodOfMonth(t *testing.T) {
	tests := []struct {
		text       string
		wantPeriod string
		wantMonth  int
		wantHit    bool
	}{
		{"fin novembre", "end", 11, true},
		{"debut decembre", "start", 12, true},
		{"fin de semaine", "end", 0, true},
		{"en novembre", "", 0, false},
	}
	for _, tt := range tests {
		period, month, ok := periodOfMonth(tt.text)
		if ok != tt.wantHit || period != tt.wantPeriod || month != tt.wantMonth {
			t.Errorf("periodOfMonth(%q) = (%q, %d, %v), want (%q, %d, %v)",
				tt.text, period, month, ok, tt.wantPeriod, tt.wantMonth, tt.wantHit)
		}
	}
}

func TestExtractClockMentions(t *testing.T) {
	tests := []struct {
		text string
		want []clockMention
	}{
		{"samedi 10h", []clockMention{{10, 0}}},
		{"entre 14h30 et 16h", []clockMention{{14, 30}, {16, 0}}},
		{"a 25h", nil},
		{"aucune heure", nil},
	}
	for _, tt := range tests {
		if got := extractClockMentions(tt.text); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("extractClockMentions(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDetectContextPriority(t *testing.T) {
	tests := []struct {
		text string
		want contextTag
	}{
		{"un stand-up express", ctxStandup},
		{"une visio rapide", ctxExpress}, // express outranks visio in the rule order
		{"dejeuner de partenariat", ctxPartnership},
		{"un dejeuner simple", ctxLunch},
		{"preparation de la kermesse", ctxFestival},
		{"planifie une reunion.", ctxMeeting},
		{"rien de connu", ctxNone},
	}
	for _, tt := range tests {
		if got := detectContext(tt.text); got != tt.want {
			t.Errorf("detectContext(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
