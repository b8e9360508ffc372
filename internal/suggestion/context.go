package suggestion

import "strings"

// contextTag names a business context detected in the user's request.
// Detection is an ordered first-match-wins rule list so priorities (e.g.
// partnership beats the generic meal rule) are explicit.
type contextTag string

const (
	ctxStandup       contextTag = "standup"
	ctxExpress       contextTag = "express"
	ctxTeamMeeting   contextTag = "team_meeting"
	ctxVideoCall     contextTag = "video_call"
	ctxParentTeacher contextTag = "parent_teacher"
	ctxFestival      contextTag = "festival"
	ctxHomework      contextTag = "homework"
	ctxChoir         contextTag = "choir"
	ctxPhoto         contextTag = "photo"
	ctxBrunch        contextTag = "brunch"
	ctxPartnership   contextTag = "partnership"
	ctxLunch         contextTag = "lunch"
	ctxJogging       contextTag = "jogging"
	ctxCommittee     contextTag = "committee"
	ctxVisit         contextTag = "visit"
	ctxMeeting       contextTag = "meeting"
	ctxSocial        contextTag = "social"
	ctxEvening       contextTag = "evening"
	ctxAfternoon     contextTag = "afternoon"
	ctxMorning       contextTag = "morning"
	ctxNone          contextTag = ""
)

// contextRule pairs a predicate over folded text with the tag it yields.
type contextRule struct {
	tag   contextTag
	match func(text string) bool
}

func anyKeyword(keywords ...string) func(string) bool {
	return func(text string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

// contextRules is evaluated top to bottom; the first hit wins. Order encodes
// business priority: specific activities before generic meal and daypart
// phrasing, partnership before plain lunch.
var contextRules = []contextRule{
	{ctxStandup, anyKeyword("stand-up", "standup")},
	{ctxExpress, anyKeyword("express", "rapide")},
	{ctxVideoCall, anyKeyword("visio")},
	{ctxTeamMeeting, anyKeyword("reunion d'equipe", "equipe pedagogique", "equipe enseignante")},
	{ctxParentTeacher, anyKeyword("parents d'eleves", "parents-professeurs", "rencontre parents", "reunion parents")},
	{ctxFestival, anyKeyword("kermesse", "fete")},
	{ctxHomework, anyKeyword("aide aux devoirs", "soutien scolaire", "devoirs")},
	{ctxChoir, anyKeyword("chorale", "repetition")},
	{ctxPhoto, anyKeyword("seance photo", "shooting", "photo")},
	{ctxBrunch, anyKeyword("brunch")},
	{ctxPartnership, anyKeyword("partenariat", "partenaire")},
	{ctxLunch, anyKeyword("dejeuner", "repas", "diner")},
	{ctxJogging, anyKeyword("jogging", "footing")},
	{ctxCommittee, anyKeyword("comite", "conseil")},
	{ctxVisit, anyKeyword("visite")},
	{ctxSocial, anyKeyword("anniversaire", "pot de depart", "cremaillere")},
	{ctxEvening, anyKeyword("soiree", "soir")},
	{ctxAfternoon, anyKeyword("apres-midi", "apres midi")},
	{ctxMorning, anyKeyword("matinee", "matin")},
	{ctxMeeting, anyKeyword("reunion", "rendez-vous")},
}

// ContextOf exposes the detected business context of a raw request, for
// observability labels. The empty string means no context matched.
func ContextOf(userInput string) string {
	return string(detectContext(foldText(userInput)))
}

// detectContext classifies folded text into the highest-priority context.
func detectContext(text string) contextTag {
	for _, rule := range contextRules {
		if rule.match(text) {
			return rule.tag
		}
	}
	return ctxNone
}

// mentionsMeal reports meal vocabulary independently of the winning context,
// since meal rules (single-slot override, count ceilings) apply even when a
// more specific activity won the classification.
var mentionsMeal = anyKeyword("dejeuner", "diner", "repas", "brunch")

// contextLimits is the declarative per-context rule table consumed by the
// duration engine and the slot count controller, replacing per-branch
// numeric literals.
type contextLimit struct {
	durationMin int // force end = start + durationMin when > 0
	minDuration int // stretch end to start + minDuration when > 0
	hourMin     int // drop slots starting before this hour (0 = unbounded)
	hourMax     int // drop slots ending after this hour (0 = unbounded)
	maxSlots    int // cap after filtering (0 = uncapped)
	weekendOnly bool
}

var contextLimits = map[contextTag]contextLimit{
	ctxStandup:     {durationMin: 30},
	ctxExpress:     {durationMin: 30},
	ctxTeamMeeting: {minDuration: 60},
	ctxVideoCall:   {hourMin: 18, hourMax: 20, maxSlots: 2},
}

// weekendLimit applies when the request mentions a weekend, regardless of
// the winning activity context.
var weekendLimit = contextLimit{maxSlots: 2, weekendOnly: true}
