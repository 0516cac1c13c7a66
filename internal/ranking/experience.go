package ranking

import (
	"strings"

	"github.com/Pauuvl/JOBY/internal/types"
)

type levelKeywords struct {
	level    types.ExperienceLevel
	keywords []string
}

// jobLevelKeywords is scanned in order; the first level with a keyword found in
// the text wins, so ambiguous text resolves to the lower level.
var jobLevelKeywords = []levelKeywords{
	{types.LevelEntry, []string{"junior", "entry", "beginner", "recién graduado", "sin experiencia"}},
	{types.LevelMid, []string{"mid", "intermedio", "intermediate", "2 años", "3 años", "4 años"}},
	{types.LevelSenior, []string{"senior", "sénior", "avanzado", "experto", "5 años", "6 años", "7 años"}},
	{types.LevelLead, []string{"lead", "líder", "jefe", "gerente", "manager"}},
	{types.LevelExecutive, []string{"executive", "director", "ejecutivo", "c-level", "vp", "ceo", "cto"}},
}

// InferExperienceLevel maps free experience text to a job experience level.
// It returns the empty level when no keyword matches.
func InferExperienceLevel(text string) types.ExperienceLevel {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, entry := range jobLevelKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.level
			}
		}
	}
	return ""
}

type seniorityRank struct {
	keyword string
	rank    int
}

// mentorshipRanks is scanned in order, first substring match wins.
var mentorshipRanks = []seniorityRank{
	{"junior", 1},
	{"mid", 2},
	{"senior", 3},
	{"lead", 4},
}

// SeniorityRank maps free experience text to 1 (junior) through 4 (lead).
// Zero means the text gives no usable signal.
func SeniorityRank(text string) int {
	if text == "" {
		return 0
	}
	lower := strings.ToLower(text)
	for _, entry := range mentorshipRanks {
		if strings.Contains(lower, entry.keyword) {
			return entry.rank
		}
	}
	return 0
}
