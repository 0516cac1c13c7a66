package ranking

import (
	"testing"

	"github.com/Pauuvl/JOBY/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newJob(skills []string, location string, remote bool, level types.ExperienceLevel) types.JobCandidate {
	return types.JobCandidate{
		ID:              uuid.New(),
		Title:           "Backend Developer",
		CompanyName:     "Acme",
		SkillsRequired:  types.NewSkillSet(skills...),
		Location:        location,
		RemoteOK:        remote,
		ExperienceLevel: level,
	}
}

func TestJobScorer_ReferenceScenario(t *testing.T) {
	user := types.UserProfile{
		Skills:     types.NewSkillSet("Python", "Django"),
		Experience: "Desarrollador backend, tengo 3 años de experiencia",
	}
	job := newJob([]string{"Python", "Django", "Docker"}, "Bogotá, Colombia", true, types.LevelMid)

	match := NewJobScorer(nil).Score(user, job)

	assert.InDelta(t, 2.0/3.0*40, match.Breakdown.Skills, 0.01)
	assert.Equal(t, 30.0, match.Breakdown.Location)
	assert.Equal(t, 30.0, match.Breakdown.Experience)
	assert.Equal(t, 87, match.Score)
	assert.Equal(t, []string{"Python", "Django"}, match.MatchingSkills)
	assert.Equal(t, types.LevelMid, match.UserLevel)
}

func TestJobScorer_SkillCasingIsIgnored(t *testing.T) {
	job := newJob([]string{"python", "Go"}, "Lima, Perú", false, types.LevelSenior)
	scorer := NewJobScorer(nil)

	lower := scorer.Score(types.UserProfile{Skills: types.NewSkillSet("Python")}, job)
	upper := scorer.Score(types.UserProfile{Skills: types.NewSkillSet("PYTHON")}, job)

	assert.Equal(t, lower.Score, upper.Score)
	assert.Equal(t, lower.Breakdown, upper.Breakdown)
	assert.Equal(t, []string{"python"}, upper.MatchingSkills)
}

func TestJobScorer_DuplicateRequiredSkillsCountOnce(t *testing.T) {
	job := newJob([]string{"Go", "go", "Rust"}, "", false, types.LevelMid)
	user := types.UserProfile{Skills: types.NewSkillSet("GO")}

	match := NewJobScorer(nil).Score(user, job)

	assert.InDelta(t, 20.0, match.Breakdown.Skills, 0.001)
	assert.Equal(t, []string{"Go"}, match.MatchingSkills)
}

func TestJobScorer_EmptySkillSets(t *testing.T) {
	scorer := NewJobScorer(nil)

	noUserSkills := scorer.Score(types.UserProfile{}, newJob([]string{"Go"}, "", false, types.LevelMid))
	assert.Equal(t, 0.0, noUserSkills.Breakdown.Skills)
	assert.Empty(t, noUserSkills.MatchingSkills)

	noJobSkills := scorer.Score(types.UserProfile{Skills: types.NewSkillSet("Go")}, newJob(nil, "", false, types.LevelMid))
	assert.Equal(t, 0.0, noJobSkills.Breakdown.Skills)
	assert.Empty(t, noJobSkills.MatchingSkills)
}

func TestJobScorer_RemoteAlwaysGetsFullLocation(t *testing.T) {
	scorer := NewJobScorer(nil)
	job := newJob(nil, "Madrid, España", true, types.LevelMid)

	for _, location := range []string{"", "Bogotá, Colombia", "madrid"} {
		match := scorer.Score(types.UserProfile{Location: location}, job)
		assert.Equal(t, 30.0, match.Breakdown.Location, "user location %q", location)
	}
}

func TestJobScorer_LocationSubstring(t *testing.T) {
	user := types.UserProfile{Location: "bogotá"}
	job := newJob(nil, "Bogotá, Colombia", false, types.LevelMid)

	match := NewJobScorer(nil).Score(user, job)

	assert.Equal(t, 30.0, match.Breakdown.Location)
}

func TestJobScorer_LocationSameCountry(t *testing.T) {
	user := types.UserProfile{Location: "Medellín, Colombia"}
	job := newJob(nil, "Bogotá,  COLOMBIA ", false, types.LevelMid)

	match := NewJobScorer(nil).Score(user, job)

	assert.Equal(t, 15.0, match.Breakdown.Location)
}

func TestJobScorer_LocationNoMatch(t *testing.T) {
	scorer := NewJobScorer(nil)

	differentCountry := scorer.Score(types.UserProfile{Location: "Lima, Perú"}, newJob(nil, "Bogotá, Colombia", false, types.LevelMid))
	assert.Equal(t, 0.0, differentCountry.Breakdown.Location)

	missingJobLocation := scorer.Score(types.UserProfile{Location: "Lima, Perú"}, newJob(nil, "", false, types.LevelMid))
	assert.Equal(t, 0.0, missingJobLocation.Breakdown.Location)

	missingUserLocation := scorer.Score(types.UserProfile{}, newJob(nil, "Lima, Perú", false, types.LevelMid))
	assert.Equal(t, 0.0, missingUserLocation.Breakdown.Location)
}

func TestJobScorer_ExperienceExactMatch(t *testing.T) {
	user := types.UserProfile{Experience: "Senior engineer at a fintech"}
	match := NewJobScorer(nil).Score(user, newJob(nil, "", false, types.LevelSenior))

	assert.Equal(t, 30.0, match.Breakdown.Experience)
	assert.Equal(t, 30, match.Score)
}

func TestJobScorer_ExperienceOneLevelBelow(t *testing.T) {
	user := types.UserProfile{Experience: "Mid-level developer"}
	match := NewJobScorer(nil).Score(user, newJob(nil, "", false, types.LevelSenior))

	assert.Equal(t, 25.0, match.Breakdown.Experience)
}

func TestJobScorer_ExperienceOverqualified(t *testing.T) {
	scorer := NewJobScorer(nil)

	oneAbove := scorer.Score(types.UserProfile{Experience: "Senior engineer"}, newJob(nil, "", false, types.LevelMid))
	assert.Equal(t, 15.0, oneAbove.Breakdown.Experience)

	farAbove := scorer.Score(types.UserProfile{Experience: "CTO of a startup"}, newJob(nil, "", false, types.LevelEntry))
	assert.Equal(t, 15.0, farAbove.Breakdown.Experience)
}

func TestJobScorer_ExperienceTwoLevelsBelow(t *testing.T) {
	user := types.UserProfile{Experience: "Junior developer"}
	match := NewJobScorer(nil).Score(user, newJob(nil, "", false, types.LevelSenior))

	assert.Equal(t, 0.0, match.Breakdown.Experience)
}

func TestJobScorer_ExperienceUnknown(t *testing.T) {
	scorer := NewJobScorer(nil)

	noText := scorer.Score(types.UserProfile{}, newJob(nil, "", false, types.LevelEntry))
	assert.Equal(t, 0.0, noText.Breakdown.Experience)
	assert.Empty(t, noText.UserLevel)

	noKeyword := scorer.Score(types.UserProfile{Experience: "I like building things"}, newJob(nil, "", false, types.LevelEntry))
	assert.Equal(t, 0.0, noKeyword.Breakdown.Experience)

	unknownJobLevel := scorer.Score(types.UserProfile{Experience: "senior"}, newJob(nil, "", false, ""))
	assert.Equal(t, 0.0, unknownJobLevel.Breakdown.Experience)
}

func TestJobScorer_ExperienceLabelFallback(t *testing.T) {
	user := types.UserProfile{ExperienceLevel: types.LevelLead}
	match := NewJobScorer(nil).Score(user, newJob(nil, "", false, types.LevelLead))

	assert.Equal(t, types.LevelLead, match.UserLevel)
	assert.Equal(t, 30.0, match.Breakdown.Experience)
}

func TestJobScorer_PerfectMatchIsCappedAt100(t *testing.T) {
	user := types.UserProfile{
		Skills:     types.NewSkillSet("Go", "Kubernetes", "PostgreSQL"),
		Location:   "Quito, Ecuador",
		Experience: "Senior backend engineer",
	}
	job := newJob([]string{"go", "kubernetes"}, "Quito, Ecuador", false, types.LevelSenior)

	match := NewJobScorer(nil).Score(user, job)

	assert.Equal(t, 100, match.Score)
}

func TestJobScorer_RoundsHalfToEven(t *testing.T) {
	required := make([]string, 0, 16)
	for i := 0; i < 16; i++ {
		required = append(required, string(rune('a'+i)))
	}
	user := types.UserProfile{Skills: types.NewSkillSet("a")}

	match := NewJobScorer(nil).Score(user, newJob(required, "", false, types.LevelMid))

	assert.InDelta(t, 2.5, match.Breakdown.Skills, 0.0001)
	assert.Equal(t, 2, match.Score)
}

func TestJobScorer_CustomWeights(t *testing.T) {
	weights := DefaultJobWeights()
	weights.Location = 50
	user := types.UserProfile{}
	job := newJob(nil, "", true, types.LevelMid)

	match := NewJobScorer(&weights).Score(user, job)

	assert.Equal(t, 50, match.Score)
}

func TestJobScorer_ScoreFunc(t *testing.T) {
	scorer := NewJobScorer(nil)
	user := types.UserProfile{Skills: types.NewSkillSet("Go")}
	job := newJob([]string{"Go"}, "", true, types.LevelMid)

	score, detail := scorer.ScoreFunc()(user, job)

	assert.Equal(t, 70, score)
	assert.Equal(t, score, detail.Score)
}
