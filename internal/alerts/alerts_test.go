package alerts

import (
	"time"

	"github.com/Pauuvl/JOBY/internal/types"
	"github.com/google/uuid"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

type jobOpt func(*types.JobCandidate)

func newJob(title string, opts ...jobOpt) types.JobCandidate {
	job := types.JobCandidate{
		ID:              uuid.New(),
		Title:           title,
		CompanyName:     "Globant",
		SkillsRequired:  types.NewSkillSet("Go", "PostgreSQL"),
		Location:        "Bogotá, Colombia",
		JobType:         types.JobTypeFullTime,
		ExperienceLevel: types.LevelSenior,
		PostedAt:        now.Add(-time.Hour),
	}
	for _, opt := range opts {
		opt(&job)
	}
	return job
}

func remote(j *types.JobCandidate) { j.RemoteOK = true }

func located(loc string) jobOpt { return func(j *types.JobCandidate) { j.Location = loc } }

func typed(t types.JobType) jobOpt { return func(j *types.JobCandidate) { j.JobType = t } }

func salary(minSalary, maxSalary *float64) jobOpt {
	return func(j *types.JobCandidate) { j.SalaryMin, j.SalaryMax = minSalary, maxSalary }
}

func skills(names ...string) jobOpt {
	return func(j *types.JobCandidate) { j.SkillsRequired = types.NewSkillSet(names...) }
}

func posted(at time.Time) jobOpt { return func(j *types.JobCandidate) { j.PostedAt = at } }

func titles(jobs []types.JobCandidate) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func seniorGopher() types.UserProfile {
	return types.UserProfile{
		ID:         uuid.New(),
		Skills:     types.NewSkillSet("Go", "PostgreSQL", "Docker"),
		Location:   "Bogotá, Colombia",
		Experience: "Senior backend engineer",
	}
}
