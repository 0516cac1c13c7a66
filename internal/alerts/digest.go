package alerts

import (
	"fmt"
	"time"

	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/Pauuvl/JOBY/internal/types"
	"github.com/google/uuid"
)

// MaxDigestJobs is the number of job summaries carried by one digest.
const MaxDigestJobs = 5

// JobMatchResult is one ranked job.
type JobMatchResult = ranking.MatchResult[types.JobCandidate, ranking.JobMatch]

// DigestJob summarizes one job in a digest.
type DigestJob struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Score          int       `json:"score"`
	MatchingSkills []string  `json:"matching_skills"`
}

// Digest is the content of a new-jobs alert. Delivering it is up to the caller.
type Digest struct {
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	ActionURL string      `json:"action_url"`
	Total     int         `json:"total"`
	Jobs      []DigestJob `json:"jobs"`
	CreatedAt time.Time   `json:"created_at"`
}

// BuildDigest turns ranked matches into an alert. It returns nil when there are no matches.
func BuildDigest(matches []JobMatchResult, now time.Time) *Digest {
	if len(matches) == 0 {
		return nil
	}

	top := matches[0]
	d := &Digest{
		ActionURL: fmt.Sprintf("/jobs/%s", top.Candidate.ID),
		Total:     len(matches),
		CreatedAt: now,
	}

	if len(matches) == 1 {
		d.Title = "A new job that fits you!"
		d.Message = fmt.Sprintf("%s at %s - %d%% match", top.Candidate.Title, top.Candidate.CompanyName, top.Score)
	} else {
		d.Title = fmt.Sprintf("%d new jobs for you!", len(matches))
		d.Message = fmt.Sprintf("Including %s at %s", top.Candidate.Title, top.Candidate.CompanyName)
	}

	count := min(len(matches), MaxDigestJobs)
	d.Jobs = make([]DigestJob, 0, count)
	for _, m := range matches[:count] {
		d.Jobs = append(d.Jobs, DigestJob{
			ID:             m.Candidate.ID,
			Title:          m.Candidate.Title,
			Company:        m.Candidate.CompanyName,
			Score:          m.Score,
			MatchingSkills: m.Detail.MatchingSkills,
		})
	}

	return d
}
