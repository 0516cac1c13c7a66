// Package alerts finds jobs worth alerting a user about and builds the alert digest.
package alerts

import (
	"slices"
	"strings"

	"github.com/Pauuvl/JOBY/internal/types"
)

// FilterByPreference keeps the jobs allowed by the user's alert settings.
// Input order is preserved.
func FilterByPreference(pref types.AlertPreference, jobs []types.JobCandidate) []types.JobCandidate {
	out := make([]types.JobCandidate, 0, len(jobs))
	for _, job := range jobs {
		if allowed(pref, job) {
			out = append(out, job)
		}
	}
	return out
}

func allowed(pref types.AlertPreference, job types.JobCandidate) bool {
	if pref.RemoteOnly && !job.RemoteOK {
		return false
	}
	if len(pref.PreferredJobTypes) > 0 && !slices.Contains(pref.PreferredJobTypes, job.JobType) {
		return false
	}
	if len(pref.PreferredLocations) > 0 && !job.RemoteOK && !inPreferredLocation(pref.PreferredLocations, job.Location) {
		return false
	}
	if pref.MinSalary != nil && *pref.MinSalary > 0 && !meetsSalary(*pref.MinSalary, job) {
		return false
	}
	return true
}

func inPreferredLocation(preferred []string, location string) bool {
	location = strings.ToLower(location)
	for _, p := range preferred {
		if strings.Contains(location, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// meetsSalary accepts jobs without any salary information.
func meetsSalary(minSalary float64, job types.JobCandidate) bool {
	if !job.HasSalary() {
		return true
	}
	if job.SalaryMin != nil && *job.SalaryMin >= minSalary {
		return true
	}
	return job.SalaryMax != nil && *job.SalaryMax >= minSalary
}

// CapCandidates keeps at most n jobs, in order. n <= 0 keeps all of them.
func CapCandidates(jobs []types.JobCandidate, n int) []types.JobCandidate {
	if n <= 0 || len(jobs) <= n {
		return jobs
	}
	return jobs[:n]
}
