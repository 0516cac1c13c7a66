package inputs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Pauuvl/JOBY/internal/ranking"
	"github.com/Pauuvl/JOBY/internal/schemas"
	"github.com/Pauuvl/JOBY/internal/types"
	embedded "github.com/Pauuvl/JOBY/schemas"
	"github.com/google/uuid"
)

type jobsDocument struct {
	Jobs []types.JobCandidate `json:"jobs"`
}

type coursesDocument struct {
	Courses []types.CourseCandidate `json:"courses"`
}

type mentorsDocument struct {
	Mentors []types.MentorCandidate `json:"mentors"`
}

// loadDocument reads path, validates it against the named schema and decodes it into v.
func loadDocument(path, schema string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if err := schemas.ValidateDocument(schema, content); err != nil {
		return &LoadError{Path: path, Message: fmt.Sprintf("does not match the %s schema", schema), Cause: err}
	}

	if err := json.Unmarshal(content, v); err != nil {
		return &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}
	return nil
}

// checkRecord rejects records without an identifier, then runs their own validation.
func checkRecord(path, field string, id uuid.UUID, validate func() error) error {
	if id == uuid.Nil {
		return &LoadError{
			Path:    path,
			Message: "record rejected",
			Cause:   &ranking.InputError{Field: field, Message: "missing identifier"},
		}
	}
	if err := validate(); err != nil {
		return &LoadError{
			Path:    path,
			Message: "record rejected",
			Cause:   &ranking.InputError{Field: field, Message: "invalid record", Cause: err},
		}
	}
	return nil
}

// LoadUserProfile loads the profile of the user being matched.
func LoadUserProfile(path string) (*types.UserProfile, error) {
	var user types.UserProfile
	if err := loadDocument(path, embedded.UserProfile, &user); err != nil {
		return nil, err
	}
	if err := checkRecord(path, "id", user.ID, user.Validate); err != nil {
		return nil, err
	}
	return &user, nil
}

// LoadJobs loads a list of job postings.
func LoadJobs(path string) ([]types.JobCandidate, error) {
	var doc jobsDocument
	if err := loadDocument(path, embedded.Jobs, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Jobs {
		job := &doc.Jobs[i]
		if err := checkRecord(path, fmt.Sprintf("jobs[%d].id", i), job.ID, job.Validate); err != nil {
			return nil, err
		}
	}
	return nonNil(doc.Jobs), nil
}

// LoadCourses loads a course catalog.
func LoadCourses(path string) ([]types.CourseCandidate, error) {
	var doc coursesDocument
	if err := loadDocument(path, embedded.Courses, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Courses {
		course := &doc.Courses[i]
		if err := checkRecord(path, fmt.Sprintf("courses[%d].id", i), course.ID, course.Validate); err != nil {
			return nil, err
		}
	}
	return nonNil(doc.Courses), nil
}

// LoadMentors loads the mentor pool.
func LoadMentors(path string) ([]types.MentorCandidate, error) {
	var doc mentorsDocument
	if err := loadDocument(path, embedded.Mentors, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Mentors {
		mentor := &doc.Mentors[i]
		if err := checkRecord(path, fmt.Sprintf("mentors[%d].id", i), mentor.ID, mentor.Validate); err != nil {
			return nil, err
		}
	}
	return nonNil(doc.Mentors), nil
}

// LoadAlertPreference loads alert settings. An empty path yields the defaults,
// and keys missing from the file keep their default values.
func LoadAlertPreference(path string) (types.AlertPreference, error) {
	pref := types.DefaultAlertPreference()
	if path == "" {
		return pref, nil
	}

	if err := loadDocument(path, embedded.AlertPreference, &pref); err != nil {
		return types.AlertPreference{}, err
	}
	if err := pref.Validate(); err != nil {
		return types.AlertPreference{}, &LoadError{Path: path, Message: "invalid alert preference", Cause: err}
	}
	return pref, nil
}

// Validate checks the document at path against the named schema and decodes it,
// applying the same record checks as the loaders.
func Validate(kind, path string) error {
	var err error
	switch kind {
	case embedded.UserProfile:
		_, err = LoadUserProfile(path)
	case embedded.Jobs:
		_, err = LoadJobs(path)
	case embedded.Courses:
		_, err = LoadCourses(path)
	case embedded.Mentors:
		_, err = LoadMentors(path)
	case embedded.AlertPreference:
		_, err = LoadAlertPreference(path)
	default:
		return fmt.Errorf("unknown document kind %q (expected one of %v)", kind, embedded.Names)
	}
	return err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
