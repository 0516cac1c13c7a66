// Package schemas embeds the JSON schemas of the CLI input documents.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var files embed.FS

// Document names, one per schema file.
const (
	UserProfile     = "user_profile"
	Jobs            = "jobs"
	Courses         = "courses"
	Mentors         = "mentors"
	AlertPreference = "alert_preference"
)

// Names lists every embedded document schema.
var Names = []string{UserProfile, Jobs, Courses, Mentors, AlertPreference}

// FileName returns the schema file name of a document.
func FileName(name string) string {
	return name + ".schema.json"
}

// Read returns the raw schema of the named document.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(FileName(name))
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return data, nil
}
