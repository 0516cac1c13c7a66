// Package types provides type definitions for structured data used throughout the JOBY matching system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SkillSet is a case-insensitive set of skill names.
// Comparisons always use the lower-cased form; the stored spelling is kept for display.
// Blank names are ignored and duplicates count once (first spelling wins).
type SkillSet []string

// NewSkillSet builds a SkillSet from raw names.
func NewSkillSet(names ...string) SkillSet {
	return SkillSet(names)
}

// normalizeSkill returns the comparison key for a skill name.
func normalizeSkill(name string) string {
	return strings.ToLower(name)
}

// Lower returns the set of lower-cased skill names.
func (s SkillSet) Lower() map[string]struct{} {
	set := make(map[string]struct{}, len(s))
	for _, name := range s {
		if strings.TrimSpace(name) == "" {
			continue
		}
		set[normalizeSkill(name)] = struct{}{}
	}
	return set
}

// Unique returns the distinct skills in first-seen order with their original spelling.
func (s SkillSet) Unique() []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, name := range s {
		if strings.TrimSpace(name) == "" {
			continue
		}
		key := normalizeSkill(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Len returns the number of distinct skills.
func (s SkillSet) Len() int {
	return len(s.Lower())
}

// IsEmpty reports whether the set has no usable skills.
func (s SkillSet) IsEmpty() bool {
	return s.Len() == 0
}

// Contains reports whether the set holds name, ignoring case.
func (s SkillSet) Contains(name string) bool {
	_, ok := s.Lower()[normalizeSkill(name)]
	return ok
}

// Intersect returns the skills of s that are also in other, in s order and s spelling.
func (s SkillSet) Intersect(other SkillSet) []string {
	theirs := other.Lower()
	out := make([]string, 0)
	for _, name := range s.Unique() {
		if _, ok := theirs[normalizeSkill(name)]; ok {
			out = append(out, name)
		}
	}
	return out
}

// UnionLen returns the size of the union of both sets.
func (s SkillSet) UnionLen(other SkillSet) int {
	union := s.Lower()
	for key := range other.Lower() {
		union[key] = struct{}{}
	}
	return len(union)
}

// MinusLen returns how many skills of s are missing from other.
func (s SkillSet) MinusLen(other SkillSet) int {
	theirs := other.Lower()
	count := 0
	for key := range s.Lower() {
		if _, ok := theirs[key]; !ok {
			count++
		}
	}
	return count
}
