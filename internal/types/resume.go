// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResumeRecord represents the structured resume data the engine scores.
// No field is mandatory: missing values degrade score quality but never
// prevent a report from being produced.
type ResumeRecord struct {
	FullName   string            `json:"full_name,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty" validate:"dive"`
	Education  []EducationEntry  `json:"education,omitempty"`
}

// ExperienceEntry represents a single work-history entry.
// Dates use YYYY-MM or YYYY-MM-DD format; EndDate may be empty for current roles.
type ExperienceEntry struct {
	JobTitle    string `json:"job_title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty" validate:"omitempty,max=10"`
	EndDate     string `json:"end_date,omitempty" validate:"omitempty,max=10"`
	IsCurrent   bool   `json:"is_current,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry represents a single education entry.
type EducationEntry struct {
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// Validate validates the ResumeRecord using the validator.
// Validation happens once at the boundary; the scorers themselves
// tolerate any field being empty.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FullText concatenates the resume content into a single space-joined string:
// summary, then each experience entry's title/company/description, then each
// education entry's fields, then the skill list. This is the text the keyword
// relevance scorer operates on.
func (r *ResumeRecord) FullText() string {
	parts := make([]string, 0, 8)
	if r.Summary != "" {
		parts = append(parts, r.Summary)
	}
	for _, exp := range r.Experience {
		for _, s := range []string{exp.JobTitle, exp.Company, exp.Description} {
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	for _, edu := range r.Education {
		for _, s := range []string{edu.Degree, edu.FieldOfStudy, edu.Institution} {
			if s != "" {
				parts = append(parts, s)
			}
		}
	}
	parts = append(parts, r.Skills...)
	return strings.Join(parts, " ")
}

// SectionedText renders the resume with the four standard section labels
// (Summary, Experience, Education, Skills), mirroring how the application
// renders resume text. The ATS compatibility scorer operates on this form
// so the section-completeness check sees the headers.
func (r *ResumeRecord) SectionedText() string {
	var sb strings.Builder
	if r.Summary != "" {
		sb.WriteString("Summary\n")
		sb.WriteString(r.Summary)
		sb.WriteString("\n")
	}
	if len(r.Experience) > 0 {
		sb.WriteString("Experience\n")
		for _, exp := range r.Experience {
			line := strings.TrimSpace(exp.JobTitle + " " + exp.Company)
			if line != "" {
				sb.WriteString(line)
				sb.WriteString("\n")
			}
			if exp.Description != "" {
				sb.WriteString(exp.Description)
				sb.WriteString("\n")
			}
		}
	}
	if len(r.Education) > 0 {
		sb.WriteString("Education\n")
		for _, edu := range r.Education {
			line := strings.TrimSpace(edu.Degree + " " + edu.FieldOfStudy + " " + edu.Institution)
			if line != "" {
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		}
	}
	if len(r.Skills) > 0 {
		sb.WriteString("Skills\n")
		sb.WriteString(strings.Join(r.Skills, ", "))
		sb.WriteString("\n")
	}
	return sb.String()
}
