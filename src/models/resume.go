package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Resume is a sanitized, persisted resume record. Records are immutable
// after creation except for deletion; updated_at is touched by the store.
type Resume struct {
	ID              uuid.UUID          `json:"id"`
	UserEmail       string             `json:"user_email"`
	FullName        string             `json:"full_name"`
	Phone           string             `json:"phone"`
	SocialLinks     SocialLinks        `json:"social_links"`
	ProfileSummary  string             `json:"profile_summary"`
	Education       EducationList      `json:"education"`
	TechnicalSkills TechnicalSkills    `json:"technical_skills"`
	WorkExperience  WorkExperienceList `json:"work_experience"`
	Projects        ProjectList        `json:"projects"`
	Languages       LanguageList       `json:"languages"`
	Certifications  CertificationList  `json:"certifications"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ResumeSummary is the listing projection returned by the admin index.
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	UserEmail string    `json:"user_email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResumeSubmission is the raw public submission payload. Its field types
// tolerate the shape variance real clients send (object-or-string list
// entries, numeric years, scalar skill values) and flag anything outside
// the accepted variants for the validator.
type ResumeSubmission struct {
	FullName        string             `json:"full_name"`
	UserEmail       string             `json:"user_email"`
	Phone           string             `json:"phone"`
	SocialLinks     SocialLinks        `json:"social_links"`
	ProfileSummary  string             `json:"profile_summary"`
	Education       EducationList      `json:"education"`
	TechnicalSkills TechnicalSkills    `json:"technical_skills"`
	WorkExperience  WorkExperienceList `json:"work_experience"`
	Projects        ProjectList        `json:"projects"`
	Languages       LanguageList       `json:"languages"`
	Certifications  CertificationList  `json:"certifications"`
}

// SocialLinks maps platform name to profile URL. A non-object value
// defaults to an empty map, matching the submission contract.
type SocialLinks map[string]string

func (s *SocialLinks) UnmarshalJSON(data []byte) error {
	if kindOf(data) != kindObject {
		*s = SocialLinks{}
		return nil
	}
	var m map[string]FlexString
	if err := json.Unmarshal(data, &m); err != nil {
		*s = SocialLinks{}
		return nil
	}
	out := make(SocialLinks, len(m))
	for k, v := range m {
		out[k] = string(v)
	}
	*s = out
	return nil
}

// EducationEntry is one education item: an object with degree and
// institution (year and GPA optional) or a plain string.
type EducationEntry struct {
	entryVariant
	Degree      string     `json:"degree,omitempty"`
	Institution string     `json:"institution,omitempty"`
	Year        FlexString `json:"year,omitempty"`
	GPA         FlexString `json:"gpa,omitempty"`
}

func (e *EducationEntry) UnmarshalJSON(data []byte) error {
	type alias EducationEntry
	return unmarshalEntry(data, &e.entryVariant, (*alias)(e))
}

func (e EducationEntry) MarshalJSON() ([]byte, error) {
	if e.IsScalar {
		return json.Marshal(e.Scalar)
	}
	type alias EducationEntry
	return json.Marshal(alias(e))
}

// WorkExperienceEntry is one work history item.
type WorkExperienceEntry struct {
	entryVariant
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

func (e *WorkExperienceEntry) UnmarshalJSON(data []byte) error {
	type alias WorkExperienceEntry
	return unmarshalEntry(data, &e.entryVariant, (*alias)(e))
}

func (e WorkExperienceEntry) MarshalJSON() ([]byte, error) {
	if e.IsScalar {
		return json.Marshal(e.Scalar)
	}
	type alias WorkExperienceEntry
	return json.Marshal(alias(e))
}

// ProjectEntry is one project item.
type ProjectEntry struct {
	entryVariant
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
}

func (e *ProjectEntry) UnmarshalJSON(data []byte) error {
	type alias ProjectEntry
	return unmarshalEntry(data, &e.entryVariant, (*alias)(e))
}

func (e ProjectEntry) MarshalJSON() ([]byte, error) {
	if e.IsScalar {
		return json.Marshal(e.Scalar)
	}
	type alias ProjectEntry
	return json.Marshal(alias(e))
}

// LanguageEntry is a {language, proficiency} object or a plain string.
type LanguageEntry struct {
	entryVariant
	Language    string `json:"language,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

func (e *LanguageEntry) UnmarshalJSON(data []byte) error {
	type alias LanguageEntry
	return unmarshalEntry(data, &e.entryVariant, (*alias)(e))
}

func (e LanguageEntry) MarshalJSON() ([]byte, error) {
	if e.IsScalar {
		return json.Marshal(e.Scalar)
	}
	type alias LanguageEntry
	return json.Marshal(alias(e))
}

// CertificationEntry is a {name, issuer, year} object or a plain string.
type CertificationEntry struct {
	entryVariant
	Name   string     `json:"name,omitempty"`
	Issuer string     `json:"issuer,omitempty"`
	Year   FlexString `json:"year,omitempty"`
}

func (e *CertificationEntry) UnmarshalJSON(data []byte) error {
	type alias CertificationEntry
	return unmarshalEntry(data, &e.entryVariant, (*alias)(e))
}

func (e CertificationEntry) MarshalJSON() ([]byte, error) {
	if e.IsScalar {
		return json.Marshal(e.Scalar)
	}
	type alias CertificationEntry
	return json.Marshal(alias(e))
}

// List wrappers: a non-array value for any list field defaults to empty.

type EducationList []EducationEntry

func (l *EducationList) UnmarshalJSON(data []byte) error {
	return unmarshalVariantList(data, (*[]EducationEntry)(l))
}

type WorkExperienceList []WorkExperienceEntry

func (l *WorkExperienceList) UnmarshalJSON(data []byte) error {
	return unmarshalVariantList(data, (*[]WorkExperienceEntry)(l))
}

type ProjectList []ProjectEntry

func (l *ProjectList) UnmarshalJSON(data []byte) error {
	return unmarshalVariantList(data, (*[]ProjectEntry)(l))
}

type LanguageList []LanguageEntry

func (l *LanguageList) UnmarshalJSON(data []byte) error {
	return unmarshalVariantList(data, (*[]LanguageEntry)(l))
}

type CertificationList []CertificationEntry

func (l *CertificationList) UnmarshalJSON(data []byte) error {
	return unmarshalVariantList(data, (*[]CertificationEntry)(l))
}

// SkillValue is a technical_skills category value: a list of skill names
// or a single scalar. Numeric elements are normalized to strings.
type SkillValue struct {
	List      []string `json:"-"`
	Scalar    string   `json:"-"`
	IsList    bool     `json:"-"`
	Malformed bool     `json:"-"`
}

func (s *SkillValue) UnmarshalJSON(data []byte) error {
	switch kindOf(data) {
	case kindArray:
		s.IsList = true
		var items []FlexString
		if err := json.Unmarshal(data, &items); err != nil {
			s.Malformed = true
			return nil
		}
		s.List = make([]string, 0, len(items))
		for _, it := range items {
			s.List = append(s.List, string(it))
		}
	case kindString:
		return json.Unmarshal(data, &s.Scalar)
	case kindOther:
		var f FlexString
		if err := json.Unmarshal(data, &f); err != nil {
			s.Malformed = true
			return nil
		}
		s.Scalar = string(f)
	default:
		s.Malformed = true
	}
	return nil
}

func (s SkillValue) MarshalJSON() ([]byte, error) {
	if s.IsList {
		if s.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(s.List)
	}
	return json.Marshal(s.Scalar)
}

// TechnicalSkills maps category to its skills. A non-object value
// defaults to an empty map.
type TechnicalSkills map[string]SkillValue

func (t *TechnicalSkills) UnmarshalJSON(data []byte) error {
	if kindOf(data) != kindObject {
		*t = TechnicalSkills{}
		return nil
	}
	var m map[string]SkillValue
	if err := json.Unmarshal(data, &m); err != nil {
		*t = TechnicalSkills{}
		return nil
	}
	*t = m
	return nil
}
