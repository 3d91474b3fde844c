package validation

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resumevault/resume-vault/src/models"
)

// policy strips all HTML. Resume fields are plain text; any markup in a
// submission is hostile or accidental either way.
var policy = bluemonday.StrictPolicy()

// Sanitize strips markup from every text field of a validated submission
// and returns the record to persist. Nil maps and slices come back
// initialized so the stored JSON is {} and [] rather than null.
func Sanitize(sub *models.ResumeSubmission) *models.Resume {
	resume := &models.Resume{
		UserEmail:      clean(sub.UserEmail),
		FullName:       clean(sub.FullName),
		Phone:          clean(sub.Phone),
		ProfileSummary: clean(sub.ProfileSummary),
	}

	resume.SocialLinks = make(models.SocialLinks, len(sub.SocialLinks))
	for platform, url := range sub.SocialLinks {
		resume.SocialLinks[clean(platform)] = clean(url)
	}

	resume.Education = make(models.EducationList, 0, len(sub.Education))
	for _, e := range sub.Education {
		cleanVariant(&e.Scalar)
		e.Degree = clean(e.Degree)
		e.Institution = clean(e.Institution)
		e.Year = cleanFlex(e.Year)
		e.GPA = cleanFlex(e.GPA)
		resume.Education = append(resume.Education, e)
	}

	resume.TechnicalSkills = make(models.TechnicalSkills, len(sub.TechnicalSkills))
	for category, v := range sub.TechnicalSkills {
		if v.List != nil {
			list := make([]string, len(v.List))
			for i, skill := range v.List {
				list[i] = clean(skill)
			}
			v.List = list
		}
		v.Scalar = clean(v.Scalar)
		resume.TechnicalSkills[clean(category)] = v
	}

	resume.WorkExperience = make(models.WorkExperienceList, 0, len(sub.WorkExperience))
	for _, e := range sub.WorkExperience {
		cleanVariant(&e.Scalar)
		e.Title = clean(e.Title)
		e.Company = clean(e.Company)
		e.Period = clean(e.Period)
		e.Description = clean(e.Description)
		resume.WorkExperience = append(resume.WorkExperience, e)
	}

	resume.Projects = make(models.ProjectList, 0, len(sub.Projects))
	for _, e := range sub.Projects {
		cleanVariant(&e.Scalar)
		e.Name = clean(e.Name)
		e.Description = clean(e.Description)
		e.Technologies = clean(e.Technologies)
		resume.Projects = append(resume.Projects, e)
	}

	resume.Languages = make(models.LanguageList, 0, len(sub.Languages))
	for _, e := range sub.Languages {
		cleanVariant(&e.Scalar)
		e.Language = clean(e.Language)
		e.Proficiency = clean(e.Proficiency)
		resume.Languages = append(resume.Languages, e)
	}

	resume.Certifications = make(models.CertificationList, 0, len(sub.Certifications))
	for _, e := range sub.Certifications {
		cleanVariant(&e.Scalar)
		e.Name = clean(e.Name)
		e.Issuer = clean(e.Issuer)
		e.Year = cleanFlex(e.Year)
		resume.Certifications = append(resume.Certifications, e)
	}

	return resume
}

func clean(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

func cleanFlex(f models.FlexString) models.FlexString {
	return models.FlexString(clean(string(f)))
}

func cleanVariant(scalar *string) {
	*scalar = clean(*scalar)
}
