package validation

import (
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/resumevault/resume-vault/src/models"
)

// maxProfileSummaryLen caps the free-text summary field.
const maxProfileSummaryLen = 5000

var (
	validate = validator.New()

	// Optional leading +, then 7-20 characters of digits, spaces,
	// hyphens and parentheses.
	phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]{7,20}$`)

	// http/https URL with a domain-label host, localhost, or dotted-quad
	// IPv4; optional port and path/query.
	urlRe = regexp.MustCompile(`(?i)^https?://` +
		`(?:(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,6}\.?|` +
		`localhost|` +
		`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
		`(?::\d+)?` +
		`(?:/?|[/?]\S+)$`)
)

// Validate checks a raw resume submission and returns every violation;
// an empty slice means the submission is valid. Rules are independent,
// so one bad field never masks another.
func Validate(sub *models.ResumeSubmission) []string {
	errs := []string{}

	// Length limits are in characters, not bytes.
	if sub.FullName == "" {
		errs = append(errs, "Full name is required")
	} else if utf8.RuneCountInString(sub.FullName) > 255 {
		errs = append(errs, "Full name is too long")
	}

	if sub.UserEmail == "" {
		errs = append(errs, "Email is required")
	} else if validate.Var(sub.UserEmail, "email") != nil {
		errs = append(errs, "Invalid email format")
	}

	if sub.Phone != "" && !phoneRe.MatchString(sub.Phone) {
		errs = append(errs, "Invalid phone number format")
	}

	for _, platform := range sortedKeys(sub.SocialLinks) {
		if url := sub.SocialLinks[platform]; url != "" && !urlRe.MatchString(url) {
			errs = append(errs, fmt.Sprintf("Invalid URL for %s", platform))
		}
	}

	if utf8.RuneCountInString(sub.ProfileSummary) > maxProfileSummaryLen {
		errs = append(errs, "Profile summary is too long (max 5000 characters)")
	}

	// List entries must be an object or a plain string; anything else is
	// rejected here rather than silently dropped downstream.
	for i, e := range sub.Education {
		if e.Malformed {
			errs = append(errs, fmt.Sprintf("Invalid entry at education[%d]", i))
		}
	}
	for i, e := range sub.WorkExperience {
		if e.Malformed {
			errs = append(errs, fmt.Sprintf("Invalid entry at work_experience[%d]", i))
		}
	}
	for i, e := range sub.Projects {
		if e.Malformed {
			errs = append(errs, fmt.Sprintf("Invalid entry at projects[%d]", i))
		}
	}
	for i, e := range sub.Languages {
		if e.Malformed {
			errs = append(errs, fmt.Sprintf("Invalid entry at languages[%d]", i))
		}
	}
	for i, e := range sub.Certifications {
		if e.Malformed {
			errs = append(errs, fmt.Sprintf("Invalid entry at certifications[%d]", i))
		}
	}

	for _, category := range sortedSkillKeys(sub.TechnicalSkills) {
		if sub.TechnicalSkills[category].Malformed {
			errs = append(errs, fmt.Sprintf("Invalid value for technical skills category %s", category))
		}
	}

	return errs
}

func sortedKeys(m models.SocialLinks) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSkillKeys(m models.TechnicalSkills) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
