package pdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/resumevault/resume-vault/src/models"
)

// BlockKind selects how the renderer draws a block.
type BlockKind int

const (
	// BlockTitle is the applicant name at the top of the document.
	BlockTitle BlockKind = iota
	// BlockContact is the centered contact line under the title.
	BlockContact
	// BlockHeading is a section heading.
	BlockHeading
	// BlockParagraph is body text, optionally with a bold lead.
	BlockParagraph
	// BlockSpacer is vertical whitespace of Height points.
	BlockSpacer
)

// Block is one layout element of a rendered resume. Compose produces the
// sequence; the renderer only walks it.
type Block struct {
	Kind   BlockKind
	Lead   string // bold prefix of a paragraph
	Text   string
	Height float64 // spacer height in points
}

const (
	spacerSmall = 3.6
	spacerLarge = 7.2
)

// Compose flattens a resume record into the block sequence of its PDF.
// Sections with no content are omitted entirely, headings included.
func Compose(resume *models.Resume) []Block {
	var blocks []Block

	blocks = append(blocks, Block{Kind: BlockTitle, Text: resume.FullName})

	if contact := contactLine(resume); contact != "" {
		blocks = append(blocks, Block{Kind: BlockContact, Text: contact})
	}
	blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerLarge})

	if resume.ProfileSummary != "" {
		blocks = append(blocks, Block{Kind: BlockHeading, Text: "PROFESSIONAL SUMMARY"})
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: resume.ProfileSummary})
		blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerLarge})
	}

	blocks = append(blocks, educationBlocks(resume.Education)...)
	blocks = append(blocks, skillBlocks(resume.TechnicalSkills)...)
	blocks = append(blocks, workBlocks(resume.WorkExperience)...)
	blocks = append(blocks, projectBlocks(resume.Projects)...)
	blocks = append(blocks, languageBlocks(resume.Languages)...)
	blocks = append(blocks, certificationBlocks(resume.Certifications)...)

	return blocks
}

// contactLine joins phone, email and social links with " | ". Platforms
// are sorted so the line is stable.
func contactLine(resume *models.Resume) string {
	var parts []string
	if resume.Phone != "" {
		parts = append(parts, resume.Phone)
	}
	if resume.UserEmail != "" {
		parts = append(parts, resume.UserEmail)
	}
	platforms := make([]string, 0, len(resume.SocialLinks))
	for p := range resume.SocialLinks {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	for _, p := range platforms {
		if url := resume.SocialLinks[p]; url != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", p, url))
		}
	}
	return strings.Join(parts, " | ")
}

func educationBlocks(entries models.EducationList) []Block {
	if len(entries) == 0 {
		return nil
	}
	blocks := []Block{{Kind: BlockHeading, Text: "EDUCATION"}}
	for _, e := range entries {
		if e.IsScalar {
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: e.Scalar})
			continue
		}
		text := fmt.Sprintf(" - %s", e.Institution)
		if e.Year != "" {
			text += fmt.Sprintf(" (%s)", e.Year)
		}
		if e.GPA != "" {
			text += fmt.Sprintf(" | GPA: %s", e.GPA)
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Lead: e.Degree, Text: text})
	}
	blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerLarge})
	return blocks
}

func skillBlocks(skills models.TechnicalSkills) []Block {
	if len(skills) == 0 {
		return nil
	}
	blocks := []Block{{Kind: BlockHeading, Text: "TECHNICAL SKILLS"}}
	categories := make([]string, 0, len(skills))
	for c := range skills {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		v := skills[c]
		text := v.Scalar
		if v.IsList {
			text = strings.Join(v.List, ", ")
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Lead: c + ":", Text: " " + text})
	}
	blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerLarge})
	return blocks
}

func workBlocks(entries models.WorkExperienceList) []Block {
	if len(entries) == 0 {
		return nil
	}
	blocks := []Block{{Kind: BlockHeading, Text: "WORK EXPERIENCE"}}
	for _, e := range entries {
		if e.IsScalar {
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: e.Scalar})
			blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerSmall})
			continue
		}
		text := fmt.Sprintf(" - %s", e.Company)
		if e.Period != "" {
			text += fmt.Sprintf(" | %s", e.Period)
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Lead: e.Title, Text: text})
		if e.Description != "" {
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: e.Description})
		}
		blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerSmall})
	}
	blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerSmall})
	return blocks
}

func projectBlocks(entries models.ProjectList) []Block {
	if len(entries) == 0 {
		return nil
	}
	blocks := []Block{{Kind: BlockHeading, Text: "PROJECTS"}}
	for _, e := range entries {
		if e.IsScalar {
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: e.Scalar})
			blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerSmall})
			continue
		}
		text := ""
		if e.Technologies != "" {
			text = fmt.Sprintf(" | %s", e.Technologies)
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Lead: e.Name, Text: text})
		if e.Description != "" {
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: e.Description})
		}
		blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerSmall})
	}
	blocks = append(blocks, Block{Kind: BlockSpacer, Height: spacerSmall})
	return blocks
}

func languageBlocks(entries models.LanguageList) []Block {
	if len(entries) == 0 {
		return nil
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsScalar {
			parts = append(parts, e.Scalar)
			continue
		}
		if e.Proficiency != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", e.Language, e.Proficiency))
		} else {
			parts = append(parts, e.Language)
		}
	}
	return []Block{
		{Kind: BlockHeading, Text: "LANGUAGES"},
		{Kind: BlockParagraph, Text: strings.Join(parts, ", ")},
		{Kind: BlockSpacer, Height: spacerLarge},
	}
}

func certificationBlocks(entries models.CertificationList) []Block {
	if len(entries) == 0 {
		return nil
	}
	blocks := []Block{{Kind: BlockHeading, Text: "CERTIFICATIONS"}}
	for _, e := range entries {
		if e.IsScalar {
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: e.Scalar})
			continue
		}
		text := ""
		if e.Issuer != "" {
			text = fmt.Sprintf(" - %s", e.Issuer)
		}
		if e.Year != "" {
			text += fmt.Sprintf(" (%s)", e.Year)
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Lead: e.Name, Text: text})
	}
	return blocks
}
