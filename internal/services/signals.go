package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// skillVocabulary is the fixed term list matched against resume text.
// Matching is plain substring containment over the lowercased text, no word
// boundaries; the same goes for every count below, so "internship" and
// "internal" both feed InternshipCount. Accepted noise.
var skillVocabulary = []string{
	"python", "c++", "javascript", "react", "sql", "machine learning",
	"java", "html", "css", "node.js", "typescript", "aws", "docker",
	"kubernetes", "linux", "git", "pandas", "numpy", "pytorch",
	"tensorflow", "fastapi", "flask", "django",
}

var degreeKeywords = []string{"b.tech", "m.tech", "bachelor", "master", "degree"}

var tier1Keywords = []string{"iit", "nit", "bits", "iiit", "university"}

// cgpaPattern matches the first "digit dot one-or-two digits" number in the
// raw text, e.g. "8.7" or "9.25".
var cgpaPattern = regexp.MustCompile(`(\d\.\d{1,2})`)

const previewLimit = 500

// Signals is the fixed set of heuristic features extracted from a resume.
// Everything except CGPA and TextPreview comes from the lowercased text.
type Signals struct {
	Skills           []string
	InternshipCount  int
	ProjectCount     int
	AchievementCount int
	ExperienceCount  int
	ExtraCount       int
	LanguageCount    int
	LinkCount        int
	CGPA             float64
	DegreeFound      bool
	Tier1College     bool
	TextPreview      string
}

// ExtractSignals derives Signals from the full resume text. It never fails:
// an empty input yields zero counts, CGPA 0 and an empty preview.
func ExtractSignals(text string) Signals {
	textLower := strings.ToLower(text)

	var skills []string
	for _, skill := range skillVocabulary {
		if strings.Contains(textLower, skill) {
			skills = append(skills, skill)
		}
	}
	sort.Strings(skills)

	internships := strings.Count(textLower, "intern")

	cgpa := 0.0
	if m := cgpaPattern.FindString(text); m != "" {
		cgpa, _ = strconv.ParseFloat(m, 64)
		if cgpa > 10 {
			// Percentage slipped through; squash to the 10-point scale.
			cgpa = cgpa / 10
		}
	}

	return Signals{
		Skills:           skills,
		InternshipCount:  internships,
		ProjectCount:     strings.Count(textLower, "project"),
		AchievementCount: strings.Count(textLower, "achieve") + strings.Count(textLower, "award") + strings.Count(textLower, "won"),
		ExperienceCount:  internships + strings.Count(textLower, "experience"),
		ExtraCount:       strings.Count(textLower, "volunteer") + strings.Count(textLower, "member"),
		LanguageCount:    2, // fixed assumption: English + native language
		LinkCount:        strings.Count(textLower, "github.com") + strings.Count(textLower, "linkedin.com"),
		CGPA:             cgpa,
		DegreeFound:      containsAny(textLower, degreeKeywords),
		Tier1College:     containsAny(textLower, tier1Keywords),
		TextPreview:      previewOf(text),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func previewOf(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
