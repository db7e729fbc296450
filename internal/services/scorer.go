package services

import (
	"log"
	"math"
	"sort"
	"strings"

	"github.com/shashank-tomar0/RankSense-AI/internal/models"
)

type ScoreResult struct {
	Score    float64
	Analysis models.JDAnalysis
}

type Scorer interface {
	Score(signals Signals, fullText string, jdText string) ScoreResult
}

type scorer struct {
	phrases PhraseExtractor
}

func NewScorer(phrases PhraseExtractor) Scorer {
	return &scorer{phrases: phrases}
}

// Score implements Scorer. The score is a sum of independently capped
// contributions, so no single factor can dominate. The theoretical ceiling is
// the sum of caps (~100); there is deliberately no final clamp.
func (s *scorer) Score(signals Signals, fullText string, jdText string) ScoreResult {
	score := 0.0
	analysis := models.JDAnalysis{
		Matches: []string{},
		Missing: []string{},
	}

	// 1. Prior internships - max 2 internships = 20 pts
	score += math.Min(float64(signals.InternshipCount)*10, 20)

	// 2. Skills & certification - base skill points
	score += math.Min(float64(len(signals.Skills)), 10)

	if jdText != "" {
		analysis.JDPresent = true

		keywords, err := s.phrases.Keywords(jdText)
		if err != nil {
			// Degrade to an empty analysis; JD failures never abort scoring.
			log.Printf("⚠️  Phrase extraction failed: %v\n", err)
		} else {
			matches, missing := partitionKeywords(keywords, fullText)
			analysis.Matches = matches
			analysis.Missing = missing

			// Boost score based on JD coverage
			if len(keywords) > 0 {
				coverage := float64(len(matches)) / float64(len(keywords))
				score += math.Min(coverage*20, 10)
			}

			// Bonus for skills the JD asks for explicitly
			jdLower := strings.ToLower(jdText)
			skillMatches := 0
			for _, skill := range signals.Skills {
				if strings.Contains(jdLower, skill) {
					skillMatches++
				}
			}
			score += math.Min(float64(skillMatches)*2, 10)
		}
	} else {
		// No JD to cover: skills fill the gap a second time
		score += math.Min(float64(len(signals.Skills)), 10)
	}

	// 3. Projects - max 3 projects = 15 pts
	score += math.Min(float64(signals.ProjectCount)*5, 15)

	// 4. CGPA - already normalized to the 10-point scale
	if signals.CGPA > 0 {
		score += math.Min(signals.CGPA, 10)
	}

	// 5. Quantifiable achievements
	score += math.Min(float64(signals.AchievementCount)*5, 10)

	// 6. Experience entries
	score += math.Min(float64(signals.ExperienceCount)*2.5, 5)

	// 7. Extra-curricular
	score += math.Min(float64(signals.ExtraCount)*2.5, 5)

	// 8. Language fluency
	score += math.Min(float64(signals.LanguageCount)*1.5, 3)

	// 9. Online presence (GitHub/LinkedIn)
	score += math.Min(float64(signals.LinkCount)*1.5, 3)

	// 10. Degree type
	if signals.DegreeFound {
		score += 3
	}

	// 11. College tier
	if signals.Tier1College {
		score += 2
	} else {
		score += 1
	}

	// 12. School marks baseline
	score += 2

	return ScoreResult{
		Score:    math.Round(score*100) / 100,
		Analysis: analysis,
	}
}

// partitionKeywords splits the JD keyword set into phrases present in the
// resume (substring match over the lowercased text) and phrases absent from
// it. Both halves come back sorted.
func partitionKeywords(keywords []string, fullText string) (matches, missing []string) {
	matches = []string{}
	missing = []string{}

	textLower := strings.ToLower(fullText)
	for _, kw := range keywords {
		if strings.Contains(textLower, kw) {
			matches = append(matches, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	sort.Strings(matches)
	sort.Strings(missing)
	return matches, missing
}
