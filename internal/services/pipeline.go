package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/shashank-tomar0/RankSense-AI/internal/models"
	"github.com/shashank-tomar0/RankSense-AI/internal/repositories"
)

// Submission is one accepted resume waiting for processing. Content holds the
// raw file bytes; the filename only matters for its suffix.
type Submission struct {
	ID       uuid.UUID
	Filename string
	Content  []byte
	JDText   string
}

// Broadcaster is the slice of Hub the pipeline needs.
type Broadcaster interface {
	Broadcast(message string)
}

// PipelineService runs a submission through text extraction, signal
// extraction, scoring and persistence, reporting progress over the
// broadcaster. The caller gets no handle: all outcomes, including failures,
// surface only as notifications.
type PipelineService interface {
	Process(ctx context.Context, sub Submission)
}

type pipelineService struct {
	candidateRepo repositories.CandidateRepository
	extractors    *ExtractorRegistry
	scorer        Scorer
	hub           Broadcaster
	delay         time.Duration
	minTextLength int
}

func NewPipelineService(
	candidateRepo repositories.CandidateRepository,
	extractors *ExtractorRegistry,
	scorer Scorer,
	hub Broadcaster,
	delay time.Duration,
	minTextLength int,
) PipelineService {
	return &pipelineService{
		candidateRepo: candidateRepo,
		extractors:    extractors,
		scorer:        scorer,
		hub:           hub,
		delay:         delay,
		minTextLength: minTextLength,
	}
}

// Process implements PipelineService. Only an unsupported format or a decoder
// failure aborts a submission; every later failure degrades and the pipeline
// still reports completion.
func (p *pipelineService) Process(ctx context.Context, sub Submission) {
	p.hub.Broadcast(fmt.Sprintf("> Processing started for: %s", sub.Filename))

	// Pacing delay between acceptance and extraction
	if err := waitFor(ctx, p.delay); err != nil {
		log.Printf("⚠️  Submission %s cancelled before extraction: %v\n", sub.ID, err)
		return
	}

	fullText, err := p.extractors.Extract(sub.Filename, sub.Content)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			p.hub.Broadcast(fmt.Sprintf("> ERROR: Unsupported format %s", sub.Filename))
		} else {
			p.hub.Broadcast(fmt.Sprintf("> Error extracting %s: %v", sub.Filename, err))
		}
		return
	}

	charCount := utf8.RuneCountInString(fullText)
	p.hub.Broadcast(fmt.Sprintf("> DEBUG: Extracted %d characters.", charCount))
	if charCount < p.minTextLength {
		p.hub.Broadcast("> WARNING: Minimal text found.")
	}

	signals := ExtractSignals(fullText)
	result := p.scorer.Score(signals, fullText, sub.JDText)

	p.hub.Broadcast(fmt.Sprintf("> Extracted %d skills, %d internships, %d projects",
		len(signals.Skills), signals.InternshipCount, signals.ProjectCount))
	if sub.JDText != "" {
		p.hub.Broadcast(fmt.Sprintf("> JD Analysis: %d Matches found.", len(result.Analysis.Matches)))
	}
	p.hub.Broadcast(fmt.Sprintf("> Hacker Score: %s/100", formatScore(result.Score)))

	payload := buildPayload(sub, signals, result)
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Failed to marshal payload for %s: %v\n", sub.Filename, err)
		return
	}

	// Best-effort durability: a failed insert is logged, the live session
	// still gets its result.
	candidate := &models.Candidate{
		Filename: sub.Filename,
		Score:    result.Score,
		Payload:  datatypes.JSON(payloadJSON),
	}
	if err := p.candidateRepo.Create(candidate); err != nil {
		log.Printf("❌ DB error for %s: %v\n", sub.Filename, err)
	}

	p.hub.Broadcast("COMPLETE_JSON:" + string(payloadJSON))
}

// formatScore renders the two-decimal-rounded score without padded zeros, but
// keeps a trailing .0 on whole numbers: 85.5/100, 9.67/100, 85.0/100.
func formatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func buildPayload(sub Submission, signals Signals, result ScoreResult) models.ResultPayload {
	skills := signals.Skills
	if skills == nil {
		skills = []string{}
	}

	return models.ResultPayload{
		Score:       result.Score,
		Filename:    sub.Filename,
		SkillsCount: len(signals.Skills),
		Skills:      skills,
		Internships: signals.InternshipCount,
		Projects:    signals.ProjectCount,
		CGPA:        signals.CGPA,
		Experience:  signals.ExperienceCount,
		RawText:     signals.TextPreview,
		JDPresent:   sub.JDText != "",
		JDAnalysis:  result.Analysis,
	}
}
