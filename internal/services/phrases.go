package services

import (
	"fmt"
	"sort"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// PhraseExtractor harvests candidate keyword phrases from free-form job
// description text. Implementations must be safe for concurrent use.
type PhraseExtractor interface {
	// Keywords returns the lowercased, deduplicated phrase set for text.
	Keywords(text string) ([]string, error)
	// Ready reports whether the underlying model initialized at startup.
	Ready() bool
}

type proseExtractor struct {
	ready bool
}

// NewProseExtractor builds the production phrase extractor and probes the
// prose model with a short document so a broken model shows up at startup
// (and in the health check) instead of on the first submission.
func NewProseExtractor() (PhraseExtractor, error) {
	e := &proseExtractor{}

	if _, err := prose.NewDocument("Looking for a backend engineer with Go experience."); err != nil {
		return e, fmt.Errorf("failed to initialize prose model: %w", err)
	}

	e.ready = true
	return e, nil
}

// Ready implements PhraseExtractor.
func (e *proseExtractor) Ready() bool {
	return e.ready
}

// Keywords implements PhraseExtractor. The phrase set is noun chunks longer
// than 3 characters plus named entities, mirroring how recruiters phrase
// requirements ("distributed systems", "3 years experience", "AWS").
func (e *proseExtractor) Keywords(text string) ([]string, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}

	set := make(map[string]struct{})

	for _, chunk := range nounChunks(doc.Tokens()) {
		if len(chunk) > 3 {
			set[strings.ToLower(chunk)] = struct{}{}
		}
	}

	for _, ent := range doc.Entities() {
		set[strings.ToLower(ent.Text)] = struct{}{}
	}

	keywords := make([]string, 0, len(set))
	for kw := range set {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	return keywords, nil
}

// nounChunks approximates noun-phrase chunking over POS tags: a maximal run
// of adjectives and nouns that contains at least one noun forms one chunk.
func nounChunks(tokens []prose.Token) []string {
	var chunks []string
	var run []string
	hasNoun := false

	flush := func() {
		if hasNoun && len(run) > 0 {
			chunks = append(chunks, strings.Join(run, " "))
		}
		run = nil
		hasNoun = false
	}

	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok.Tag, "NN"):
			run = append(run, tok.Text)
			hasNoun = true
		case tok.Tag == "JJ" || tok.Tag == "CD":
			run = append(run, tok.Text)
		default:
			flush()
		}
	}
	flush()

	return chunks
}
