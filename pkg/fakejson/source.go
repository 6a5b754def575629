package fakejson

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// DefaultTextMaxChars bounds the length of each generated text value.
const DefaultTextMaxChars = 200

const (
	minSentenceWords      = 4
	maxSentenceWords      = 12
	minParagraphSentences = 1
	maxParagraphSentences = 3

	// paragraphMinChars is the smallest limit at which text is split into
	// newline-separated paragraphs.
	paragraphMinChars = 100
)

// Source supplies random human-like names and paragraph text.
type Source interface {
	Name() string
	Text() string
}

// FakerSource draws names and text from gofakeit.
type FakerSource struct {
	faker    *gofakeit.Faker
	maxChars int
}

// NewFakerSource creates an unseeded source, so every process produces
// different data. maxChars <= 0 falls back to DefaultTextMaxChars.
func NewFakerSource(maxChars int) *FakerSource {
	if maxChars <= 0 {
		maxChars = DefaultTextMaxChars
	}
	return &FakerSource{
		faker:    gofakeit.New(0),
		maxChars: maxChars,
	}
}

func (s *FakerSource) Name() string {
	return s.faker.Name()
}

// Text returns at most maxChars of fake prose. Below paragraphMinChars it is
// one line of sentences; from there on it is paragraphs of a few sentences
// each, separated by newlines. The first sentence or paragraph is always kept
// even if it alone is longer than maxChars.
func (s *FakerSource) Text() string {
	return composeText(s.maxChars,
		func() string {
			return s.faker.Sentence(s.faker.IntRange(minSentenceWords, maxSentenceWords))
		},
		func() int {
			return s.faker.IntRange(minParagraphSentences, maxParagraphSentences)
		})
}

func composeText(maxChars int, sentence func() string, paragraphLen func() int) string {
	if maxChars < paragraphMinChars {
		return fill(maxChars, " ", sentence)
	}
	return fill(maxChars, "\n", func() string {
		parts := make([]string, max(paragraphLen(), 1))
		for i := range parts {
			parts[i] = sentence()
		}
		return strings.Join(parts, " ")
	})
}

// fill joins pieces from next with sep, stopping before maxChars would be
// exceeded.
func fill(maxChars int, sep string, next func() string) string {
	var b strings.Builder
	for b.Len() < maxChars {
		piece := next()
		if piece == "" {
			break
		}
		if b.Len() == 0 {
			b.WriteString(piece)
			continue
		}
		if b.Len()+len(sep)+len(piece) > maxChars {
			break
		}
		b.WriteString(sep)
		b.WriteString(piece)
	}
	return b.String()
}
