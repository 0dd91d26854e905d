// Package generator builds randomized folder names from word lists.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// MaxStalls bounds consecutive rejected candidates before Names gives up.
const MaxStalls = 100000

const maxPrealloc = 4096

// DefaultSuffixes are appended by the suffixed name templates.
var DefaultSuffixes = []string{
	"notes", "labs", "assignments", "design", "spec", "docs", "scratch",
	"drafts", "revA", "revB", "v1", "v2", "archive", "refs", "bench",
	"diagrams", "tests", "build", "release",
}

var (
	// ErrNoWords is returned when the word list is empty.
	ErrNoWords = errors.New("no words loaded from CSV")
	// ErrInvalidCount is returned for a non-positive folder count.
	ErrInvalidCount = errors.New("folder count must be positive")
	// ErrExhausted is returned when no new unique name can be found.
	ErrExhausted = errors.New("name space exhausted")
)

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithSuffixes replaces the default suffix list. An empty list is ignored.
func WithSuffixes(suffixes []string) Option {
	return func(g *Generator) {
		if len(suffixes) == 0 {
			return
		}
		g.suffixes = append([]string(nil), suffixes...)
	}
}

// Generator produces randomized folder names.
type Generator struct {
	rnd      *rand.Rand
	suffixes []string
}

// New returns a Generator seeded with the current time.
func New(opts ...Option) *Generator {
	g := &Generator{
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		suffixes: DefaultSuffixes,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Names returns count sanitized names that are pairwise distinct ignoring
// case and never reserved device names.
func (g *Generator) Names(words []string, count int) ([]string, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if count <= 0 {
		return nil, ErrInvalidCount
	}

	capacity := min(count, maxPrealloc)
	used := make(map[string]struct{}, capacity)
	result := make([]string, 0, capacity)
	stalls := 0
	for len(result) < count {
		name := Sanitize(g.candidate(words))
		key := strings.ToLower(name)
		_, dup := used[key]
		if dup || IsReserved(name) {
			stalls++
			if stalls >= MaxStalls {
				return result, fmt.Errorf("%w: %d of %d names after %d rejected candidates", ErrExhausted, len(result), count, stalls)
			}
			continue
		}
		stalls = 0
		used[key] = struct{}{}
		result = append(result, name)
	}
	return result, nil
}

func (g *Generator) candidate(words []string) string {
	tag := g.rnd.Intn(999) + 1
	switch g.rnd.Intn(3) {
	case 0:
		return fmt.Sprintf("%s_%03d", g.word(words), tag)
	case 1:
		w1 := g.word(words)
		w2 := g.word(words)
		return fmt.Sprintf("%s_%s_%s_%03d", w1, w2, g.suffix(), tag)
	default:
		return fmt.Sprintf("%s_%s_%03d", g.word(words), g.suffix(), tag)
	}
}

func (g *Generator) word(words []string) string {
	return words[g.rnd.Intn(len(words))]
}

func (g *Generator) suffix() string {
	return g.suffixes[g.rnd.Intn(len(g.suffixes))]
}
