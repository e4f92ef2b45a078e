package precedent

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dbelyaev/caselens/internal/model"
)

// Similarity modes
const (
	ModeRandom  = "random"  // Stand-in model: uniform draw in [0.3, 0.9)
	ModeLexical = "lexical" // Token overlap between case facts and precedent facts
)

// Similarity scores stay inside [simFloor, simFloor+simRange) in both modes
// so downstream probability bands behave identically.
const (
	simFloor = 0.3
	simRange = 0.6
)

// Retriever ranks the fixed precedent corpus by similarity to the case facts.
//
// The default random mode reproduces the original stand-in: each precedent
// gets an independent uniform similarity rather than a computed one. A fixed
// seed makes the draw repeatable for tests.
type Retriever struct {
	corpus []model.PrecedentCase
	mode   string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRetriever creates a retriever for the built-in corpus
func NewRetriever(cfg model.SimilarityConfig) *Retriever {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mode := cfg.Mode
	if mode == "" {
		mode = ModeRandom
	}

	return &Retriever{
		corpus: Corpus(),
		mode:   mode,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Rank assigns a similarity to every precedent and returns the full corpus
// sorted by similarity descending. Callers truncate to the top-N they need.
func (r *Retriever) Rank(caseFacts []string) []model.RankedPrecedent {
	ranked := make([]model.RankedPrecedent, 0, len(r.corpus))

	for _, pc := range r.corpus {
		var similarity float64
		switch r.mode {
		case ModeLexical:
			similarity = lexicalSimilarity(caseFacts, pc.Facts)
		default:
			similarity = r.draw()
		}

		ranked = append(ranked, model.RankedPrecedent{
			PrecedentCase: pc,
			Similarity:    similarity,
		})
	}

	// Stable sort keeps corpus order for tied scores
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})

	return ranked
}

// draw produces one uniform similarity. The shared rand.Rand needs the lock
// because batch mode ranks from multiple goroutines.
func (r *Retriever) draw() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return simFloor + r.rng.Float64()*simRange
}

// lexicalSimilarity computes Jaccard overlap between the case fact tokens and
// the precedent fact tokens, scaled into the standard similarity band
func lexicalSimilarity(caseFacts []string, precedentFacts string) float64 {
	caseTokens := tokenize(strings.Join(caseFacts, " "))
	precTokens := tokenize(precedentFacts)

	if len(caseTokens) == 0 || len(precTokens) == 0 {
		return simFloor
	}

	intersection := 0
	for token := range precTokens {
		if caseTokens[token] {
			intersection++
		}
	}
	union := len(caseTokens) + len(precTokens) - intersection

	jaccard := float64(intersection) / float64(union)
	return simFloor + jaccard*simRange
}

// tokenize lower-cases and splits on non-letter/digit runes, dropping tokens
// of 3 characters or fewer to cut stopwords
func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)

	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
	for _, field := range fields {
		if len(field) > 3 {
			tokens[field] = true
		}
	}

	return tokens
}
