package precedent

import (
	"testing"

	"github.com/dbelyaev/caselens/internal/model"
)

func TestRetriever_Rank_RandomMode(t *testing.T) {
	retriever := NewRetriever(model.SimilarityConfig{Mode: ModeRandom, Seed: 42})

	ranked := retriever.Rank([]string{"Some case fact about a contract"})

	if len(ranked) != 5 {
		t.Fatalf("Expected all 5 precedents ranked, got %d", len(ranked))
	}

	for _, rc := range ranked {
		if rc.Similarity < 0.3 || rc.Similarity >= 0.9 {
			t.Errorf("Similarity %v for %q outside [0.3, 0.9)", rc.Similarity, rc.Title)
		}
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i].Similarity > ranked[i-1].Similarity {
			t.Errorf("Ranking not descending at %d: %v > %v", i, ranked[i].Similarity, ranked[i-1].Similarity)
		}
	}
}

func TestRetriever_Rank_SeededDeterminism(t *testing.T) {
	facts := []string{"Plaintiff alleged breach of contract"}

	first := NewRetriever(model.SimilarityConfig{Seed: 7}).Rank(facts)
	second := NewRetriever(model.SimilarityConfig{Seed: 7}).Rank(facts)

	for i := range first {
		if first[i].Title != second[i].Title || first[i].Similarity != second[i].Similarity {
			t.Errorf("Seeded runs diverged at %d: %q/%v vs %q/%v",
				i, first[i].Title, first[i].Similarity, second[i].Title, second[i].Similarity)
		}
	}
}

func TestRetriever_Rank_LexicalMode(t *testing.T) {
	retriever := NewRetriever(model.SimilarityConfig{Mode: ModeLexical})

	facts := []string{
		"Defendant failed to deliver goods under the contract",
		"Plaintiff alleged breach after the delivery deadline passed",
	}
	ranked := retriever.Rank(facts)

	if ranked[0].Title != "Smith v. Johnson (2020)" {
		t.Errorf("Expected the contract precedent to rank first, got %q", ranked[0].Title)
	}

	for _, rc := range ranked {
		if rc.Similarity < 0.3 || rc.Similarity > 0.9 {
			t.Errorf("Lexical similarity %v for %q outside [0.3, 0.9]", rc.Similarity, rc.Title)
		}
	}

	// Identical runs produce identical scores: the lexical mode has no
	// stochastic component.
	again := retriever.Rank(facts)
	for i := range ranked {
		if ranked[i].Similarity != again[i].Similarity {
			t.Errorf("Lexical mode not deterministic at %d", i)
		}
	}
}

func TestCorpus_ReadOnly(t *testing.T) {
	first := Corpus()
	first[0].Title = "mutated"

	second := Corpus()
	if second[0].Title == "mutated" {
		t.Error("Corpus returned shared backing storage")
	}
}

func TestCorpus_Contents(t *testing.T) {
	cases := Corpus()

	if len(cases) != 5 {
		t.Fatalf("Expected 5 precedent cases, got %d", len(cases))
	}

	for _, pc := range cases {
		if pc.Title == "" || pc.Facts == "" || pc.Outcome == "" {
			t.Errorf("Incomplete precedent case: %+v", pc)
		}
		if len(pc.KeyFactors) == 0 {
			t.Errorf("Precedent %q has no key factors", pc.Title)
		}
	}
}
