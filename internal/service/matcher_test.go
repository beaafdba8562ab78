package service

import (
	"testing"

	"hitech-quote/internal/models"

	"github.com/stretchr/testify/assert"
)

func hardnessTester() *models.Product {
	return &models.Product{
		ID:           "HTUS-PR-HT-001",
		Title:        "Portable Hardness Tester",
		Category:     "Hardness Testing",
		Description:  "Lightweight battery-powered hardness tester for field applications",
		Capacity:     "HB/HRC/HRB scales",
		RawStandards: "ASTM E18|ISO 6508",
		Display:      "Digital",
		Control:      "Manual",
	}
}

func TestMatchScorer_EmptyQueryScoresZero(t *testing.T) {
	scorer := NewMatchScorer(nil)
	p := hardnessTester()

	assert.Equal(t, 0, scorer.Score(p, ""))
	assert.Equal(t, 0, scorer.Score(p, "   "))
	assert.Equal(t, 0, scorer.Score(p, "\t\n"))
}

func TestMatchScorer_TitleMatch(t *testing.T) {
	scorer := NewMatchScorer(nil)
	p := &models.Product{Title: "Dynamic Balancing Machine", Category: "Other", Description: "n/a"}

	// Title clause only: neither category nor description contain the query.
	assert.Equal(t, 40, scorer.Score(p, "dynamic balancing machine"))
}

func TestMatchScorer_HardnessScenario(t *testing.T) {
	scorer := NewMatchScorer(nil)
	p := hardnessTester()

	// "hardness" hits title (substring of "Portable Hardness Tester"),
	// category, description, and the hardness keyword rule.
	score := scorer.Score(p, "hardness")
	assert.GreaterOrEqual(t, score, 50)
	assert.LessOrEqual(t, score, 100)
}

func TestMatchScorer_StandardsClause(t *testing.T) {
	scorer := NewMatchScorer(nil)
	p := &models.Product{
		Title:        "50 kN Universal Testing Machine",
		Category:     "UTM",
		Description:  "Versatile universal testing machine",
		RawStandards: "ASTM E8|ISO 6892",
	}

	// Query contains the discrete code "astm e8": +15 standards, +10 astm
	// keyword (standards field contains "astm").
	withStd := scorer.Score(p, "machine compliant with astm e8")
	withoutStd := scorer.Score(p, "machine compliant with nothing")
	assert.Equal(t, 25, withStd-withoutStd)
}

func TestMatchScorer_NoStandardsSkipsClause(t *testing.T) {
	scorer := NewMatchScorer(nil)
	p := &models.Product{Title: "Bare Machine", Category: "Misc", Description: ""}

	assert.Equal(t, 0, scorer.Score(p, "astm e8"))
}

func TestMatchScorer_KeywordStacking(t *testing.T) {
	scorer := NewMatchScorer(nil)
	p := hardnessTester()

	// portable (title) and digital (display) both fire; no field clause
	// matches a query neither field contains wholesale.
	none := scorer.Score(p, "zzz rig")
	stacked := scorer.Score(p, "zzz portable digital rig")
	assert.Equal(t, 0, none)
	assert.Equal(t, 20, stacked-none)
}

func TestMatchScorer_ClampAt100(t *testing.T) {
	scorer := NewMatchScorer(nil)
	p := &models.Product{
		Title:        "portable digital hardness astm iso",
		Category:     "Hardness Testing",
		Description:  "portable digital hardness astm iso",
		Capacity:     "portable digital hardness astm iso",
		RawStandards: "astm|iso",
		Display:      "digital",
		Control:      "automated",
	}

	// Category equals "Hardness Testing" so it won't contain the full query,
	// but title/description/capacity plus five keyword rules overflow 100.
	assert.Equal(t, 100, scorer.Score(p, "portable digital hardness astm iso"))
}

func TestMatchScorer_BoundsProperty(t *testing.T) {
	scorer := NewMatchScorer(nil)
	products := []*models.Product{
		hardnessTester(),
		{},
		{Title: "x", Category: "y", Description: "z"},
	}
	queries := []string{"", " ", "hardness", "tensile astm iso portable digital automated", "zzz"}

	for _, p := range products {
		for _, q := range queries {
			score := scorer.Score(p, q)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestMatchScorer_CustomRules(t *testing.T) {
	rules := []KeywordRule{
		{"rockwell", func(p *models.Product) bool { return p.Category == "Hardness Testing" }},
	}
	scorer := NewMatchScorer(rules)
	p := hardnessTester()

	// Only the custom table applies; built-in keywords have no effect.
	assert.Equal(t, 10, scorer.Score(p, "rockwell compliant"))
	assert.Equal(t, 0, scorer.Score(p, "automated rig"))
}
