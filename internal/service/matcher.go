package service

import (
	"strings"

	"hitech-quote/internal/models"
)

// Scoring weights for the individual match clauses. Title is the strongest
// signal, keyword rules stack on top of the field clauses.
const (
	titleWeight    = 40
	categoryWeight = 30
	descWeight     = 20
	standardWeight = 15
	capacityWeight = 10
	keywordWeight  = 10

	maxScore = 100
)

// KeywordRule maps a query keyword to a product predicate. When the keyword
// occurs in the query and the predicate holds, the rule adds keywordWeight.
type KeywordRule struct {
	Keyword string
	Matches func(p *models.Product) bool
}

// DefaultKeywordRules returns the built-in keyword table. Rules are data, not
// control flow, so new ones can be added without touching the scorer.
func DefaultKeywordRules() []KeywordRule {
	return []KeywordRule{
		{"hardness", func(p *models.Product) bool {
			return strings.ToLower(p.Category) == "hardness testing"
		}},
		{"tensile", func(p *models.Product) bool {
			return strings.Contains(strings.ToLower(p.Category), "utm")
		}},
		{"balancing", func(p *models.Product) bool {
			return strings.ToLower(p.Category) == "balancing"
		}},
		{"portable", func(p *models.Product) bool {
			return strings.Contains(strings.ToLower(p.Title), "portable")
		}},
		{"digital", func(p *models.Product) bool {
			return strings.Contains(strings.ToLower(p.Display), "digital")
		}},
		{"automated", func(p *models.Product) bool {
			return strings.Contains(strings.ToLower(p.Control), "automated")
		}},
		{"astm", func(p *models.Product) bool {
			return strings.Contains(strings.ToLower(p.RawStandards), "astm")
		}},
		{"iso", func(p *models.Product) bool {
			return strings.Contains(strings.ToLower(p.RawStandards), "iso")
		}},
	}
}

// MatchScorer computes relevance scores for products against free-text
// queries. Purely textual: substring containment only, no tokenization.
type MatchScorer struct {
	rules []KeywordRule
}

func NewMatchScorer(rules []KeywordRule) *MatchScorer {
	if rules == nil {
		rules = DefaultKeywordRules()
	}
	return &MatchScorer{rules: rules}
}

// Score returns an integer in [0,100]. Empty or whitespace-only queries score
// zero on every clause; strings.Contains(x, "") would otherwise match
// everything. Missing product fields silently skip their clause.
func (m *MatchScorer) Score(p *models.Product, query string) int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0
	}

	score := 0

	if strings.Contains(strings.ToLower(p.Title), query) {
		score += titleWeight
	}
	if strings.Contains(strings.ToLower(p.Category), query) {
		score += categoryWeight
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		score += descWeight
	}
	for _, std := range p.Standards() {
		if strings.Contains(query, strings.ToLower(std)) {
			score += standardWeight
			break
		}
	}
	if p.Capacity != "" && strings.Contains(strings.ToLower(p.Capacity), query) {
		score += capacityWeight
	}

	for _, rule := range m.rules {
		if strings.Contains(query, rule.Keyword) && rule.Matches(p) {
			score += keywordWeight
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
