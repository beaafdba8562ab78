package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hitech-quote/internal/models"
	"hitech-quote/internal/repository"

	"go.uber.org/zap"
)

// DefaultRecommendationLimit caps how many matches a search returns unless
// the caller asks for a different cut-off.
const DefaultRecommendationLimit = 3

// narrativeFallback replaces LLM output whenever the collaborator is
// unreachable. Degradation, never failure.
const narrativeFallback = "AI service temporarily unavailable. Please contact our sales team for assistance."

// RecommendationService ranks catalog products against free-text queries and
// decorates the result with an AI-authored summary.
type RecommendationService struct {
	catalog    *repository.CatalogRepository
	scorer     *MatchScorer
	narrator   NarrativeGenerator
	cache      repository.CacheRepository
	summaryTTL time.Duration
	logger     *zap.Logger
}

func NewRecommendationService(
	catalog *repository.CatalogRepository,
	scorer *MatchScorer,
	narrator NarrativeGenerator,
	cache repository.CacheRepository,
	summaryTTL time.Duration,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		catalog:    catalog,
		scorer:     scorer,
		narrator:   narrator,
		cache:      cache,
		summaryTTL: summaryTTL,
		logger:     logger,
	}
}

// Recommend scores every catalog product against the query and returns the
// top matches. Products scoring zero are dropped; ties keep catalog order
// (stable sort), so equally relevant products present deterministically.
func (s *RecommendationService) Recommend(query string, limit int) []*models.MatchResult {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	var results []*models.MatchResult
	for _, p := range s.catalog.All() {
		score := s.scorer.Score(p, query)
		if score <= 0 {
			continue
		}
		results = append(results, &models.MatchResult{
			Product:     p,
			Score:       score,
			Reasoning:   fmt.Sprintf("Matches your requirement for %s", query),
			Accessories: RecommendedAccessories(p.Category),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Search combines deterministic ranking with an AI summary of the query.
// The summary is cached per normalized query; on any collaborator failure a
// fallback string is returned instead.
func (s *RecommendationService) Search(ctx context.Context, query string, limit int) ([]*models.MatchResult, string) {
	results := s.Recommend(query, limit)

	key := "search:summary:" + strings.ToLower(strings.TrimSpace(query))
	if cached, ok := s.cache.Get(ctx, key); ok {
		return results, cached
	}

	summary, err := s.narrator.RecommendationSummary(ctx, query, s.catalog.All())
	if err != nil {
		s.logger.Warn("recommendation summary unavailable", zap.String("query", query), zap.Error(err))
		return results, narrativeFallback
	}

	if err := s.cache.Set(ctx, key, summary, s.summaryTTL); err != nil {
		s.logger.Warn("failed to cache search summary", zap.Error(err))
	}
	return results, summary
}
