package models

// MatchResult is a scored catalog product for a single search query.
// Created fresh per request, never cached as a whole (only the AI summary is).
type MatchResult struct {
	Product     *Product
	Score       int
	Reasoning   string
	Accessories []string
}
