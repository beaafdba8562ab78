package models

import "strings"

// Product is a single catalog entry. The catalog is loaded once at startup
// and never mutated afterwards.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Description string `json:"description"`
	Capacity    string `json:"capacity"`
	Accuracy    string `json:"accuracy"`
	// RawStandards keeps the pipe-delimited compliance codes as stored in the
	// catalog file, e.g. "ASTM E18|ISO 6508". Use Standards() for the split form.
	RawStandards string `json:"-"`
	Power        string `json:"power"`
	Warranty     string `json:"warranty,omitempty"`
	Display      string `json:"display"`
	Control      string `json:"control"`
	Resolution   string `json:"resolution,omitempty"`
	Scale        string `json:"scale,omitempty"`
	PriceHint    string `json:"price_hint"`
	Image        string `json:"image,omitempty"`
}

// Standards splits the pipe-delimited standards field into discrete codes.
// Returns nil when the product declares no standards.
func (p *Product) Standards() []string {
	if p.RawStandards == "" {
		return nil
	}
	parts := strings.Split(p.RawStandards, "|")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
