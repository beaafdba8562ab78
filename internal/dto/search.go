package dto

type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type RecommendationResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Specs       []string `json:"specs"`
	PriceHint   string   `json:"price_hint"`
	MatchScore  int      `json:"match_score"`
	Reasoning   string   `json:"reasoning"`
	Accessories []string `json:"accessories"`
	Image       string   `json:"image,omitempty"`
}

type SearchResponse struct {
	Success         bool                     `json:"success"`
	Query           string                   `json:"query"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	AISummary       string                   `json:"ai_summary,omitempty"`
	Total           int                      `json:"total"`
}

type ProductListResponse struct {
	Success  bool            `json:"success"`
	Products []ProductDetail `json:"products"`
	Total    int             `json:"total"`
}

type ProductDetail struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Description string   `json:"description"`
	Capacity    string   `json:"capacity"`
	Accuracy    string   `json:"accuracy"`
	Standards   []string `json:"standards"`
	Power       string   `json:"power"`
	Warranty    string   `json:"warranty,omitempty"`
	Display     string   `json:"display"`
	Control     string   `json:"control"`
	PriceHint   string   `json:"price_hint"`
	Image       string   `json:"image,omitempty"`
}
