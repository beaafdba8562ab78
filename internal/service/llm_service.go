package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hitech-quote/internal/models"
	"hitech-quote/pkg/config"

	"go.uber.org/zap"
)

// ErrLLMDisabled is returned when no API key is configured. Callers degrade
// to their placeholder narrative instead of failing.
var ErrLLMDisabled = errors.New("llm service disabled: no API key configured")

// NarrativeGenerator produces free-text prose for search results and quotes.
// Output is opaque to the rest of the system; it is merged into responses
// without parsing or validation.
type NarrativeGenerator interface {
	RecommendationSummary(ctx context.Context, query string, products []*models.Product) (string, error)
	QuoteNarrative(ctx context.Context, customer models.CustomerInfo, req models.Requirements, selectedProducts []string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// LLMService talks to the OpenRouter chat-completions API.
type LLMService struct {
	cfg        *config.OpenRouterConfig
	httpClient *http.Client
	logger     *zap.Logger
	enabled    bool
}

func NewLLMService(cfg *config.OpenRouterConfig, logger *zap.Logger) *LLMService {
	enabled := cfg.APIKey != ""
	if !enabled {
		logger.Warn("OpenRouter API key not configured, narrative generation disabled")
	}
	return &LLMService{
		cfg:     cfg,
		logger:  logger,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// RecommendationSummary asks the model for prose advice on a search query,
// with the full catalog embedded in the system prompt.
func (s *LLMService) RecommendationSummary(ctx context.Context, query string, products []*models.Product) (string, error) {
	var prompt strings.Builder
	prompt.WriteString(`You are a US product-spec assistant for materials testing machines at Hitech Testing USA.
Your role is to analyze customer testing requirements and recommend 1-3 exact models from our product catalog.

Guidelines:
1. Always include capacity, accuracy, standards, power, and compatible accessories
2. If information is missing, ask 1 targeted question to clarify
3. End with clear CTAs for quotes and more information
4. Be precise and technical, but accessible
5. Focus on US standards compliance (ASTM, ISO, ASME)
6. Emphasize NIST-traceable calibration and US-based support

Product Catalog:
`)
	for _, p := range products {
		fmt.Fprintf(&prompt, "\n- %s (%s): %s", p.Title, p.ID, p.Description)
		fmt.Fprintf(&prompt, "\n  Category: %s", p.Category)
		fmt.Fprintf(&prompt, "\n  Capacity: %s", p.Capacity)
		fmt.Fprintf(&prompt, "\n  Accuracy: %s", p.Accuracy)
		fmt.Fprintf(&prompt, "\n  Standards: %s", p.RawStandards)
		fmt.Fprintf(&prompt, "\n  Price: %s\n", p.PriceHint)
	}

	messages := []chatMessage{
		{Role: "system", Content: prompt.String()},
		{Role: "user", Content: fmt.Sprintf("Customer requirement: %s", query)},
	}
	return s.chat(ctx, messages, s.cfg.Model)
}

// QuoteNarrative asks the model for the prose section of a quote.
func (s *LLMService) QuoteNarrative(ctx context.Context, customer models.CustomerInfo, req models.Requirements, selectedProducts []string) (string, error) {
	systemPrompt := `You are a professional sales engineer for Hitech Testing USA.
Create a detailed, professional quote for materials testing equipment.

Requirements:
1. Include base equipment, mandatory accessories, optional accessories
2. Include delivery terms, lead times, and warranty information
3. Format as a structured quote with clear line items and pricing
4. Use USD pricing and include professional terms and conditions
5. Emphasize NIST-traceable calibration and US-based support
6. Include installation and training services
7. Mention Net 30 payment terms and W-9 availability

Be professional, detailed, and customer-focused.`

	userPrompt := fmt.Sprintf(`Customer Information:
- Name: %s
- Company: %s
- Location: %s
- Email: %s

Testing Requirements:
- Material: %s
- Test Type: %s
- Capacity: %s
- Standards: %s
- Additional Requirements: %s

Selected Products: %s

Generate a professional quote with detailed line items, accessories, delivery terms, and total pricing.`,
		orNA(customer.Name), orNA(customer.Company), orNA(customer.City), orNA(customer.Email),
		orNA(req.Material), orNA(req.TestType), orNA(req.Capacity), orNA(req.Standard), orNA(req.Extras),
		strings.Join(selectedProducts, ", "))

	messages := []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}
	return s.chat(ctx, messages, s.cfg.QuoteModel)
}

func (s *LLMService) chat(ctx context.Context, messages []chatMessage, model string) (string, error) {
	if !s.enabled {
		return "", ErrLLMDisabled
	}

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("HTTP-Referer", s.cfg.Referer)
	req.Header.Set("X-Title", s.cfg.Title)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("OpenRouter request failed", zap.Error(err))
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		s.logger.Error("OpenRouter returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return "", fmt.Errorf("openrouter status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("openrouter returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
