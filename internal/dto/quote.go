package dto

import "hitech-quote/internal/models"

// QuoteRequest uses pointers for the required sections so handlers can tell
// a missing field from an empty one; the fields inside are all optional.
type QuoteRequest struct {
	Customer         *models.CustomerInfo `json:"customer"`
	Requirements     *models.Requirements `json:"requirements"`
	SelectedProducts []string             `json:"selectedProducts"`
	IncludeOptional  bool                 `json:"includeOptional,omitempty"`
}

type QuoteResponse struct {
	Success bool          `json:"success"`
	Quote   *models.Quote `json:"quote"`
}

type SendQuoteRequest struct {
	QuoteID string `json:"quote_id"`
}

type SendQuoteResult struct {
	QuoteID        string `json:"quote_id"`
	EmailSent      bool   `json:"email_sent"`
	CRMLeadCreated bool   `json:"crm_lead_created"`
	SMSSent        bool   `json:"sms_sent"`
	Timestamp      string `json:"timestamp"`
}

type SendQuoteResponse struct {
	Success bool            `json:"success"`
	Result  SendQuoteResult `json:"result"`
}
