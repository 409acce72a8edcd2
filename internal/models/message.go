package models

import "time"

// InboundMessage is the JSON body the provider POSTs for each inbound SMS.
// An empty sender or destination is still delivered; the destination then
// resolves to an unknown country.
type InboundMessage struct {
	MSISDN    string `json:"msisdn"`
	To        string `json:"to"`
	Text      string `json:"text"`
	Timestamp string `json:"message-timestamp" binding:"required,datetime=2006-01-02 15:04:05"`
	MessageID string `json:"messageId,omitempty"`
	Type      string `json:"type,omitempty"`
	Keyword   string `json:"keyword,omitempty"`
	APIKey    string `json:"api-key,omitempty"`
}

type Notification struct {
	Title     string    `json:"title"`
	Body      string    `json:"message"`
	HTML      bool      `json:"html"`
	Timestamp time.Time `json:"timestamp"`
}
