package service

import (
	"html"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smsbridge/internal/models"
)

func TestCountryCode(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"14155552671", "US"},
		{"442071234567", "GB"},
		{"33142685300", "FR"},
		{"", UnknownCountry},
		{"abc", UnknownCountry},
		{"not-a-number", UnknownCountry},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, CountryCode(tt.number))
		})
	}
}

func TestEnrich(t *testing.T) {
	msg := models.InboundMessage{
		MSISDN:    "15551234567",
		To:        "442071234567",
		Text:      "Hello <world>",
		Timestamp: "2023-05-01 10:00:00",
	}

	n, err := Enrich(msg)
	require.NoError(t, err)
	assert.Equal(t, "15551234567 (To: 442071234567/+442071234567)", n.Title)
	assert.Equal(t, "GB: Hello &lt;world&gt;", n.Body)
	assert.True(t, n.HTML)
	assert.True(t, n.Timestamp.Equal(time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, n.Timestamp.Location())
}

func TestEnrichUnknownDestination(t *testing.T) {
	n, err := Enrich(models.InboundMessage{MSISDN: "1", To: "shortcode", Text: "hi", Timestamp: "2023-05-01 10:00:00"})
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN: hi", n.Body)
}

func TestEnrichEscapesText(t *testing.T) {
	texts := []string{
		`<script>alert("x")</script>`,
		`Tom & Jerry's`,
		`a > b && c < d`,
		`plain text`,
	}
	for _, text := range texts {
		n, err := Enrich(models.InboundMessage{MSISDN: "1", To: "14155552671", Text: text, Timestamp: "2023-05-01 10:00:00"})
		require.NoError(t, err)

		escaped := strings.TrimPrefix(n.Body, "US: ")
		assert.NotContains(t, escaped, "<")
		assert.NotContains(t, escaped, ">")
		assert.NotContains(t, escaped, `"`)
		assert.NotContains(t, escaped, "'")
		assert.Equal(t, text, html.UnescapeString(escaped))
	}
}

func TestEnrichInvalidTimestamp(t *testing.T) {
	for _, ts := range []string{"", "2023-05-01T10:00:00Z", "01/05/2023 10:00"} {
		_, err := Enrich(models.InboundMessage{MSISDN: "1", To: "14155552671", Timestamp: ts})
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	}
}
