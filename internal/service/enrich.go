package service

import (
	"errors"
	"fmt"
	"html"
	"time"

	"github.com/nyaruka/phonenumbers"

	"smsbridge/internal/metrics"
	"smsbridge/internal/models"
)

// ProviderTimeLayout is the layout of message-timestamp, always UTC.
const ProviderTimeLayout = "2006-01-02 15:04:05"

const UnknownCountry = "UNKNOWN"

var ErrInvalidTimestamp = errors.New("invalid message timestamp")

// Enrich turns an inbound SMS into the notification pushed to the operator.
func Enrich(msg models.InboundMessage) (models.Notification, error) {
	ts, err := ParseProviderTime(msg.Timestamp)
	if err != nil {
		return models.Notification{}, err
	}
	cc := CountryCode(msg.To)
	return models.Notification{
		Title:     fmt.Sprintf("%s (To: %s/+%s)", msg.MSISDN, msg.To, msg.To),
		Body:      fmt.Sprintf("%s: %s", cc, html.EscapeString(msg.Text)),
		HTML:      true,
		Timestamp: ts,
	}, nil
}

func ParseProviderTime(s string) (time.Time, error) {
	ts, err := time.ParseInLocation(ProviderTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidTimestamp, s, err)
	}
	return ts, nil
}

// CountryCode resolves the region of a destination number given as E.164
// digits without the leading '+'. Anything unresolvable is UnknownCountry.
func CountryCode(number string) string {
	num, err := phonenumbers.Parse("+"+number, "")
	if err != nil {
		metrics.RecordCountryLookup(false)
		return UnknownCountry
	}
	region := phonenumbers.GetRegionCodeForNumber(num)
	if region == "" || region == "ZZ" {
		metrics.RecordCountryLookup(false)
		return UnknownCountry
	}
	metrics.RecordCountryLookup(true)
	return region
}
