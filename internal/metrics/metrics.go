package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smsbridge_messages_received_total",
		Help: "Total number of inbound SMS webhooks accepted for processing.",
	})

	MessagesDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smsbridge_messages_duplicate_total",
		Help: "Total number of provider redeliveries dropped before delivery.",
	})

	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smsbridge_deliveries_total",
		Help: "Total number of push delivery attempts by outcome.",
	}, []string{"status"})

	CountryLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smsbridge_country_lookups_total",
		Help: "Total number of destination country lookups by result.",
	}, []string{"result"})
)

func RecordDelivery(err error) {
	status := "delivered"
	if err != nil {
		status = "failed"
	}
	Deliveries.WithLabelValues(status).Inc()
}

func RecordCountryLookup(resolved bool) {
	result := "resolved"
	if !resolved {
		result = "unknown"
	}
	CountryLookups.WithLabelValues(result).Inc()
}
