package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classchat_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "classchat_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Business metrics
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classchat_users_registered_total",
			Help: "Total users registered",
		},
	)

	MessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classchat_messages_sent_total",
			Help: "Total messages accepted for delivery",
		},
		[]string{"kind"}, // "room", "private" or "broadcast"
	)

	MessagesDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classchat_messages_delivered_total",
			Help: "Total messages handed to pollers",
		},
	)

	RoomsClosed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "classchat_rooms_closed_total",
			Help: "Total rooms closed by the teacher",
		},
	)
)
