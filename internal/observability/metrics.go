package observability

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danmuck/vertxdump/internal/wire"
)

var (
	registerOnce sync.Once

	framesDecoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vertxdump",
			Subsystem: "decode",
			Name:      "frames_total",
			Help:      "Frames decoded, by body codec and routing kind.",
		},
		[]string{"codec", "kind"},
	)
	pongsSeen = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vertxdump",
			Subsystem: "decode",
			Name:      "pongs_total",
			Help:      "Keep-alive pong frames seen.",
		},
	)
	decodeFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vertxdump",
			Subsystem: "decode",
			Name:      "failures_total",
			Help:      "Decode attempts that did not produce a message.",
		},
		[]string{"reason"},
	)
	anomaliesSeen = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vertxdump",
			Subsystem: "decode",
			Name:      "anomalies_total",
			Help:      "Non-fatal irregularities reported on decoded frames.",
		},
		[]string{"kind"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(framesDecoded, pongsSeen, decodeFailures, anomaliesSeen)
	})
}

func ObserveMessage(msg *wire.Message) {
	RegisterMetrics()
	if msg == nil {
		return
	}
	if msg.Pong {
		pongsSeen.Inc()
		return
	}
	framesDecoded.WithLabelValues(msg.Codec.String(), msg.Kind.String()).Inc()
	for _, a := range msg.Anomalies {
		anomaliesSeen.WithLabelValues(a.Kind.String()).Inc()
	}
}

func ObserveFailure(err error) {
	RegisterMetrics()
	reason := "other"
	if errors.Is(err, wire.ErrTruncated) {
		reason = "truncated"
	} else if errors.Is(err, wire.ErrOutOfBounds) {
		reason = "out-of-bounds"
	}
	decodeFailures.WithLabelValues(reason).Inc()
}
