package metrics

import (
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ProviderRequestDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "admin_provider_request_duration_seconds",
			Help:       "Duration of each data provider operation.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"verb", "resource"},
	)
	BackendRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_backend_requests_total",
			Help: "Total number of requests issued to the recruitment backend.",
		},
		[]string{"method"},
	)
	ApprovalsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_advertisement_approvals_total",
			Help: "Total number of advertisement approval state transitions.",
		},
		[]string{"action"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(ProviderRequestDuration)
	prometheus.MustRegister(BackendRequestsCounter)
	prometheus.MustRegister(ApprovalsCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
