package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "metryka"

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Chamadas feitas às APIs de anúncios, por provedor, operação e status",
	}, []string{"provider", "operation", "status"})

	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Latência das chamadas às APIs de anúncios",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider", "operation"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP atendidas, por rota e código",
	}, []string{"route", "code"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latência das requisições HTTP por rota",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	ClinicWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clinic_writes_total",
		Help:      "Escritas no cadastro de clínicas, por operação e resultado",
	}, []string{"operation", "result"})
)

// ObserveUpstream registra uma chamada a um provedor. statusCode zero indica
// falha de rede, sem resposta.
func ObserveUpstream(provider, operation string, statusCode int, started time.Time) {
	status := "network_error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	UpstreamRequests.WithLabelValues(provider, operation, status).Inc()
	UpstreamLatency.WithLabelValues(provider, operation).Observe(time.Since(started).Seconds())
}

// InstrumentRoute mede contagem e latência de uma rota nomeada
func InstrumentRoute(route string, next http.Handler) http.Handler {
	counter := HTTPRequests.MustCurryWith(prometheus.Labels{"route": route})
	histogram := HTTPLatency.MustCurryWith(prometheus.Labels{"route": route})

	return promhttp.InstrumentHandlerCounter(counter,
		promhttp.InstrumentHandlerDuration(histogram, next))
}

// Handler expõe o registro padrão
func Handler() http.Handler {
	return promhttp.Handler()
}
