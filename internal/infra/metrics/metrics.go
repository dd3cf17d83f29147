// Package metrics concentra os contadores de negócio expostos em /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dealsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_deals_created_total",
			Help: "Total number of deals created, by initial stage",
		},
		[]string{"fase"},
	)

	dealsWon = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_deals_won_total",
			Help: "Total number of deals moved to fechado_ganho",
		},
	)

	dealsWonValue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_deals_won_value_total",
			Help: "Sum of predicted value of won deals",
		},
	)

	dashboardRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_dashboard_renders_total",
			Help: "Total number of dashboard renders",
		},
		[]string{"painel"},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service", "operation"},
	)
)

func RecordDealCreated(fase string) {
	dealsCreated.WithLabelValues(fase).Inc()
}

func RecordDealWon(valor float64) {
	dealsWon.Inc()
	if valor > 0 {
		dealsWonValue.Add(valor)
	}
}

func RecordDashboardRender(painel string) {
	dashboardRenders.WithLabelValues(painel).Inc()
}

func RecordIntegrationError(service, operation string) {
	integrationErrors.WithLabelValues(service, operation).Inc()
}
