// Package metrics - доменные счетчики Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DeliveriesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "epi_deliveries_recorded_total",
		Help: "Количество зарегистрированных выдач EPI",
	})

	DeliveredUnits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "epi_delivered_units_total",
		Help: "Суммарное количество выданных единиц EPI",
	})

	ExportRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "epi_export_requests_total",
		Help: "Запросы на экспорт отчетов",
	}, []string{"kind", "format"})
)
