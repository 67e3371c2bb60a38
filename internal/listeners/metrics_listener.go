package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"epi-tracker/internal/events"
	"epi-tracker/pkg/eventbus"
	"epi-tracker/pkg/metrics"
)

// MetricsListener переводит доменные события в счетчики Prometheus.
type MetricsListener struct {
	logger *zap.Logger
}

func NewMetricsListener(logger *zap.Logger) *MetricsListener {
	return &MetricsListener{logger: logger}
}

func (l *MetricsListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.DeliveryRecordedName, l.handleDeliveryRecorded)
	bus.Subscribe(events.ExportRequestedName, l.handleExportRequested)
	l.logger.Info("MetricsListener подписан на события выдач и экспорта")
}

func (l *MetricsListener) handleDeliveryRecorded(_ context.Context, e eventbus.Event) error {
	event, ok := e.(events.DeliveryRecordedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T", e)
	}
	metrics.DeliveriesRecorded.Inc()
	metrics.DeliveredUnits.Add(float64(event.Delivery.Quantity))
	return nil
}

func (l *MetricsListener) handleExportRequested(_ context.Context, e eventbus.Event) error {
	event, ok := e.(events.ExportRequestedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T", e)
	}
	metrics.ExportRequests.WithLabelValues(event.Ticket.ReportKind, event.Ticket.Format).Inc()
	return nil
}
