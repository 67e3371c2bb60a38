package listeners

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"epi-tracker/internal/entities"
	"epi-tracker/internal/events"
	"epi-tracker/internal/repositories"
	"epi-tracker/pkg/eventbus"
	"epi-tracker/pkg/metrics"
)

type failingQueue struct{}

func (failingQueue) Push(context.Context, entities.ExportTicket) error {
	return errors.New("redis недоступен")
}

type otherEvent struct{}

func (otherEvent) Name() string { return events.ExportRequestedName }

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestExportListener_PushesTicketToQueue(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	queue := repositories.NewMemoryExportQueue(10)
	NewExportListener(queue, zap.NewNop()).Register(bus)

	ticket := entities.ExportTicket{Ticket: "t-1", ReportKind: "stock", Format: "pdf", RequestedAt: time.Now()}
	bus.Publish(context.Background(), events.ExportRequestedEvent{Ticket: ticket})
	bus.Wait()

	pending := queue.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "t-1", pending[0].Ticket)
	assert.Equal(t, "stock", pending[0].ReportKind)
}

func TestExportListener_Errors(t *testing.T) {
	l := NewExportListener(failingQueue{}, zap.NewNop())

	err := l.handleExportRequested(context.Background(), events.ExportRequestedEvent{Ticket: entities.ExportTicket{Ticket: "t-2"}})
	assert.ErrorContains(t, err, "t-2")

	err = l.handleExportRequested(context.Background(), otherEvent{})
	assert.ErrorContains(t, err, "неожиданный тип события")
}

func TestMetricsListener_CountsDeliveriesAndExports(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	NewMetricsListener(zap.NewNop()).Register(bus)

	recorded := counterValue(t, metrics.DeliveriesRecorded)
	units := counterValue(t, metrics.DeliveredUnits)
	exports := counterValue(t, metrics.ExportRequests.WithLabelValues("deliveries", "xlsx"))

	bus.Publish(context.Background(), events.DeliveryRecordedEvent{Delivery: entities.Delivery{ID: 1, Quantity: 4}})
	bus.Publish(context.Background(), events.ExportRequestedEvent{Ticket: entities.ExportTicket{ReportKind: "deliveries", Format: "xlsx"}})
	bus.Wait()

	assert.Equal(t, recorded+1, counterValue(t, metrics.DeliveriesRecorded))
	assert.Equal(t, units+4, counterValue(t, metrics.DeliveredUnits))
	assert.Equal(t, exports+1, counterValue(t, metrics.ExportRequests.WithLabelValues("deliveries", "xlsx")))
}
