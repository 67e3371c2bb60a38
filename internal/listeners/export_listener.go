package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"epi-tracker/internal/events"
	"epi-tracker/internal/repositories"
	"epi-tracker/pkg/eventbus"
)

// ExportListener передает принятые запросы на экспорт в очередь внешнего генератора.
type ExportListener struct {
	queue  repositories.ExportQueueInterface
	logger *zap.Logger
}

func NewExportListener(queue repositories.ExportQueueInterface, logger *zap.Logger) *ExportListener {
	return &ExportListener{queue: queue, logger: logger}
}

func (l *ExportListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.ExportRequestedName, l.handleExportRequested)
	l.logger.Info("ExportListener подписан на событие 'report.export.requested'")
}

func (l *ExportListener) handleExportRequested(ctx context.Context, e eventbus.Event) error {
	event, ok := e.(events.ExportRequestedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T", e)
	}
	if err := l.queue.Push(ctx, event.Ticket); err != nil {
		return fmt.Errorf("не удалось поставить экспорт %s в очередь: %w", event.Ticket.Ticket, err)
	}
	l.logger.Info("Запрос на экспорт поставлен в очередь",
		zap.String("ticket", event.Ticket.Ticket),
		zap.String("kind", event.Ticket.ReportKind),
		zap.String("format", event.Ticket.Format),
	)
	return nil
}
