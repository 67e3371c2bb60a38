package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/entities"
	"epi-tracker/internal/events"
	"epi-tracker/pkg/constants"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/eventbus"
)

type ExportServiceInterface interface {
	RequestExport(ctx context.Context, d dto.ExportRequestDTO) (*dto.ExportTicketDTO, error)
}

// ExportService только подтверждает запрос: файл не формируется, тикет уходит в очередь через шину событий.
type ExportService struct {
	bus    *eventbus.Bus
	now    func() time.Time
	logger *zap.Logger
}

func NewExportService(bus *eventbus.Bus, logger *zap.Logger) *ExportService {
	return &ExportService{bus: bus, now: time.Now, logger: logger}
}

func (s *ExportService) RequestExport(ctx context.Context, d dto.ExportRequestDTO) (*dto.ExportTicketDTO, error) {
	kind := strings.ToLower(strings.TrimSpace(d.ReportKind))
	format := strings.ToLower(strings.TrimSpace(d.Format))

	if !slices.Contains(constants.ReportKinds, kind) {
		return nil, apperrors.NewValidationError("report_kind", "неизвестный тип отчета %q", d.ReportKind)
	}
	if !slices.Contains(constants.ExportFormats, format) {
		return nil, apperrors.NewValidationError("format", "неизвестный формат экспорта %q", d.Format)
	}

	ticket := entities.ExportTicket{
		Ticket:      uuid.NewString(),
		ReportKind:  kind,
		Format:      format,
		RequestedAt: s.now().UTC(),
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.ExportRequestedEvent{Ticket: ticket})
	}
	s.logger.Info("Принят запрос на экспорт",
		zap.String("ticket", ticket.Ticket),
		zap.String("kind", kind),
		zap.String("format", format),
	)

	return &dto.ExportTicketDTO{
		Ticket:      ticket.Ticket,
		ReportKind:  ticket.ReportKind,
		Format:      ticket.Format,
		RequestedAt: ticket.RequestedAt.Format(time.RFC3339),
		Message:     fmt.Sprintf("Отчет %s в формате %s поставлен в очередь на выгрузку", kind, strings.ToUpper(format)),
	}, nil
}
