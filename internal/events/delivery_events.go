package events

import "epi-tracker/internal/entities"

const (
	DeliveryRecordedName = "delivery.recorded"
	ExportRequestedName  = "report.export.requested"
)

// DeliveryRecordedEvent - выдача записана в журнал.
type DeliveryRecordedEvent struct {
	Delivery entities.Delivery
}

// Name - реализуем интерфейс eventbus.Event
func (e DeliveryRecordedEvent) Name() string {
	return DeliveryRecordedName
}

// ExportRequestedEvent - принят запрос на выгрузку отчета.
type ExportRequestedEvent struct {
	Ticket entities.ExportTicket
}

func (e ExportRequestedEvent) Name() string {
	return ExportRequestedName
}
