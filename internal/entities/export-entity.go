package entities

import "time"

// ExportTicket - принятый запрос на выгрузку отчета. Сам файл формирует внешний обработчик очереди.
type ExportTicket struct {
	Ticket      string    `json:"ticket"`
	ReportKind  string    `json:"report_kind"`
	Format      string    `json:"format"`
	RequestedAt time.Time `json:"requested_at"`
}
