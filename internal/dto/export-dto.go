package dto

type ExportRequestDTO struct {
	ReportKind string `json:"report_kind" validate:"required"`
	Format     string `json:"format"      validate:"required"`
}

// ExportTicketDTO - подтверждение приема запроса; сам файл формирует внешний обработчик очереди.
type ExportTicketDTO struct {
	Ticket      string `json:"ticket"`
	ReportKind  string `json:"report_kind"`
	Format      string `json:"format"`
	RequestedAt string `json:"requested_at"`
	Message     string `json:"message"`
}
