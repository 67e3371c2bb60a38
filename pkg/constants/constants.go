// pkg/constants/constants.go
package constants

//============== DATES ==============

// DateLayout - формат календарной даты на входе и выходе API.
const DateLayout = "2006-01-02"

// DisplayDateLayout - формат даты для сообщений и алертов.
const DisplayDateLayout = "02/01/2006"

//============== EMPLOYEE STATUSES ==============

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

//============== EPI STATUSES ==============

const (
	EPIStatusActive   = "active"
	EPIStatusInactive = "inactive"
)

//============== DELIVERY STATUSES ==============

const (
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusPending   = "pending"
	DeliveryStatusReturned  = "returned"
)

//============== EPI CATEGORIES ==============

// EPICategories - закрытый список категорий каталога.
var EPICategories = []string{
	"Proteção da Cabeça",
	"Proteção dos Olhos",
	"Proteção das Mãos",
	"Proteção dos Pés",
	"Proteção Respiratória",
	"Proteção do Tronco",
	"Proteção Auditiva",
	"Proteção contra Quedas",
}

// IsEPICategory проверяет, входит ли категория в закрытый список.
func IsEPICategory(category string) bool {
	for _, c := range EPICategories {
		if c == category {
			return true
		}
	}
	return false
}

// Подсказки для форм и сидера. Поля сектор/должность - свободный текст.
var (
	Sectors   = []string{"Produção", "Manutenção", "Almoxarifado", "Administrativo", "Segurança", "Limpeza"}
	Positions = []string{"Operador de Máquina", "Técnico em Manutenção", "Auxiliar de Estoque", "Assistente Administrativo", "Vigilante", "Auxiliar de Limpeza"}
)

//============== STOCK & EXPIRATION ==============

const (
	StockSeverityOK  = "ok"
	StockSeverityLow = "low"

	StockLabelOK  = "Normal"
	StockLabelLow = "Low stock"
)

const (
	// ExpiringSoonDays - окно "скоро истекает" для карточки EPI и дашборда (граница включительно).
	ExpiringSoonDays = 30
	// CriticalExpirationDays - порог уровня "critical" в отчете по срокам.
	CriticalExpirationDays = 7
)

const (
	ExpirationStatusExpired     = "expired"
	ExpirationStatusCritical    = "critical"
	ExpirationStatusApproaching = "approaching"
	ExpirationStatusNormal      = "normal"
)

//============== REPORTS ==============

const (
	ReportKindDeliveries = "deliveries"
	ReportKindEmployees  = "employees"
	ReportKindStock      = "stock"
	ReportKindExpiration = "expiration"
)

var ReportKinds = []string{ReportKindDeliveries, ReportKindEmployees, ReportKindStock, ReportKindExpiration}

const (
	ExportFormatPDF  = "pdf"
	ExportFormatXLSX = "xlsx"
)

var ExportFormats = []string{ExportFormatPDF, ExportFormatXLSX}

// Периоды отчета по сотруднику.
const (
	Period30     = "30"
	Period60     = "60"
	Period90     = "90"
	PeriodCustom = "custom"
)

//============== DASHBOARD ==============

const (
	DashboardRecentDeliveries = 5

	AlertTypeWarning = "warning"
	AlertTypeDanger  = "danger"
)
