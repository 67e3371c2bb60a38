package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/internal/entities"
	"epi-tracker/internal/repositories"
	"epi-tracker/pkg/constants"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/utils"
)

const expiredDaysLabel = "Expired"

// ReportServiceInterface - отчеты только читают коллекции и пересчитываются при каждом запросе.
type ReportServiceInterface interface {
	DeliveryReport(ctx context.Context, filter entities.DeliveryReportFilter) ([]dto.DeliveryReportRowDTO, error)
	EmployeeReport(ctx context.Context, filter entities.EmployeeReportFilter) ([]dto.EmployeeReportRowDTO, error)
	StockReport(ctx context.Context) ([]dto.StockReportRowDTO, error)
	ExpirationReport(ctx context.Context) ([]dto.ExpirationReportRowDTO, error)
}

type reportService struct {
	deliveryRepo repositories.DeliveryRepositoryInterface
	epiRepo      repositories.EPIRepositoryInterface
	clock        Clock
	logger       *zap.Logger
}

func NewReportService(
	deliveryRepo repositories.DeliveryRepositoryInterface,
	epiRepo repositories.EPIRepositoryInterface,
	clock Clock,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{
		deliveryRepo: deliveryRepo,
		epiRepo:      epiRepo,
		clock:        clockOrDefault(clock),
		logger:       logger,
	}
}

func (s *reportService) ledger(ctx context.Context) ([]entities.Delivery, error) {
	list, err := s.deliveryRepo.Search(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить журнал выдач: %w", err)
	}
	return list, nil
}

func (s *reportService) catalog(ctx context.Context) ([]entities.EPI, error) {
	list, err := s.epiRepo.Search(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить каталог EPI: %w", err)
	}
	return list, nil
}

// DeliveryReport - выдачи в диапазоне дат (границы включительно) в порядке журнала.
func (s *reportService) DeliveryReport(ctx context.Context, filter entities.DeliveryReportFilter) ([]dto.DeliveryReportRowDTO, error) {
	deliveries, err := s.ledger(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.DeliveryReportRowDTO, 0, len(deliveries))
	for _, d := range deliveries {
		if !utils.InDateRange(d.DeliveryDate, filter.DateFrom, filter.DateTo) {
			continue
		}
		rows = append(rows, dto.DeliveryReportRowDTO{
			DeliveryID:  d.ID,
			Date:        utils.FormatDate(d.DeliveryDate),
			Employee:    d.EmployeeName,
			EPI:         d.EPIName,
			Quantity:    d.Quantity,
			Responsible: d.ResponsiblePerson,
		})
	}
	return rows, nil
}

// periodRange переводит период отчета по сотруднику в диапазон дат.
// 30/60/90 - от ref минус N дней без верхней границы; custom - явные даты; пусто - без ограничений.
func periodRange(filter entities.EmployeeReportFilter, ref time.Time) (from, to *time.Time, err error) {
	switch filter.Period {
	case "":
		return nil, nil, nil
	case constants.Period30, constants.Period60, constants.Period90:
		days, _ := strconv.Atoi(filter.Period)
		start := utils.AddDays(ref, -days)
		return &start, nil, nil
	case constants.PeriodCustom:
		return filter.DateFrom, filter.DateTo, nil
	default:
		return nil, nil, apperrors.NewValidationError("period", "неизвестный период %q", filter.Period)
	}
}

func (s *reportService) EmployeeReport(ctx context.Context, filter entities.EmployeeReportFilter) ([]dto.EmployeeReportRowDTO, error) {
	from, to, err := periodRange(filter, s.clock())
	if err != nil {
		return nil, err
	}
	deliveries, err := s.ledger(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.EmployeeReportRowDTO, 0)
	for _, d := range deliveries {
		if filter.EmployeeID != nil && d.EmployeeID != *filter.EmployeeID {
			continue
		}
		if !utils.InDateRange(d.DeliveryDate, from, to) {
			continue
		}
		rows = append(rows, dto.EmployeeReportRowDTO{
			DeliveryID:     d.ID,
			EmployeeID:     d.EmployeeID,
			Employee:       d.EmployeeName,
			EPI:            d.EPIName,
			DeliveryDate:   utils.FormatDate(d.DeliveryDate),
			Quantity:       d.Quantity,
			ExpirationDate: utils.FormatOptionalDate(d.ExpirationDate),
			Responsible:    d.ResponsiblePerson,
		})
	}
	return rows, nil
}

// averageMonthly - выдано всего, деленное на число полных месяцев с регистрации (не меньше одного).
func averageMonthly(total int, registered, ref time.Time) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	months := utils.MonthsBetween(registered, ref)
	if months < 1 {
		months = 1
	}
	return decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(months)))
}

func (s *reportService) stockItems(ctx context.Context, ref time.Time) ([]entities.StockReportItem, error) {
	items, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	deliveries, err := s.ledger(ctx)
	if err != nil {
		return nil, err
	}

	delivered := make(map[uint64]int, len(items))
	for _, d := range deliveries {
		delivered[d.EPIID] += d.Quantity
	}

	out := make([]entities.StockReportItem, 0, len(items))
	for _, item := range items {
		total := delivered[item.ID]
		out = append(out, entities.StockReportItem{
			EPIID:          item.ID,
			EPI:            item.Name,
			Code:           item.Code,
			CurrentStock:   item.Quantity,
			MinStock:       item.MinQuantity,
			TotalDelivered: total,
			AverageMonthly: averageMonthly(total, item.RegistrationDate, ref),
			Status:         entities.ComputeStockStatus(item),
		})
	}
	return out, nil
}

func (s *reportService) StockReport(ctx context.Context) ([]dto.StockReportRowDTO, error) {
	items, err := s.stockItems(ctx, s.clock())
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StockReportRowDTO, 0, len(items))
	for _, i := range items {
		rows = append(rows, dto.StockReportRowDTO{
			EPIID:          i.EPIID,
			EPI:            i.EPI,
			Code:           i.Code,
			CurrentStock:   i.CurrentStock,
			MinStock:       i.MinStock,
			TotalDelivered: i.TotalDelivered,
			AverageMonthly: i.AverageMonthly.StringFixed(2),
			Status:         dto.StockStatusDTO{Label: i.Status.Label, Severity: i.Status.Severity},
		})
	}
	return rows, nil
}

func (s *reportService) expirationItems(ctx context.Context, ref time.Time) ([]entities.ExpirationReportItem, error) {
	items, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.ExpirationReportItem, 0)
	for _, item := range items {
		days, ok := entities.DaysToExpire(item, ref)
		if !ok {
			continue
		}
		out = append(out, entities.ExpirationReportItem{
			EPIID:          item.ID,
			EPI:            item.Name,
			Code:           item.Code,
			ExpirationDate: *item.ExpirationDate,
			DaysToExpire:   days,
			CurrentStock:   item.Quantity,
			Status:         entities.ExpirationTier(days),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpirationDate.Before(out[j].ExpirationDate)
	})
	return out, nil
}

// ExpirationReport - позиции с отслеживаемым сроком, от ближайшего срока к дальнему.
func (s *reportService) ExpirationReport(ctx context.Context) ([]dto.ExpirationReportRowDTO, error) {
	items, err := s.expirationItems(ctx, s.clock())
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ExpirationReportRowDTO, 0, len(items))
	for _, i := range items {
		row := dto.ExpirationReportRowDTO{
			EPIID:          i.EPIID,
			EPI:            i.EPI,
			Code:           i.Code,
			ExpirationDate: utils.FormatDate(i.ExpirationDate),
			CurrentStock:   i.CurrentStock,
			Status:         i.Status,
		}
		if i.Expired() {
			row.DaysLabel = expiredDaysLabel
		} else {
			days := i.DaysToExpire
			row.DaysToExpire = &days
			row.DaysLabel = fmt.Sprintf("%d days", days)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
