package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"epi-tracker/internal/entities"
	apperrors "epi-tracker/pkg/errors"
)

const (
	deliveryTable  = "deliveries"
	deliveryFields = "id, employee_id, employee_name, epi_id, epi_name, quantity, delivery_date, expiration_date, responsible_person, status, observations, created_at"
)

type deliveryRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewDeliveryRepository(storage *pgxpool.Pool, logger *zap.Logger) DeliveryRepositoryInterface {
	return &deliveryRepository{storage: storage, logger: logger}
}

func (r *deliveryRepository) scanRow(row pgx.Row) (*entities.Delivery, error) {
	var d entities.Delivery
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.EmployeeName, &d.EPIID, &d.EPIName, &d.Quantity,
		&d.DeliveryDate, &d.ExpirationDate, &d.ResponsiblePerson, &d.Status, &d.Observations, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования deliveries: %w", err)
	}
	return &d, nil
}

func (r *deliveryRepository) Create(ctx context.Context, d entities.Delivery) (entities.Delivery, error) {
	query, args, err := psql.Insert(deliveryTable).
		Columns("employee_id", "employee_name", "epi_id", "epi_name", "quantity", "delivery_date",
			"expiration_date", "responsible_person", "status", "observations", "created_at").
		Values(d.EmployeeID, d.EmployeeName, d.EPIID, d.EPIName, d.Quantity, d.DeliveryDate,
			d.ExpirationDate, d.ResponsiblePerson, d.Status, d.Observations, sq.Expr("NOW()")).
		Suffix("RETURNING " + deliveryFields).
		ToSql()
	if err != nil {
		return entities.Delivery{}, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	created, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return entities.Delivery{}, fmt.Errorf("ошибка записи выдачи: %w", err)
	}
	return *created, nil
}

func (r *deliveryRepository) FindByID(ctx context.Context, id uint64) (*entities.Delivery, error) {
	query, args, err := psql.Select(deliveryFields).From(deliveryTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

// Search: порядок журнала - по убыванию id, самые новые выдачи первыми.
func (r *deliveryRepository) Search(ctx context.Context, term string) ([]entities.Delivery, error) {
	builder := psql.Select(deliveryFields).From(deliveryTable).OrderBy("id DESC")
	if cond := searchCondition(term, "employee_name", "epi_name", "responsible_person"); cond != nil {
		builder = builder.Where(cond)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Search: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска выдач: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Delivery, 0)
	for rows.Next() {
		d, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *d)
	}
	return list, rows.Err()
}
