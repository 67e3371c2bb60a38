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
	epiTable  = "epis"
	epiFields = "id, name, code, description, category, quantity, min_quantity, unit_price, has_expiration, expiration_date, status, registration_date"
)

type epiRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewEPIRepository(storage *pgxpool.Pool, logger *zap.Logger) EPIRepositoryInterface {
	return &epiRepository{storage: storage, logger: logger}
}

func (r *epiRepository) scanRow(row pgx.Row) (*entities.EPI, error) {
	var e entities.EPI
	err := row.Scan(
		&e.ID, &e.Name, &e.Code, &e.Description, &e.Category,
		&e.Quantity, &e.MinQuantity, &e.UnitPrice,
		&e.HasExpiration, &e.ExpirationDate, &e.Status, &e.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования epis: %w", err)
	}
	return &e, nil
}

func (r *epiRepository) findOne(ctx context.Context, where sq.Sqlizer) (*entities.EPI, error) {
	query, args, err := psql.Select(epiFields).From(epiTable).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для findOne: %w", err)
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *epiRepository) Create(ctx context.Context, e entities.EPI) (entities.EPI, error) {
	query, args, err := psql.Insert(epiTable).
		Columns("name", "code", "description", "category", "quantity", "min_quantity",
			"unit_price", "has_expiration", "expiration_date", "status", "registration_date").
		Values(e.Name, e.Code, e.Description, e.Category, e.Quantity, e.MinQuantity,
			e.UnitPrice, e.HasExpiration, e.ExpirationDate, e.Status, e.RegistrationDate).
		Suffix("RETURNING " + epiFields).
		ToSql()
	if err != nil {
		return entities.EPI{}, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	created, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return entities.EPI{}, duplicateCodeError(e.Code)
		}
		return entities.EPI{}, fmt.Errorf("ошибка создания EPI: %w", err)
	}
	return *created, nil
}

func (r *epiRepository) Update(ctx context.Context, e entities.EPI) (entities.EPI, error) {
	query, args, err := psql.Update(epiTable).
		Set("name", e.Name).
		Set("code", e.Code).
		Set("description", e.Description).
		Set("category", e.Category).
		Set("quantity", e.Quantity).
		Set("min_quantity", e.MinQuantity).
		Set("unit_price", e.UnitPrice).
		Set("has_expiration", e.HasExpiration).
		Set("expiration_date", e.ExpirationDate).
		Set("status", e.Status).
		Set("registration_date", e.RegistrationDate).
		Where(sq.Eq{"id": e.ID}).
		Suffix("RETURNING " + epiFields).
		ToSql()
	if err != nil {
		return entities.EPI{}, fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	updated, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return entities.EPI{}, duplicateCodeError(e.Code)
		}
		return entities.EPI{}, err
	}
	return *updated, nil
}

func (r *epiRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(epiTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка удаления EPI: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *epiRepository) FindByID(ctx context.Context, id uint64) (*entities.EPI, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *epiRepository) FindByCode(ctx context.Context, code string) (*entities.EPI, error) {
	return r.findOne(ctx, sq.Expr("UPPER(code) = UPPER(?)", code))
}

func (r *epiRepository) Search(ctx context.Context, term string) ([]entities.EPI, error) {
	builder := psql.Select(epiFields).From(epiTable).OrderBy("id ASC")
	if cond := searchCondition(term, "name", "code", "category"); cond != nil {
		builder = builder.Where(cond)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Search: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска EPI: %w", err)
	}
	defer rows.Close()

	list := make([]entities.EPI, 0)
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}
