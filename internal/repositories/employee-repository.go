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
	employeeTable  = "employees"
	employeeFields = "id, name, cpf, sector, position, status, registration_date"
)

type employeeRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &employeeRepository{storage: storage, logger: logger}
}

// scanRow - сканирование одной строки employees
func (r *employeeRepository) scanRow(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(&e.ID, &e.Name, &e.CPF, &e.Sector, &e.Position, &e.Status, &e.RegistrationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования employees: %w", err)
	}
	return &e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	query, args, err := psql.Insert(employeeTable).
		Columns("name", "cpf", "sector", "position", "status", "registration_date").
		Values(e.Name, e.CPF, e.Sector, e.Position, e.Status, e.RegistrationDate).
		Suffix("RETURNING " + employeeFields).
		ToSql()
	if err != nil {
		return entities.Employee{}, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	created, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return entities.Employee{}, fmt.Errorf("ошибка создания сотрудника: %w", err)
	}
	return *created, nil
}

func (r *employeeRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	query, args, err := psql.Update(employeeTable).
		Set("name", e.Name).
		Set("cpf", e.CPF).
		Set("sector", e.Sector).
		Set("position", e.Position).
		Set("status", e.Status).
		Set("registration_date", e.RegistrationDate).
		Where(sq.Eq{"id": e.ID}).
		Suffix("RETURNING " + employeeFields).
		ToSql()
	if err != nil {
		return entities.Employee{}, fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	updated, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return entities.Employee{}, err
	}
	return *updated, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(employeeTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка удаления сотрудника: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id uint64) (*entities.Employee, error) {
	query, args, err := psql.Select(employeeFields).From(employeeTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *employeeRepository) Search(ctx context.Context, term string) ([]entities.Employee, error) {
	builder := psql.Select(employeeFields).From(employeeTable).OrderBy("id ASC")
	if cond := searchCondition(term, "name", "cpf", "sector"); cond != nil {
		builder = builder.Where(cond)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Search: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска сотрудников: %w", err)
	}
	defer rows.Close()

	list := make([]entities.Employee, 0)
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}
