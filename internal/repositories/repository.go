package repositories

import (
	"context"

	"epi-tracker/internal/entities"
)

// Контракты хранилища. Реализации: in-memory (по умолчанию) и Postgres.
// Возвращаются копии, изменение результата не влияет на хранилище.

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*entities.Employee, error)
	// Search - без учета регистра по имени, CPF и сектору; пустой term - все записи.
	Search(ctx context.Context, term string) ([]entities.Employee, error)
}

type EPIRepositoryInterface interface {
	// Create и Update отклоняют дубликат кода ошибкой ValidationError.
	Create(ctx context.Context, e entities.EPI) (entities.EPI, error)
	Update(ctx context.Context, e entities.EPI) (entities.EPI, error)
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*entities.EPI, error)
	FindByCode(ctx context.Context, code string) (*entities.EPI, error)
	// Search - по названию, коду и категории.
	Search(ctx context.Context, term string) ([]entities.EPI, error)
}

type DeliveryRepositoryInterface interface {
	Create(ctx context.Context, d entities.Delivery) (entities.Delivery, error)
	FindByID(ctx context.Context, id uint64) (*entities.Delivery, error)
	// Search - по имени сотрудника, названию EPI и ответственному; новые выдачи первыми.
	Search(ctx context.Context, term string) ([]entities.Delivery, error)
}

// ExportQueueInterface - очередь запросов на экспорт для внешнего генератора файлов.
type ExportQueueInterface interface {
	Push(ctx context.Context, ticket entities.ExportTicket) error
}
