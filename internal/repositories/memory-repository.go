package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"epi-tracker/internal/entities"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/utils"
)

// In-memory коллекции. Одна RWMutex на коллекцию сериализует запись,
// читатели получают копии последнего зафиксированного состояния.
// Идентификаторы выдаются последовательно и не переиспользуются после удаления.

// ============================================================
// EMPLOYEES
// ============================================================

type memoryEmployeeRepository struct {
	mu     sync.RWMutex
	items  []entities.Employee
	nextID uint64
}

func NewMemoryEmployeeRepository() EmployeeRepositoryInterface {
	return &memoryEmployeeRepository{nextID: 1}
}

func (r *memoryEmployeeRepository) Create(_ context.Context, e entities.Employee) (entities.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	r.items = append(r.items, e)
	return e, nil
}

func (r *memoryEmployeeRepository) Update(_ context.Context, e entities.Employee) (entities.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == e.ID {
			r.items[i] = e
			return e, nil
		}
	}
	return entities.Employee{}, apperrors.ErrNotFound
}

func (r *memoryEmployeeRepository) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *memoryEmployeeRepository) FindByID(_ context.Context, id uint64) (*entities.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryEmployeeRepository) Search(_ context.Context, term string) ([]entities.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Employee, 0, len(r.items))
	for _, e := range r.items {
		if utils.MatchesAny(term, e.Name, e.CPF, e.Sector) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ============================================================
// EPI
// ============================================================

type memoryEPIRepository struct {
	mu     sync.RWMutex
	items  []entities.EPI
	nextID uint64
}

func NewMemoryEPIRepository() EPIRepositoryInterface {
	return &memoryEPIRepository{nextID: 1}
}

// codeTakenLocked - вызывать под блокировкой. exceptID исключает саму обновляемую запись.
func (r *memoryEPIRepository) codeTakenLocked(code string, exceptID uint64) bool {
	for _, item := range r.items {
		if item.ID != exceptID && strings.EqualFold(item.Code, code) {
			return true
		}
	}
	return false
}

func (r *memoryEPIRepository) Create(_ context.Context, e entities.EPI) (entities.EPI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.codeTakenLocked(e.Code, 0) {
		return entities.EPI{}, duplicateCodeError(e.Code)
	}
	e.ID = r.nextID
	r.nextID++
	r.items = append(r.items, e.Clone())
	return e.Clone(), nil
}

func (r *memoryEPIRepository) Update(_ context.Context, e entities.EPI) (entities.EPI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == e.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.EPI{}, apperrors.ErrNotFound
	}
	if r.codeTakenLocked(e.Code, e.ID) {
		return entities.EPI{}, duplicateCodeError(e.Code)
	}
	r.items[idx] = e.Clone()
	return e.Clone(), nil
}

func (r *memoryEPIRepository) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *memoryEPIRepository) FindByID(_ context.Context, id uint64) (*entities.EPI, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.ID == id {
			found := e.Clone()
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryEPIRepository) FindByCode(_ context.Context, code string) (*entities.EPI, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if strings.EqualFold(e.Code, code) {
			found := e.Clone()
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryEPIRepository) Search(_ context.Context, term string) ([]entities.EPI, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.EPI, 0, len(r.items))
	for _, e := range r.items {
		if utils.MatchesAny(term, e.Name, e.Code, e.Category) {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}

// ============================================================
// DELIVERIES
// ============================================================

type memoryDeliveryRepository struct {
	mu     sync.RWMutex
	items  []entities.Delivery // новые в начале
	nextID uint64
	now    func() time.Time
}

func NewMemoryDeliveryRepository() DeliveryRepositoryInterface {
	return &memoryDeliveryRepository{nextID: 1, now: time.Now}
}

func (r *memoryDeliveryRepository) Create(_ context.Context, d entities.Delivery) (entities.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.ID = r.nextID
	r.nextID++
	if d.CreatedAt.IsZero() {
		d.CreatedAt = r.now()
	}
	r.items = append([]entities.Delivery{d.Clone()}, r.items...)
	return d.Clone(), nil
}

func (r *memoryDeliveryRepository) FindByID(_ context.Context, id uint64) (*entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.items {
		if d.ID == id {
			found := d.Clone()
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memoryDeliveryRepository) Search(_ context.Context, term string) ([]entities.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Delivery, 0, len(r.items))
	for _, d := range r.items {
		if utils.MatchesAny(term, d.EmployeeName, d.EPIName, d.ResponsiblePerson) {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}

func duplicateCodeError(code string) error {
	return apperrors.NewValidationError("code", "EPI с кодом %s уже существует", code)
}
