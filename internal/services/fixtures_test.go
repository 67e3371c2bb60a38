package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/pkg/eventbus"
)

var refDate = time.Date(2024, time.May, 28, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return refDate }

type fixture struct {
	repos    Repositories
	bus      *eventbus.Bus
	registry *Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	repos := NewMemoryRepositories()
	bus := eventbus.New(logger)
	return &fixture{
		repos:    repos,
		bus:      bus,
		registry: NewRegistry(repos, bus, fixedClock, logger),
	}
}

func (f *fixture) employee(t *testing.T, name string) *dto.EmployeeDTO {
	t.Helper()
	created, err := f.registry.Employees.Create(context.Background(), dto.CreateEmployeeDTO{
		Name:             name,
		CPF:              "12345678900",
		Sector:           "Produção",
		Position:         "Operador de Máquina",
		RegistrationDate: null.StringFrom("2024-01-15"),
	})
	require.NoError(t, err)
	return created
}

type epiSpec struct {
	name, code     string
	quantity, min  int
	price          string
	expiration     string
	registeredDate string
}

func (f *fixture) epi(t *testing.T, s epiSpec) *dto.EPIDTO {
	t.Helper()
	d := dto.CreateEPIDTO{
		Name:        s.name,
		Code:        s.code,
		Category:    "Proteção da Cabeça",
		Quantity:    s.quantity,
		MinQuantity: s.min,
		UnitPrice:   s.price,
	}
	if d.UnitPrice == "" {
		d.UnitPrice = "10.00"
	}
	if s.expiration != "" {
		d.HasExpiration = true
		d.ExpirationDate = null.StringFrom(s.expiration)
	}
	if s.registeredDate != "" {
		d.RegistrationDate = null.StringFrom(s.registeredDate)
	}
	created, err := f.registry.EPIs.Create(context.Background(), d)
	require.NoError(t, err)
	return created
}

func (f *fixture) deliver(t *testing.T, employeeID, epiID uint64, quantity int, date string) *dto.DeliveryDTO {
	t.Helper()
	created, err := f.registry.Deliveries.RecordDelivery(context.Background(), dto.CreateDeliveryDTO{
		EmployeeID:        employeeID,
		EPIID:             epiID,
		Quantity:          quantity,
		DeliveryDate:      date,
		ResponsiblePerson: "Carlos Supervisor",
	})
	require.NoError(t, err)
	return created
}
