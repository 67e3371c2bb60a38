package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epi-tracker/internal/dto"
	apperrors "epi-tracker/pkg/errors"
)

func validEPI() dto.CreateEPIDTO {
	return dto.CreateEPIDTO{
		Name:        "Capacete de Segurança",
		Code:        " cap001 ",
		Description: "Capacete classe B",
		Category:    "Proteção da Cabeça",
		Quantity:    15,
		MinQuantity: 10,
		UnitPrice:   "25.9",
	}
}

func TestEPIService_CreateNormalizes(t *testing.T) {
	f := newFixture(t)

	d := validEPI()
	d.ExpirationDate = null.StringFrom("2024-06-01")
	created, err := f.registry.EPIs.Create(context.Background(), d)
	require.NoError(t, err)

	assert.Equal(t, "CAP001", created.Code)
	assert.Equal(t, "25.90", created.UnitPrice)
	assert.Nil(t, created.ExpirationDate, "дата без отслеживания срока не сохраняется")
	assert.False(t, created.ExpiringSoon)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, "2024-05-28", created.RegistrationDate)
	assert.Equal(t, "ok", created.StockStatus.Severity)
}

func TestEPIService_DerivedFlags(t *testing.T) {
	f := newFixture(t)

	low := f.epi(t, epiSpec{name: "Luvas", code: "LUV001", quantity: 5, min: 20, expiration: "2024-07-15"})
	assert.Equal(t, "low", low.StockStatus.Severity)
	assert.Equal(t, "Low stock", low.StockStatus.Label)
	assert.False(t, low.ExpiringSoon, "48 дней до срока")
	require.NotNil(t, low.ExpirationDate)
	assert.Equal(t, "2024-07-15", *low.ExpirationDate)

	soon := f.epi(t, epiSpec{name: "Óculos", code: "OCU001", quantity: 30, min: 15, expiration: "2024-06-27"})
	assert.True(t, soon.ExpiringSoon, "ровно 30 дней до срока")
}

func TestEPIService_CreateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(d *dto.CreateEPIDTO)
		field  string
	}{
		{"blank name", func(d *dto.CreateEPIDTO) { d.Name = " " }, "name"},
		{"blank code", func(d *dto.CreateEPIDTO) { d.Code = "" }, "code"},
		{"unknown category", func(d *dto.CreateEPIDTO) { d.Category = "Proteção Mental" }, "category"},
		{"negative quantity", func(d *dto.CreateEPIDTO) { d.Quantity = -1 }, "quantity"},
		{"negative minimum", func(d *dto.CreateEPIDTO) { d.MinQuantity = -5 }, "min_quantity"},
		{"bad price", func(d *dto.CreateEPIDTO) { d.UnitPrice = "R$ 10" }, "unit_price"},
		{"negative price", func(d *dto.CreateEPIDTO) { d.UnitPrice = "-1.00" }, "unit_price"},
		{"bad expiration", func(d *dto.CreateEPIDTO) {
			d.HasExpiration = true
			d.ExpirationDate = null.StringFrom("15/07/2024")
		}, "expiration_date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			d := validEPI()
			tc.mutate(&d)

			_, err := f.registry.EPIs.Create(context.Background(), d)
			var vErr *apperrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestEPIService_DuplicateCodeLeavesCatalogUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.registry.EPIs.Create(ctx, validEPI())
	require.NoError(t, err)

	dup := validEPI()
	dup.Name = "Outro capacete"
	dup.Code = "CAP001"
	_, err = f.registry.EPIs.Create(ctx, dup)
	assert.True(t, apperrors.IsValidation(err))

	list, err := f.registry.EPIs.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Capacete de Segurança", list[0].Name)
}

func TestEPIService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	helmet := f.epi(t, epiSpec{name: "Capacete", code: "CAP001", quantity: 15, min: 10, registeredDate: "2024-01-10"})
	gloves := f.epi(t, epiSpec{name: "Luvas", code: "LUV001", quantity: 5, min: 20})

	d := validEPI()
	d.Code = "CAP001"
	d.Quantity = 3
	updated, err := f.registry.EPIs.Update(ctx, helmet.ID, d)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "low", updated.StockStatus.Severity)
	assert.Equal(t, "2024-01-10", updated.RegistrationDate)

	d.Code = "luv001"
	_, err = f.registry.EPIs.Update(ctx, helmet.ID, d)
	assert.True(t, apperrors.IsValidation(err), "код принадлежит другой записи")

	_, err = f.registry.EPIs.Update(ctx, 999, d)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	still, err := f.registry.EPIs.FindByID(ctx, gloves.ID)
	require.NoError(t, err)
	assert.Equal(t, "LUV001", still.Code)
}

func TestEPIService_Search(t *testing.T) {
	f := newFixture(t)
	f.epi(t, epiSpec{name: "Capacete de Segurança", code: "CAP001", quantity: 15, min: 10})
	f.epi(t, epiSpec{name: "Luvas de Látex", code: "LUV001", quantity: 5, min: 20})

	list, err := f.registry.EPIs.Search(context.Background(), "LÁTEX")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "LUV001", list[0].Code)
}
