package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"epi-tracker/internal/dto"
	apperrors "epi-tracker/pkg/errors"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestEPIService_Import(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	workbook := buildWorkbook(t, [][]interface{}{
		{"Catálogo de EPI"},
		{"Nome", "Código", "Categoria", "Quantidade", "Estoque Mínimo", "Preço", "Validade"},
		{"Capacete", "cap001", "Proteção da Cabeça", 15, 10, "25,90", ""},
		{"Luvas de Látex", "LUV001", "Proteção das Mãos", 5, 20, 15.5, "15/07/2024"},
		{},
		{"Sem categoria", "BAD001", "Categoria X", 1, 1, 1, ""},
		{"Capacete novo", "CAP001", "Proteção da Cabeça", 20, 10, 30, ""},
		{"Quantidade ruim", "Q001", "Proteção da Cabeça", "muitos", 1, 1, ""},
	})

	result, err := f.registry.EPIs.Import(ctx, workbook)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 6, result.Errors[0].Row)
	assert.Equal(t, "BAD001", result.Errors[0].Code)
	assert.Equal(t, 8, result.Errors[1].Row)

	list, err := f.registry.EPIs.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)

	helmet := list[0]
	assert.Equal(t, "CAP001", helmet.Code)
	assert.Equal(t, "Capacete novo", helmet.Name)
	assert.Equal(t, 20, helmet.Quantity)
	assert.Equal(t, "30.00", helmet.UnitPrice)

	gloves := list[1]
	assert.Equal(t, "15.50", gloves.UnitPrice)
	assert.True(t, gloves.HasExpiration)
	require.NotNil(t, gloves.ExpirationDate)
	assert.Equal(t, "2024-07-15", *gloves.ExpirationDate)
}

func TestEPIService_ImportKeepsColumnsMissingFromSheet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	original, err := f.registry.EPIs.Create(ctx, dto.CreateEPIDTO{
		Name:           "Capacete",
		Code:           "CAP001",
		Description:    "Capacete classe B",
		Category:       "Proteção da Cabeça",
		Quantity:       3,
		MinQuantity:    1,
		UnitPrice:      "10",
		HasExpiration:  true,
		ExpirationDate: null.StringFrom("2025-01-31"),
		Status:         "inactive",
	})
	require.NoError(t, err)

	workbook := buildWorkbook(t, [][]interface{}{
		{"Nome", "Código", "Categoria", "Quantidade"},
		{"Capacete", "cap001", "Proteção da Cabeça", 40},
	})
	result, err := f.registry.EPIs.Import(ctx, workbook)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Zero(t, result.Failed)

	after, err := f.registry.EPIs.FindByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, after.Quantity)
	assert.Equal(t, "inactive", after.Status)
	assert.Equal(t, "Capacete classe B", after.Description)
	assert.Equal(t, 1, after.MinQuantity)
	assert.Equal(t, "10.00", after.UnitPrice)
	assert.True(t, after.HasExpiration)
	require.NotNil(t, after.ExpirationDate)
	assert.Equal(t, "2025-01-31", *after.ExpirationDate)
	assert.Equal(t, original.RegistrationDate, after.RegistrationDate)
}

func TestEPIService_ImportRejectsBadFiles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.registry.EPIs.Import(ctx, bytes.NewReader([]byte("not a workbook")))
	assert.True(t, apperrors.IsValidation(err))

	noHeader := buildWorkbook(t, [][]interface{}{
		{"Produto", "Qtd"},
		{"Capacete", 1},
	})
	_, err = f.registry.EPIs.Import(ctx, noHeader)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "file", vErr.Field)
}
