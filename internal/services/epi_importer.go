package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"epi-tracker/internal/dto"
	"epi-tracker/pkg/constants"
	apperrors "epi-tracker/pkg/errors"
	"epi-tracker/pkg/utils"
)

// Заголовки колонок, которые понимает импорт (португальский и английский варианты).
var importColumnAliases = map[string][]string{
	"name":            {"name", "nome", "nome do epi"},
	"code":            {"code", "código", "codigo"},
	"description":     {"description", "descrição", "descricao"},
	"category":        {"category", "categoria"},
	"quantity":        {"quantity", "quantidade", "estoque"},
	"min_quantity":    {"min_quantity", "estoque mínimo", "estoque minimo", "quantidade mínima", "quantidade minima"},
	"unit_price":      {"unit_price", "price", "preço", "preco", "preço unitário", "preco unitario"},
	"expiration_date": {"expiration_date", "validade", "data de validade"},
}

type importColumns map[string]int

func (c importColumns) get(row []string, column string) string {
	idx, ok := c[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// locateHeader ищет первую строку, где есть хотя бы колонки name и code.
func locateHeader(rows [][]string) (int, importColumns) {
	for rIdx, row := range rows {
		cols := importColumns{}
		for cIdx, cell := range row {
			title := strings.ToLower(strings.TrimSpace(cell))
			for column, aliases := range importColumnAliases {
				for _, alias := range aliases {
					if title == alias {
						cols[column] = cIdx
					}
				}
			}
		}
		_, hasName := cols["name"]
		_, hasCode := cols["code"]
		if hasName && hasCode {
			return rIdx, cols
		}
	}
	return -1, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseImportInt(field, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewValidationError(field, "ожидается целое число, получено %q", value)
	}
	return n, nil
}

// parseImportDate принимает ГГГГ-ММ-ДД и ДД/ММ/ГГГГ, возвращает ГГГГ-ММ-ДД.
func parseImportDate(value string) (string, error) {
	for _, layout := range []string{constants.DateLayout, constants.DisplayDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return utils.FormatDate(t), nil
		}
	}
	return "", apperrors.NewValidationError("expiration_date", "некорректная дата %q", value)
}

// rowToDTO накладывает непустые ячейки найденных колонок на base.
// Для новой позиции base пустой, для существующей - ее текущие данные.
func rowToDTO(cols importColumns, row []string, base dto.CreateEPIDTO) (dto.CreateEPIDTO, error) {
	d := base
	set := func(column string, dst *string) {
		if v := cols.get(row, column); v != "" {
			*dst = v
		}
	}
	set("name", &d.Name)
	set("code", &d.Code)
	set("description", &d.Description)
	set("category", &d.Category)
	if v := cols.get(row, "unit_price"); v != "" {
		d.UnitPrice = strings.ReplaceAll(v, ",", ".")
	}

	var err error
	if v := cols.get(row, "quantity"); v != "" {
		if d.Quantity, err = parseImportInt("quantity", v); err != nil {
			return d, err
		}
	}
	if v := cols.get(row, "min_quantity"); v != "" {
		if d.MinQuantity, err = parseImportInt("min_quantity", v); err != nil {
			return d, err
		}
	}
	if raw := cols.get(row, "expiration_date"); raw != "" {
		date, err := parseImportDate(raw)
		if err != nil {
			return d, err
		}
		d.HasExpiration = true
		d.ExpirationDate = null.StringFrom(date)
	}
	return d, nil
}

// upsert: запись с тем же кодом обновляется только по колонкам из файла, иначе создается новая.
func (s *EPIService) upsert(ctx context.Context, cols importColumns, row []string) (d dto.CreateEPIDTO, created bool, err error) {
	code := utils.NormalizeCode(cols.get(row, "code"))
	existing, err := s.repo.FindByCode(ctx, code)
	switch {
	case err == nil:
		if d, err = rowToDTO(cols, row, dto.EPIToCreateDTO(*existing)); err != nil {
			return d, false, err
		}
		_, err = s.Update(ctx, existing.ID, d)
		return d, false, err
	case errors.Is(err, apperrors.ErrNotFound):
		if d, err = rowToDTO(cols, row, dto.CreateEPIDTO{}); err != nil {
			return d, false, err
		}
		_, err = s.Create(ctx, d)
		return d, true, err
	default:
		return dto.CreateEPIDTO{Code: code}, false, err
	}
}

// Import читает первый лист xlsx. Ошибка в строке не прерывает загрузку остальных.
func (s *EPIService) Import(ctx context.Context, r io.Reader) (*dto.ImportResultDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewValidationError("file", "не удалось прочитать xlsx: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewValidationError("file", "в файле нет листов")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %s: %w", sheets[0], err)
	}

	headerRow, cols := locateHeader(rows)
	if headerRow < 0 {
		return nil, apperrors.NewValidationError("file", "не найдена строка заголовков с колонками name и code")
	}

	result := &dto.ImportResultDTO{Errors: make([]dto.ImportRowError, 0)}
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d, created, err := s.upsert(ctx, cols, row)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: i + 1, Code: d.Code, Message: err.Error()})
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	s.logger.Info("Импорт каталога EPI завершен",
		zap.String("sheet", sheets[0]),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
