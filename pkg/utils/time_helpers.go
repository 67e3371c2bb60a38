package utils

import (
	"fmt"
	"strings"
	"time"

	"epi-tracker/pkg/constants"
)

// DateOnly отбрасывает время суток: календарная дата t (в её часовом поясе) на полночь UTC.
// Все даты домена хранятся в этом виде, поэтому разница двух дат всегда кратна суткам.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today - текущая календарная дата.
func Today() time.Time {
	return DateOnly(time.Now())
}

// ParseDate разбирает дату вида YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(constants.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("некорректная дата %q, ожидается формат ГГГГ-ММ-ДД: %w", value, err)
	}
	return t, nil
}

// ParseOptionalDate - как ParseDate, но пустая строка дает nil.
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

// FormatOptionalDate возвращает nil для отсутствующей даты.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// AddDays сдвигает календарную дату на n дней.
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}

// DaysBetween - число целых дней от from до to (отрицательное, если to раньше from).
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)) / (24 * time.Hour))
}

// MonthsBetween - число полных календарных месяцев от from до to, не меньше нуля.
func MonthsBetween(from, to time.Time) int {
	from, to = DateOnly(from), DateOnly(to)
	if !to.After(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// InDateRange проверяет попадание даты в диапазон [from, to]; nil-граница не ограничивает.
func InDateRange(t time.Time, from, to *time.Time) bool {
	d := DateOnly(t)
	if from != nil && d.Before(DateOnly(*from)) {
		return false
	}
	if to != nil && d.After(DateOnly(*to)) {
		return false
	}
	return true
}

// SameMonth - одна и та же календарная пара год/месяц.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
