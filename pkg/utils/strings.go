package utils

import (
	"strings"
)

// ContainsFold - поиск подстроки без учета регистра. Пустой запрос совпадает со всем.
func ContainsFold(value, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// MatchesAny - совпадение term хотя бы с одним из полей (ИЛИ).
func MatchesAny(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, term) {
			return true
		}
	}
	return false
}

// NormalizeCode приводит код EPI к каноническому виду: без пробелов по краям, в верхнем регистре.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FormatCPF форматирует 11 цифр как 000.000.000-00; прочие значения возвращаются как есть.
func FormatCPF(value string) string {
	var digits []rune
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) != 11 {
		return strings.TrimSpace(value)
	}
	d := string(digits)
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}
