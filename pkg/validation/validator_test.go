package validation

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Date     string      `validate:"omitempty,date_only"`
	Category string      `validate:"omitempty,epi_category"`
	Status   string      `validate:"omitempty,record_status"`
	Delivery string      `validate:"omitempty,delivery_status"`
	Price    string      `validate:"omitempty,money"`
	Expires  null.String `validate:"omitempty,date_only"`
}

func TestCustomValidator_Rules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{}))
	assert.NoError(t, v.Validate(&sample{
		Date:     "2024-05-28",
		Category: "Proteção dos Pés",
		Status:   "inactive",
		Delivery: "returned",
		Price:    "25.90",
		Expires:  null.StringFrom("2024-07-15"),
	}))

	bad := []sample{
		{Date: "28/05/2024"},
		{Category: "Proteção Mental"},
		{Status: "archived"},
		{Delivery: "lost"},
		{Price: "-1"},
		{Price: "abc"},
		{Expires: null.StringFrom("15/07/2024")},
	}
	for _, s := range bad {
		assert.Error(t, v.Validate(&s), "%+v", s)
	}
}

func TestCustomValidator_InvalidNullIsSkipped(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sample{Expires: null.String{}}))
}
