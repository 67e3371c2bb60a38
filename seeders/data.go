package seeders

import (
	"github.com/aarondl/null/v8"

	"epi-tracker/internal/dto"
)

// Демонстрационный набор: три сотрудника, три позиции каталога и три выдачи.

var employeesData = []dto.CreateEmployeeDTO{
	{
		Name:             "João Silva",
		CPF:              "123.456.789-00",
		Sector:           "Produção",
		Position:         "Operador de Máquina",
		RegistrationDate: null.StringFrom("2024-01-15"),
	},
	{
		Name:             "Maria Santos",
		CPF:              "987.654.321-00",
		Sector:           "Manutenção",
		Position:         "Técnica em Manutenção",
		RegistrationDate: null.StringFrom("2024-02-10"),
	},
	{
		Name:             "Pedro Costa",
		CPF:              "456.789.123-00",
		Sector:           "Almoxarifado",
		Position:         "Auxiliar de Estoque",
		RegistrationDate: null.StringFrom("2024-03-05"),
	},
}

var episData = []dto.CreateEPIDTO{
	{
		Name:             "Capacete de Segurança",
		Code:             "CAP001",
		Description:      "Capacete de segurança classe A, cor branca",
		Category:         "Proteção da Cabeça",
		Quantity:         15,
		MinQuantity:      10,
		UnitPrice:        "25.90",
		RegistrationDate: null.StringFrom("2024-01-15"),
	},
	{
		Name:             "Luvas de Proteção",
		Code:             "LUV001",
		Description:      "Luvas de látex, tamanho M",
		Category:         "Proteção das Mãos",
		Quantity:         5,
		MinQuantity:      10,
		UnitPrice:        "8.50",
		HasExpiration:    true,
		ExpirationDate:   null.StringFrom("2024-07-15"),
		RegistrationDate: null.StringFrom("2024-02-10"),
	},
	{
		Name:             "Óculos de Proteção",
		Code:             "OCU001",
		Description:      "Óculos de proteção contra impactos",
		Category:         "Proteção dos Olhos",
		Quantity:         8,
		MinQuantity:      5,
		UnitPrice:        "15.75",
		RegistrationDate: null.StringFrom("2024-03-05"),
	},
}

// deliverySeed ссылается на сотрудника и EPI по индексу в наборах выше.
type deliverySeed struct {
	employee     int
	epi          int
	quantity     int
	date         string
	responsible  string
	observations string
}

// От старых к новым: журнал отдает последнюю выдачу первой.
var deliveriesData = []deliverySeed{
	{employee: 2, epi: 2, quantity: 1, date: "2024-05-26", responsible: "Carlos Santos"},
	{employee: 1, epi: 1, quantity: 2, date: "2024-05-27", responsible: "Ana Costa"},
	{employee: 0, epi: 0, quantity: 1, date: "2024-05-28", responsible: "Carlos Santos", observations: "Entrega realizada conforme NR-6"},
}
