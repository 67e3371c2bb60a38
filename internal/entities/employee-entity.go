package entities

import "time"

type Employee struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	CPF              string    `json:"cpf"`
	Sector           string    `json:"sector"`
	Position         string    `json:"position"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registration_date"`
}
