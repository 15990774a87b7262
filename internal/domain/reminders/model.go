package reminders

import (
	"strings"
	"time"
)

// Type es la clase de cuidado que representa un recordatorio.
// @Enum VACCINE, DEWORM, HYGIENE, SPAY_NEUTER
type Type string

const (
	TypeVaccine    Type = "VACCINE"
	TypeDeworm     Type = "DEWORM"
	TypeHygiene    Type = "HYGIENE"
	TypeSpayNeuter Type = "SPAY_NEUTER"
)

func (t Type) Valid() bool {
	switch t {
	case TypeVaccine, TypeDeworm, TypeHygiene, TypeSpayNeuter:
		return true
	default:
		return false
	}
}

// Status solo tiene dos valores; vencido / vence hoy se derivan al leer.
// @Enum PENDING, COMPLETED
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Pet es lo único que el motor necesita de una mascota recién registrada.
type Pet struct {
	ID        string
	Species   string // texto libre ("Perro", "gato persa", "loro"...)
	BirthDate *time.Time
	UserID    string
}

// Draft es un recordatorio candidato, todavía sin id ni estado.
type Draft struct {
	PetID           string
	Type            Type
	Title           string
	DueDate         time.Time
	IsRecurring     bool
	FrequencyMonths *int // != nil sii IsRecurring
}

// Reminder es la fila persistida. No lleva campos derivados.
type Reminder struct {
	ID    string
	PetID string

	Type  Type
	Title string

	DueDate         time.Time
	IsRecurring     bool
	FrequencyMonths *int

	Status Status
}

// Validate chequea las invariantes de forma que comparten drafts generados y altas manuales.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.PetID) == "" {
		return ErrInvalidInput
	}
	if !d.Type.Valid() {
		return ErrInvalidInput
	}
	if strings.TrimSpace(d.Title) == "" {
		return ErrInvalidInput
	}
	if d.DueDate.IsZero() {
		return ErrInvalidInput
	}
	if d.IsRecurring != (d.FrequencyMonths != nil) {
		return ErrInvalidInput
	}
	if d.FrequencyMonths != nil && *d.FrequencyMonths <= 0 {
		return ErrInvalidInput
	}
	return nil
}

func recurring(months int) (bool, *int) {
	m := months
	return true, &m
}
