package pets

import "time"

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	default:
		return false
	}
}

// Pet representa el perfil básico de una mascota registrada.
// Species es texto libre; la clasificación (perro, gato, ave) la hace el motor de recordatorios.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species string
	Breed   string
	Sex     Sex

	BirthDate *time.Time // nil = desconocida

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
