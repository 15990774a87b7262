package reminders

import (
	"context"
	"time"
)

// Repository persiste recordatorios. Todo lo que recibe userID filtra por el dueño
// de la mascota: un id ajeno se comporta igual que uno inexistente (ErrNotFound).
type Repository interface {
	// BulkInsert es atómico: o entran todos o ninguno.
	BulkInsert(ctx context.Context, items []Reminder) error
	Create(ctx context.Context, r Reminder) error

	GetByID(ctx context.Context, userID, id string) (Reminder, error)
	ListByPet(ctx context.Context, userID, petID string) ([]Reminder, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Reminder, error)
	// CountByUser ignora Limit y Offset.
	CountByUser(ctx context.Context, userID string, filter ListFilter) (int, error)
	// SummaryByUser agrega sobre todos los recordatorios del usuario, sin límite.
	// petID vacío => todas sus mascotas.
	SummaryByUser(ctx context.Context, userID, petID string, now time.Time) (Summary, error)

	UpdateStatus(ctx context.Context, userID, id string, status Status) (Reminder, error)
	Delete(ctx context.Context, userID, id string) error
}

// ListFilter trabaja solo sobre campos persistidos. Las vistas "vencidos" / "vencen hoy"
// se traducen a Status + rango de DueDate en el servicio.
type ListFilter struct {
	PetID     string
	Status    Status
	Types     []Type
	DueFrom   *time.Time // inclusive
	DueBefore *time.Time // exclusive
	Limit     int
	Offset    int
}

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// EffectiveLimit normaliza Limit para los adapters.
func (f ListFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultListLimit
	}
	if f.Limit > MaxListLimit {
		return MaxListLimit
	}
	return f.Limit
}

// EffectiveOffset: negativo => 0.
func (f ListFilter) EffectiveOffset() int {
	if f.Offset < 0 {
		return 0
	}
	return f.Offset
}

// Matches evalúa el filtro en memoria (adapter in-memory y tests).
func (f ListFilter) Matches(r Reminder) bool {
	if f.PetID != "" && r.PetID != f.PetID {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if len(f.Types) > 0 {
		ok := false
		for _, t := range f.Types {
			if r.Type == t {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.DueFrom != nil && r.DueDate.Before(*f.DueFrom) {
		return false
	}
	if f.DueBefore != nil && !r.DueDate.Before(*f.DueBefore) {
		return false
	}
	return true
}
