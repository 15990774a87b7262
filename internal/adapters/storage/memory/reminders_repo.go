package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-care-reminders/internal/domain/pets"
	"pet-care-reminders/internal/domain/reminders"
)

// reminderRepo resuelve el dueño de cada recordatorio vía el repo de mascotas,
// igual que el JOIN contra pets en Postgres.
type reminderRepo struct {
	mu   sync.RWMutex
	byID map[string]reminders.Reminder
	pets pets.Repository
}

func NewReminderRepo(petRepo pets.Repository) reminders.Repository {
	return &reminderRepo{
		byID: make(map[string]reminders.Reminder),
		pets: petRepo,
	}
}

// BulkInsert valida todo antes de escribir: o entran todos o ninguno.
func (r *reminderRepo) BulkInsert(ctx context.Context, items []reminders.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if err := r.checkNew(ctx, it); err != nil {
			return err
		}
		if _, dup := seen[it.ID]; dup {
			return errors.New("duplicate reminder id in batch")
		}
		seen[it.ID] = struct{}{}
	}

	for _, it := range items {
		r.byID[it.ID] = it
	}
	return nil
}

func (r *reminderRepo) Create(ctx context.Context, it reminders.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkNew(ctx, it); err != nil {
		return err
	}
	r.byID[it.ID] = it
	return nil
}

// checkNew replica las constraints de la tabla (FK a pets, CHECK de recurrencia).
func (r *reminderRepo) checkNew(ctx context.Context, it reminders.Reminder) error {
	if strings.TrimSpace(it.ID) == "" {
		return errors.New("reminder id required")
	}
	if _, exists := r.byID[it.ID]; exists {
		return errors.New("reminder already exists")
	}
	if it.IsRecurring != (it.FrequencyMonths != nil) {
		return errors.New("frequency_months must be set iff is_recurring")
	}
	if _, err := r.pets.GetByID(ctx, it.PetID); err != nil {
		return errors.New("reminder pet does not exist")
	}
	return nil
}

func (r *reminderRepo) ownedBy(ctx context.Context, userID string, it reminders.Reminder) bool {
	p, err := r.pets.GetByID(ctx, it.PetID)
	return err == nil && p.OwnerUserID == userID
}

func (r *reminderRepo) GetByID(ctx context.Context, userID, id string) (reminders.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok || !r.ownedBy(ctx, userID, it) {
		return reminders.Reminder{}, reminders.ErrNotFound
	}
	return it, nil
}

func (r *reminderRepo) ListByPet(ctx context.Context, userID, petID string) ([]reminders.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.matching(ctx, userID, reminders.ListFilter{PetID: petID}), nil
}

func (r *reminderRepo) ListByUser(ctx context.Context, userID string, filter reminders.ListFilter) ([]reminders.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.matching(ctx, userID, filter)

	offset := filter.EffectiveOffset()
	if offset >= len(out) {
		return []reminders.Reminder{}, nil
	}
	out = out[offset:]
	if len(out) > filter.EffectiveLimit() {
		out = out[:filter.EffectiveLimit()]
	}
	return out, nil
}

func (r *reminderRepo) CountByUser(ctx context.Context, userID string, filter reminders.ListFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matching(ctx, userID, filter)), nil
}

func (r *reminderRepo) SummaryByUser(ctx context.Context, userID, petID string, now time.Time) (reminders.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return reminders.Summarize(r.matching(ctx, userID, reminders.ListFilter{PetID: petID}), now), nil
}

// matching devuelve todo lo que cumple el filtro, ordenado, sin paginar. Requiere r.mu tomado.
func (r *reminderRepo) matching(ctx context.Context, userID string, filter reminders.ListFilter) []reminders.Reminder {
	out := make([]reminders.Reminder, 0)
	for _, it := range r.byID {
		if !filter.Matches(it) || !r.ownedBy(ctx, userID, it) {
			continue
		}
		out = append(out, it)
	}

	// due_date asc, id como desempate
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

func (r *reminderRepo) UpdateStatus(ctx context.Context, userID, id string, status reminders.Status) (reminders.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.byID[id]
	if !ok || !r.ownedBy(ctx, userID, it) {
		return reminders.Reminder{}, reminders.ErrNotFound
	}
	it.Status = status
	r.byID[id] = it
	return it, nil
}

func (r *reminderRepo) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.byID[id]
	if !ok || !r.ownedBy(ctx, userID, it) {
		return reminders.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
