package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pet-care-reminders/internal/domain/pets"
	"pet-care-reminders/internal/domain/reminders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (pets.Repository, reminders.Repository) {
	t.Helper()
	petRepo := NewPetRepo()
	ctx := context.Background()
	require.NoError(t, petRepo.Create(ctx, pets.Pet{ID: "pet-1", OwnerUserID: "owner-1", Name: "Milo", Species: "dog"}))
	require.NoError(t, petRepo.Create(ctx, pets.Pet{ID: "pet-2", OwnerUserID: "owner-2", Name: "Luna", Species: "cat"}))
	return petRepo, NewReminderRepo(petRepo)
}

func reminder(id, petID string, due time.Time) reminders.Reminder {
	return reminders.Reminder{
		ID: id, PetID: petID, Type: reminders.TypeVaccine, Title: "Vaccine",
		DueDate: due, Status: reminders.StatusPending,
	}
}

func TestReminderRepo_BulkInsertIsAtomic(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	err := repo.BulkInsert(ctx, []reminders.Reminder{
		reminder("r1", "pet-1", base),
		reminder("r2", "ghost-pet", base),
	})
	require.Error(t, err)

	items, err := repo.ListByUser(ctx, "owner-1", reminders.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, items, "no partial writes")

	bad := reminder("r3", "pet-1", base)
	bad.IsRecurring = true
	assert.Error(t, repo.BulkInsert(ctx, []reminders.Reminder{bad}))

	require.NoError(t, repo.BulkInsert(ctx, []reminders.Reminder{
		reminder("r1", "pet-1", base),
		reminder("r2", "pet-1", base.AddDate(0, 1, 0)),
	}))
	assert.Error(t, repo.Create(ctx, reminder("r1", "pet-1", base)), "duplicate id")
}

func TestReminderRepo_TenantIsolation(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()
	require.NoError(t, repo.BulkInsert(ctx, []reminders.Reminder{
		reminder("a", "pet-1", base),
		reminder("b", "pet-2", base),
	}))

	_, err := repo.GetByID(ctx, "owner-2", "a")
	assert.ErrorIs(t, err, reminders.ErrNotFound)

	_, err = repo.UpdateStatus(ctx, "owner-2", "a", reminders.StatusCompleted)
	assert.ErrorIs(t, err, reminders.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "owner-2", "a"), reminders.ErrNotFound)

	mine, err := repo.ListByUser(ctx, "owner-1", reminders.ListFilter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].ID)

	foreign, err := repo.ListByPet(ctx, "owner-1", "pet-2")
	require.NoError(t, err)
	assert.Empty(t, foreign)
}

func TestReminderRepo_ListOrderFilterAndLimit(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	later := reminder("z", "pet-1", base.AddDate(0, 0, 10))
	later.Type = reminders.TypeDeworm
	done := reminder("c", "pet-1", base.AddDate(0, 0, -1))
	done.Status = reminders.StatusCompleted

	require.NoError(t, repo.BulkInsert(ctx, []reminders.Reminder{
		later,
		reminder("b", "pet-1", base),
		reminder("a", "pet-1", base),
		done,
	}))

	all, err := repo.ListByUser(ctx, "owner-1", reminders.ListFilter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, it := range all {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"c", "a", "b", "z"}, ids)

	pending, err := repo.ListByUser(ctx, "owner-1", reminders.ListFilter{Status: reminders.StatusPending, Limit: 2})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "a", pending[0].ID)

	before := base.Add(time.Minute)
	window, err := repo.ListByUser(ctx, "owner-1", reminders.ListFilter{DueFrom: &base, DueBefore: &before})
	require.NoError(t, err)
	assert.Len(t, window, 2)

	deworm, err := repo.ListByUser(ctx, "owner-1", reminders.ListFilter{Types: []reminders.Type{reminders.TypeDeworm}})
	require.NoError(t, err)
	require.Len(t, deworm, 1)
	assert.Equal(t, "z", deworm[0].ID)
}

func TestReminderRepo_UpdateAndDelete(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, reminder("a", "pet-1", base)))

	updated, err := repo.UpdateStatus(ctx, "owner-1", "a", reminders.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, reminders.StatusCompleted, updated.Status)

	got, err := repo.GetByID(ctx, "owner-1", "a")
	require.NoError(t, err)
	assert.Equal(t, reminders.StatusCompleted, got.Status)

	require.NoError(t, repo.Delete(ctx, "owner-1", "a"))
	_, err = repo.GetByID(ctx, "owner-1", "a")
	assert.ErrorIs(t, err, reminders.ErrNotFound)
}

func TestPetRepo(t *testing.T) {
	petRepo, _ := setup(t)
	ctx := context.Background()

	_, err := petRepo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, pets.ErrNotFound)

	assert.Error(t, petRepo.Create(ctx, pets.Pet{ID: "pet-1"}), "duplicate")

	mine, err := petRepo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Milo", mine[0].Name)
}

func TestReminderRepo_PagingCountAndSummary(t *testing.T) {
	_, repo := setup(t)
	ctx := context.Background()

	batch := make([]reminders.Reminder, 0, 620)
	for i := 0; i < 620; i++ {
		batch = append(batch, reminder(fmt.Sprintf("r%03d", i), "pet-1", base.AddDate(0, 0, i-10)))
	}
	batch[0].Status = reminders.StatusCompleted
	require.NoError(t, repo.BulkInsert(ctx, batch))

	n, err := repo.CountByUser(ctx, "owner-1", reminders.ListFilter{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 620, n, "count ignores limit")

	page, err := repo.ListByUser(ctx, "owner-1", reminders.ListFilter{Limit: reminders.MaxListLimit, Offset: 600})
	require.NoError(t, err)
	require.Len(t, page, 20)
	assert.Equal(t, "r600", page[0].ID)

	past, err := repo.ListByUser(ctx, "owner-1", reminders.ListFilter{Offset: 620})
	require.NoError(t, err)
	assert.Empty(t, past)

	s, err := repo.SummaryByUser(ctx, "owner-1", "", base)
	require.NoError(t, err)
	assert.Equal(t, reminders.Summary{Total: 620, Pending: 619, Completed: 1, Overdue: 9, DueToday: 1}, s)

	s, err = repo.SummaryByUser(ctx, "owner-2", "", base)
	require.NoError(t, err)
	assert.Zero(t, s.Total)
}
