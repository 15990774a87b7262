package pets

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-reminders/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testRepo struct {
	byID    map[string]Pet
	failErr error
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]Pet{}} }

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, owner string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) (*Service, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(repo, logger.NewFromZap(zap.New(core)))
	svc.now = func() time.Time { return now }
	return svc, logs
}

func TestCreate_RunsHooksWithPersistedPet(t *testing.T) {
	repo := newTestRepo()
	svc, _ := newTestService(repo)

	var seen []Pet
	svc.OnRegistered(func(ctx context.Context, p Pet) error {
		_, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err, "hook runs after the pet is stored")
		seen = append(seen, p)
		return nil
	})

	birth := now.AddDate(0, -2, 0)
	reg, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name: " Milo ", Species: "Perro", BirthDate: &birth,
	})
	require.NoError(t, err)

	assert.Equal(t, "Milo", reg.Pet.Name)
	assert.Equal(t, SexUnknown, reg.Pet.Sex)
	assert.Equal(t, now, reg.Pet.CreatedAt)
	assert.Empty(t, reg.Warnings)
	require.Len(t, seen, 1)
	assert.Equal(t, reg.Pet.ID, seen[0].ID)
}

func TestCreate_HookFailureBecomesWarning(t *testing.T) {
	repo := newTestRepo()
	svc, logs := newTestService(repo)
	svc.OnRegistered(func(ctx context.Context, p Pet) error { return errors.New("insert failed") })
	svc.OnRegistered(func(ctx context.Context, p Pet) error { return errors.New("again") })

	reg, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Luna", Species: "gato"})
	require.NoError(t, err)

	assert.Equal(t, []string{WarningRemindersNotScheduled}, reg.Warnings)
	assert.Contains(t, repo.byID, reg.Pet.ID)
	assert.Equal(t, 2, logs.FilterMessage("pet registration hook failed").Len())
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService(newTestRepo())
	future := now.AddDate(0, 0, 1)

	cases := map[string]struct {
		owner string
		in    CreateInput
	}{
		"no owner":     {"", CreateInput{Name: "a", Species: "dog"}},
		"no name":      {"u", CreateInput{Species: "dog"}},
		"no species":   {"u", CreateInput{Name: "a"}},
		"bad sex":      {"u", CreateInput{Name: "a", Species: "dog", Sex: "robot"}},
		"future birth": {"u", CreateInput{Name: "a", Species: "dog", BirthDate: &future}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.owner, tc.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_RepoFailureSkipsHooks(t *testing.T) {
	repo := newTestRepo()
	repo.failErr = errors.New("db down")
	svc, _ := newTestService(repo)

	called := false
	svc.OnRegistered(func(ctx context.Context, p Pet) error { called = true; return nil })

	_, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Kiwi", Species: "loro"})
	require.Error(t, err)
	assert.False(t, called)
}

func TestGetOwnedAndOwnerOf(t *testing.T) {
	svc, _ := newTestService(newTestRepo())
	reg, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Milo", Species: "dog", Sex: "Male"})
	require.NoError(t, err)
	assert.Equal(t, SexMale, reg.Pet.Sex)

	p, err := svc.GetOwned(context.Background(), "owner-1", reg.Pet.ID)
	require.NoError(t, err)
	assert.Equal(t, reg.Pet.ID, p.ID)

	_, err = svc.GetOwned(context.Background(), "owner-2", reg.Pet.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetOwned(context.Background(), "owner-1", "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	owner, err := svc.OwnerOf(context.Background(), reg.Pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", owner)
}
