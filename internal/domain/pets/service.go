package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-care-reminders/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("forbidden")
)

// WarningRemindersNotScheduled se agrega a la respuesta de alta cuando un hook falla.
const WarningRemindersNotScheduled = "reminders could not be scheduled"

// RegistrationHook corre después de que la mascota quedó persistida.
// Su error no revierte el alta; se loguea y se informa como warning.
type RegistrationHook func(ctx context.Context, p Pet) error

type Service struct {
	repo  Repository
	log   logger.Logger
	hooks []RegistrationHook
	now   func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "pets"}),
		now:  time.Now,
	}
}

// OnRegistered agrega un hook. Se llama en el wiring, antes de servir requests.
func (s *Service) OnRegistered(h RegistrationHook) {
	if h != nil {
		s.hooks = append(s.hooks, h)
	}
}

type CreateInput struct {
	Name      string
	Species   string
	Breed     string
	Sex       string
	BirthDate *time.Time
	Notes     string
}

// Registration es el resultado del alta: la mascota más avisos no fatales.
type Registration struct {
	Pet      Pet
	Warnings []string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Registration, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Registration{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Registration{}, ErrInvalidInput
	}

	sex := Sex(strings.ToLower(strings.TrimSpace(in.Sex)))
	if sex == "" {
		sex = SexUnknown
	}
	if !sex.Valid() {
		return Registration{}, ErrInvalidInput
	}

	now := s.now()
	if in.BirthDate != nil && in.BirthDate.After(now) {
		return Registration{}, ErrInvalidInput
	}

	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Breed:       strings.TrimSpace(in.Breed),
		Sex:         sex,
		BirthDate:   in.BirthDate,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Registration{}, err
	}

	reg := Registration{Pet: p, Warnings: []string{}}
	for _, h := range s.hooks {
		if err := h(ctx, p); err != nil {
			s.log.Warn("pet registration hook failed", map[string]any{
				"pet_id": p.ID,
				"error":  err,
			})
			reg.Warnings = appendOnce(reg.Warnings, WarningRemindersNotScheduled)
		}
	}
	return reg, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// GetOwned devuelve la mascota solo si pertenece a userID.
func (s *Service) GetOwned(ctx context.Context, userID, id string) (Pet, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != strings.TrimSpace(userID) {
		return Pet{}, ErrForbidden
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func appendOnce(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
