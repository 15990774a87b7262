package reminders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-reminders/internal/domain/pets"
	"pet-care-reminders/internal/platform/logger"
	"pet-care-reminders/internal/platform/metrics"
	"pet-care-reminders/internal/ports/notifications"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")

	// ErrNotPersisted: los recordatorios generados no se pudieron guardar.
	// El registro de la mascota no falla por esto; quien llama lo reporta como warning.
	ErrNotPersisted = errors.New("reminders not persisted")
)

// PetOwnerLookup lo implementa pets.Service. Una mascota inexistente se informa
// con pets.ErrNotFound; cualquier otro error es de infraestructura.
type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

type Options struct {
	Notifier notifications.Dispatcher // nil => no se notifica
	Logger   logger.Logger            // nil => nop
	Metrics  *metrics.Collector       // nil => sin métricas
}

type Service struct {
	repo     Repository
	pets     PetOwnerLookup
	notifier notifications.Dispatcher
	log      logger.Logger
	metrics  *metrics.Collector
	now      func() time.Time
}

func NewService(repo Repository, owners PetOwnerLookup, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:     repo,
		pets:     owners,
		notifier: opts.Notifier,
		log:      log.With(map[string]any{"component": "reminders"}),
		metrics:  opts.Metrics,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ScheduleResult describe lo que quedó persistido para la mascota.
type ScheduleResult struct {
	Reminders []Reminder
	Notified  bool
}

// Schedule genera, persiste y notifica los recordatorios de una mascota recién creada.
// La generación es pura (Generate); acá solo vive el efecto.
// Política ante fallo de persistencia: se loguea con contexto y se devuelve ErrNotPersisted,
// sin reintentar. Un fallo de notificación nunca se propaga.
func (s *Service) Schedule(ctx context.Context, pet Pet) (ScheduleResult, error) {
	if strings.TrimSpace(pet.ID) == "" || strings.TrimSpace(pet.UserID) == "" {
		return ScheduleResult{}, ErrInvalidInput
	}

	log := s.log.With(map[string]any{"pet_id": pet.ID, "user_id": pet.UserID})

	drafts := Generate(pet, s.now())
	if len(drafts) == 0 {
		log.Info("no reminders apply to pet", map[string]any{"species": pet.Species})
		return ScheduleResult{}, nil
	}

	items := make([]Reminder, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, newReminder(d))
	}

	if err := s.repo.BulkInsert(ctx, items); err != nil {
		log.Error("reminder bulk insert failed", map[string]any{
			"draft_count": len(drafts),
			"error":       err,
		})
		if s.metrics != nil {
			s.metrics.ScheduleFailures.Inc()
		}
		return ScheduleResult{}, fmt.Errorf("%w: %v", ErrNotPersisted, err)
	}

	if s.metrics != nil {
		for _, r := range items {
			s.metrics.RemindersGenerated.WithLabelValues(string(r.Type)).Inc()
		}
	}
	log.Info("reminders scheduled", map[string]any{"count": len(items)})

	return ScheduleResult{
		Reminders: items,
		Notified:  s.notifyScheduled(ctx, log, pet, len(items)),
	}, nil
}

func (s *Service) notifyScheduled(ctx context.Context, log logger.Logger, pet Pet, n int) bool {
	if s.notifier == nil {
		return false
	}

	err := s.notifier.Notify(ctx, pet.UserID,
		"New care reminders",
		fmt.Sprintf("%d reminders generated", n),
		map[string]string{
			"petId":  pet.ID,
			"screen": notifications.ScreenPetDetails,
		},
	)
	if err != nil {
		log.Warn("reminder notification failed", map[string]any{"error": err})
		if s.metrics != nil {
			s.metrics.NotificationFailures.Inc()
		}
		return false
	}
	return true
}

type CreateInput struct {
	PetID           string
	Type            Type
	Title           string
	DueDate         time.Time
	IsRecurring     bool
	FrequencyMonths *int
}

// Create da de alta un recordatorio manual sobre una mascota del usuario.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (View, error) {
	if strings.TrimSpace(userID) == "" {
		return View{}, ErrInvalidInput
	}

	d := Draft{
		PetID:           strings.TrimSpace(in.PetID),
		Type:            in.Type,
		Title:           strings.TrimSpace(in.Title),
		DueDate:         in.DueDate,
		IsRecurring:     in.IsRecurring,
		FrequencyMonths: in.FrequencyMonths,
	}
	if err := d.Validate(); err != nil {
		return View{}, err
	}

	if err := s.authorizePet(ctx, userID, d.PetID); err != nil {
		return View{}, err
	}

	r := newReminder(d)
	if err := s.repo.Create(ctx, r); err != nil {
		return View{}, err
	}
	return Classify(r, s.now()), nil
}

func (s *Service) GetByID(ctx context.Context, userID, id string) (View, error) {
	userID, id = strings.TrimSpace(userID), strings.TrimSpace(id)
	if userID == "" || id == "" {
		return View{}, ErrInvalidInput
	}
	r, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return View{}, err
	}
	return Classify(r, s.now()), nil
}

func (s *Service) ListByPet(ctx context.Context, userID, petID string) ([]View, error) {
	if err := s.authorizePet(ctx, userID, petID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByPet(ctx, userID, petID)
	if err != nil {
		return nil, err
	}
	return s.classifyAll(items), nil
}

// ListQuery es lo que pide la UI; Overdue/DueToday se resuelven contra el reloj del servicio.
type ListQuery struct {
	PetID    string
	Status   Status
	Types    []Type
	Overdue  bool
	DueToday bool
	Limit    int
	Offset   int
}

// Page es una ventana de la lista; Total cuenta todo lo que matchea el filtro.
type Page struct {
	Items  []View
	Total  int
	Offset int
}

// NextOffset devuelve el offset de la página siguiente; ok=false si esta es la última.
func (p Page) NextOffset() (int, bool) {
	next := p.Offset + len(p.Items)
	return next, len(p.Items) > 0 && next < p.Total
}

func (s *Service) List(ctx context.Context, userID string, q ListQuery) (Page, error) {
	if strings.TrimSpace(userID) == "" {
		return Page{}, ErrInvalidInput
	}
	if q.Status != "" && !q.Status.Valid() {
		return Page{}, ErrInvalidInput
	}
	if q.Limit < 0 || q.Offset < 0 {
		return Page{}, ErrInvalidInput
	}
	for _, t := range q.Types {
		if !t.Valid() {
			return Page{}, ErrInvalidInput
		}
	}
	if q.PetID != "" {
		if err := s.authorizePet(ctx, userID, q.PetID); err != nil {
			return Page{}, err
		}
	}

	filter, empty := buildFilter(q, s.now())
	if empty {
		return Page{Items: []View{}, Offset: q.Offset}, nil
	}

	items, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return Page{}, err
	}
	total, err := s.repo.CountByUser(ctx, userID, filter)
	if err != nil {
		return Page{}, err
	}
	return Page{
		Items:  s.classifyAll(items),
		Total:  total,
		Offset: filter.EffectiveOffset(),
	}, nil
}

// buildFilter traduce las vistas derivadas a filtros persistidos.
// empty=true si la combinación no puede matchear nada (p.ej. COMPLETED + vencidos).
func buildFilter(q ListQuery, now time.Time) (ListFilter, bool) {
	f := ListFilter{
		PetID:  q.PetID,
		Status: q.Status,
		Types:  q.Types,
		Limit:  q.Limit,
		Offset: q.Offset,
	}

	if !q.Overdue && !q.DueToday {
		return f, false
	}

	// Ambas vistas son solo de pendientes.
	if f.Status == StatusCompleted {
		return f, true
	}
	f.Status = StatusPending

	var from, before *time.Time
	if q.Overdue {
		n := now
		before = &n
	}
	if q.DueToday {
		start, end := DayBounds(now)
		from = &start
		if before == nil || end.Before(*before) {
			before = &end
		}
	}
	f.DueFrom = from
	f.DueBefore = before
	return f, false
}

// Summary agrega sobre todos los recordatorios del usuario (o de una mascota suya), sin límite.
func (s *Service) Summary(ctx context.Context, userID, petID string) (Summary, error) {
	userID, petID = strings.TrimSpace(userID), strings.TrimSpace(petID)
	if userID == "" {
		return Summary{}, ErrInvalidInput
	}
	if petID != "" {
		if err := s.authorizePet(ctx, userID, petID); err != nil {
			return Summary{}, err
		}
	}
	return s.repo.SummaryByUser(ctx, userID, petID, s.now())
}

// UpdateStatus es idempotente: si ya está en target no escribe nada.
// No se regenera el siguiente ciclo de un recurrente al completarlo.
func (s *Service) UpdateStatus(ctx context.Context, userID, id string, target Status) (View, error) {
	userID, id = strings.TrimSpace(userID), strings.TrimSpace(id)
	if userID == "" || id == "" || !target.Valid() {
		return View{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return View{}, err
	}

	_, changed, err := Transition(current.Status, target)
	if err != nil {
		return View{}, err
	}
	if !changed {
		return Classify(current, s.now()), nil
	}

	updated, err := s.repo.UpdateStatus(ctx, userID, id, target)
	if err != nil {
		return View{}, err
	}

	if s.metrics != nil {
		s.metrics.StatusChanges.WithLabelValues(string(target)).Inc()
	}
	s.log.Debug("reminder status changed", map[string]any{
		"reminder_id": id,
		"from":        string(current.Status),
		"to":          string(target),
	})
	return Classify(updated, s.now()), nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	userID, id = strings.TrimSpace(userID), strings.TrimSpace(id)
	if userID == "" || id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) authorizePet(ctx context.Context, userID, petID string) error {
	userID, petID = strings.TrimSpace(userID), strings.TrimSpace(petID)
	if userID == "" || petID == "" {
		return ErrInvalidInput
	}
	owner, err := s.pets.OwnerOf(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) || errors.Is(err, pets.ErrInvalidInput) {
			return ErrNotFound
		}
		return fmt.Errorf("pet owner lookup: %w", err)
	}
	if strings.TrimSpace(owner) == "" {
		return ErrNotFound
	}
	if owner != userID {
		return ErrForbidden
	}
	return nil
}

func (s *Service) classifyAll(items []Reminder) []View {
	now := s.now()
	out := make([]View, 0, len(items))
	for _, r := range items {
		out = append(out, Classify(r, now))
	}
	return out
}

func newReminder(d Draft) Reminder {
	return Reminder{
		ID:              uuid.NewString(),
		PetID:           d.PetID,
		Type:            d.Type,
		Title:           d.Title,
		DueDate:         d.DueDate,
		IsRecurring:     d.IsRecurring,
		FrequencyMonths: d.FrequencyMonths,
		Status:          StatusPending,
	}
}
