package reminders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-reminders/internal/middleware"
	"pet-care-reminders/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service, caps capabilities.CapabilitiesResolver) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Get("/", listRemindersHandler(svc))
		rr.Post("/", createReminderHandler(svc, caps))
		rr.Get("/summary", summaryHandler(svc))

		rr.Get("/{reminderID}", getReminderHandler(svc))
		rr.Patch("/{reminderID}/status", updateStatusHandler(svc))
		rr.Delete("/{reminderID}", deleteReminderHandler(svc))
	})

	r.Get("/pets/{petID}/reminders", listPetRemindersHandler(svc))
}

// createReminderRequest es el alta manual. frequency_months va solo si is_recurring=true.
type createReminderRequest struct {
	PetID           string `json:"pet_id" validate:"required"`
	Type            Type   `json:"type" validate:"required,oneof=VACCINE DEWORM HYGIENE SPAY_NEUTER" enums:"VACCINE,DEWORM,HYGIENE,SPAY_NEUTER"`
	Title           string `json:"title" validate:"required,max=200"`
	DueDate         string `json:"due_date" validate:"required"` // RFC3339 o YYYY-MM-DD
	IsRecurring     bool   `json:"is_recurring"`
	FrequencyMonths *int   `json:"frequency_months" validate:"omitempty,min=1,max=120"`
}

type updateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=PENDING COMPLETED" enums:"PENDING,COMPLETED"`
}

// reminderResponse incluye overdue/due_today calculados al momento del request (no se persisten).
type reminderResponse struct {
	ID              string    `json:"id"`
	PetID           string    `json:"pet_id"`
	Type            Type      `json:"type"`
	Title           string    `json:"title"`
	DueDate         time.Time `json:"due_date"`
	IsRecurring     bool      `json:"is_recurring"`
	FrequencyMonths *int      `json:"frequency_months"`
	Status          Status    `json:"status"`
	Overdue         bool      `json:"overdue"`
	DueToday        bool      `json:"due_today"`
}

// Headers de paginado de GET /reminders.
const (
	HeaderTotalCount = "X-Total-Count"
	HeaderNextOffset = "X-Next-Offset"
)

type summaryResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
	DueToday  int `json:"due_today"`
}

// listRemindersHandler godoc
// @Summary Listar recordatorios del usuario
// @Description Lista los recordatorios de todas las mascotas del usuario autenticado. `overdue` y `due_today` se calculan al momento del request.
// @Tags reminders
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param pet_id query string false "Filtrar por mascota"
// @Param status query string false "PENDING o COMPLETED"
// @Param type query string false "Tipo o lista CSV (VACCINE,DEWORM,HYGIENE,SPAY_NEUTER)"
// @Param overdue query bool false "Solo vencidos"
// @Param due_today query bool false "Solo los que vencen hoy"
// @Param limit query int false "Máximo a devolver (1-500). Por defecto 100"
// @Param offset query int false "Filas a saltear (paginado). Por defecto 0"
// @Success 200 {array} reminderResponse
// @Header 200 {integer} X-Total-Count "Total que matchea el filtro, sin paginar"
// @Header 200 {integer} X-Next-Offset "Offset de la página siguiente; ausente en la última"
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /reminders [get]
func listRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		q, err := parseListQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		page, err := svc.List(r.Context(), userID, q)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set(HeaderTotalCount, strconv.Itoa(page.Total))
		if next, more := page.NextOffset(); more {
			w.Header().Set(HeaderNextOffset, strconv.Itoa(next))
		}
		writeJSON(w, http.StatusOK, toReminderResponses(page.Items))
	}
}

// listPetRemindersHandler godoc
// @Summary Listar recordatorios de una mascota
// @Tags reminders
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} reminderResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/reminders [get]
func listPetRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByPet(r.Context(), userID, chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponses(items))
	}
}

// createReminderHandler godoc
// @Summary Crear recordatorio manual
// @Description Crea un recordatorio sobre una mascota propia. Si hay resolver de capabilities configurado, requiere `reminders:manual_create` en el plan.
// @Tags reminders
// @Accept json
// @Produce json
// @Param payload body createReminderRequest true "Datos del recordatorio"
// @Success 201 {object} reminderResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Failure 503 {string} string "capabilities unavailable"
// @Router /reminders [post]
func createReminderHandler(svc *Service, caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		if !allowed(r.Context(), w, caps, userID, capabilities.ManualReminders) {
			return
		}

		var req createReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, validationMessage(err), http.StatusBadRequest)
			return
		}

		due, err := parseDue(req.DueDate)
		if err != nil {
			http.Error(w, "due_date must be RFC3339 or YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		v, err := svc.Create(r.Context(), userID, CreateInput{
			PetID:           req.PetID,
			Type:            req.Type,
			Title:           req.Title,
			DueDate:         due,
			IsRecurring:     req.IsRecurring,
			FrequencyMonths: req.FrequencyMonths,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toReminderResponse(v))
	}
}

// summaryHandler godoc
// @Summary Resumen de recordatorios
// @Description Conteos por estado y vencimiento, calculados al momento del request.
// @Tags reminders
// @Produce json
// @Param pet_id query string false "Limitar a una mascota"
// @Success 200 {object} summaryResponse
// @Failure 401 {string} string "unauthorized"
// @Router /reminders/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		s, err := svc.Summary(r.Context(), userID, strings.TrimSpace(r.URL.Query().Get("pet_id")))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summaryResponse{
			Total:     s.Total,
			Pending:   s.Pending,
			Completed: s.Completed,
			Overdue:   s.Overdue,
			DueToday:  s.DueToday,
		})
	}
}

// getReminderHandler godoc
// @Summary Obtener recordatorio
// @Tags reminders
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Success 200 {object} reminderResponse
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID} [get]
func getReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		v, err := svc.GetByID(r.Context(), userID, chi.URLParam(r, "reminderID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponse(v))
	}
}

// updateStatusHandler godoc
// @Summary Cambiar estado de un recordatorio
// @Description PENDING <-> COMPLETED. Repetir el mismo estado es un no-op.
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminderID path string true "ID del recordatorio"
// @Param payload body updateStatusRequest true "Nuevo estado"
// @Success 200 {object} reminderResponse
// @Failure 400 {string} string "estado inválido"
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID}/status [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, validationMessage(err), http.StatusBadRequest)
			return
		}

		v, err := svc.UpdateStatus(r.Context(), userID, chi.URLParam(r, "reminderID"), req.Status)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReminderResponse(v))
	}
}

// deleteReminderHandler godoc
// @Summary Eliminar recordatorio
// @Tags reminders
// @Param reminderID path string true "ID del recordatorio"
// @Success 204
// @Failure 404 {string} string "reminder not found"
// @Router /reminders/{reminderID} [delete]
func deleteReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "reminderID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || !claims.Authenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return claims.UserID, true
}

func allowed(ctx context.Context, w http.ResponseWriter, caps capabilities.CapabilitiesResolver, userID, capability string) bool {
	if caps == nil {
		return true
	}
	ok, err := caps.HasFeature(ctx, capabilities.CapabilityCheck{UserID: userID, Capability: capability})
	if err != nil {
		http.Error(w, "capabilities unavailable", http.StatusServiceUnavailable)
		return false
	}
	if !ok {
		http.Error(w, "plan does not include "+capability, http.StatusForbidden)
		return false
	}
	return true
}

func parseListQuery(r *http.Request) (ListQuery, error) {
	v := r.URL.Query()
	q := ListQuery{
		PetID:  strings.TrimSpace(v.Get("pet_id")),
		Status: Status(strings.ToUpper(strings.TrimSpace(v.Get("status")))),
	}

	if s := strings.TrimSpace(v.Get("limit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return ListQuery{}, errors.New("limit must be a positive integer")
		}
		q.Limit = n
	}
	if s := strings.TrimSpace(v.Get("offset")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return ListQuery{}, errors.New("offset must be a non-negative integer")
		}
		q.Offset = n
	}

	// type=VACCINE,DEWORM o type=VACCINE&type=DEWORM
	for _, raw := range v["type"] {
		for _, p := range strings.Split(raw, ",") {
			t := Type(strings.ToUpper(strings.TrimSpace(p)))
			if t == "" {
				continue
			}
			if !t.Valid() {
				return ListQuery{}, errors.New("unknown reminder type " + string(t))
			}
			q.Types = append(q.Types, t)
		}
	}

	var err error
	if q.Overdue, err = parseBoolParam(v.Get("overdue")); err != nil {
		return ListQuery{}, errors.New("overdue must be a boolean")
	}
	if q.DueToday, err = parseBoolParam(v.Get("due_today")); err != nil {
		return ListQuery{}, errors.New("due_today must be a boolean")
	}
	return q, nil
}

func parseBoolParam(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

func parseDue(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+": "+fe.Tag())
	}
	return "invalid request: " + strings.Join(parts, ", ")
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toReminderResponse(v View) reminderResponse {
	return reminderResponse{
		ID:              v.ID,
		PetID:           v.PetID,
		Type:            v.Type,
		Title:           v.Title,
		DueDate:         v.DueDate,
		IsRecurring:     v.IsRecurring,
		FrequencyMonths: v.FrequencyMonths,
		Status:          v.Status,
		Overdue:         v.Overdue,
		DueToday:        v.DueToday,
	}
}

func toReminderResponses(items []View) []reminderResponse {
	out := make([]reminderResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toReminderResponse(v))
	}
	return out
}

// writeJSON duplicado a propósito con pets; todavía no justifica un paquete compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
