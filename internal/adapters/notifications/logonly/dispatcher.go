package logonly

import (
	"context"

	"pet-care-reminders/internal/platform/logger"
	"pet-care-reminders/internal/ports/notifications"
)

// Dispatcher registra la notificación en el log en vez de enviarla.
// Se usa en dev o cuando PUSH_BASE_URL no está configurado.
type Dispatcher struct {
	log logger.Logger
}

func New(log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &Dispatcher{log: log.With(map[string]any{"component": "notifications"})}
}

func (d *Dispatcher) Notify(ctx context.Context, userID, title, message string, payload map[string]string) error {
	fields := map[string]any{
		"user_id": userID,
		"title":   title,
		"message": message,
	}
	for k, v := range payload {
		fields["payload."+k] = v
	}
	d.log.Info("notification (not delivered)", fields)
	return nil
}

var _ notifications.Dispatcher = (*Dispatcher)(nil)
