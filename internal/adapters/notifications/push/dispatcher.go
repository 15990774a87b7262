package push

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-care-reminders/internal/platform/httpclient"
	"pet-care-reminders/internal/ports/notifications"
)

var ErrPushNotConfigured = errors.New("push gateway not configured")

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Dispatcher manda notificaciones al gateway de push (POST /v1/notifications).
// El breaker corta llamadas mientras el gateway está caído para no demorar el alta de mascotas.
type Dispatcher struct {
	http *httpclient.Client
}

func New(cfg Config) (*Dispatcher, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrPushNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, timeout)
	if err != nil {
		return nil, err
	}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		hc.Headers = map[string]string{"Authorization": "Bearer " + key}
	}
	hc.WithCircuitBreaker(httpclient.DefaultBreakerSettings("push"))

	return &Dispatcher{http: hc}, nil
}

type notification struct {
	UserID  string            `json:"user_id"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

func (d *Dispatcher) Notify(ctx context.Context, userID, title, message string, payload map[string]string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("push: user id required")
	}

	err := d.http.DoJSON(ctx, http.MethodPost, "/v1/notifications", nil, notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Data:    payload,
	}, nil)
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// State del breaker, para logs de arranque y tests.
func (d *Dispatcher) State() string {
	return d.http.BreakerState()
}

var _ notifications.Dispatcher = (*Dispatcher)(nil)
