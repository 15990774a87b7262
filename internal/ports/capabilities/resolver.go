package capabilities

import "context"

// Capabilities que consulta este servicio contra plans-features.
const (
	ManualReminders = "reminders:manual_create"
)

type CapabilityCheck struct {
	UserID     string
	Capability string
}

// CapabilitiesResolver decide si el plan del usuario habilita una feature.
type CapabilitiesResolver interface {
	HasFeature(ctx context.Context, in CapabilityCheck) (bool, error)
}
