package notifications

import "context"

// Screen al que la app móvil navega al abrir la notificación.
const ScreenPetDetails = "PetDetails"

// Dispatcher entrega notificaciones push al usuario.
// Es best-effort: quien llama registra el error y sigue; nunca reintenta en línea.
type Dispatcher interface {
	Notify(ctx context.Context, userID, title, message string, payload map[string]string) error
}
