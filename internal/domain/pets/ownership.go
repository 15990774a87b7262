package pets

import "context"

// OwnerOf expone el ownerUserID de una mascota.
// Lo consume reminders (vía interfaz) para no importar este paquete.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}
