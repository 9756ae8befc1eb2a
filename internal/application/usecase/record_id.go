package usecase

import (
	"fmt"

	"github.com/google/uuid"
)

// newRecordID genera un UUIDv7: prefijo de timestamp en milisegundos más bits aleatorios,
// único aunque dos altas ocurran en el mismo milisegundo.
func newRecordID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generar id: %w", err)
	}
	return id.String(), nil
}
