package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	// ErrNoData se devuelve al exportar una colección vacía; el caller lo muestra como aviso.
	ErrNoData = errors.New("não há dados para exportar")
)
