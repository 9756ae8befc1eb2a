package dto

// ErrorResponse cuerpo de error HTTP.
// Fields lleva el mensaje por campo cuando falla la validación del formulario.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ExportFile archivo listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// CNPJResponse respuesta de GET /api/tools/cnpj.
type CNPJResponse struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
}
