package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores traducen los
// fallos de bajo nivel a esta taxonomía; los handlers HTTP la mapean a códigos.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está en uso")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrLastSuperadmin     = errors.New("no se puede eliminar el último Superadmin")
	ErrRemote             = errors.New("fallo del almacén remoto de registros")
)
