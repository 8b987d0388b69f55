package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidArgument = errors.New("argumento inválido")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrUpstream        = errors.New("error en la API de inventario")
)
