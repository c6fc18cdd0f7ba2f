package repository

import "errors"

var (
	// ErrNotFound registro não encontrado
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate registro duplicado
	ErrDuplicate = errors.New("duplicate record")

	// ErrInvalidData dados inválidos
	ErrInvalidData = errors.New("invalid data")

	// ErrUnavailable armazenamento inacessível
	ErrUnavailable = errors.New("storage unavailable")
)
