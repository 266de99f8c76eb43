package storage

import (
	"errors"
	"strings"
)

// Resultados de una llamada al gateway. Los adapters los envuelven con %w y los callers usan errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists or still referenced")
	ErrNoRowsAffected   = errors.New("commit affected no rows")
	ErrInvalidReference = errors.New("referenced entity does not exist")
	ErrNotImplemented   = errors.New("not implemented")
)

// NameKey es la forma normalizada de un nombre (trim + minúsculas Unicode).
// Es lo que guarda la columna name_key con índice único.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameName compara nombres como lo hacen los chequeos de unicidad.
func SameName(a, b string) bool {
	return NameKey(a) == NameKey(b)
}
