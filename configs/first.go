package configs

import (
	"errors"
)

// First returns the first value defined at path, or the zero value.
// It panics on unreadable or invalid configuration.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
