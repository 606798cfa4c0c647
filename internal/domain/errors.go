package domain

import "errors"

// ErrInvalidParameter marca una configuración inválida: count <= 0,
// desviación estándar negativa, epsilon <= 0.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrShapeMismatch marca dos muestras de distinta longitud.
var ErrShapeMismatch = errors.New("shape mismatch")
