// Package lock serializa validar+persistir de las reservas por fecha.
// Sin el lock, dos reservas simultáneas del mismo horario podrían pasar
// ambas la verificación de disponibilidad.
package lock

import "context"

type ReleaseFunc func()

type Locker interface {
	// Acquire bloquea la clave (una fecha YYYY-MM-DD) hasta obtener el lock
	// o hasta que el contexto expire. Release libera siempre, aun tras error
	// del llamador.
	Acquire(ctx context.Context, key string) (ReleaseFunc, error)
}
