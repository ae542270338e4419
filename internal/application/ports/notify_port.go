package ports

import "context"

// Notifier define el puerto de salida del canal de alertas (fire-and-forget).
// Un fallo de envío se registra y se descarta: la alerta notifica un hecho ya
// ocurrido y nunca debe revertir ni bloquear una transacción de stock.
type Notifier interface {
	Send(ctx context.Context, message string) error
	// Enabled indica si hay credenciales configuradas.
	Enabled() bool
}
