// Package retry implementa el ejecutor de reintentos con backoff exponencial
// que envuelve toda llamada al almacén remoto. Solo reintenta errores
// clasificados como transitorios: un rechazo de negocio retorna de inmediato,
// evitando entradas duplicadas en el historial.
package retry

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/logger"
)

// Policy configura los reintentos de una operación remota.
type Policy struct {
	MaxAttempts    int           // intentos totales, incluido el primero
	InitialDelay   time.Duration // espera tras el primer fallo
	Multiplier     float64       // factor de backoff exponencial
	AttemptTimeout time.Duration // timeout por intento; 0 = sin timeout propio
}

// DefaultPolicy valores por defecto: 3 intentos, 1s inicial, backoff x2.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    3,
		InitialDelay:   time.Second,
		Multiplier:     2,
		AttemptTimeout: 10 * time.Second,
	}
}

// Executor aplica una Policy a operaciones arbitrarias.
type Executor struct {
	policy   Policy
	classify func(error) bool
	log      *logger.Logger
}

// Option configura el Executor.
type Option func(*Executor)

// WithClassifier reemplaza el clasificador de errores transitorios por defecto.
// Lo usa la capa de infraestructura para reconocer errores propios del driver.
func WithClassifier(fn func(error) bool) Option {
	return func(e *Executor) { e.classify = fn }
}

// New construye el ejecutor. Una Policy con campos en cero toma los defaults.
func New(policy Policy, log *logger.Logger, opts ...Option) *Executor {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = DefaultPolicy().MaxAttempts
	}
	if policy.InitialDelay <= 0 {
		policy.InitialDelay = DefaultPolicy().InitialDelay
	}
	if policy.Multiplier < 1 {
		policy.Multiplier = DefaultPolicy().Multiplier
	}
	e := &Executor{policy: policy, classify: IsTransient, log: log}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do ejecuta op hasta policy.MaxAttempts veces. Entre intentos duerme el delay
// vigente (respetando la cancelación del contexto) y lo multiplica por el
// factor de backoff. Tras agotar los intentos devuelve el último error sin
// envolver, para no ocultar la causa original. Un error no transitorio corta
// los reintentos de inmediato.
func (e *Executor) Do(ctx context.Context, name string, op func(context.Context) error) error {
	delay := e.policy.InitialDelay
	var last error
	for attempt := 1; attempt <= e.policy.MaxAttempts; attempt++ {
		attemptCtx := ctx
		cancel := func() {}
		if e.policy.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, e.policy.AttemptTimeout)
		}
		err := op(attemptCtx)
		cancel()
		if err == nil {
			return nil
		}
		last = err
		if !e.classify(err) {
			return err
		}
		if attempt == e.policy.MaxAttempts {
			break
		}
		if e.log != nil {
			e.log.Warn().
				Str("operacion", name).
				Int("intento", attempt).
				Dur("espera", delay).
				Err(err).
				Msg("operación remota falló, reintentando")
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay = time.Duration(float64(delay) * e.policy.Multiplier)
	}
	if e.log != nil {
		e.log.Error().
			Str("operacion", name).
			Int("intentos", e.policy.MaxAttempts).
			Err(last).
			Msg("reintentos agotados")
	}
	return last
}

// DoValue es la variante genérica de Do para operaciones que devuelven un valor.
func DoValue[T any](ctx context.Context, e *Executor, name string, op func(context.Context) (T, error)) (T, error) {
	var result T
	err := e.Do(ctx, name, func(ctx context.Context) error {
		v, err := op(ctx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	return result, err
}

// transientError marca explícitamente un error como transitorio.
type transientError struct {
	err error
}

func (t *transientError) Error() string { return t.err.Error() }
func (t *transientError) Unwrap() error { return t.err }

// Transient envuelve un error para que el clasificador por defecto lo reintente.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient clasificador por defecto: timeouts de red, deadline del intento
// y errores marcados con Transient. Todo lo demás (rechazos de negocio,
// entradas inválidas) no se reintenta.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var te *transientError
	if errors.As(err, &te) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}
