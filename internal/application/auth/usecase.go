// Package auth autentica al operador único del panel contra las credenciales
// configuradas por entorno y emite tokens JWT para el resto de la API.
package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/config"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/jwt"
)

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras autenticar.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in_minutes"`
}

// UseCase valida credenciales del administrador y emite tokens.
type UseCase struct {
	auth config.AuthConfig
	jwt  config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(auth config.AuthConfig, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{auth: auth, jwt: jwtCfg}
}

// Login compara email y contraseña contra las credenciales configuradas.
// La comparación de contraseña usa bcrypt; la de email es case-insensitive.
func (uc *UseCase) Login(_ context.Context, in LoginRequest) (*LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("email o contraseña vacíos: %w", domain.ErrInvalidInput)
	}
	if uc.auth.AdminEmail == "" || uc.auth.AdminPasswordHash == "" {
		return nil, fmt.Errorf("credenciales de administrador no configuradas: %w", domain.ErrUnauthorized)
	}
	if !strings.EqualFold(in.Email, uc.auth.AdminEmail) {
		return nil, fmt.Errorf("credenciales incorrectas: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.auth.AdminPasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("credenciales incorrectas: %w", domain.ErrUnauthorized)
	}

	token, err := jwt.Generate(uc.jwt.Secret, uc.auth.AdminEmail, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, fmt.Errorf("no se pudo emitir el token: %w", err)
	}
	return &LoginResponse{Token: token, ExpiresIn: uc.jwt.Expiration}, nil
}
