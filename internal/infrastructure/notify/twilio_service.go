// Package notify implementa el puerto Notifier enviando mensajes de WhatsApp
// vía la API REST de Twilio. Sin credenciales completas el adaptador queda
// desactivado y cada envío es un no-op silencioso.
package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/ports"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/config"
)

// Verificar en tiempo de compilación que TwilioService implementa Notifier.
var _ ports.Notifier = (*TwilioService)(nil)

const twilioMessagesURL = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"

// TwilioService adaptador del canal de alertas por WhatsApp.
type TwilioService struct {
	cfg        config.TwilioConfig
	httpClient *http.Client
}

// NewTwilioService construye el adaptador con las credenciales configuradas.
func NewTwilioService(cfg config.TwilioConfig) *TwilioService {
	return &TwilioService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled indica si hay credenciales completas para enviar mensajes.
func (s *TwilioService) Enabled() bool {
	return s.cfg.Enabled()
}

// Send envía un mensaje de WhatsApp al número de destino configurado.
func (s *TwilioService) Send(ctx context.Context, message string) error {
	if !s.Enabled() {
		return nil
	}

	form := url.Values{}
	form.Set("From", "whatsapp:"+s.cfg.FromNumber)
	form.Set("To", "whatsapp:"+s.cfg.ToNumber)
	form.Set("Body", message)

	endpoint := fmt.Sprintf(twilioMessagesURL, s.cfg.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio: crear HTTP request: %w", err)
	}
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return fmt.Errorf("twilio: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
