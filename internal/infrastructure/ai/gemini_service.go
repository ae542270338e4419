// Package ai implementa el puerto ReportService llamando a la API REST de
// Google Gemini. Usa únicamente net/http para no añadir dependencias externas.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa ReportService.
var _ ports.ReportService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt define el rol del modelo y el formato de salida.
	// Usar response_mime_type=application/json obliga a Gemini a devolver JSON
	// puro, eliminando la necesidad de limpiar bloques de markdown.
	systemPrompt = `Eres un consultor de negocios senior para bares y restaurantes en Colombia.
Dado el resumen de ventas de un día, devuelve ÚNICAMENTE un objeto JSON (sin texto adicional) con la siguiente estructura exacta:
{
  "resumen_ejecutivo": "<párrafo profesional con el desempeño del día>",
  "observaciones_clave": ["<observación 1>", "<observación 2>", "..."],
  "recomendaciones_estrategicas": ["<recomendación 1>", "<recomendación 2>", "..."]
}

Reglas:
- resumen_ejecutivo: máximo 120 palabras, tono gerencial, en español.
- observaciones_clave: entre 2 y 5 hallazgos concretos sobre los productos más y menos vendidos.
- recomendaciones_estrategicas: entre 2 y 4 acciones accionables de inventario, precio o promoción.`
)

// GeminiService adaptador que implementa ReportService contra la API de Gemini.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas devuelven error descriptivo en lugar de
// fallar en el arranque.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateDailyReport llama a Gemini con las ventas agregadas del día y
// devuelve el reporte gerencial estructurado. Valida la presencia de las
// claves requeridas; el contenido no se valida.
func (s *GeminiService) GenerateDailyReport(ctx context.Context, input dto.DailyReportInput) (*dto.DailyReportDTO, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: buildUserText(input)}},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.3, // baja temperatura para reportes consistentes
			MaxOutputTokens:  1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)
	return parseReport(rawJSON)
}

// buildUserText arma el resumen del día que recibe el modelo.
func buildUserText(input dto.DailyReportInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Fecha: %s\n", input.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Ingresos totales: $%s\n", input.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Pedidos completados: %d\n", input.TotalOrders)
	b.WriteString("Productos vendidos (de mayor a menor):\n")
	for _, s := range input.ItemSales {
		fmt.Fprintf(&b, "- %s: %d unidades\n", s.Name, s.Quantity)
	}
	return b.String()
}

// parseReport deserializa el JSON del modelo verificando que las claves del
// contrato estén presentes.
func parseReport(rawJSON string) (*dto.DailyReportDTO, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(rawJSON), &keys); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, rawJSON)
	}
	for _, k := range []string{"resumen_ejecutivo", "observaciones_clave", "recomendaciones_estrategicas"} {
		if _, ok := keys[k]; !ok {
			return nil, fmt.Errorf("AI: respuesta del modelo sin la clave %q", k)
		}
	}
	var report dto.DailyReportDTO
	if err := json.Unmarshal([]byte(rawJSON), &report); err != nil {
		return nil, fmt.Errorf("AI: estructura del reporte inválida: %w", err)
	}
	return &report, nil
}
