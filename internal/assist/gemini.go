// Package assist wraps the Google Gemini generateContent endpoint to draft
// task descriptions for household staff.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	modelName      = "gemini-2.5-flash"

	// User-facing fallbacks, returned instead of errors so the caller can
	// always show something in the description field.
	msgDisabled = "La función de IA está deshabilitada. Por favor, configure la clave de API."
	msgFailed   = "Hubo un error al generar la descripción con IA. Por favor, inténtelo de nuevo o escríbala manualmente."
)

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateTaskDescription drafts a step-by-step description in Spanish for
// the given task title. It never returns an error: when the key is missing
// or the call fails, a fixed fallback message is returned instead.
func (c *Client) GenerateTaskDescription(ctx context.Context, title string) string {
	if c.apiKey == "" {
		return msgDisabled
	}

	prompt := fmt.Sprintf("Basado en el título de la tarea %q, genera una descripción detallada y paso a paso para un empleado del hogar. El tono debe ser claro, educado y fácil de seguir. Usa viñetas o listas numeradas cuando sea apropiado. La respuesta debe estar en español.", title)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		c.logger.Error("failed to encode generateContent request", slog.Any("error", err))
		return msgFailed
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, modelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("failed to build generateContent request", slog.Any("error", err))
		return msgFailed
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("generateContent call failed", slog.Any("error", err))
		return msgFailed
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read generateContent response", slog.Any("error", err))
		return msgFailed
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		c.logger.Error("failed to decode generateContent response",
			slog.Int("status", resp.StatusCode), slog.Any("error", err))
		return msgFailed
	}
	if resp.StatusCode != http.StatusOK || parsed.Error != nil {
		status := ""
		if parsed.Error != nil {
			status = parsed.Error.Message
		}
		c.logger.Error("generateContent returned an error",
			slog.Int("status", resp.StatusCode), slog.String("message", status))
		return msgFailed
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		c.logger.Error("generateContent returned no candidates")
		return msgFailed
	}
	return parsed.Candidates[0].Content.Parts[0].Text
}
