package assist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTaskDescription_NoAPIKey(t *testing.T) {
	// Arrange
	client := NewClient("", time.Second, nil)

	// Act
	got := client.GenerateTaskDescription(context.Background(), "Limpiar la cocina")

	// Assert
	assert.Equal(t, "La función de IA está deshabilitada. Por favor, configure la clave de API.", got)
}

func TestGenerateTaskDescription_Success(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"1. Lavar los platos.\n2. Limpiar la encimera."}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", time.Second, nil)
	client.baseURL = srv.URL

	// Act
	got := client.GenerateTaskDescription(context.Background(), "Limpiar la cocina")

	// Assert
	assert.Equal(t, "1. Lavar los platos.\n2. Limpiar la encimera.", got)
}

func TestGenerateTaskDescription_APIError(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"Resource exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", time.Second, nil)
	client.baseURL = srv.URL

	// Act
	got := client.GenerateTaskDescription(context.Background(), "Limpiar la cocina")

	// Assert
	assert.Equal(t, "Hubo un error al generar la descripción con IA. Por favor, inténtelo de nuevo o escríbala manualmente.", got)
}

func TestGenerateTaskDescription_Unreachable(t *testing.T) {
	// Arrange
	client := NewClient("test-key", 100*time.Millisecond, nil)
	client.baseURL = "http://127.0.0.1:1"

	// Act
	got := client.GenerateTaskDescription(context.Background(), "Limpiar la cocina")

	// Assert
	assert.Equal(t, "Hubo un error al generar la descripción con IA. Por favor, inténtelo de nuevo o escríbala manualmente.", got)
}
