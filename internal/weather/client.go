package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoData indica que el proveedor respondió sin condiciones actuales.
var ErrNoData = errors.New("no weather data found")

// Report es el documento de condiciones actuales del proveedor. Location y
// Current se conservan crudos para devolverlos al cliente sin recodificar.
type Report struct {
	Location json.RawMessage `json:"location,omitempty"`
	Current  json.RawMessage `json:"current,omitempty"`
}

// Client define la interfaz para consultar condiciones actuales.
type Client interface {
	Current(ctx context.Context, location string) (Report, error)
}

type logger interface {
	Printf(format string, v ...interface{})
}

// HTTPClient implementa Client contra la API de weatherapi.com.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  logger
}

// NewHTTPClient construye un cliente HTTP apuntando al endpoint current.json.
func NewHTTPClient(baseURL, apiKey string, log any) *HTTPClient {
	l, _ := log.(logger)
	if baseURL == "" {
		baseURL = "https://api.weatherapi.com/v1"
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  l,
	}
}

func (c *HTTPClient) Current(ctx context.Context, location string) (Report, error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("lang", "eng")
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/current.json?"+query.Encode(), nil)
	if err != nil {
		return Report{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, fmt.Errorf("read response: %w", err)
	}

	var report Report
	if err := json.Unmarshal(respBody, &report); err != nil {
		if c.logger != nil {
			c.logger.Printf("weather provider status %d: unparseable body", resp.StatusCode)
		}
		return Report{}, fmt.Errorf("unmarshal response: %w", err)
	}

	// El proveedor señala datos válidos con la presencia del campo current;
	// errores de API llegan como 4xx con cuerpo {"error": ...} sin current.
	if len(report.Current) == 0 {
		return Report{}, ErrNoData
	}

	return report, nil
}
