// Package restapi implementa los puertos de repositorio sobre la API REST de inventario.
// La API es la dueña de productos, categorías y movimientos; este paquete solo traduce
// su formato (snake_case, paginador de Laravel) a las entidades del dominio.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/lojinha-control-api/internal/application/ports"
	"github.com/jhoicas/lojinha-control-api/internal/domain"
)

const maxBodyBytes = 8 << 20

// Client cliente HTTP de la API de inventario.
type Client struct {
	baseURL    string
	maxPages   int
	loc        *time.Location // zona de las fechas sin offset
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin barra final (ej. "https://api.lojinha.com/api").
// maxPages limita cuántas páginas se recorren en listados paginados (mínimo 1).
func NewClient(baseURL string, timeout time.Duration, maxPages int) *Client {
	if maxPages <= 0 {
		maxPages = 1
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxPages:   maxPages,
		loc:        time.UTC,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithLocation fija la zona con la que se leen las fechas que la API envía sin offset.
func (c *Client) WithLocation(loc *time.Location) *Client {
	if loc != nil {
		c.loc = loc
	}
	return c
}

// apiError cuerpo de error típico de la API ({"message": "...", "errors": {...}}).
type apiError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (e apiError) text() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Errors))
	for field, msgs := range e.Errors {
		if len(msgs) > 0 {
			parts = append(parts, field+": "+msgs[0])
		}
	}
	sort.Strings(parts)
	if e.Message == "" {
		return strings.Join(parts, "; ")
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// do ejecuta la petición y devuelve el cuerpo crudo de una respuesta 2xx.
// Los status no exitosos se traducen a errores de dominio envueltos con método y ruta.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("upstream %s %s: serializar request: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("upstream %s %s: crear request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := ports.AccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("upstream %s %s: timeout o cancelación: %w", method, path, ctx.Err())
		}
		return nil, fmt.Errorf("upstream %s %s: %v: %w", method, path, err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("upstream %s %s: leer respuesta: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		var apiErr apiError
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil {
			if t := apiErr.text(); t != "" {
				msg = t
			}
		}
		return nil, fmt.Errorf("upstream %s %s: HTTP %d: %s: %w", method, path, resp.StatusCode, msg, statusError(resp.StatusCode))
	}
	return raw, nil
}

func statusError(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return domain.ErrUpstream
	}
}

// getJSON GET y decodifica en out. Acepta el recurso plano o envuelto en {"data": {...}}.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeResource(http.MethodGet, path, raw, out)
}

// sendJSON POST/PUT con cuerpo JSON; out puede ser nil si no interesa la respuesta.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	raw, err := c.do(ctx, method, path, nil, in)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return decodeResource(method, path, raw, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// listAll recorre un listado que puede venir como arreglo plano o como paginador de Laravel
// ({data, current_page, last_page}). Sigue las páginas hasta last_page o hasta maxPages.
func (c *Client) listAll(ctx context.Context, path string, each func(json.RawMessage) error) error {
	page := 1
	for {
		var query url.Values
		if page > 1 {
			query = url.Values{"page": {strconv.Itoa(page)}}
		}
		raw, err := c.do(ctx, http.MethodGet, path, query, nil)
		if err != nil {
			return err
		}

		items, lastPage, err := decodeList(raw)
		if err != nil {
			return fmt.Errorf("upstream GET %s: %w", path, err)
		}
		for _, item := range items {
			if err := each(item); err != nil {
				return fmt.Errorf("upstream GET %s: decodificar elemento: %w", path, err)
			}
		}

		if page >= lastPage || page >= c.maxPages {
			return nil
		}
		page++
	}
}

type paginator struct {
	Data        []json.RawMessage `json:"data"`
	CurrentPage int               `json:"current_page"`
	LastPage    int               `json:"last_page"`
}

var errUnexpectedShape = errors.New("formato de listado inesperado")

func decodeList(raw []byte) (items []json.RawMessage, lastPage int, err error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, 1, nil
	}
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, 0, err
		}
		return items, 1, nil
	case '{':
		var p paginator
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return nil, 0, err
		}
		if p.LastPage < 1 {
			p.LastPage = 1
		}
		return p.Data, p.LastPage, nil
	default:
		return nil, 0, errUnexpectedShape
	}
}

func decodeResource(method, path string, raw []byte, out any) error {
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &wrapper); err == nil {
			if d := bytes.TrimSpace(wrapper.Data); len(d) > 0 && d[0] == '{' {
				trimmed = d
			}
		}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("upstream %s %s: decodificar respuesta: %w", method, path, err)
	}
	return nil
}
