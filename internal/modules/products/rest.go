package products

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RESTConfig points at a PostgREST-compatible endpoint, such as the REST
// interface of a hosted Postgres.
type RESTConfig struct {
	BaseURL string // e.g. https://xyz.example.co
	APIKey  string
	Table   string
	Timeout time.Duration // 0 = no client timeout
}

// RESTStore talks to the hosted database over its REST interface.
type RESTStore struct {
	cfg    RESTConfig
	client *http.Client
}

func NewRESTStore(cfg RESTConfig, client *http.Client) *RESTStore {
	if cfg.Table == "" {
		cfg.Table = "products"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &RESTStore{cfg: cfg, client: client}
}

// restRow is the wire shape of a row. Nullable columns come back as null.
type restRow struct {
	ID          json.RawMessage `json:"id"`
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price"`
	ImageURL    *string         `json:"image_url"`
	Category    *string         `json:"category"`
	CreatedAt   *time.Time      `json:"created_at"`
}

func (r restRow) product() Product {
	p := Product{
		ID:          rawID(r.ID),
		Name:        deref(r.Name),
		Description: deref(r.Description),
		ImageURL:    deref(r.ImageURL),
		Category:    deref(r.Category),
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.CreatedAt != nil {
		p.CreatedAt = *r.CreatedAt
	}
	return p
}

// rawID accepts both string and numeric identity columns.
func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type restError struct {
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
	Code    string `json:"code"`
}

func (s *RESTStore) List(ctx context.Context) ([]Product, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")

	var rows []restRow
	if err := s.do(ctx, "list", http.MethodGet, q, nil, &rows); err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.product())
	}
	return out, nil
}

func (s *RESTStore) Insert(ctx context.Context, f Fields) (Product, error) {
	var rows []restRow
	if err := s.do(ctx, "insert", http.MethodPost, nil, []Fields{f}, &rows); err != nil {
		return Product{}, err
	}
	if len(rows) == 0 {
		return Product{}, &StoreError{Op: "insert", Message: "kayıt oluşturulamadı"}
	}
	return rows[0].product(), nil
}

func (s *RESTStore) Update(ctx context.Context, id string, f Fields) (Product, error) {
	if id == "" {
		return Product{}, ErrMissingID
	}
	var rows []restRow
	if err := s.do(ctx, "update", http.MethodPatch, eqID(id), f, &rows); err != nil {
		return Product{}, err
	}
	if len(rows) == 0 {
		return Product{}, ErrNotFound
	}
	return rows[0].product(), nil
}

func (s *RESTStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	var rows []restRow
	if err := s.do(ctx, "delete", http.MethodDelete, eqID(id), nil, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

func eqID(id string) url.Values {
	q := url.Values{}
	q.Set("id", "eq."+id)
	return q
}

func (s *RESTStore) endpoint(q url.Values) string {
	u := s.cfg.BaseURL + "/rest/v1/" + url.PathEscape(s.cfg.Table)
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (s *RESTStore) do(ctx context.Context, op, method string, q url.Values, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &StoreError{Op: op, Err: fmt.Errorf("encode body: %w", err)}
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.endpoint(q), rdr)
	if err != nil {
		return &StoreError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}
	if s.cfg.APIKey != "" {
		req.Header.Set("apikey", s.cfg.APIKey)
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &StoreError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &StoreError{Op: op, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= 300 {
		var re restError
		_ = json.Unmarshal(raw, &re)
		msg := re.Message
		if msg == "" {
			msg = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		return &StoreError{Op: op, Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &StoreError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
