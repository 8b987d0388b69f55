package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/lojinha-control-api/internal/domain/entity"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

// apiTime acepta los formatos de fecha que devuelve la API (RFC3339 con o sin fracción,
// "2006-01-02 15:04:05" o solo fecha). null o "" dejan el valor cero.
// Los formatos sin zona se leen como hora local de la tienda (ver in).
type apiTime struct {
	time.Time
	naive bool
}

var apiTimeLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02", true},
}

func (t *apiTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, l := range apiTimeLayouts {
		if parsed, err := time.Parse(l.layout, s); err == nil {
			t.Time, t.naive = parsed, l.naive
			return nil
		}
	}
	return fmt.Errorf("fecha no reconocida: %q", s)
}

// in devuelve la fecha; si vino sin zona, la misma hora de reloj en loc.
func (t apiTime) in(loc *time.Location) time.Time {
	if !t.naive || t.IsZero() || loc == nil {
		return t.Time
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

type apiCategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type apiProduct struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Quantity   int             `json:"quantity"`
	MinStock   int             `json:"min_stock"`
	Price      decimal.Decimal `json:"price"`
	Cost       decimal.Decimal `json:"cost"`
	CategoryID *int64          `json:"category_id"`
	Category   *apiCategoryRef `json:"category"`
	CreatedAt  apiTime         `json:"created_at"`
	UpdatedAt  apiTime         `json:"updated_at"`
}

func (p apiProduct) toEntity(loc *time.Location) entity.Product {
	out := entity.Product{
		ID:         p.ID,
		Name:       p.Name,
		SKU:        p.SKU,
		CategoryID: p.CategoryID,
		Quantity:   max(p.Quantity, 0),
		MinStock:   max(p.MinStock, 0),
		Price:      p.Price,
		Cost:       p.Cost,
		CreatedAt:  p.CreatedAt.in(loc),
		UpdatedAt:  p.UpdatedAt.in(loc),
	}
	if p.Category != nil {
		id := p.Category.ID
		out.CategoryID = &id
		out.CategoryName = p.Category.Name
	}
	return out
}

// productPayload cuerpo de POST/PUT /products. Precio y costo viajan como números JSON.
type productPayload struct {
	Name       string      `json:"name"`
	SKU        string      `json:"sku"`
	Quantity   int         `json:"quantity"`
	MinStock   int         `json:"min_stock"`
	Price      json.Number `json:"price"`
	Cost       json.Number `json:"cost"`
	CategoryID *int64      `json:"category_id"`
}

func newProductPayload(in repository.ProductWrite) productPayload {
	return productPayload{
		Name:       in.Name,
		SKU:        in.SKU,
		Quantity:   in.Quantity,
		MinStock:   in.MinStock,
		Price:      json.Number(in.Price.Round(2).String()),
		Cost:       json.Number(in.Cost.Round(2).String()),
		CategoryID: in.CategoryID,
	}
}

type apiCategory struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	ProductCount int    `json:"product_count"`
}

func (c apiCategory) toEntity() entity.Category {
	return entity.Category{ID: c.ID, Name: c.Name, Color: c.Color, ProductCount: c.ProductCount}
}

type categoryPayload struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type apiMovement struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Product     *apiCategoryRef `json:"product"`
	Type        string          `json:"type"`
	Quantity    int             `json:"quantity"`
	Reason      *string         `json:"reason"`
	CreatedAt   apiTime         `json:"created_at"`
	HappenedAt  apiTime         `json:"happened_at"`
}

func (m apiMovement) toEntity(loc *time.Location) entity.StockMovement {
	out := entity.StockMovement{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        entity.MovementType(strings.ToLower(m.Type)),
		Quantity:    m.Quantity,
		CreatedAt:   m.CreatedAt.in(loc),
	}
	if out.ProductName == "" && m.Product != nil {
		out.ProductName = m.Product.Name
	}
	if m.Reason != nil {
		out.Reason = *m.Reason
	}
	if out.CreatedAt.IsZero() {
		out.CreatedAt = m.HappenedAt.in(loc)
	}
	return out
}

type movementPayload struct {
	ProductID  int64  `json:"product_id"`
	Type       string `json:"type"`
	Quantity   int    `json:"quantity"`
	Reason     string `json:"reason,omitempty"`
	HappenedAt string `json:"happened_at,omitempty"`
}

func newMovementPayload(in repository.StockMovementWrite) movementPayload {
	p := movementPayload{
		ProductID: in.ProductID,
		Type:      string(in.Type),
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	}
	if in.HappenedAt != nil {
		p.HappenedAt = in.HappenedAt.Format(time.RFC3339)
	}
	return p
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type apiUser struct {
	ID    any    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string  `json:"token"`
	User  apiUser `json:"user"`
}

func (u apiUser) toEntity() entity.User {
	id := ""
	switch v := u.ID.(type) {
	case string:
		id = v
	case float64:
		id = decimal.NewFromFloat(v).String()
	}
	return entity.User{ID: id, Name: u.Name, Email: u.Email}
}
