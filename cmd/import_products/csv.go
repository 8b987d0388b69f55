package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// productRow una línea del CSV ya validada.
type productRow struct {
	Line     int
	Name     string
	SKU      string
	Category string
	Quantity int
	MinStock int
	Price    decimal.Decimal
	Cost     decimal.Decimal
}

// Nombres aceptados para cada columna (inglés o como los exporta la planilla de la tienda).
var columnAliases = map[string][]string{
	"name":      {"name", "nome", "produto"},
	"sku":       {"sku", "codigo", "código"},
	"category":  {"category", "categoria"},
	"quantity":  {"quantity", "quantidade", "qtd"},
	"min_stock": {"min_stock", "estoque_minimo", "estoque mínimo", "minimo"},
	"price":     {"price", "preco", "preço"},
	"cost":      {"cost", "custo"},
}

// parseProducts lee el CSV completo. latin1 decodifica ISO-8859-1 (CSV guardado desde Excel).
// El separador (; o ,) se detecta en el encabezado. Los errores de cada línea se acumulan.
func parseProducts(r io.Reader, latin1 bool) ([]productRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = detectComma(raw)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := mapColumns(header)
	for _, required := range []string{"name", "sku"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("falta la columna %q en el encabezado", required)
		}
	}

	var (
		rows []productRow
		errs []error
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if blank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)
		row, err := toRow(line, rec, cols)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rows = append(rows, row)
	}
	return rows, errors.Join(errs...)
}

func detectComma(raw []byte) rune {
	first := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		first = raw[:i]
	}
	if bytes.Count(first, []byte(";")) >= bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}

func mapColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for key, aliases := range columnAliases {
			for _, a := range aliases {
				if h == a {
					cols[key] = i
				}
			}
		}
	}
	return cols
}

func toRow(line int, rec []string, cols map[string]int) (productRow, error) {
	get := func(key string) string {
		i, ok := cols[key]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	row := productRow{Line: line, Name: get("name"), SKU: get("sku"), Category: get("category")}
	if row.Name == "" || row.SKU == "" {
		return row, fmt.Errorf("línea %d: name y sku son obligatorios", line)
	}
	var err error
	if row.Quantity, err = parseCount(get("quantity")); err != nil {
		return row, fmt.Errorf("línea %d: quantity: %w", line, err)
	}
	if row.MinStock, err = parseCount(get("min_stock")); err != nil {
		return row, fmt.Errorf("línea %d: min_stock: %w", line, err)
	}
	if row.Price, err = parseAmount(get("price")); err != nil {
		return row, fmt.Errorf("línea %d: price: %w", line, err)
	}
	if row.Cost, err = parseAmount(get("cost")); err != nil {
		return row, fmt.Errorf("línea %d: cost: %w", line, err)
	}
	return row, nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q no es un entero", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d no puede ser negativo", n)
	}
	return n, nil
}

// parseAmount acepta "1.234,56", "R$ 29,90" y "29.90".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return decimal.Zero, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q no es un valor válido", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s no puede ser negativo", d)
	}
	return d.Round(2), nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
