package entity

// Category representa una categoría de productos con su color de visualización.
type Category struct {
	ID           int64
	Name         string
	Color        string // ej. "hsl(217, 91%, 60%)"
	ProductCount int    // derivado por la API
}
