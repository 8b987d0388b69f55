package dto

// CreateCategoryRequest entrada para crear una categoría. Color vacío = primer color de la paleta.
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	ProductCount int    `json:"product_count"`
}

// PaletteColorDTO color de la paleta con su nombre visible.
type PaletteColorDTO struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PaletteResponse colores disponibles para categorías.
type PaletteResponse struct {
	Colors []PaletteColorDTO `json:"colors"`
}
