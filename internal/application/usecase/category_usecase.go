package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/lojinha-control-api/internal/application/dto"
	"github.com/jhoicas/lojinha-control-api/internal/domain"
	"github.com/jhoicas/lojinha-control-api/internal/domain/repository"
)

// Palette colores ofrecidos al crear una categoría; el primero es el color por defecto.
var Palette = []dto.PaletteColorDTO{
	{Name: "Azul", Value: "hsl(217, 91%, 60%)"},
	{Name: "Roxo", Value: "hsl(280, 87%, 65%)"},
	{Name: "Laranja", Value: "hsl(38, 92%, 50%)"},
	{Name: "Rosa", Value: "hsl(340, 82%, 52%)"},
	{Name: "Verde", Value: "hsl(160, 84%, 39%)"},
	{Name: "Vermelho", Value: "hsl(0, 84%, 60%)"},
	{Name: "Ciano", Value: "hsl(180, 70%, 45%)"},
	{Name: "Amarelo", Value: "hsl(50, 95%, 50%)"},
}

// CategoryUseCase casos de uso de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, ToCategoryResponse(c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// Create crea una categoría; sin color usa el primero de la paleta.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = Palette[0].Value
	}
	c, err := uc.repo.Create(ctx, name, color)
	if err != nil {
		return nil, err
	}
	out := ToCategoryResponse(*c)
	return &out, nil
}

// Palette devuelve los colores disponibles.
func (uc *CategoryUseCase) Palette() dto.PaletteResponse {
	colors := make([]dto.PaletteColorDTO, len(Palette))
	copy(colors, Palette)
	return dto.PaletteResponse{Colors: colors}
}
