package request

import (
	"strings"

	"calistar_backend/internal/usecase"
)

type TryOnGarmentRequest struct {
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
}

// TryOnCreateRequest accepts both the current multi-garment shape and the
// legacy single-garment keys older storefront builds still send
// (garmentImageUrl/garmentCategory, productImageUrl/productCategory).
type TryOnCreateRequest struct {
	UserPhotoBase64 string                `json:"userPhotoBase64" binding:"required"`
	Garments        []TryOnGarmentRequest `json:"garments"`

	GarmentImageURL string `json:"garmentImageUrl"`
	GarmentCategory string `json:"garmentCategory"`
	ProductImageURL string `json:"productImageUrl"`
	ProductCategory string `json:"productCategory"`
}

// ResolveGarments folds the legacy keys into the garments list. The list,
// when present, wins.
func (r TryOnCreateRequest) ResolveGarments() []usecase.GarmentInput {
	if len(r.Garments) > 0 {
		out := make([]usecase.GarmentInput, 0, len(r.Garments))
		for _, g := range r.Garments {
			out = append(out, usecase.GarmentInput{ImageURL: g.ImageURL, Category: g.Category})
		}
		return out
	}

	if v := strings.TrimSpace(r.GarmentImageURL); v != "" {
		return []usecase.GarmentInput{{ImageURL: v, Category: r.GarmentCategory}}
	}
	if v := strings.TrimSpace(r.ProductImageURL); v != "" {
		return []usecase.GarmentInput{{ImageURL: v, Category: r.ProductCategory}}
	}
	return nil
}

func (r TryOnCreateRequest) ToCommand() usecase.TryOnCommand {
	return usecase.TryOnCommand{
		UserPhotoBase64: r.UserPhotoBase64,
		Garments:        r.ResolveGarments(),
	}
}
