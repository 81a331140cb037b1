package request

import (
	"testing"
)

func TestTryOnCreateRequest_ResolveGarments(t *testing.T) {
	t.Run("garments list wins", func(t *testing.T) {
		r := TryOnCreateRequest{
			Garments: []TryOnGarmentRequest{
				{ImageURL: "https://cdn/top.jpg", Category: "tops"},
				{ImageURL: "https://cdn/bottom.jpg", Category: "calcinhas"},
			},
			GarmentImageURL: "https://cdn/legacy.jpg",
		}
		got := r.ResolveGarments()
		if len(got) != 2 || got[0].ImageURL != "https://cdn/top.jpg" || got[1].Category != "calcinhas" {
			t.Fatalf("unexpected garments: %+v", got)
		}
	})

	t.Run("legacy garment keys", func(t *testing.T) {
		r := TryOnCreateRequest{GarmentImageURL: " https://cdn/legacy.jpg ", GarmentCategory: "tops"}
		got := r.ResolveGarments()
		if len(got) != 1 || got[0].ImageURL != "https://cdn/legacy.jpg" || got[0].Category != "tops" {
			t.Fatalf("unexpected garments: %+v", got)
		}
	})

	t.Run("legacy product keys", func(t *testing.T) {
		r := TryOnCreateRequest{ProductImageURL: "https://cdn/prod.jpg", ProductCategory: "maios"}
		got := r.ResolveGarments()
		if len(got) != 1 || got[0].ImageURL != "https://cdn/prod.jpg" || got[0].Category != "maios" {
			t.Fatalf("unexpected garments: %+v", got)
		}
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		if got := (TryOnCreateRequest{}).ResolveGarments(); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}
