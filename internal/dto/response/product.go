package response

import "cinema-backend/internal/data/entity"

type ProductResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	ImageURL  *string `json:"image,omitempty"`
}

// Helper converters
func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ID.String(),
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, ProductToResponse(p))
	}
	return resp
}
