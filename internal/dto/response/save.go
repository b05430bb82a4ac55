package response

import (
	"time"

	"cinema-backend/internal/data/entity"
)

type SaveResponse struct {
	CustomerID string    `json:"customer_id"`
	MovieID    string    `json:"movie_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Helper converters
func SaveToResponse(s *entity.Save) SaveResponse {
	return SaveResponse{
		CustomerID: s.CustomerID.String(),
		MovieID:    s.MovieID.String(),
		CreatedAt:  s.CreatedAt,
	}
}

func SavesToResponse(saves []*entity.Save) []SaveResponse {
	resp := make([]SaveResponse, 0, len(saves))
	for _, s := range saves {
		resp = append(resp, SaveToResponse(s))
	}
	return resp
}
