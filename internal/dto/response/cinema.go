package response

import "cinema-backend/internal/data/entity"

type CinemaResponse struct {
	CinemaID string `json:"cinema_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

type RoomResponse struct {
	RoomID   string `json:"room_id"`
	CinemaID string `json:"cinema_id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Helper converters
func CinemaToResponse(c *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		CinemaID: c.ID.String(),
		Name:     c.Name,
		Address:  c.Address,
	}
}

func CinemasToResponse(cinemas []*entity.Cinema) []CinemaResponse {
	resp := make([]CinemaResponse, 0, len(cinemas))
	for _, c := range cinemas {
		resp = append(resp, CinemaToResponse(c))
	}
	return resp
}

func RoomToResponse(r *entity.Room) RoomResponse {
	return RoomResponse{
		RoomID:   r.ID.String(),
		CinemaID: r.CinemaID.String(),
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, RoomToResponse(r))
	}
	return resp
}
