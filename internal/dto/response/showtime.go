package response

import (
	"time"

	"cinema-backend/internal/data/entity"
)

type ShowtimeResponse struct {
	ShowtimeID    string    `json:"showtime_id"`
	MovieID       string    `json:"movie_id"`
	MovieTitle    string    `json:"movie_title"`
	RoomID        string    `json:"room_id"`
	RoomName      string    `json:"room_name"`
	CinemaName    string    `json:"cinema_name"`
	CinemaAddress string    `json:"cinema_address"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Price         float64   `json:"price"`
}

type SeatResponse struct {
	SeatID string `json:"seat_id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Label  string `json:"label"`
	Taken  bool   `json:"taken"`
}

type ShowtimeSeatsResponse struct {
	ShowtimeID string         `json:"showtime_id"`
	Seats      []SeatResponse `json:"seats"`
}

// Helper converters
func ShowtimeToResponse(st *entity.ShowtimeDetail) ShowtimeResponse {
	return ShowtimeResponse{
		ShowtimeID:    st.ID.String(),
		MovieID:       st.MovieID.String(),
		MovieTitle:    st.MovieTitle,
		RoomID:        st.RoomID.String(),
		RoomName:      st.RoomName,
		CinemaName:    st.CinemaName,
		CinemaAddress: st.CinemaAddress,
		StartTime:     st.StartTime,
		EndTime:       st.EndTime,
		Price:         st.Price,
	}
}

func BuildSeatMap(showtimeID string, seats []*entity.Seat, taken map[string]bool) ShowtimeSeatsResponse {
	resp := ShowtimeSeatsResponse{
		ShowtimeID: showtimeID,
		Seats:      make([]SeatResponse, 0, len(seats)),
	}
	for _, s := range seats {
		resp.Seats = append(resp.Seats, SeatResponse{
			SeatID: s.ID.String(),
			Row:    s.Row,
			Col:    s.Col,
			Label:  s.Label,
			Taken:  taken[s.ID.String()],
		})
	}
	return resp
}
