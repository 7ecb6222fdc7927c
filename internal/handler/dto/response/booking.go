package response

import (
	"time"

	"shareit/internal/usecase/readmodel"
)

type BookingItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingUserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64               `json:"id"`
	Start  time.Time           `json:"start"`
	End    time.Time           `json:"end"`
	Status string              `json:"status"`
	Item   BookingItemResponse `json:"item"`
	Booker BookingUserResponse `json:"booker"`
}

func FromBookingView(view *readmodel.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     view.ID,
		Start:  view.Start,
		End:    view.End,
		Status: view.Status,
		Item:   BookingItemResponse{ID: view.Item.ID, Name: view.Item.Name},
		Booker: BookingUserResponse{ID: view.Booker.ID, Name: view.Booker.Name},
	}
}

func FromBookingViews(views []*readmodel.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromBookingView(v))
	}
	return result
}
