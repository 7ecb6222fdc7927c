package response

import (
	"time"

	"shareit/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// BookingRefResponse is the trimmed booking embedded in an item detail.
type BookingRefResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"lastBooking"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
	Comments    []CommentResponse   `json:"comments"`
}

func FromItemView(view *readmodel.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromItemViews(views []*readmodel.ItemView) []*ItemResponse {
	result := make([]*ItemResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromItemView(v))
	}
	return result
}

func FromItemDetailView(view *readmodel.ItemDetailView) *ItemDetailResponse {
	resp := ItemDetailResponse{
		ItemResponse: *FromItemView(&view.ItemView),
		LastBooking:  fromBookingRef(view.LastBooking),
		NextBooking:  fromBookingRef(view.NextBooking),
		Comments:     FromCommentViews(view.Comments),
	}
	return &resp
}

func FromItemDetailViews(views []*readmodel.ItemDetailView) []*ItemDetailResponse {
	result := make([]*ItemDetailResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromItemDetailView(v))
	}
	return result
}

func FromCommentView(view *readmodel.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

// FromCommentViews always returns a non-nil slice so the JSON renders as [].
func FromCommentViews(views []readmodel.CommentView) []CommentResponse {
	result := make([]CommentResponse, 0, len(views))
	for _, v := range views {
		result = append(result, *FromCommentView(&v))
	}
	return result
}

func fromBookingRef(ref *readmodel.BookingRef) *BookingRefResponse {
	if ref == nil {
		return nil
	}
	return &BookingRefResponse{ID: ref.ID, BookerID: ref.BookerID}
}
