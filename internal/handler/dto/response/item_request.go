package response

import (
	"time"

	"shareit/internal/usecase/readmodel"
)

type RequestItemResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

type ItemRequestResponse struct {
	ID          int64                 `json:"id"`
	Description string                `json:"description"`
	Created     time.Time             `json:"created"`
	Items       []RequestItemResponse `json:"items"`
}

func FromRequestView(view *readmodel.RequestView) *ItemRequestResponse {
	items := make([]RequestItemResponse, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, RequestItemResponse{ID: it.ID, Name: it.Name, OwnerID: it.OwnerID})
	}
	return &ItemRequestResponse{
		ID:          view.ID,
		Description: view.Description,
		Created:     view.Created,
		Items:       items,
	}
}

func FromRequestViews(views []*readmodel.RequestView) []*ItemRequestResponse {
	result := make([]*ItemRequestResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromRequestView(v))
	}
	return result
}
