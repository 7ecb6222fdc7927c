package response

import (
	"shareit/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(view *readmodel.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromUserViews(views []*readmodel.UserView) []*UserResponse {
	result := make([]*UserResponse, 0, len(views))
	for _, v := range views {
		result = append(result, FromUserView(v))
	}
	return result
}
