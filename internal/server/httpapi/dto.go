package httpapi

import (
	"time"

	"github.com/mlukash/todoshare/internal/server/models"
)

type signupRequest struct {
	UserName   string `json:"userName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Sex        string `json:"sex"`
	Color      string `json:"color"`
	Age        string `json:"age"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type itemRequest struct {
	Text string `json:"text"`
}

type authorizeAllRequest struct {
	TargetUserID string `json:"targetUserId"`
}

type grantPermissionRequest struct {
	NameTo       string `json:"nameTo"`
	PermissionTo string `json:"permissionTo"`
}

// userResponse deliberately omits the id and the password hash: the user
// directory is public.
type userResponse struct {
	UserName   string `json:"userName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
	Sex        string `json:"sex"`
	Color      string `json:"color"`
	Age        string `json:"age"`
}

type itemResponse struct {
	ID              string    `json:"id"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"createdAt"`
	AuthorizedUsers []string  `json:"authorizedUsers"`
}

type permissionResponse struct {
	ID             string `json:"id"`
	NameTo         string `json:"nameTo"`
	PermissionTo   string `json:"permissionTo"`
	PermissionFrom string `json:"permissionFrom"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		UserName:   u.UserName,
		FamilyName: u.FamilyName,
		Email:      u.Email,
		Sex:        u.Sex,
		Color:      u.Color,
		Age:        u.Age,
	}
}

func toItemResponse(i *models.Item) itemResponse {
	return itemResponse{
		ID:              i.ID,
		Text:            i.Text,
		CreatedAt:       i.CreatedAt,
		AuthorizedUsers: i.AuthorizedUsers,
	}
}

func toItemResponses(items []*models.Item) []itemResponse {
	result := make([]itemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, toItemResponse(i))
	}
	return result
}

func toPermissionResponse(p *models.Permission) permissionResponse {
	return permissionResponse{
		ID:             p.ID,
		NameTo:         p.NameTo,
		PermissionTo:   p.PermissionTo,
		PermissionFrom: p.PermissionFrom,
	}
}
