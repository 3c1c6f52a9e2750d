package dto

import "github.com/BruksfildServices01/meeting-scheduler/internal/models"

type AddUserRequest struct {
	Phone     string `json:"phone" binding:"required,phone"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
}

type AddUserResponse struct {
	Success bool   `json:"success"`
	UserID  uint   `json:"user_id"`
	Message string `json:"message"`
}

type UserDTO struct {
	ID        uint   `json:"id"`
	Phone     string `json:"phone"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type GetUserResponse struct {
	Exists bool     `json:"exists"`
	Data   *UserDTO `json:"data"`
}

func NewUserDTO(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID,
		Phone:     u.Phone,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
