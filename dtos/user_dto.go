package dtos

import "github.com/google/uuid"

type UserDTO struct {
	ID          uuid.UUID `json:"id"`
	FarcasterID *string   `json:"farcasterId"`
	Name        string    `json:"name"`
	Username    *string   `json:"username"`
	ImageURL    *string   `json:"imageUrl"`
	Bio         *string   `json:"bio"`
}

type TeamMemberDTO struct {
	UserDTO
	Role string `json:"role"`
}
