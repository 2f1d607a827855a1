package transformer

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
)

func UserModelToDTO(user models.User) dtos.UserDTO {
	return dtos.UserDTO{
		ID:          user.ID,
		FarcasterID: user.FarcasterID,
		Name:        user.Name,
		Username:    user.Username,
		ImageURL:    user.ImageURL,
		Bio:         user.Bio,
	}
}

func TeamMemberModelToDTO(membership models.UserProject) dtos.TeamMemberDTO {
	return dtos.TeamMemberDTO{
		UserDTO: UserModelToDTO(membership.User),
		Role:    string(membership.Role),
	}
}
