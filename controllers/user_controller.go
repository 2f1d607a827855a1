package controllers

import (
	"errors"

	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/transformer"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type UserController struct {
	userRepository shared.UserRepository
}

func NewUserController(userRepository shared.UserRepository) *UserController {
	return &UserController{
		userRepository: userRepository,
	}
}

// @Summary Who am I
// @Security CookieAuth
// @Success 200 {object} dtos.UserDTO
// @Router /whoami [get]
func (c *UserController) Whoami(ctx shared.Context) error {
	userID, err := shared.GetSessionUserID(ctx)
	if err != nil {
		return echo.NewHTTPError(401, "could not get user id").WithInternal(err)
	}

	user, err := c.userRepository.Read(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "user not found")
		}
		return echo.NewHTTPError(500, "could not read user").WithInternal(err)
	}

	return ctx.JSON(200, transformer.UserModelToDTO(user))
}
