package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vespasoft/taskhub/internal/application"
	"github.com/vespasoft/taskhub/internal/domain/entity"
	"github.com/vespasoft/taskhub/pkg/response"
	"github.com/vespasoft/taskhub/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	ProfilePicture string `json:"profilePicture"`
}

type updatePasswordRequest struct {
	UserID          string `json:"userId" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type userResponse struct {
	UserID         string `json:"userId"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		UserID:         u.ID.String(),
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password, req.ProfilePicture)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(u), "user created")
}

// UpdatePassword handles PUT /api/v1/users.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.UpdatePassword(c.Request.Context(), req.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "user password has been updated successfully")
}
