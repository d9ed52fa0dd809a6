package handlers

import (
	"net/http"

	"Motiv/internal/backend"
	"Motiv/internal/dto"
	"Motiv/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *service.UserService
	errs  *Responder
}

func NewUserHandler(users *service.UserService, errs *Responder) *UserHandler {
	return &UserHandler{users: users, errs: errs}
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	u, err := h.users.Me(c.Request.Context(), sess)
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// UpdateProfile godoc
// @Summary      Update name and email
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.UpdateProfileRequest  true  "Fields to change"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.badRequest(c, err)
		return
	}
	u, err := h.users.UpdateProfile(c.Request.Context(), sess, backend.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// ChangePassword godoc
// @Summary      Set the sign-in password
// @Tags         users
// @Accept       json
// @Security     CookieAuth
// @Param        body  body  dto.ChangePasswordRequest  true  "Password and confirmation"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /me/password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.badRequest(c, err)
		return
	}
	if err := h.users.ChangePassword(c.Request.Context(), sess, req.Password, req.Confirmation); err != nil {
		h.errs.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
