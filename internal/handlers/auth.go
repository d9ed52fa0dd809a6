package handlers

import (
	"net/http"

	"Motiv/internal/auth"
	dom "Motiv/internal/domain"
	"Motiv/internal/dto"
	"Motiv/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-in with a one-time code or password, and logout.
type AuthHandler struct {
	users   *service.UserService
	cookies Cookies
	errs    *Responder
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(users *service.UserService, cookies Cookies, errs *Responder) *AuthHandler {
	return &AuthHandler{users: users, cookies: cookies, errs: errs}
}

// SendCode godoc
// @Summary      Send a one-time code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SendCodeRequest  true  "Phone number"
// @Success      200   {object}  dto.SendCodeResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/code [post]
func (h *AuthHandler) SendCode(c *gin.Context) {
	var req dto.SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.badRequest(c, err)
		return
	}
	out, err := h.users.SendCode(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SendCodeResponse{PhoneNumber: out.PhoneNumber, SentAt: out.SentAt, Timeout: out.Timeout})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Phone number with code or password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.badRequest(c, err)
		return
	}
	res, err := h.users.Login(c.Request.Context(), req.PhoneNumber, req.Code, req.Password)
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	h.cookies.set(c, res.Session.ID)
	c.JSON(http.StatusOK, dto.LoginResponse{OK: true, IsNewUser: res.IsNewUser, User: userToResponse(res.User)})
}

// Logout godoc
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err == nil && sessionID != "" {
		_ = h.users.Logout(c.Request.Context(), sessionID)
	}
	h.cookies.clear(c)
	c.Status(http.StatusNoContent)
}

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		PhoneNumber: u.Phone,
		Email:       u.Email,
	}
}
