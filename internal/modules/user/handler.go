package user

import (
	"errors"
	"net/http"

	"todoapi/internal/pkg/jwt"
	"todoapi/internal/pkg/response"
	"todoapi/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for users and sessions
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	userGroup := r.Group("/user")
	{
		userGroup.POST("", h.Register)
		userGroup.POST("/login", h.Login)
		userGroup.POST("/refresh-token", h.RefreshToken)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/user")
	{
		userGroup.POST("/logout", h.Logout)
		userGroup.GET("/me", h.Me)
	}
}

// Register creates a new user account and opens a session.
// @Summary		Register user
// @Description	Registers a new user and returns the identity together with an access/refresh token pair.
// @Tags		User
// @Param		request	body	RegisterRequest	true	"Registration payload (email, name, password, age, telephone)"
// @Success		200	{object}	map[string]interface{} "User with backendTokens"
// @Failure		422	{object}	map[string]interface{} "Request body failed validation"
// @Failure		409	{object}	map[string]interface{} "Email already registered"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/user [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failed(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FailedWithDetails(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			response.Failed(c, http.StatusConflict, response.MsgUserExists)
			return
		}
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Login authenticates a user and opens a session.
// @Summary		User login
// @Description	Verifies credentials and returns the identity with a fresh token pair.
// @Tags		User
// @Param		request	body	LoginRequest	true	"Credentials (email, password)"
// @Success		200	{object}	map[string]interface{} "User with backendTokens"
// @Failure		422	{object}	map[string]interface{} "Request body failed validation"
// @Failure		404	{object}	map[string]interface{} "No user with that email"
// @Failure		401	{object}	map[string]interface{} "Password digest mismatch"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/user/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Failed(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.FailedWithDetails(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Failed(c, http.StatusNotFound, response.MsgUserNotFound)
		case errors.Is(err, ErrIncorrectPassword):
			response.Failed(c, http.StatusUnauthorized, response.MsgIncorrectPassword)
		default:
			c.Error(err)
			response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Logout invalidates the current session.
// @Summary		User logout
// @Description	Verifies the refresh token and removes the session entry; the token pair is no longer usable.
// @Tags		User
// @Security	BearerAuth
// @Param		request	body	RefreshTokenRequest	true	"The refresh token to invalidate"
// @Success		200	{object}	map[string]interface{} "Removed user id"
// @Failure		403	{object}	map[string]interface{} "refresh_token missing from body"
// @Failure		401	{object}	map[string]interface{} "Expired, forged or already-rotated token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/user/logout [POST]
func (h *Handler) Logout(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		response.Failed(c, http.StatusForbidden, response.MsgMissingToken)
		return
	}

	userID, err := h.service.Logout(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.failSession(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, userID, response.MsgUserLogout)
}

// RefreshToken rotates the token pair.
// @Summary		Refresh tokens
// @Description	Exchanges a valid refresh token for a brand-new access/refresh pair. The old refresh token stops working.
// @Tags		User
// @Param		request	body	RefreshTokenRequest	true	"The current refresh token"
// @Success		200	{object}	map[string]interface{} "User with new backendTokens"
// @Failure		403	{object}	map[string]interface{} "refresh_token missing from body"
// @Failure		401	{object}	map[string]interface{} "Expired, forged or already-rotated token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/user/refresh-token [POST]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		response.Failed(c, http.StatusForbidden, response.MsgMissingToken)
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Me returns the authenticated user's profile.
// @Summary		Get user
// @Description	Returns id, name, email and telephone of the current user.
// @Tags		User
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{} "User profile"
// @Failure		401	{object}	map[string]interface{} "Missing or invalid access token"
// @Failure		500	{object}	map[string]interface{} "Server error"
// @Router		/user/me [GET]
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Failed(c, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}

	profile, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Failed(c, http.StatusNotFound, response.MsgUserNotFound)
			return
		}
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// failSession maps session verification errors for logout/refresh.
func (h *Handler) failSession(c *gin.Context, err error) {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		response.Failed(c, http.StatusUnauthorized, response.MsgTokenExpired)
	case errors.Is(err, jwt.ErrTokenInvalid), errors.Is(err, ErrUnauthorized):
		response.Failed(c, http.StatusUnauthorized, response.MsgUnauthorized)
	default:
		c.Error(err)
		response.Failed(c, http.StatusInternalServerError, response.MsgInternalError)
	}
}
