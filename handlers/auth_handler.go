package handlers

import (
	"net/http"
	"time"

	"devtrack-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles HTTP requests for accounts and sessions
type AuthHandler struct {
	authService  *service.AuthService
	secureCookie bool
	tokenTTL     time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, secureCookie bool, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
		tokenTTL:     tokenTTL,
	}
}

// CredentialsRequest represents the request body for signup and signin
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), service.SignUpRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.CreateToken(service.TokenPayload{UserID: user.ID, Email: user.Email})
	if err != nil {
		respondError(c, err)
		return
	}
	h.setSessionCookie(c, token)

	respondData(c, http.StatusCreated, user)
}

// Signin handles POST /api/auth/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.authService.SignIn(c.Request.Context(), service.SignInRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	respondData(c, http.StatusOK, result.User)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(AuthCookieName, "", -1, "/", "", h.secureCookie, true)
	respondData(c, http.StatusOK, gin.H{"message": "signed out"})
}

// Session handles GET /api/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	user, err := h.authService.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, user)
}

// SetPreferenceRequest represents the request body for selecting a plan
type SetPreferenceRequest struct {
	SelectedPlanID   *string `json:"selectedPlanId"`
	SelectedPlanName *string `json:"selectedPlanName"`
}

// GetPreference handles GET /api/user/preference
func (h *AuthHandler) GetPreference(c *gin.Context) {
	pref, err := h.authService.GetPreference(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, pref)
}

// SetPreference handles PUT /api/user/preference
func (h *AuthHandler) SetPreference(c *gin.Context) {
	var req SetPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var planID *uuid.UUID
	if req.SelectedPlanID != nil {
		id, err := uuid.Parse(*req.SelectedPlanID)
		if err != nil {
			respondValidationError(c, "invalid selectedPlanId format")
			return
		}
		planID = &id
	}

	pref, err := h.authService.SetPreference(c.Request.Context(), currentUserID(c), planID, req.SelectedPlanName)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, pref)
}

// ClearPreference handles DELETE /api/user/preference
func (h *AuthHandler) ClearPreference(c *gin.Context) {
	if err := h.authService.ClearPreference(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, &service.PlanPreference{})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.tokenTTL / time.Second)
	c.SetCookie(AuthCookieName, token, maxAge, "/", "", h.secureCookie, true)
}
