package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"consulting-api/internal/domain"
	"consulting-api/internal/service"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AccountResponse is the public account view. The `user_type` key matches
// the wire format the frontend already consumes.
type AccountResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	UserType  string  `json:"user_type"`
	CreatedAt string  `json:"created_at,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
}

func accountToResponse(acct *domain.Account) AccountResponse {
	resp := AccountResponse{
		ID:       acct.ID,
		Name:     acct.Name,
		Email:    acct.Email,
		UserType: string(acct.Role),
	}
	if !acct.CreatedAt.IsZero() {
		resp.CreatedAt = acct.CreatedAt.Format(time.RFC3339)
	}
	if acct.LastLogin != nil {
		v := acct.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &v
	}
	return resp
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, domain.Role(req.UserType))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"user_id":      res.Account.ID,
		"access_token": res.Token,
		"user":         accountToResponse(res.Account),
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"access_token": res.Token,
		"user":         accountToResponse(res.Account),
	})
}

func (h *Handler) getProfile(c *gin.Context) {
	acct, err := h.auth.GetProfile(c.Request.Context(), c.GetString(ctxAccountID))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, accountToResponse(acct))
}

func (h *Handler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.auth.ChangePassword(c.Request.Context(), c.GetString(ctxAccountID), req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Current password is incorrect")
			return
		}
		h.respondServiceError(c, err)
		return
	}
	respondMessage(c, "Password changed successfully")
}
