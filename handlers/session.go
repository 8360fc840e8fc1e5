package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"mandapdash/middleware"
	"mandapdash/services/session"
	"mandapdash/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler signs providers in and out of the dashboard.
type SessionHandler struct {
	Store        session.Store
	JWTSecret    string
	SecureCookie bool
}

func NewSessionHandler(store session.Store, jwtSecret string, secureCookie bool) *SessionHandler {
	return &SessionHandler{Store: store, JWTSecret: jwtSecret, SecureCookie: secureCookie}
}

type createSessionRequest struct {
	Token string `json:"token" binding:"required"`
}

// CreateSessionHandler stores the backend-issued provider token and sets
// the session cookie.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	token := strings.TrimSpace(strings.TrimPrefix(req.Token, "Bearer "))

	claims, err := utils.ParseProviderToken(token, h.JWTSecret)
	if err != nil {
		logger.Warn("Provider token rejected", zap.String("tokenHash", utils.HashToken(token)), zap.Error(err))
		if errors.Is(err, utils.ErrTokenExpired) {
			utils.JSONError(c, http.StatusUnauthorized, "Token expired", err.Error())
			return
		}
		utils.JSONError(c, http.StatusUnauthorized, "Invalid token", err.Error())
		return
	}

	sess := &session.Session{
		ProviderID: claims.ProviderID,
		Email:      claims.Email,
		Token:      token,
		ExpiresAt:  claims.ExpiresAt,
	}
	id, err := h.Store.Save(c.Request.Context(), sess)
	if err != nil {
		logger.Error("Failed to save dashboard session", zap.String("providerID", claims.ProviderID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create session", err.Error())
		return
	}

	maxAge := 0
	if !sess.ExpiresAt.IsZero() {
		maxAge = int(time.Until(sess.ExpiresAt).Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, id, maxAge, "/", "", h.SecureCookie, true)

	logger.Info("Dashboard session created", zap.String("providerID", sess.ProviderID))
	c.JSON(http.StatusCreated, gin.H{
		"sessionId":  id,
		"providerId": sess.ProviderID,
		"email":      sess.Email,
		"expiresAt":  sess.ExpiresAt,
	})
}

// DeleteSessionHandler signs the provider out. It succeeds even when the
// session is already gone.
func (h *SessionHandler) DeleteSessionHandler(c *gin.Context) {
	id, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || id == "" {
		id = strings.TrimSpace(c.GetHeader(middleware.SessionHeader))
	}
	if id != "" {
		if err := h.Store.Delete(c.Request.Context(), id); err != nil {
			getLogger(c).Error("Failed to delete dashboard session", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to sign out", err.Error())
			return
		}
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
