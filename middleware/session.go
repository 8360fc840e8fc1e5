package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"mandapdash/api"
	"mandapdash/services/notification"
	"mandapdash/services/session"
	"mandapdash/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionCookieName carries the dashboard session id.
const SessionCookieName = "dash_session"

// SessionHeader is the header alternative to the cookie.
const SessionHeader = "X-Session-ID"

const (
	apiSessionKey  = "apiSession"
	dashSessionKey = "dashSession"
	collectorKey   = "collector"
	loggerKey      = "logger"
	providerIDKey  = "providerID"
)

// SessionMiddleware resolves the caller's backend credentials.
//
// A stored dashboard session (cookie or X-Session-ID) gets a Redis flash
// notifier that the dashboard polls. Other requests get a per-request
// collector whose notifications are returned with the response, and carry
// the Authorization bearer token, if any, to the backend unchanged.
func SessionMiddleware(store session.Store, flash *redis.Client, flashTTL time.Duration, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ctx := c.Request.Context()

		if id := sessionID(c); id != "" {
			sess, err := store.Get(ctx, id)
			if errors.Is(err, session.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please sign in again."})
				return
			}
			if err != nil {
				logger.Error("Failed to load dashboard session", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Session store unavailable"})
				return
			}
			reqLogger := logger.With(zap.String("providerID", sess.ProviderID))
			c.Set(dashSessionKey, sess)
			c.Set(providerIDKey, sess.ProviderID)
			c.Set(loggerKey, reqLogger)
			c.Set(apiSessionKey, api.Session{
				Credentials: sess,
				Notifier:    notification.NewFlashStore(flash, sess.ID, flashTTL, reqLogger),
			})
			c.Next()
			return
		}

		// Anything else goes to the backend as is; it owns the auth decision.
		collector := notification.NewCollector()
		reqLogger := logger
		var creds api.Credentials
		if token := bearerToken(c); token != "" {
			creds = api.StaticToken(token)
			if claims, err := utils.ParseProviderToken(token, jwtSecret); err == nil {
				c.Set(providerIDKey, claims.ProviderID)
				reqLogger = logger.With(zap.String("providerID", claims.ProviderID))
			} else {
				reqLogger = logger.With(zap.String("tokenHash", utils.HashToken(token)))
				reqLogger.Debug("Forwarding unparsed provider token", zap.Error(err))
			}
		}
		c.Set(loggerKey, reqLogger)
		c.Set(collectorKey, collector)
		c.Set(apiSessionKey, api.Session{
			Credentials: creds,
			Notifier:    collector,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(SessionCookieName); err == nil && id != "" {
		return id
	}
	return strings.TrimSpace(c.GetHeader(SessionHeader))
}

// APISession returns the credentials and notifier resolved for the request.
func APISession(c *gin.Context) (api.Session, bool) {
	v, ok := c.Get(apiSessionKey)
	if !ok {
		return api.Session{}, false
	}
	sess, ok := v.(api.Session)
	return sess, ok
}

// DashSession returns the stored session, if the request used one.
func DashSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(dashSessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

// Collector returns the per-request notification collector, if any.
func Collector(c *gin.Context) (*notification.Collector, bool) {
	v, ok := c.Get(collectorKey)
	if !ok {
		return nil, false
	}
	col, ok := v.(*notification.Collector)
	return col, ok
}
