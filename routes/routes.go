package routes

import (
	"slices"
	"strings"
	"time"

	"mandapdash/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterSessionRoutes registers sign-in, sign-out and notification polling.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.POST("", hb.CreateSessionHandler)
		api.DELETE("", hb.DeleteSessionHandler)
	}
	r.GET("/api/notifications", hb.SessionMiddleware, hb.NotificationsHandler)
}

// RegisterDashboardRoutes registers the overview page.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/dashboard", hb.SessionMiddleware, hb.DashboardHandler)
}

// RegisterMandapRoutes registers venue endpoints, including the caterers of
// a venue.
func RegisterMandapRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mandaps")
	{
		api.Use(hb.SessionMiddleware)
		api.GET("", hb.ListMandapsHandler)
		api.POST("", hb.CreateMandapHandler)
		api.GET("/:id", hb.GetMandapHandler)
		api.PUT("/:id", hb.UpdateMandapHandler)
		api.DELETE("/:id", hb.DeleteMandapHandler)
		api.GET("/:id/caterers", hb.ListCaterersHandler)
	}
}

// RegisterBookingRoutes registers the read-only booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(hb.SessionMiddleware)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
	}
}

// RegisterCatererRoutes registers caterer endpoints.
func RegisterCatererRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/caterers")
	{
		api.Use(hb.SessionMiddleware)
		api.GET("", hb.ListCaterersHandler)
		api.POST("", hb.CreateCatererHandler)
		api.GET("/:id", hb.GetCatererHandler)
		api.PUT("/:id", hb.UpdateCatererHandler)
		api.DELETE("/:id", hb.DeleteCatererHandler)
	}
}

// RegisterRoomRoutes registers room endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.Use(hb.SessionMiddleware)
		api.GET("", hb.ListRoomsHandler)
		api.POST("", hb.CreateRoomHandler)
		api.GET("/:id", hb.GetRoomHandler)
		api.PUT("/:id", hb.UpdateRoomHandler)
		api.DELETE("/:id", hb.DeleteRoomHandler)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// ParseOrigins splits a comma-separated origin list. An empty list allows
// every origin.
func ParseOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// CORSConfig allows the given origins with credentials. A "*" entry echoes
// the caller's origin, since browsers refuse a literal wildcard on
// credentialed requests.
func CORSConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if slices.Contains(allowedOrigins, "*") {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(CORSConfig(allowedOrigins)))

	RegisterHealthRoute(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterMandapRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatererRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
}
