package routes

import (
	adminapi "menu-app/internal/api/admin"
	analyticsapi "menu-app/internal/api/analytics"
	authapi "menu-app/internal/api/auth"
	"menu-app/internal/api/billing"
	menuapi "menu-app/internal/api/menu"
	schedulesapi "menu-app/internal/api/schedules"
	stripewebhooks "menu-app/internal/api/stripewebhook"
	"menu-app/internal/api/users"
	"menu-app/internal/app/http/middleware"
	"menu-app/internal/app/metrics"
	"menu-app/internal/platform/clock"
	"menu-app/internal/platform/ratelimit"

	"github.com/gin-gonic/gin"
)

// TrustProxies limits which peers may set the client IP through forwarding
// headers. With none trusted, ClientIP is always the TCP peer, so rotating
// X-Forwarded-For cannot mint fresh rate-limit buckets.
func TrustProxies(r *gin.Engine, trusted []string) error {
	if len(trusted) == 0 {
		r.ForwardedByClientIP = false
		return r.SetTrustedProxies(nil)
	}
	r.ForwardedByClientIP = true
	return r.SetTrustedProxies(trusted)
}

// RegisterRoutes wires every endpoint. limiter may be nil, which disables
// rate limiting.
func RegisterRoutes(r *gin.Engine, limiter *ratelimit.Limiter, now clock.Func) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/menu/:slug", middleware.RateLimit(limiter), menuapi.GetPublicMenu)

	public := r.Group("/")
	public.Use(middleware.RateLimit(limiter), middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetMe)
	auth.GET("/me/access", users.GetAccess)
	auth.POST("/change-password", middleware.SanitizeAndCleanInputMiddleware(), authapi.ChangePassword)

	auth.GET("/schedules", schedulesapi.ListSchedules)
	auth.GET("/schedules/active", schedulesapi.GetActiveSchedule)

	auth.GET("/analytics/views", analyticsapi.GetMenuViews)

	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)

	// Pro or trial owners
	editor := auth.Group("/")
	editor.Use(middleware.RequireFullAccess(now), middleware.SanitizeAndCleanInputMiddleware())
	editor.POST("/schedules", schedulesapi.CreateSchedule)
	editor.PUT("/schedules/:id", schedulesapi.UpdateSchedule)
	editor.DELETE("/schedules/:id", schedulesapi.DeleteSchedule)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/restaurants", adminapi.ListRestaurants)
	admin.GET("/stats", adminapi.GetAdminStats)
}
