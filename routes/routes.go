package routes

import (
	"net/http"
	"time"

	"github.com/pr4shxnt/ecobin-backend/handlers"
	"github.com/pr4shxnt/ecobin-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes registers operator endpoints. Everything except login
// and registration requires an admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/auth/register", hb.AdminAuth.Register)
		api.POST("/auth/login", hb.AdminAuth.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("/auth/logout", hb.AdminAuth.Logout)
		api.GET("/auth/profile", hb.AdminAuth.Profile)
		api.PUT("/auth/profile", hb.AdminAuth.UpdateProfile)

		api.POST("/schedules", hb.Schedules.Create)
		api.GET("/schedules", hb.Schedules.List)
		api.GET("/schedules/:id", hb.Schedules.Get)
		api.PUT("/schedules/:id", hb.Schedules.Update)
		api.DELETE("/schedules/:id", hb.Schedules.Delete)

		api.POST("/notifications/send", hb.Notifications.Send)
		api.POST("/notifications/reminders", hb.Notifications.ForceReminderRun)
		api.GET("/notifications/history", hb.Notifications.History)
		api.GET("/notifications/stats", hb.Notifications.Stats)
		api.POST("/notifications/:id/clicked", hb.Notifications.MarkClicked)

		api.POST("/location/update", hb.Location.UpdateLocation)
		api.GET("/location", hb.Location.GetLocation)
		api.GET("/location/online-admins", hb.Location.OnlineAdmins)
		api.POST("/location/offline", hb.Location.GoOffline)
		api.GET("/routes", hb.Location.AllRoutes)
		api.GET("/routes/:zone", hb.Location.RouteForZone)
		api.POST("/routes/collection-status", hb.Location.UpdateCollectionStatus)
	}
}

// RegisterTenantRoutes registers tenant endpoints.
func RegisterTenantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tenants")
	{
		api.POST("/register", hb.Tenants.Register)
		api.POST("/login", hb.Tenants.Login)

		api.Use(middleware.JWTAuthUserMiddleware("tenantID"))
		api.GET("/profile", hb.Tenants.Profile)
		api.POST("/subscriptions", hb.Tenants.Subscribe)
	}
}

// RegisterLandlordRoutes registers landlord endpoints.
func RegisterLandlordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/landlords")
	{
		api.POST("/register", hb.Landlords.Register)
		api.POST("/login", hb.Landlords.Login)

		api.Use(middleware.JWTAuthUserMiddleware("landlordID"))
		api.GET("/profile", hb.Landlords.Profile)
	}
}

// RegisterInvoiceRoutes registers billing endpoints (admin-only).
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoice")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("", hb.Invoices.Create)
		api.GET("", hb.Invoices.List)
		api.GET("/:id", hb.Invoices.Get)
		api.PUT("/:id", hb.Invoices.Update)
		api.DELETE("/:id", hb.Invoices.Delete)
	}
}

// RegisterClassifyRoute registers the AI waste classification endpoint.
func RegisterClassifyRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Classify == nil {
		return
	}
	r.POST("/api/classify", hb.Classify.Classify)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Ecobin"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAdminRoutes(r, hb)
	RegisterTenantRoutes(r, hb)
	RegisterLandlordRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterClassifyRoute(r, hb)
	RegisterHealthRoute(r)
}
