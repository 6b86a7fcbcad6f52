package routes

import (
	"github.com/bipuldey19/hungrypanda-handler/configs"
	"github.com/bipuldey19/hungrypanda-handler/controllers"
	"github.com/bipuldey19/hungrypanda-handler/gateway"
	"github.com/bipuldey19/hungrypanda-handler/middlewares"
	"github.com/bipuldey19/hungrypanda-handler/repository"
	"github.com/bipuldey19/hungrypanda-handler/services"
	"github.com/bipuldey19/hungrypanda-handler/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) error {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Wiring
	repo := repository.NewCatalogRepository(db, cfg)
	sessions := services.NewSessionStore(cfg.SessionTTL)
	auth, err := services.NewAuthService(cfg.AdminPassword, sessions)
	if err != nil {
		return err
	}
	catalog := services.NewCatalogService(repo, cfg.CacheTTL)
	uploader := storage.FromConfig(cfg)
	gw := gateway.NewWebhookClient(cfg.AddItemWebhook, cfg.UpdateStatusWebhook, cfg.DeleteItemWebhook, cfg.WebhookTimeout)
	items := services.NewItemService(uploader, gw, catalog)
	dashboard := services.NewDashboardService(catalog)

	// Controllers
	authCtrl := controllers.NewAuthController(auth, cfg)
	itemCtrl := controllers.NewItemController(items, catalog, sessions)
	dashCtrl := controllers.NewDashboardController(dashboard, sessions)
	kbCtrl := controllers.NewKBController(repo)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	// Everything else sits behind the session gate.
	g := r.Group("/", middlewares.AuthMiddleware(cfg.SessionSecret, sessions))
	{
		g.POST("/auth/logout", authCtrl.Logout)
		g.GET("/auth/me", authCtrl.Me)

		g.GET("/dashboard", dashCtrl.Index)

		g.POST("/items", itemCtrl.Create)
		g.GET("/items/:id", itemCtrl.Get)
		g.PATCH("/items/:id/status", itemCtrl.UpdateStatus)
		g.POST("/items/:id/details", itemCtrl.ToggleDetails)
		g.POST("/items/:id/delete", itemCtrl.RequestDelete)
		g.POST("/items/:id/delete/cancel", itemCtrl.CancelDelete)
		g.POST("/items/:id/delete/confirm", itemCtrl.ConfirmDelete)

		g.GET("/kb", kbCtrl.List)
		g.GET("/kb/:id", kbCtrl.Get)
	}

	return nil
}
