package app

import (
	"fmt"

	"Motiv/internal/auth"
	"Motiv/internal/backend"
	"Motiv/internal/cache"
	"Motiv/internal/config"
	"Motiv/internal/handlers"
	"Motiv/internal/money"
	"Motiv/internal/repo"
	"Motiv/internal/service"
	"Motiv/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *zap.Logger, db *pgxpool.Pool, rdb *redis.Client) error {
	if err := validation.RegisterGinValidators(); err != nil {
		return err
	}
	conv, err := money.NewConverter(cfg.Goals.AmountRatio)
	if err != nil {
		return err
	}
	lang, err := language.Parse(cfg.Goals.Locale)
	if err != nil {
		return fmt.Errorf("GOALS_LOCALE: %w", err)
	}

	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore, err := auth.NewStore(rdb, cfg.Session.TTL.Duration())
	if err != nil {
		return err
	}
	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout.Duration(), log.Named("backend"))
	goalCache := cache.NewGoalCache(rdb, cfg.Redis.DefaultTTL.Duration(), cfg.Redis.RulesTTL.Duration())
	prefs := repo.NewPGPreferenceRepo(db)

	cookies := handlers.Cookies{MaxAge: cfg.Session.TTL.Duration(), Secure: cfg.HTTP.SecureCookie}
	errs := handlers.NewResponder(sessionStore, cookies, log)

	catalogSvc := service.NewCatalogService(client, goalCache, log)
	userSvc := service.NewUserService(client, sessionStore, goalCache, log)
	goalSvc := service.NewGoalService(client, catalogSvc, prefs, goalCache, conv, log)

	authHandler := handlers.NewAuthHandler(userSvc, cookies, errs)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc, errs)
	registerPublicRoutes(api, authHandler, catalogHandler)

	protected := api.Group("", auth.RequireSession(sessionStore, log))
	userHandler := handlers.NewUserHandler(userSvc, errs)
	goalHandler := handlers.NewGoalHandler(goalSvc, lang, errs)
	registerUserRoutes(protected, userHandler)
	registerGoalRoutes(protected, goalHandler)
	return nil
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Motiv API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerPublicRoutes(api *gin.RouterGroup, a *handlers.AuthHandler, cat *handlers.CatalogHandler) {
	api.POST("/auth/code", a.SendCode)
	api.POST("/auth/login", a.Login)
	api.POST("/auth/logout", a.Logout)
	api.GET("/config", cat.Config)
	api.GET("/charities", cat.Charities)
}

func registerUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler) {
	api.GET("/me", h.Me)
	api.PATCH("/me", h.UpdateProfile)
	api.POST("/me/password", h.ChangePassword)
}

func registerGoalRoutes(api *gin.RouterGroup, h *handlers.GoalHandler) {
	api.GET("/goals", h.ListGoals)
	api.POST("/goals", h.Create)
	api.GET("/goals/deadline-bounds", h.DeadlineBounds)
	api.GET("/goals/:id", h.Get)
	api.POST("/goals/:id/supervise", h.Supervise)
	api.GET("/supervisions", h.ListSupervisions)
	api.POST("/lists/:list/sort", h.ToggleSort)
	api.GET("/payments/:id", h.Payment)
}
