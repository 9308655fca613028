package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/cookbook-server/internal/api/http/handler"
	"github.com/dtroode/cookbook-server/internal/api/http/middleware"
	"github.com/dtroode/cookbook-server/internal/logger"
	"github.com/dtroode/cookbook-server/internal/model"
)

// Services groups everything the HTTP handlers call into.
type Services struct {
	Auth          handler.AuthService
	Authenticator middleware.Authenticator
	Ingredients   handler.IngredientService
	Recipes       handler.RecipeService
	Health        handler.HealthChecker
}

// Options tunes request handling.
type Options struct {
	AllowedOrigins []string
	MaxImageSize   int64
}

// Router represents the HTTP router for the cookbook API.
type Router struct {
	services       Services
	options        Options
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	services Services,
	options Options,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		options:        options,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the gin engine with middleware and every route.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Authenticator, r.contextManager, r.logger)

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(
		logging.Handle,
		gin.CustomRecovery(r.handlePanic),
		cors.New(r.corsConfig()),
	)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.ErrorResponse{Detail: "Not Found"})
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handler.ErrorResponse{Detail: "Method Not Allowed"})
	})

	r.registerHealthRoutes(engine)
	r.registerAuthRoutes(engine, authenticate.Handle)
	r.registerIngredientRoutes(engine)
	r.registerRecipeRoutes(engine, authenticate.Handle)

	return engine
}

func (r *Router) registerHealthRoutes(engine *gin.Engine) {
	healthHandler := handler.NewHealth(r.services.Health, r.logger)
	engine.GET("/health", healthHandler.Check)
}

func (r *Router) registerAuthRoutes(engine *gin.Engine, auth gin.HandlerFunc) {
	authHandler := handler.NewAuth(r.services.Auth, r.contextManager, r.logger)

	group := engine.Group("/auth")
	group.POST("/register", authHandler.Register)
	group.POST("/login", authHandler.Login)
	group.POST("/refresh", authHandler.Refresh)
	group.POST("/logout", authHandler.Logout)
	group.GET("/me", auth, authHandler.Me)
}

func (r *Router) registerIngredientRoutes(engine *gin.Engine) {
	ingredientHandler := handler.NewIngredient(r.services.Ingredients, r.logger)

	group := engine.Group("/ingredients")
	group.GET("", ingredientHandler.List)
	group.POST("", ingredientHandler.Create)
	group.DELETE("/:ingredient_id", ingredientHandler.Delete)
}

func (r *Router) registerRecipeRoutes(engine *gin.Engine, auth gin.HandlerFunc) {
	recipeHandler := handler.NewRecipe(r.services.Recipes, r.options.MaxImageSize, r.logger)

	group := engine.Group("/recipes")
	group.GET("", recipeHandler.List)
	group.GET("/:recipe_id", recipeHandler.Get)
	group.GET("/:recipe_id/image", recipeHandler.GetImage)

	group.POST("", auth, recipeHandler.Create)
	group.PUT("/:recipe_id", auth, recipeHandler.Update)
	group.DELETE("/:recipe_id", auth, recipeHandler.Delete)
	group.PUT("/:recipe_id/image", auth, recipeHandler.UploadImage)
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(r.options.AllowedOrigins) == 0 || slices.Contains(r.options.AllowedOrigins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = r.options.AllowedOrigins
	cfg.AllowCredentials = true
	return cfg
}

func (r *Router) handlePanic(c *gin.Context, recovered any) {
	r.logger.Error("HTTP handler panicked",
		"path", c.Request.URL.Path,
		"panic", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, handler.ErrorResponse{Detail: "internal server error"})
}
