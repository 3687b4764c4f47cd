package router

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uncode/videojuegos/config"
	"github.com/uncode/videojuegos/internal/app/controller"
	"github.com/uncode/videojuegos/internal/middleware"
)

type Router struct {
	categoryController *controller.CategoryController
	studioController   *controller.StudioController
	gameController     *controller.GameController
	uploadController   *controller.UploadController
	templates          *template.Template
	registry           *prometheus.Registry
	config             *config.Config
}

// NewRouter builds the route table. uploadController may be nil, in which
// case the upload endpoint is not registered.
func NewRouter(
	categoryController *controller.CategoryController,
	studioController *controller.StudioController,
	gameController *controller.GameController,
	uploadController *controller.UploadController,
	templates *template.Template,
	registry *prometheus.Registry,
	cfg *config.Config,
) *Router {
	return &Router{
		categoryController: categoryController,
		studioController:   studioController,
		gameController:     gameController,
		uploadController:   uploadController,
		templates:          templates,
		registry:           registry,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()
	router.SetHTMLTemplate(r.templates)

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.NewMetrics(r.registry).Middleware())

	store := cookie.NewStore([]byte(r.config.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.config.Server.Environment == "production",
	})
	router.Use(sessions.Sessions(r.config.Session.Name, store))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Videojuegos is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/videojuegos")
	})

	categories := router.Group("/categorias")
	{
		categories.GET("", r.categoryController.ListCategories)
		categories.GET("/new", r.categoryController.NewCategory)
		categories.POST("/new", r.categoryController.CreateCategory)
		categories.GET("/:id", r.categoryController.EditCategory)
		categories.POST("/:id", r.categoryController.UpdateCategory)
		categories.POST("/:id/delete", r.categoryController.DeleteCategory)
	}

	studios := router.Group("/estudios")
	{
		studios.GET("", r.studioController.ListStudios)
		studios.GET("/new", r.studioController.NewStudio)
		studios.POST("/new", r.studioController.CreateStudio)
		studios.GET("/:id", r.studioController.EditStudio)
		studios.POST("/:id", r.studioController.UpdateStudio)
		studios.POST("/:id/delete", r.studioController.DeleteStudio)
	}

	games := router.Group("/videojuegos")
	{
		games.GET("", r.gameController.ListGames)
		games.GET("/new", r.gameController.NewGame)
		games.POST("/new", r.gameController.CreateGame)
		games.GET("/:id", r.gameController.EditGame)
		games.POST("/:id", r.gameController.UpdateGame)
		games.POST("/:id/delete", r.gameController.DeleteGame)
	}

	if r.uploadController != nil {
		uploads := router.Group("/uploads")
		// Without configured origins the endpoint stays same-origin only.
		if len(r.config.CORS.AllowedOrigins) > 0 {
			uploads.Use(cors.New(cors.Config{
				AllowOrigins:     r.config.CORS.AllowedOrigins,
				AllowMethods:     []string{"POST", "OPTIONS"},
				AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
				ExposeHeaders:    []string{"Content-Length"},
				AllowCredentials: true,
			}))
		}
		{
			uploads.POST("/portadas", r.uploadController.PresignCover)
			uploads.OPTIONS("/portadas", func(c *gin.Context) {})
		}
	}

	return router
}
