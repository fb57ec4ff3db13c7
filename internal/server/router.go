package server

import (
	"html/template"
	"net/http"

	"github.com/Cj170303/PPIA-Pro/config"
	"github.com/Cj170303/PPIA-Pro/internal/handlers"
	"github.com/Cj170303/PPIA-Pro/internal/middleware"
	"github.com/Cj170303/PPIA-Pro/internal/service"
	"github.com/Cj170303/PPIA-Pro/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterConfig struct {
	Templates   *template.Template
	Logger      *logger.Logger
	Store       service.SessionStore
	Session     config.SessionConfig
	CORS        config.CORSConfig
	ServiceName string
	Tracing     bool

	AuthHandler      *handlers.AuthHandler
	DashboardHandler *handlers.DashboardHandler
	QuizHandler      *handlers.QuizHandler
	AppHandler       *handlers.AppHandler
	HealthHandler    *handlers.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	if cfg.Tracing {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.ErrorHandler(cfg.Logger))
	router.SetHTMLTemplate(cfg.Templates)

	router.GET("/health", cfg.HealthHandler.Health)
	router.GET("/ready", cfg.HealthHandler.Ready)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	session := middleware.Session(cfg.Store, cfg.Session, cfg.Logger)

	pages := router.Group("/")
	pages.Use(session)
	{
		pages.GET("/", cfg.AuthHandler.LoginPage)
		pages.POST("/login", cfg.AuthHandler.Login)
		pages.GET("/register", cfg.AuthHandler.RegisterPage)
		pages.POST("/register", cfg.AuthHandler.Register)
		pages.POST("/logout", cfg.AuthHandler.Logout)

		pages.GET("/dashboard", cfg.DashboardHandler.Show)
		pages.POST("/dashboard/week", cfg.DashboardHandler.SaveWeek)
		pages.POST("/dashboard/topics/toggle", cfg.DashboardHandler.ToggleTopic)
		pages.POST("/dashboard/start", cfg.DashboardHandler.StartQuiz)

		pages.GET("/quiz", cfg.QuizHandler.Show)
		pages.POST("/quiz/answer", cfg.QuizHandler.Answer)
		pages.POST("/quiz/continue", cfg.QuizHandler.Continue)
	}

	app := router.Group("/app")
	app.Use(middleware.CORS(cfg.CORS), session)
	{
		app.OPTIONS("/topics/toggle", noContent)
		app.POST("/topics/toggle", cfg.AppHandler.ToggleTopic)
		app.OPTIONS("/stats", noContent)
		app.GET("/stats", cfg.AppHandler.Stats)
	}

	return router
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
