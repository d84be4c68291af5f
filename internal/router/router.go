package router

import (
	"time"

	"github.com/doctorbhh/Menu-plus/internal/auth"
	"github.com/doctorbhh/Menu-plus/internal/menu"
	"github.com/doctorbhh/Menu-plus/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth *auth.Handler
	Menu *menu.Handler

	// Empty allows any origin
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(d.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = d.CORSOrigins
	}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")

	// ───────────────────────── PUBLIC ─────────────────────────
	api.GET("/health", d.Menu.Health)
	api.GET("/menu", d.Menu.Get)
	api.POST("/auth", d.Auth.Handle)

	// ───────────────────────── ADMIN ─────────────────────────
	admin := api.Group("/menu")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", d.Menu.Publish)
		admin.POST("/upload", d.Menu.Upload)
		admin.POST("/preview", d.Menu.Preview)
	}

	return r
}
