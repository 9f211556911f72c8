package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/config"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/api/handler"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/api/middleware"
	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/jwt"
	"github.com/KhanhKH069/icnlab-website-fixed/pkg/redis"
)

// Login attempts per IP inside the window.
const (
	loginRateLimit  = 10
	loginRateWindow = 15 * time.Minute
)

// New builds the gin engine with all routes and middleware attached.
func New(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	auth := middleware.JWTAuth(jwtMgr, repo.User, rdb)
	optionalAuth := middleware.OptionalJWTAuth(jwtMgr, repo.User)
	editor := middleware.RequireEditor()
	admin := middleware.RequireAdmin()

	r.GET("/health", h.Health)
	r.Static("/uploads", cfg.Upload.Dir)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login",
				middleware.RateLimit(rdb, logger, "login", loginRateLimit, loginRateWindow),
				h.Auth.Login)
			authGroup.POST("/register", auth, admin, h.Auth.Register)
			authGroup.GET("/me", auth, h.Auth.Me)
			authGroup.PUT("/change-password", auth, h.Auth.ChangePassword)
			authGroup.POST("/logout", auth, h.Auth.Logout)
		}

		news := api.Group("/news")
		{
			newsUpload := middleware.SaveUploads(&cfg.Upload, "news", middleware.ImageField("image"))

			news.GET("", optionalAuth, h.News.List)
			news.GET("/:id", h.News.Get)
			news.POST("", auth, editor, newsUpload, h.News.Create)
			news.PUT("/:id", auth, editor, newsUpload, h.News.Update)
			news.DELETE("/:id", auth, editor, h.News.Delete)
		}

		pubs := api.Group("/publications")
		{
			pubUpload := middleware.SaveUploads(&cfg.Upload, "publications",
				middleware.PDFField("pdfFile"), middleware.ImageField("image"))

			pubs.GET("", optionalAuth, h.Publication.List)
			pubs.GET("/stats/summary", h.Publication.Stats)
			pubs.GET("/:id", h.Publication.Get)
			pubs.POST("", auth, editor, pubUpload, h.Publication.Create)
			pubs.PUT("/:id", auth, editor, pubUpload, h.Publication.Update)
			pubs.DELETE("/:id", auth, editor, h.Publication.Delete)
		}

		projects := api.Group("/projects")
		{
			projectUpload := middleware.SaveUploads(&cfg.Upload, "projects", middleware.ImageField("image"))

			projects.GET("", optionalAuth, h.Project.List)
			projects.GET("/:id", h.Project.Get)
			projects.POST("", auth, editor, projectUpload, h.Project.Create)
			projects.PUT("/:id", auth, editor, projectUpload, h.Project.Update)
			projects.DELETE("/:id", auth, editor, h.Project.Delete)
		}

		members := api.Group("/members")
		{
			memberUpload := middleware.SaveUploads(&cfg.Upload, "members", middleware.ImageField("photo"))

			members.GET("", optionalAuth, h.Member.List)
			members.GET("/:id", h.Member.Get)
			members.POST("", auth, editor, memberUpload, h.Member.Create)
			members.PUT("/:id", auth, editor, memberUpload, h.Member.Update)
			members.DELETE("/:id", auth, editor, h.Member.Delete)
		}

		api.GET("/export/publications", auth, editor, h.Publication.Export)
		api.GET("/admin/integrity", auth, admin, h.Maintenance.Integrity)
	}

	return r
}
