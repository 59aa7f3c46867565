package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/vietwoods/catalog-api/config"
	"github.com/vietwoods/catalog-api/controllers"
	"github.com/vietwoods/catalog-api/database"
	"github.com/vietwoods/catalog-api/mailer"
	"github.com/vietwoods/catalog-api/middleware"
	"github.com/vietwoods/catalog-api/utils"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	if err := database.Connect(cfg.MongoURI, cfg.DatabaseName); err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	ctx := context.Background()
	if err := database.EnsureIndexes(ctx); err != nil {
		logrus.WithError(err).Fatal("index creation failed")
	}

	seeded, err := utils.SeedAdminAccount(ctx, database.OpenCollection("admin_accounts"))
	if err != nil {
		logrus.WithError(err).Fatal("admin account seeding failed")
	}
	if seeded {
		logrus.Info("admin account seeded")
	}

	m, err := mailer.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("mailer setup failed")
	}

	r := gin.New()
	v := utils.NewImageValidator()

	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(cfg.AllowedOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/products", controllers.GetProducts())
	r.GET("/products/:slug", controllers.GetProductBySlug())
	r.GET("/categories", controllers.GetCategories())
	r.POST("/contact", controllers.CreateInquiry(m))

	r.POST("/admin/auth/login", controllers.Login())
	r.POST("/admin/auth/logout", controllers.Logout())
	r.GET("/admin/auth/session", controllers.Session())

	admin := r.Group("/admin")
	admin.Use(middleware.RequireSession())
	{
		admin.POST("/auth/change-password", controllers.ChangePassword())

		admin.GET("/products", controllers.AdminListProducts())
		admin.POST("/products", controllers.AddProduct())
		admin.PUT("/products/:id", controllers.UpdateProduct())
		admin.POST("/products/:id/images", controllers.UploadProductImages(v, cfg.MaxProductImages))

		admin.GET("/categories", controllers.GetCategories())
		admin.POST("/categories", controllers.AddCategory())
		admin.PUT("/categories/:id", controllers.UpdateCategory())
		admin.DELETE("/categories/:id", controllers.DeleteCategory())

		admin.GET("/inquiries", controllers.AdminListInquiries())
	}

	if err := r.Run(cfg.Address); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
