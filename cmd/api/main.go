package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/config"
	dbpkg "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/db"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/middleware"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logrus.Infof("server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
