package main

import (
	"fmt"

	"github.com/bipuldey19/hungrypanda-handler/configs"
	"github.com/bipuldey19/hungrypanda-handler/middlewares"
	"github.com/bipuldey19/hungrypanda-handler/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	if err := configs.SetupDatabase(cfg); err != nil {
		logrus.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedDemo(cfg); err != nil {
		logrus.Fatalf("demo seed failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve locally stored uploads when no bucket is configured.
	if cfg.StorageBackend == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	if err := routes.RegisterRoutes(r, db, cfg); err != nil {
		logrus.Fatalf("route setup failed: %v", err)
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("🚀 menu admin running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
