package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hrms-backend/internal/attendance"
	"hrms-backend/internal/employees"
	"hrms-backend/internal/platform/config"
	"hrms-backend/internal/platform/db"
	"hrms-backend/internal/platform/middleware"
	"hrms-backend/internal/stats"
)

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(err)
	}
	log.Printf("[INFO] mode:%s\n", cfg.Mode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, database, err := db.Connect(ctx, cfg.Mongo)
	cancel()
	if err != nil {
		panic(err)
	}
	defer client.Disconnect(context.Background())

	log.Printf("[INFO] connected to store: %s", cfg.Mongo.Database)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == "dev" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	// liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "HRMS Lite API", "status": "running"})
	})

	empStore := employees.NewStore(database)
	attStore := attendance.NewStore(database)

	// /api
	api := r.Group("/api")
	employees.RegisterRoutes(api, employees.NewService(empStore, attStore))
	attendance.RegisterRoutes(api, attendance.NewService(attStore, empStore))
	stats.RegisterRoutes(api, stats.NewService(stats.NewStore(database)))

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer scancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Fatal(err)
	}
}
