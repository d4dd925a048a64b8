package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/BellaEstudioDev/salon-agenda/internal/agenda"
	"github.com/BellaEstudioDev/salon-agenda/internal/config"
	dbpkg "github.com/BellaEstudioDev/salon-agenda/internal/db"
	"github.com/BellaEstudioDev/salon-agenda/internal/infra/storage"
	"github.com/BellaEstudioDev/salon-agenda/internal/lock"
	"github.com/BellaEstudioDev/salon-agenda/internal/middleware"
	"github.com/BellaEstudioDev/salon-agenda/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	// una grilla mal configurada es fatal al arranque, nunca por request
	grid, err := agenda.NewGrid(cfg.BusinessStart, cfg.BusinessEnd, cfg.SlotMinutes)
	if err != nil {
		log.Fatalf("invalid business hours config: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	locker := newLocker(cfg)
	imageStore := storage.NewImageStorage(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, grid, locker, imageStore)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newLocker elige el lock de reservas: Redis si está configurado
// (necesario con más de una instancia), en memoria si no.
func newLocker(cfg *config.Config) lock.Locker {
	if cfg.RedisAddr == "" {
		return lock.NewMemoryLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	return lock.NewRedisLocker(client)
}
