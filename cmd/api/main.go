package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharpcutlabs/barbershop-api/internal/config"
	dbpkg "github.com/sharpcutlabs/barbershop-api/internal/db"
	"github.com/sharpcutlabs/barbershop-api/internal/logging"
	"github.com/sharpcutlabs/barbershop-api/internal/routes"
	"github.com/sharpcutlabs/barbershop-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logging.New()

	if !timezone.IsValid(cfg.ShopTimezone) {
		log.Fatal().Str("tz", cfg.ShopTimezone).Msg("invalid SHOP_TIMEZONE")
	}
	loc := timezone.Location(cfg.ShopTimezone)

	db := dbpkg.NewDB(cfg, log)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log, loc)

	log.Info().Str("addr", cfg.Addr()).Str("tz", cfg.ShopTimezone).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
