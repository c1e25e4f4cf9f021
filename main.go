package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"meghmart/config"
	"meghmart/db"
	"meghmart/routes"
	"meghmart/services"
	"meghmart/storage"
)

func main() {
	cfg := config.Load()

	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}

	blobs, err := storage.NewDisk(cfg.UploadDir, cfg.UploadURL)
	if err != nil {
		log.Fatal(err)
	}

	carts := services.NewCarts(gdb)
	router := &routes.Router{
		Catalog:   services.NewCatalog(gdb, blobs),
		Discounts: services.NewDiscounts(gdb),
		Coupons:   services.NewCoupons(gdb),
		Carts:     carts,
		Wishlists: services.NewWishlists(gdb, carts),
		Reviews:   services.NewReviews(gdb, blobs),
		Users:     services.NewUsers(gdb, cfg.JWTSecret, cfg.TokenTTL),
		Blobs:     blobs,
		Alerts:    routes.NewAlertHub(),
	}

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())
	app.Static(cfg.UploadURL, "./"+cfg.UploadDir)

	router.Setup(app)

	log.Fatal(app.Listen(cfg.ListenAddr))
}
