package main

import (
	"context"
	"log"

	"notehive-be/internal/bootstrap"
	"notehive-be/internal/config"
	"notehive-be/internal/server"
	"notehive-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: starting mail consumer...")
		if err := container.MailConsumer.Consume(context.Background()); err != nil {
			log.Printf("Background mail consumer error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
