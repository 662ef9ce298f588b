package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/bandroom/bandroom/internal/server"
	"github.com/bandroom/bandroom/internal/server/config"
)

func main() {
	ctx := context.Background()

	// missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
