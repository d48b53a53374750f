package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/zsaab/linkboard/internal/server"
	"github.com/zsaab/linkboard/internal/server/config"
)

func main() {

	// optional; real deployments set the environment directly
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
