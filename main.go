package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/tnqbao/gau-design-service/config"
	"github.com/tnqbao/gau-design-service/controller"
	"github.com/tnqbao/gau-design-service/infra"
	"github.com/tnqbao/gau-design-service/provider"
	"github.com/tnqbao/gau-design-service/repository"
	routes "github.com/tnqbao/gau-design-service/route"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infraClients := infra.InitInfra(cfg)
	defer infraClients.Shutdown(context.Background())

	repo := repository.InitRepository(infraClients)
	providers := provider.InitProvider(cfg, infraClients, repo)

	ctrl := controller.NewController(cfg, infraClients, repo, providers)

	router := routes.SetupRouter(ctrl)
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
