package main

import (
	"Savoria-Backend/cmd/config"
	migration "Savoria-Backend/cmd/database/migrate"
	"Savoria-Backend/cmd/database/seed"
	"Savoria-Backend/internal/utils"
	"log"
	"os"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seed.SeedMenu(db); err != nil {
			log.Fatalf("error seeding database: %v", err)
		}
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
