// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neo4j_routing/internal/config"
	"neo4j_routing/internal/database"
	"neo4j_routing/internal/handlers"
	"neo4j_routing/internal/logging"
	"neo4j_routing/internal/repositories"
	"neo4j_routing/internal/services"
)

func main() {
	logging.InitLogging()

	// Configuración
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := database.NewNeo4jDatabase(ctx,
		cfg.Neo4jURI,
		cfg.Neo4jUser,
		cfg.Neo4jPassword,
		cfg.Neo4jDatabase,
	)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close(ctx)

	// Cargar datos iniciales
	if cfg.SeedFile != "" {
		if err := db.ExecuteCypherFile(ctx, cfg.SeedFile); err != nil {
			log.Printf("Warning: could not initialize DB: %v", err)
		} else {
			log.Println("Datos iniciales cargados correctamente")
		}
	}

	// Inicializar repositorios y servicios
	graphRepo := repositories.NewGraphRepository(db)
	routeRepo := repositories.NewRouteRepository(db)
	routeService := services.NewRouteService(graphRepo, routeRepo, cfg.CacheTTL)
	routingHandler := handlers.NewRoutingHandler(routeService, cfg.QueryTimeout)

	// Iniciar servidor
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handlers.NewRouter(routingHandler, cfg.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server running at http://localhost:%d", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %v", err)
		}
	}()

	// Manejar shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
