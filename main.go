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

	"bayaaz-server/internal/config"
	"bayaaz-server/internal/consts"
	"bayaaz-server/internal/db"
	"bayaaz-server/internal/di"
	"bayaaz-server/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	config.InitConfig("")
	db.InitDB()

	media, err := service.NewMediaService()
	if err != nil {
		log.Fatalf("failed to initialize media store: %v", err)
	}

	app, err := di.InitializeApplication(db.DB, media)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	r := gin.Default()
	app.Router.Init(r)

	printWelcomeMessage()

	srv := &http.Server{
		Addr:    ":" + config.Get().Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("server listening on :%s", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown:", err)
	}
	log.Println("server exited")
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────┐")
	fmt.Printf(" │   %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────┤")
	fmt.Printf(" │   version : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   port    : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────┘")
	fmt.Println()
}
