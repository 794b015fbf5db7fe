package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jessevdk/go-flags"
	"github.com/rs/cors"

	discordclient "figmarelay/clients/discord"
	figmaclient "figmarelay/clients/figma"
	"figmarelay/config"
	"figmarelay/handlers"
	"figmarelay/middleware"
	"figmarelay/services/comments"
	"figmarelay/services/textreplace"
	figmausecase "figmarelay/usecases/figma"
)

type Options struct {
	EnvFile string `long:"env-file" description:"Path to a dotenv file to load before reading the environment"`
	Port    string `long:"port" description:"Port to listen on, overrides PORT"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	cfg, err := config.LoadConfig(opts.EnvFile)
	if err != nil {
		return err
	}
	if opts.Port != "" {
		cfg.Port = opts.Port
	}

	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.SlackConfig.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "figmarelay",
		LogsURL:     cfg.ServerLogsURL,
	})

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	figmaClient := figmaclient.NewFigmaClient(httpClient, cfg.FigmaConfig.APIBaseURL, cfg.FigmaConfig.APIToken)
	discordClient, err := discordclient.NewDiscordWebhookClient(httpClient, cfg.DiscordConfig.WebhookURL)
	if err != nil {
		return err
	}

	commentsService := comments.NewCommentsService(figmaClient)
	replacer := textreplace.NewReplacer(cfg.ReplaceRules)

	figmaUseCase := figmausecase.NewFigmaUseCase(
		commentsService,
		discordClient,
		replacer,
		cfg.FigmaConfig.ProjectName,
		figmausecase.EmbedImages{
			ReplyURL:   cfg.ImagesConfig.ReplyURL,
			ThreadURL:  cfg.ImagesConfig.ThreadURL,
			VersionURL: cfg.ImagesConfig.VersionURL,
		},
		alertMiddleware,
	)
	figmaEventsHandler := handlers.NewFigmaEventsHandler(figmaUseCase, cfg.FigmaConfig.WebhookPasscode, cfg.RequestTimeout)

	router := mux.NewRouter()
	figmaEventsHandler.SetupEndpoints(router, cfg.WebhookPath)

	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
		log.Printf("🛑 Shutdown signal received, cleaning up...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
