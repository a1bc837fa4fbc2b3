package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	_ "tailor/docs"
	"tailor/internal/config"
	"tailor/internal/extract"
	"tailor/internal/generator"
	"tailor/internal/generator/claude"
	"tailor/internal/generator/gemini"
	"tailor/internal/generator/openai"
	"tailor/internal/handler"
	"tailor/internal/lint"
	"tailor/internal/port"
	"tailor/internal/router"
	"tailor/internal/service"
)

// @title ATS Resume Tailor API
// @version 1.0
// @description Tailors resumes to job descriptions via LLM providers and reports ATS-friendliness warnings.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func registerProviders() {
	generator.RegisterProvider("gemini", func(cfg *config.ProviderConfig) (port.TextGenerator, error) {
		return gemini.NewClient(cfg), nil
	})
	generator.RegisterProvider("openai", func(cfg *config.ProviderConfig) (port.TextGenerator, error) {
		return openai.NewClient(cfg), nil
	})
	generator.RegisterProvider("claude", func(cfg *config.ProviderConfig) (port.TextGenerator, error) {
		return claude.NewClient(cfg), nil
	})
}

func run() error {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registerProviders()

	// Build the text generator: primary provider, with an optional secondary
	// behind a rate-limit-aware fallback.
	gen, err := generator.NewGenerator(&cfg.Generator.Primary)
	if err != nil {
		return fmt.Errorf("failed to initialize primary generator: %w", err)
	}
	if secondary := cfg.Generator.SecondaryConfig(); secondary != nil {
		secondGen, err := generator.NewGenerator(secondary)
		if err != nil {
			return fmt.Errorf("failed to initialize secondary generator: %w", err)
		}
		gen = generator.NewFallbackGenerator(
			[]port.TextGenerator{gen, secondGen},
			[]string{cfg.Generator.Primary.Provider, secondary.Provider},
		)
		log.Printf("generator fallback enabled: %s -> %s", cfg.Generator.Primary.Provider, secondary.Provider)
	}

	// Initialize services
	extractor := extract.NewExtractor(&cfg.Upload)
	linter := lint.NewRegistry()
	tailorSvc := service.NewTailorService(gen, extractor, linter, &cfg.Generator)
	exportSvc := service.NewExportService()

	// Initialize handlers
	tailorH := handler.NewTailorHandler(tailorSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler(&cfg.Generator)

	// Setup router
	r := router.Setup(cfg, tailorH, exportH, healthH)

	// The write timeout must outlast a full provider round trip.
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
