package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillsenselab/ytcaptions/api"
	"github.com/skillsenselab/ytcaptions/captions"
	"github.com/skillsenselab/ytcaptions/component"
	"github.com/skillsenselab/ytcaptions/config"
	"github.com/skillsenselab/ytcaptions/logger"
	"github.com/skillsenselab/ytcaptions/server"
	"github.com/skillsenselab/ytcaptions/version"
	"github.com/skillsenselab/ytcaptions/youtube"
)

const serviceName = "ytcaptions"

// AppConfig is the full service configuration.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server  server.Config  `yaml:"server" mapstructure:"server"`
	YouTube youtube.Config `yaml:"youtube" mapstructure:"youtube"`
}

// ApplyDefaults applies default values to all configuration sections.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.YouTube.ApplyDefaults()
}

// Validate validates all configuration sections.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.YouTube.Validate()
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(serviceName, version.GetShortVersion())
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg AppConfig
	if err := config.Load(serviceName, &cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()

	log.Info("Starting service", map[string]interface{}{
		"service":     cfg.Name,
		"version":     version.GetShortVersion(),
		"environment": cfg.Environment,
	})

	ytClient, err := youtube.NewClient(cfg.YouTube, log)
	if err != nil {
		return fmt.Errorf("youtube client: %w", err)
	}
	extractor := captions.NewService(ytClient, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()

	registry := component.NewRegistry()
	if err := registry.Register(server.NewComponent(srv)); err != nil {
		return err
	}

	srv.RegisterDefaultEndpoints(cfg.Name, registry.HealthAll)
	api.NewHandler(extractor, log).RegisterRoutes(srv.GinEngine())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := registry.StartAll(ctx); err != nil {
		return fmt.Errorf("start components: %w", err)
	}

	log.Info("Service ready", map[string]interface{}{
		"addr": srv.Addr(),
	})

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := registry.StopAll(shutdownCtx); err != nil {
		return fmt.Errorf("stop components: %w", err)
	}

	log.Info("Service stopped")
	return nil
}
