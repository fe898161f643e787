package mcp

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ElijahRus250/twitch-api/client"
	"github.com/ElijahRus250/twitch-api/internal/logger"
	"github.com/ElijahRus250/twitch-api/mcp/internal/handlers"
)

// config holds the server settings. Twitch credentials and endpoints come from
// client.Config (TWITCH_* variables).
type config struct {
	ListenAddr      string
	LogLevel        zerolog.Level
	ServerName      string
	ServerVersion   string
	ShutdownTimeout time.Duration
	HTTPReadTimeout time.Duration
	HTTPIdleTimeout time.Duration
	ClientID        string
}

// loadConfig loads configuration from environment variables and flags
func loadConfig() *config {
	cfg := &config{
		ListenAddr:      getEnvOrDefault("MCP_LISTEN_ADDR", ":11547"),
		ServerName:      getEnvOrDefault("MCP_SERVER_NAME", "twitch-mcp-server"),
		ServerVersion:   getEnvOrDefault("MCP_SERVER_VERSION", "0.1.0"),
		ShutdownTimeout: parseDurationOrDefault("SHUTDOWN_TIMEOUT", "10s"),
		HTTPReadTimeout: parseDurationOrDefault("HTTP_READ_TIMEOUT", "5s"),
		HTTPIdleTimeout: parseDurationOrDefault("HTTP_IDLE_TIMEOUT", "120s"),
	}

	cfg.LogLevel = logger.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))

	// Command line flags (will override env vars)
	var rawLogLevel string
	flag.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "Address for the streamable HTTP transport")
	flag.StringVar(&cfg.ClientID, "client-id", "", "Twitch client id (overrides TWITCH_CLIENT_ID)")
	flag.StringVar(&rawLogLevel, "log-level", cfg.LogLevel.String(), "Log level: debug|info|warn|error")
	flag.Parse()

	if rawLogLevel != "" {
		cfg.LogLevel = logger.ParseLevel(rawLogLevel)
	}

	return cfg
}

// initLogger initializes the logger with the configured level. Logs go to
// stderr so they never interleave with the stdio protocol stream.
func (c *config) initLogger() {
	zerolog.SetGlobalLevel(c.LogLevel)
	log.Logger = logger.New(c.ServerName, os.Stderr).With().Caller().Logger()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(envKey, defaultValue string) time.Duration {
	if value := os.Getenv(envKey); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	d, _ := time.ParseDuration(defaultValue)
	return d
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// RegisterHandlers registers every Twitch tool on s, backed by c.
func RegisterHandlers(s *server.MCPServer, c *client.Client) error {
	for _, h := range []toolRegisterer{
		handlers.NewUserHandler(c),
		handlers.NewStreamHandler(c),
		handlers.NewGameHandler(c),
		handlers.NewSearchHandler(c),
	} {
		if err := h.RegisterTools(s); err != nil {
			return err
		}
	}
	return nil
}

// NewServer builds an MCP server exposing the Twitch tools.
func NewServer(name, version string, c *client.Client) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)
	if err := RegisterHandlers(s, c); err != nil {
		return nil, err
	}
	return s, nil
}

// RunMCPServer starts the MCP server with the given configuration
func RunMCPServer() error {
	cfg := loadConfig()
	cfg.initLogger()

	twitchCfg, err := client.LoadConfig()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load TWITCH_* configuration")
		return err
	}
	if cfg.ClientID != "" {
		twitchCfg.ClientID = cfg.ClientID
	}
	if twitchCfg.ClientID == "" {
		log.Warn().Msg("No Twitch client id configured; requests will be rejected upstream")
	}

	twitchClient, err := client.NewFromConfig(twitchCfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}
	log.Info().Str("base_url", twitchCfg.BaseURL).Msg("Client created successfully")

	s, err := NewServer(cfg.ServerName, cfg.ServerVersion, twitchClient)
	if err != nil {
		log.Error().Err(err).Msg("Failed to register tools")
		return err
	}

	if shouldUseStdio() {
		log.Info().Msg("Starting Twitch MCP server (stdio transport)")
		return server.ServeStdio(s)
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("Starting Twitch MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      streamSrv,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // SSE streams have no deadline
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("HTTP server error")
		return err
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
