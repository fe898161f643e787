package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/ElijahRus250/twitch-api/client"
	"github.com/ElijahRus250/twitch-api/internal/logger"
)

var (
	clientID     string
	clientSecret string
	output       string
	envFile      string
	debug        bool
)

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "twitchctl",
		Short:        "twitchctl queries the Twitch Kraken v5 API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = logger.Console(os.Stderr)

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("load %s: %w", envFile, err)
				}
			}

			switch output {
			case "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (want json or yaml)", output)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&clientID, "client-id", "", "Twitch client id (default $TWITCH_CLIENT_ID)")
	pf.StringVar(&clientSecret, "client-secret", "", "Twitch client secret (default $TWITCH_CLIENT_SECRET)")
	pf.StringVarP(&output, "output", "o", "json", "Output format: json|yaml")
	pf.StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading TWITCH_* variables")
	pf.BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newUserIDCmd())
	rootCmd.AddCommand(newUserStreamCmd())
	rootCmd.AddCommand(newFeaturedCmd())
	rootCmd.AddCommand(newTopStreamsCmd())
	rootCmd.AddCommand(newTopGamesCmd())
	rootCmd.AddCommand(newGameStreamsCmd())
	rootCmd.AddCommand(newSearchCmd("search-channels", "Search channels", (*client.Client).SearchChannels))
	rootCmd.AddCommand(newSearchCmd("search-streams", "Search live streams", (*client.Client).SearchStreams))
	rootCmd.AddCommand(newSearchGamesCmd())
	rootCmd.AddCommand(newPlaybackURLCmd())
	rootCmd.AddCommand(newWatchCmd())

	return rootCmd
}

// newClient builds a client from TWITCH_* variables with flag overrides.
func newClient() (*client.Client, error) {
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, err
	}
	if clientID != "" {
		cfg.ClientID = clientID
	}
	if clientSecret != "" {
		cfg.ClientSecret = clientSecret
	}
	if debug {
		cfg.Debug = true
	}
	log.Debug().
		Str("base_url", cfg.BaseURL).
		Bool("client_id_set", cfg.ClientID != "").
		Msg("creating client")
	return client.NewFromConfig(cfg)
}

// printObject writes v to w in the selected output format.
func printObject(w io.Writer, v any) error {
	if output == "yaml" {
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
