package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ElijahRus250/twitch-api/client"
)

// runObject runs one API call with the default timeout and prints its result.
func runObject(cmd *cobra.Command, name string, fn func(ctx context.Context, c *client.Client) (client.Object, error)) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	start := time.Now()
	obj, err := fn(ctx, c)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("command", name).Dur("elapsed", elapsed).Msg("request failed")
		return err
	}
	log.Debug().Str("command", name).Dur("elapsed", elapsed).Msg("request completed")
	return printObject(cmd.OutOrStdout(), obj)
}

func newUserIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user-id <login>...",
		Short: "Resolve login names to user ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			var result *multierror.Error
			for _, name := range args {
				id, err := c.ResolveUserID(ctx, name)
				if err != nil {
					result = multierror.Append(result, fmt.Errorf("%s: %w", name, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, id)
			}
			return result.ErrorOrNil()
		},
	}
}

func newUserStreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user-stream <login>",
		Short: "Show the live stream of a user (stream is null when offline)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObject(cmd, "user-stream", func(ctx context.Context, c *client.Client) (client.Object, error) {
				return c.FetchUserStream(ctx, args[0])
			})
		},
	}
}

type listFlags struct {
	limit, offset int
	channel       string
	game          string
	language      string
	streamType    string
}

func (f *listFlags) bind(cmd *cobra.Command, filters bool) {
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Maximum number of results (server default when 0)")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "Pagination offset")
	if filters {
		cmd.Flags().StringVar(&f.channel, "channel", "", "Comma-separated channel names")
		cmd.Flags().StringVar(&f.game, "game", "", "Game name")
		cmd.Flags().StringVar(&f.language, "language", "", "Broadcaster language")
		cmd.Flags().StringVar(&f.streamType, "stream-type", "", "live, playlist or all")
	}
}

// options returns nil when no flag was set so the request carries no query.
func (f *listFlags) options() *client.QueryOptions {
	o := client.QueryOptions{
		Limit:      f.limit,
		Offset:     f.offset,
		Channel:    f.channel,
		Game:       f.game,
		Language:   f.language,
		StreamType: f.streamType,
	}
	if o == (client.QueryOptions{}) {
		return nil
	}
	return &o
}

func newFeaturedCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "featured",
		Short: "List featured streams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObject(cmd, "featured", func(ctx context.Context, c *client.Client) (client.Object, error) {
				return c.FetchFeaturedStreams(ctx, f.options())
			})
		},
	}
	f.bind(cmd, false)
	return cmd
}

func newTopStreamsCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "top-streams",
		Short: "List live streams by viewer count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObject(cmd, "top-streams", func(ctx context.Context, c *client.Client) (client.Object, error) {
				return c.FetchTopStreams(ctx, f.options())
			})
		},
	}
	f.bind(cmd, true)
	return cmd
}

func newTopGamesCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "top-games",
		Short: "List games by current viewers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObject(cmd, "top-games", func(ctx context.Context, c *client.Client) (client.Object, error) {
				return c.FetchTopGames(ctx, f.options())
			})
		},
	}
	f.bind(cmd, false)
	return cmd
}

func newGameStreamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "game-streams <game>",
		Short: "List live streams of one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObject(cmd, "game-streams", func(ctx context.Context, c *client.Client) (client.Object, error) {
				return c.FetchStreamsByGame(ctx, args[0])
			})
		},
	}
}

type searchFunc func(c *client.Client, ctx context.Context, query string, page *client.Page) (client.Object, error)

func newSearchCmd(use, short string, search searchFunc) *cobra.Command {
	var page client.Page
	cmd := &cobra.Command{
		Use:   use + " <query>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObject(cmd, use, func(ctx context.Context, c *client.Client) (client.Object, error) {
				return search(c, ctx, args[0], &page)
			})
		},
	}
	cmd.Flags().IntVar(&page.Limit, "limit", client.DefaultSearchLimit, "Number of results")
	cmd.Flags().IntVar(&page.Offset, "offset", client.DefaultSearchOffset, "Pagination offset")
	return cmd
}

func newSearchGamesCmd() *cobra.Command {
	var live bool
	cmd := &cobra.Command{
		Use:   "search-games <query>",
		Short: "Search games by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObject(cmd, "search-games", func(ctx context.Context, c *client.Client) (client.Object, error) {
				return c.SearchGames(ctx, args[0], live)
			})
		},
	}
	cmd.Flags().BoolVar(&live, "live", false, "Only games being streamed now")
	return cmd
}

func newPlaybackURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "playback-url <channel>",
		Short: "Print the HLS playback manifest URL of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			u, err := c.ResolvePlaybackURL(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
}
