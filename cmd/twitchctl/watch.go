package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	str2duration "github.com/xhit/go-str2duration/v2"

	"github.com/ElijahRus250/twitch-api/client"
)

var errOffline = errors.New("stream offline")

func newWatchCmd() *cobra.Command {
	var interval, timeout string
	var maxChecks uint64

	cmd := &cobra.Command{
		Use:   "watch <login>",
		Short: "Poll a user's stream until it goes live and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			every, err := str2duration.ParseDuration(interval)
			if err != nil {
				return fmt.Errorf("invalid --interval: %w", err)
			}
			if every <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", interval)
			}
			limit, err := str2duration.ParseDuration(timeout)
			if err != nil {
				return fmt.Errorf("invalid --timeout: %w", err)
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if limit > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, limit)
				defer cancel()
			}

			stream, err := waitLive(ctx, c, args[0], every, maxChecks)
			if err != nil {
				return err
			}
			return printObject(cmd.OutOrStdout(), stream)
		},
	}
	cmd.Flags().StringVar(&interval, "interval", "30s", "Poll interval, e.g. 30s, 5m, 1h30m")
	cmd.Flags().StringVar(&timeout, "timeout", "0", "Give up after this long (0 waits forever)")
	cmd.Flags().Uint64Var(&maxChecks, "max-checks", 0, "Give up after this many retries (0 means unlimited)")
	return cmd
}

// waitLive polls FetchUserStream at a constant interval until the stream
// field is non-null. Only an offline stream is retried; any request error
// ends the wait with that error.
func waitLive(ctx context.Context, c *client.Client, login string, every time.Duration, maxChecks uint64) (client.Object, error) {
	var b backoff.BackOff = backoff.NewConstantBackOff(every)
	if maxChecks > 0 {
		b = backoff.WithMaxRetries(b, maxChecks)
	}
	b = backoff.WithContext(b, ctx)

	var live client.Object
	check := func() error {
		obj, err := c.FetchUserStream(ctx, login)
		if err != nil {
			return backoff.Permanent(err)
		}
		if obj["stream"] == nil {
			return errOffline
		}
		live = obj
		return nil
	}
	notify := func(err error, next time.Duration) {
		log.Info().Err(err).Str("login", login).Dur("next_check", next).Msg("not live yet")
	}

	if err := backoff.RetryNotify(check, b, notify); err != nil {
		return nil, err
	}
	return live, nil
}
