// Command schools is the command-line client of the school directory.
//
//	schools add --name "Alpha High" --address "1 Main Rd" --city Pune \
//	    --state MH --contact 9876543210 --email office@alpha.in
//	schools browse --search pune
//	schools browse --interactive
//
// The API location comes from SCHOOLS_API_URL (default
// http://localhost:8000) or the --api-url flag.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/aanand-mishra/schools-directory/internal/config"
	"github.com/aanand-mishra/schools-directory/internal/logger"
	"github.com/aanand-mishra/schools-directory/internal/schoolapi"

	"github.com/spf13/cobra"
)

// errReported marks failures whose message was already printed to the
// user; main only sets the exit code for them.
var errReported = errors.New("reported")

// cli carries state shared by every subcommand.
type cli struct {
	apiURL string
	log    *slog.Logger
	client *schoolapi.Client
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "schools",
		Short:         "Add and browse schools in the school directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			if c.apiURL == "" {
				c.apiURL = cfg.APIBaseURL
			}

			// stdout is the rendered page, logs go to stderr.
			c.log = logger.New(cfg.Env, cmd.ErrOrStderr())
			c.client = schoolapi.New(c.apiURL, nil, c.log)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "Schools API base URL (or set SCHOOLS_API_URL env)")

	rootCmd.AddCommand(newAddCmd(c))
	rootCmd.AddCommand(newBrowseCmd(c))

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	stop()
	os.Exit(1)
}
