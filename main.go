package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danthegoodman1/hgcalntuple/gologger"
	"github.com/danthegoodman1/hgcalntuple/http_server"
	"github.com/danthegoodman1/hgcalntuple/utils"
	"github.com/spf13/cobra"
)

var logger = gologger.NewLogger()

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "hgcalntuple",
		Short: "Read HGCal ntuples as events, collections and objects",
		Long: `
Reads flat HGCal ntuples, stored as one column per object field in ROOT
or parquet files, local or on S3, and exposes them as typed objects.
`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newInfoCommand(stdout),
		newDumpCommand(stdout),
		newConvertCommand(stdout),
		newServeCommand(),
	)
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the event browser over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			serve()
			return nil
		},
	}
}

func serve() {
	logger.Debug().Msg("starting ntuple browser")

	httpServer := http_server.StartHTTPServer()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logger.Warn().Msg("received shutdown signal!")

	// For AWS ALB needing some time to de-register pod
	// Convert the time to seconds
	sleepTime := utils.GetEnvOrDefaultInt("SHUTDOWN_SLEEP_SEC", 0)
	logger.Info().Msg(fmt.Sprintf("sleeping for %ds before exiting", sleepTime))

	time.Sleep(time.Second * time.Duration(sleepTime))
	logger.Info().Msg(fmt.Sprintf("slept for %ds, exiting", sleepTime))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown HTTP server")
	} else {
		logger.Info().Msg("successfully shutdown HTTP server")
	}
}
