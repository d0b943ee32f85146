package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mantasj/gidas/internal/app"
	"github.com/mantasj/gidas/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}

		a, err := app.New(dbPath)
		if err != nil {
			return err
		}
		defer a.Close()

		srv := &http.Server{
			Addr:    a.Config.Addr,
			Handler: server.New(a.Tutor, a.Recommend, a.Log).Router(),
		}

		errCh := make(chan error, 1)
		go func() {
			a.Log.WithField("addr", a.Config.Addr).Info("listening")
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-stop:
		}

		a.Log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
