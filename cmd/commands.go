package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/database"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/observability"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/server"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	cmd := &cobra.Command{
		Use:           "pizza-restaurants",
		Short:         "Restaurants, pizzas and their menus over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running without a subcommand starts the server
		RunE: serve.RunE,
	}
	cmd.Flags().AddFlagSet(serve.Flags())
	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
				Enabled:      conf.TracingEnabled,
				ServiceName:  conf.ServiceName,
				Environment:  conf.Environment,
				OTLPEndpoint: conf.OTLPEndpoint,
			})
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdownTracing(context.Background()); err != nil {
					log.WithError(err).Warn("Tracing shutdown failed")
				}
			}()

			db, err := setupDatabase(ctx, conf)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if seed {
				if _, err := database.Seed(ctx, db); err != nil {
					return fmt.Errorf("seed database: %w", err)
				}
			}

			if conf.Environment == "production" {
				gin.SetMode(gin.ReleaseMode)
			}
			srv := &http.Server{
				Addr:              fmt.Sprintf("%v:%d", conf.Host, conf.Port),
				Handler:           server.NewRouter(db, conf),
				ReadHeaderTimeout: 10 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Infof("Starting server on %s:%d", conf.Host, conf.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info("Shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", true, "seed sample data when the database is empty")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := setupDatabase(cmd.Context(), conf)
			if err != nil {
				return err
			}
			defer database.Close(db)

			fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample restaurants, pizzas and menu items into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := setupDatabase(cmd.Context(), conf)
			if err != nil {
				return err
			}
			defer database.Close(db)

			seeded, err := database.Seed(cmd.Context(), db)
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "Sample data inserted")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Database already has data, nothing to do")
			}
			return nil
		},
	}
}
