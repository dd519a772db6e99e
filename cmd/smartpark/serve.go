package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"smartpark/internal/config"
	httptransport "smartpark/internal/http"
	"smartpark/internal/infra"
	"smartpark/internal/modules/spot"
	"smartpark/internal/modules/zone"
)

func newServeCmd() *cobra.Command {
	var noReconcile bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the spot status reconciler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Firebase.ProjectID == "" {
				return errors.New("SMARTPARK_FIREBASE_PROJECT_ID is required")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
			if err != nil {
				return err
			}

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			pricingSvc, err := a.pricingService()
			if err != nil {
				return err
			}

			if !noReconcile {
				reconciler, err := a.reconciler()
				if err != nil {
					return err
				}
				a.goBackground(ctx, reconciler.RunScheduler)
			}

			gin.SetMode(gin.ReleaseMode)
			handler := httptransport.NewServer(httptransport.ServerDeps{
				Pricing:        pricingSvc,
				Spots:          spot.NewService(a.spots),
				Zones:          zone.NewService(a.zones),
				Verifier:       verifier,
				PricingTimeout: cfg.Pricing.RequestTimeout,
			})
			server := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           handler.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("smartpark: listening on %s", cfg.HTTP.Addr)
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().BoolVar(&noReconcile, "no-reconcile", false, "serve HTTP only; run the reconciler elsewhere")
	return cmd
}
