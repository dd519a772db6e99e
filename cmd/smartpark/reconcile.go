package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"smartpark/internal/config"
)

func newReconcileCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Derive spot statuses from bookings, once or on the configured interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			svc, err := a.reconciler()
			if err != nil {
				return err
			}
			if !once {
				svc.RunScheduler(ctx)
				return nil
			}
			rep := svc.RunCycle(ctx, time.Now())
			fmt.Fprintf(cmd.OutOrStdout(), "spots=%d updated=%d unchanged=%d skipped=%d failed=%d\n",
				rep.Spots, rep.Updated, rep.Unchanged, rep.Skipped, rep.Failed)
			if rep.Aborted {
				return fmt.Errorf("reconcile: cycle aborted")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "run a single cycle and exit")
	return cmd
}
