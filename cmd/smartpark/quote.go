package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smartpark/internal/config"
	"smartpark/internal/modules/pricing"
	"smartpark/internal/types"
)

func newQuoteCmd() *cobra.Command {
	var zoneID, start, end string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a price quote for a zone and interval as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			startT, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			endT, err := time.Parse(time.RFC3339, end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Pricing.RequestTimeout)
			defer cancel()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			svc, err := a.pricingService()
			if err != nil {
				return err
			}
			q, err := svc.Calculate(ctx, pricing.QuoteRequest{ZoneID: types.ID(zoneID), Start: startT, End: endT})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(q)
		},
	}
	cmd.Flags().StringVar(&zoneID, "zone", "", "zone id")
	cmd.Flags().StringVar(&start, "start", "", "start time (RFC 3339)")
	cmd.Flags().StringVar(&end, "end", "", "end time (RFC 3339)")
	_ = cmd.MarkFlagRequired("zone")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
