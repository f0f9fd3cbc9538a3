package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func pingCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the upstream service answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := dialUpstream()
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			p := newPrinter()
			start := time.Now()
			fundTypes, err := client.GetFundTypes(ctx)
			if err != nil {
				p.Error("%s unreachable: %v", cfg.GRPCHost, err)
				return errSilent
			}
			p.Success("%s answered in %s with %d fund types", cfg.GRPCHost, time.Since(start).Round(time.Millisecond), len(fundTypes))
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "deadline for the call")
	return cmd
}
