package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"zk-langdef/internal/app"
)

type orderOptions struct {
	Sources sourceOptions
}

func newOrderCommand() *cobra.Command {
	opts := orderOptions{}
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the depends-aware addon load order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOrder(cmd.Context(), cmd, opts)
		},
	}
	addSourceFlags(cmd, &opts.Sources)
	return cmd
}

func runOrder(ctx context.Context, cmd *cobra.Command, opts orderOptions) error {
	service := newAppService()
	result, err := service.Order(ctx, app.OrderRequest{
		Sources: opts.Sources.resolve(cmd),
	})
	if err != nil {
		return err
	}
	for i, addon := range result.Addons {
		if len(addon.Depends) == 0 {
			fmt.Printf("%d. %s\n", i+1, addon.Name)
			continue
		}
		fmt.Printf("%d. %s (depends: %s)\n", i+1, addon.Name, strings.Join(addon.Depends, ", "))
	}
	for _, name := range result.Skipped {
		fmt.Printf("skipped: %s\n", name)
	}
	return nil
}
