package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zk-langdef/internal/app"
)

type loadOptions struct {
	Sources   sourceOptions
	OutputDir string
}

func newLoadCommand() *cobra.Command {
	opts := loadOptions{}
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load language definitions and write a registry report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoad(cmd.Context(), cmd, opts)
		},
	}
	addSourceFlags(cmd, &opts.Sources)
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Directory for registry.yaml (optional)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runLoad(ctx context.Context, cmd *cobra.Command, opts loadOptions) error {
	service := newAppService()
	result, err := service.Load(ctx, app.LoadRequest{
		Sources:   opts.Sources.resolve(cmd),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("languages: %s\n", strings.Join(result.Languages, ", "))
	fmt.Printf("addons: %s\n", strings.Join(result.Addons, ", "))
	fmt.Printf("components: %d\n", result.Components)
	if len(result.Skipped) > 0 {
		fmt.Printf("skipped: %s\n", strings.Join(result.Skipped, ", "))
	}
	if result.ReportPath != "" {
		fmt.Printf("report: %s\n", result.ReportPath)
	}
	return nil
}
