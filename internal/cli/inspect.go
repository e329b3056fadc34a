package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zk-langdef/internal/app"
)

type inspectOptions struct {
	Sources   sourceOptions
	Report    string
	Language  string
	Component string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [component]",
		Short: "Show the merged definition of one component",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Component = args[0]
			}
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	addSourceFlags(cmd, &opts.Sources)
	cmd.Flags().StringVar(&opts.Report, "report", "", "Read the component from a registry.yaml instead of loading")
	cmd.Flags().StringVar(&opts.Language, "language", "", "Language name (default: first language defining the component)")
	cmd.Flags().StringVar(&opts.Component, "component", "", "Component name")
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("language", cmd.Flags().Lookup("language"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		Sources:    opts.Sources.resolve(cmd),
		ReportPath: resolveString(cmd, opts.Report, "report", "report"),
		Language:   resolveString(cmd, opts.Language, "language", "language"),
		Component:  opts.Component,
	})
	if err != nil {
		return err
	}

	comp := result.Component
	fmt.Printf("component: %s (%s)\n", comp.Name, result.Language)
	fmt.Printf("class: %s\n", comp.Class)
	if comp.WidgetClass != "" {
		fmt.Printf("widget: %s\n", comp.WidgetClass)
	}
	if comp.Extends != "" {
		fmt.Printf("extends: %s\n", comp.Extends)
	}
	fmt.Printf("origin: %s\n", comp.Origin)
	if len(comp.Contributors) > 0 {
		fmt.Printf("contributors: %s\n", strings.Join(comp.Contributors, ", "))
	}
	for _, annotation := range comp.Annotations {
		fmt.Printf("- %s\n", annotation)
	}
	return nil
}
