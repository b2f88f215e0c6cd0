package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skillsync/internal/app"
)

type planOptions struct {
	Source  string
	Host    string
	Catalog string
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what an install run would do without writing anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}
	addRunFlags(cmd, &opts.Source, &opts.Host, &opts.Catalog)
	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	result, err := service.Plan(ctx, app.PlanRequest{
		SourceRoot:  resolveString(cmd, opts.Source, "source", "source"),
		HostName:    resolveHost(cmd, opts.Host),
		CatalogPath: resolveString(cmd, opts.Catalog, "catalog", "catalog"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("would install %d package(s) into %s\n", len(result.Packages), result.PackagesDir)
	for _, source := range result.Packages {
		fmt.Printf("  %s (%s) <- %s\n", source.Name, source.Kind, source.Path)
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
