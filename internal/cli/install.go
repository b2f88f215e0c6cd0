package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"skillsync/internal/app"
	"skillsync/internal/shared"
	"skillsync/internal/types"
)

type installOptions struct {
	Source  string
	Host    string
	Catalog string
}

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install all catalog packages into the host's skills directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), cmd, opts)
		},
	}
	addRunFlags(cmd, &opts.Source, &opts.Host, &opts.Catalog)
	return cmd
}

func addRunFlags(cmd *cobra.Command, source *string, host *string, catalog *string) {
	cmd.Flags().StringVar(source, "source", ".", "Source collection root")
	cmd.Flags().StringVar(host, "host", defaultHostName, "Host application name")
	cmd.Flags().StringVar(catalog, "catalog", "", "Catalog file path (built-in catalog when empty)")
	_ = viper.BindPFlag("source", cmd.Flags().Lookup("source"))
	_ = viper.BindPFlag("host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("catalog", cmd.Flags().Lookup("catalog"))
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts installOptions) error {
	service := newAppService()
	result, err := service.Install(ctx, app.InstallRequest{
		SourceRoot:  resolveString(cmd, opts.Source, "source", "source"),
		HostName:    resolveHost(cmd, opts.Host),
		CatalogPath: resolveString(cmd, opts.Catalog, "catalog", "catalog"),
	})
	if err != nil {
		return err
	}
	printInstallSummary(result)
	if failed := result.Report.FailedCount(); failed > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("completed with failures: %d of %d packages", failed, len(result.Report.Attempted)))
	}
	return nil
}

func printInstallSummary(result app.InstallResult) {
	fmt.Printf("installed %d package(s), %d failed\n",
		result.Report.SucceededCount(), result.Report.FailedCount())
	for _, outcome := range result.Report.Attempted {
		if outcome.Status == types.InstallStatusInstalled {
			continue
		}
		fmt.Printf("  %s: %s (%s)\n", outcome.Package, outcome.Status, outcome.Detail)
	}
	for _, entry := range result.LegacyRemoved {
		fmt.Printf("removed legacy artifact: %s\n", entry)
	}
	fmt.Printf("packages directory: %s\n", result.PackagesDir)
}

// resolveHost falls back to the built-in host name so the viper default
// applies even when neither flag nor config provides one.
func resolveHost(cmd *cobra.Command, value string) string {
	return shared.OrDefault(resolveString(cmd, value, "host", "host"), defaultHostName)
}

func newAppService() app.Service {
	return app.NewService()
}
