package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"skillsync/internal/app"
)

type verifyOptions struct {
	Source  string
	Host    string
	Catalog string
}

func newVerifyCommand() *cobra.Command {
	opts := verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the installed packages against the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.Context(), cmd, opts)
		},
	}
	addRunFlags(cmd, &opts.Source, &opts.Host, &opts.Catalog)
	return cmd
}

func runVerify(ctx context.Context, cmd *cobra.Command, opts verifyOptions) error {
	service := newAppService()
	result, err := service.Verify(ctx, app.VerifyRequest{
		SourceRoot:  resolveString(cmd, opts.Source, "source", "source"),
		HostName:    resolveHost(cmd, opts.Host),
		CatalogPath: resolveString(cmd, opts.Catalog, "catalog", "catalog"),
	})
	if err != nil {
		return err
	}
	for _, name := range result.Missing {
		fmt.Printf("missing: %s\n", name)
	}
	for _, name := range result.Extra {
		fmt.Printf("extra: %s\n", name)
	}
	fmt.Printf("packages directory: %s\n", result.PackagesDir)
	if len(result.Missing) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("completed with failures: %d catalog package(s) not installed", len(result.Missing)))
	}
	fmt.Println("all catalog packages installed")
	return nil
}
