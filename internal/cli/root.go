// Package cli implements the navlint commands for checking and publishing a
// markdown content tree's navigation.
package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"sitenav/internal/config"
	"sitenav/internal/content"
	navsvc "sitenav/internal/service/navigation"
)

// ErrCheckFailed is returned when a report contains blocking problems.
// The report itself has already been printed.
var ErrCheckFailed = errors.New("navigation check failed")

type rootOptions struct {
	verbose bool
}

// NewRootCmd creates the navlint command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "navlint",
		Short:         "Check, inspect and publish site navigation built from a content tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log loader activity to stderr")

	rootCmd.AddCommand(
		newCheckCmd(opts),
		newTreeCmd(opts),
		newPathsCmd(opts),
		newPublishCmd(opts),
	)

	return rootCmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !o.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return config.NewLogger("dev", cmd.ErrOrStderr())
}

// contentDir returns the first positional argument or the current directory
func contentDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// newContentService loads dir into a service snapshot
func (o *rootOptions) newContentService(cmd *cobra.Command, dir string, svcOpts navsvc.Options) (*navsvc.Service, error) {
	logger := o.logger(cmd)
	svc := navsvc.NewService(content.NewLoader(dir, logger), svcOpts, logger)
	if _, err := svc.Reload(cmd.Context()); err != nil {
		return nil, err
	}
	return svc, nil
}
