package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	navsvc "sitenav/internal/service/navigation"
)

func newPathsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "paths [dir]",
		Short: "List every navigable path and the item that owns it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.newContentService(cmd, contentDir(args), navsvc.Options{})
			if err != nil {
				return err
			}
			paths, err := svc.Paths(cmd.Context())
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(paths))
			for path := range paths {
				keys = append(keys, path)
			}
			sort.Strings(keys)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "PATH\tID")
			for _, path := range keys {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", path, paths[path])
			}
			return w.Flush()
		},
	}
}
