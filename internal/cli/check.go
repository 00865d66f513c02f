package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	models "sitenav/internal/domain/models/navigation"
	navsvc "sitenav/internal/service/navigation"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var (
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Validate the navigation of a content tree",
		Long: `Load every markdown file under dir, then report duplicate ids and paths,
content items used as parents, parent cycles and missing parents.
Exits non-zero when errors or cycles are found.`,
		Example: `  # Check the content directory
  navlint check ./content

  # Treat missing parents as failures too
  navlint check ./content --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.newContentService(cmd, contentDir(args), navsvc.Options{})
			if err != nil {
				return err
			}
			report, err := svc.Validate(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), report)
			}

			if !report.OK(strict) {
				return ErrCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on warnings as well as errors")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func printReport(w io.Writer, report models.Report) {
	for _, e := range report.Errors {
		fmt.Fprintf(w, "error   %-22s %s\n", e.Type, e.Message)
	}
	for _, e := range report.Cycles {
		fmt.Fprintf(w, "error   %-22s %s\n", e.Type, e.Message)
	}
	for _, e := range report.Warnings {
		fmt.Fprintf(w, "warning %-22s %s\n", e.Type, e.Message)
	}
	fmt.Fprintf(w, "%d items, %d well-formed, %d errors, %d cycles, %d warnings\n",
		report.ItemCount, report.ValidCount, len(report.Errors), len(report.Cycles), len(report.Warnings))
}
