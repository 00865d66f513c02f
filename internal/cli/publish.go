package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sitenav/internal/domain"
	models "sitenav/internal/domain/models/navigation"
	"sitenav/internal/repository/postgres"
	navsvc "sitenav/internal/service/navigation"
)

func newPublishCmd(root *rootOptions) *cobra.Command {
	var (
		databaseURL string
		tablePrefix string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Validate a content tree and replace the stored navigation with it",
		Long: `Load and validate dir, then replace every row of the navigation item table
in one transaction. Hierarchies with errors or cycles are refused.`,
		Example: `  DATABASE_URL=postgres://localhost/site navlint publish ./content`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := root.newContentService(cmd, contentDir(args), navsvc.Options{})
			if err != nil {
				return err
			}

			report, err := svc.Validate(ctx)
			if err != nil {
				return err
			}
			if err := publishable(report); err != nil {
				printReport(cmd.ErrOrStderr(), report)
				return err
			}

			items, err := svc.Items(ctx)
			if err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "dry run: %d items would be published\n", len(items))
				return nil
			}
			if databaseURL == "" {
				return &domain.ValidationError{Message: "--database-url or DATABASE_URL is required"}
			}

			logger := root.logger(cmd)
			pool, err := postgres.CreateConnectionPool(ctx, databaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			repoConfig := &postgres.RepositoryConfig{
				Pool:   pool,
				Tables: postgres.NewTableNames(tablePrefix),
				Logger: logger,
			}
			repo := postgres.NewNavigationItemRepository(repoConfig, postgres.NewTransactionManager(pool, logger))
			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := repo.ReplaceAll(ctx, items); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "published %d items to %s\n", len(items), repoConfig.Tables.NavigationItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "postgres connection string")
	cmd.Flags().StringVar(&tablePrefix, "table-prefix", os.Getenv("TABLE_PREFIX"), "prefix for the navigation item table")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate only, do not write")

	return cmd
}

// publishable refuses reports with errors, cycles, or items the builder
// would drop as malformed
func publishable(report models.Report) error {
	if !report.OK(false) {
		return fmt.Errorf("refusing to publish: %w", domain.ErrInvalidHierarchy)
	}
	if report.ValidCount != report.ItemCount {
		return fmt.Errorf("refusing to publish: %d of %d items are malformed: %w",
			report.ItemCount-report.ValidCount, report.ItemCount, domain.ErrInvalidHierarchy)
	}
	return nil
}
