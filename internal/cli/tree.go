package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	models "sitenav/internal/domain/models/navigation"
	navsvc "sitenav/internal/service/navigation"
)

func newTreeCmd(root *rootOptions) *cobra.Command {
	var (
		currentPath string
		maxDepth    int
		role        string
	)

	cmd := &cobra.Command{
		Use:   "tree [dir]",
		Short: "Print the navigation tree of a content tree",
		Example: `  # Show the tree with the breadcrumb trail for one page
  navlint tree ./content --path /docs/install`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.newContentService(cmd, contentDir(args), navsvc.Options{
				MaxDepth:      maxDepth,
				HideInvisible: role != models.RoleAdmin,
			})
			if err != nil {
				return err
			}

			h, err := svc.Hierarchy(cmd.Context(), &models.Context{CurrentPath: currentPath, UserRole: role})
			if err != nil {
				return err
			}
			printHierarchy(cmd.OutOrStdout(), h)
			return nil
		},
	}

	cmd.Flags().StringVar(&currentPath, "path", "/", "current page path for breadcrumbs")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "limit tree depth (0 = unbounded)")
	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "viewer role; non-admin roles hide invisible items")

	return cmd
}

func printHierarchy(w io.Writer, h models.Hierarchy) {
	activeID := ""
	if h.ActiveItem != nil {
		activeID = h.ActiveItem.ID
	}

	var walk func(items []models.Item, depth int)
	walk = func(items []models.Item, depth int) {
		for _, item := range items {
			marker := " "
			if item.ID == activeID {
				marker = "*"
			}
			hidden := ""
			if !item.Visible {
				hidden = " (hidden)"
			}
			fmt.Fprintf(w, "%s%s %s  %s [%s]%s\n", strings.Repeat("  ", depth), marker, item.Title, item.Path, item.Type, hidden)
			walk(item.Children, depth+1)
		}
	}
	walk(h.Items, 0)

	if len(h.Breadcrumbs) > 0 {
		titles := make([]string, len(h.Breadcrumbs))
		for i, b := range h.Breadcrumbs {
			titles[i] = b.Title
		}
		fmt.Fprintf(w, "\nbreadcrumbs: %s\n", strings.Join(titles, " > "))
	}
	fmt.Fprintf(w, "%d items\n", h.TotalItems)
}
