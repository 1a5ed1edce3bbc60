package views

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EduardoVisconti/AssetOps/cmd/cli/config"
	"github.com/EduardoVisconti/AssetOps/cmd/cli/output"
	"github.com/EduardoVisconti/AssetOps/cmd/cli/root"
	"github.com/EduardoVisconti/AssetOps/internal/listing"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	viewsCmd := &cobra.Command{
		Use:   "views",
		Short: "Saved list views",
	}

	viewsCmd.AddCommand(listViewsCmd(), useViewCmd())
	root.GetRoot().AddCommand(viewsCmd)
}

func listViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the built-in views",
		RunE: func(cmd *cobra.Command, args []string) error {
			last := config.LastView()
			rows := make([][]interface{}, 0, 3)
			for _, v := range listing.BuiltinViews() {
				current := ""
				if v.Key == last {
					current = "*"
				}
				rows = append(rows, []interface{}{v.Key, v.Label, v.Sort, v.Status, current})
			}
			output.RenderTable([]string{"KEY", "LABEL", "SORT", "STATUS", "CURRENT"}, rows)
			return nil
		},
	}
}

func useViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use [key]",
		Short: "Remember a view as the default for equipment list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := listing.ViewByKey(args[0]); !ok {
				return fmt.Errorf("unknown view %q", args[0])
			}
			if err := config.SaveLastView(args[0]); err != nil {
				return err
			}
			fmt.Println("Default view set to", args[0])
			return nil
		},
	}
}
