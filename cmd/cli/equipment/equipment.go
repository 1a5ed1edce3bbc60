package equipment

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/EduardoVisconti/AssetOps/cmd/cli/client"
	"github.com/EduardoVisconti/AssetOps/cmd/cli/config"
	"github.com/EduardoVisconti/AssetOps/cmd/cli/output"
	"github.com/EduardoVisconti/AssetOps/cmd/cli/root"
	"github.com/EduardoVisconti/AssetOps/internal/listing"
	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	equipmentCmd := &cobra.Command{
		Use:   "equipment",
		Short: "Manage equipment records",
	}

	equipmentCmd.AddCommand(
		listCmd(),
		getCmd(),
		createCmd(),
		updateCmd(),
		archiveCmd(),
		restoreCmd(),
		maintenanceCmd(),
		eventsCmd(),
	)

	root.GetRoot().AddCommand(equipmentCmd)
}

// ==========================
// LIST
// ==========================
func listCmd() *cobra.Command {
	var viewKey, sortMode, status, search string
	var includeArchived, asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List equipment",
		Long: `List equipment records. With --view, the named preset drives sorting
and filtering and is remembered as the default for the next run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fall back to the last-used view when no explicit
			// configuration is given.
			if viewKey == "" && sortMode == "" && status == "" && search == "" && !includeArchived {
				viewKey = config.LastView()
			}

			var items []models.Equipment

			if viewKey != "" {
				view, ok := listing.ViewByKey(viewKey)
				if !ok {
					return fmt.Errorf("unknown view %q", viewKey)
				}
				// Fetch unfiltered so the view's own archive handling
				// applies, then run the filters locally.
				q := url.Values{}
				q.Set("include_archived", "true")
				q.Set("sort", view.Sort)
				if err := client.Get("/v1/equipments?"+q.Encode(), &items); err != nil {
					return err
				}
				items = listing.ApplyView(items, view)
				if err := config.SaveLastView(viewKey); err != nil {
					return err
				}
			} else {
				q := url.Values{}
				if includeArchived {
					q.Set("include_archived", "true")
				}
				if sortMode != "" {
					q.Set("sort", sortMode)
				}
				if status != "" {
					q.Set("status", status)
				}
				if search != "" {
					q.Set("q", search)
				}
				if err := client.Get("/v1/equipments?"+q.Encode(), &items); err != nil {
					return err
				}
			}

			if limit > 0 && len(items) > limit {
				items = items[:limit]
			}

			if asJSON {
				client.PrintJSON(items)
				return nil
			}
			output.RenderTable(output.EquipmentHeaders, output.EquipmentRows(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&viewKey, "view", "", "Saved view key (operational, maintenance_focus, archived)")
	cmd.Flags().StringVar(&sortMode, "sort", "", "Sort mode (name_asc, status_ops, next_service_asc, updated_desc, created_desc)")
	cmd.Flags().StringVar(&status, "status", "", "Status filter (active, inactive, maintenance)")
	cmd.Flags().StringVar(&search, "search", "", "Name filter (case-insensitive substring)")
	cmd.Flags().BoolVar(&includeArchived, "include-archived", false, "Include archived records")
	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the number of rows shown")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON instead of a table")
	return cmd
}

// ==========================
// GET
// ==========================
func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show one equipment record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var e models.Equipment
			if err := client.Get("/v1/equipments/"+url.PathEscape(args[0]), &e); err != nil {
				return err
			}
			client.PrintJSON(e)
			return nil
		},
	}
}

// ==========================
// CREATE / UPDATE
// ==========================

func equipmentFlags(cmd *cobra.Command, in *models.EquipmentInput) {
	cmd.Flags().StringVar(&in.Name, "name", "", "Asset name")
	cmd.Flags().StringVar(&in.SerialNumber, "serial", "", "Serial number")
	cmd.Flags().StringVar(&in.Status, "status", "active", "Status (active, inactive, maintenance)")
	cmd.Flags().StringVar(&in.PurchaseDate, "purchase-date", "", "Purchase date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&in.LastServiceDate, "last-service", "", "Last service date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&in.NextServiceDate, "next-service", "", "Next service date (yyyy-MM-dd, derived when omitted)")
	cmd.Flags().IntVar(&in.ServiceIntervalDays, "interval", 0, "Service interval in days (default 180)")
	cmd.Flags().StringVar(&in.Owner, "owner", "", "Owning team")
	cmd.Flags().StringVar(&in.Location, "location", "", "Site or location")
}

func createCmd() *cobra.Command {
	var in models.EquipmentInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an equipment record",
		RunE: func(cmd *cobra.Command, args []string) error {
			var e models.Equipment
			if err := client.Do(http.MethodPost, "/v1/equipments", in, &e); err != nil {
				return err
			}
			client.PrintJSON(e)
			return nil
		},
	}
	equipmentFlags(cmd, &in)
	return cmd
}

func updateCmd() *cobra.Command {
	var in models.EquipmentInput

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update an equipment record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var e models.Equipment
			if err := client.Do(http.MethodPut, "/v1/equipments/"+url.PathEscape(args[0]), in, &e); err != nil {
				return err
			}
			client.PrintJSON(e)
			return nil
		},
	}
	equipmentFlags(cmd, &in)
	return cmd
}

// ==========================
// ARCHIVE / RESTORE
// ==========================
func archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive [id]",
		Short: "Archive an equipment record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var e models.Equipment
			if err := client.Do(http.MethodPost, "/v1/equipments/"+url.PathEscape(args[0])+"/archive", nil, &e); err != nil {
				return err
			}
			fmt.Println("Equipment archived:", e.Name)
			return nil
		},
	}
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [id]",
		Short: "Restore an archived equipment record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var e models.Equipment
			if err := client.Do(http.MethodPost, "/v1/equipments/"+url.PathEscape(args[0])+"/unarchive", nil, &e); err != nil {
				return err
			}
			fmt.Println("Equipment restored:", e.Name)
			return nil
		},
	}
}

// ==========================
// MAINTENANCE
// ==========================
func maintenanceCmd() *cobra.Command {
	maint := &cobra.Command{
		Use:   "maintenance",
		Short: "Record and inspect maintenance",
	}

	var in models.MaintenanceInput
	add := &cobra.Command{
		Use:   "add [equipment-id]",
		Short: "Record a maintenance entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rec models.MaintenanceRecord
			if err := client.Do(http.MethodPost, "/v1/equipments/"+url.PathEscape(args[0])+"/maintenance", in, &rec); err != nil {
				return err
			}
			client.PrintJSON(rec)
			return nil
		},
	}
	add.Flags().StringVar(&in.Date, "date", "", "Service date (yyyy-MM-dd)")
	add.Flags().StringVar(&in.Type, "type", "preventive", "Maintenance type (preventive, corrective)")
	add.Flags().StringVar(&in.Notes, "notes", "", "Free-form notes")

	list := &cobra.Command{
		Use:   "list [equipment-id]",
		Short: "Show maintenance history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []models.MaintenanceRecord
			if err := client.Get("/v1/equipments/"+url.PathEscape(args[0])+"/maintenance", &records); err != nil {
				return err
			}
			rows := make([][]interface{}, 0, len(records))
			for _, m := range records {
				rows = append(rows, []interface{}{m.ID, m.Date, m.Type, m.Notes})
			}
			output.RenderTable([]string{"ID", "DATE", "TYPE", "NOTES"}, rows)
			return nil
		},
	}

	maint.AddCommand(add, list)
	return maint
}

// ==========================
// EVENTS
// ==========================
func eventsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "events [equipment-id]",
		Short: "Show the audit trail, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var events []models.EquipmentEvent
			path := "/v1/equipments/" + url.PathEscape(args[0]) + "/events?limit=" + strconv.Itoa(limit)
			if err := client.Get(path, &events); err != nil {
				return err
			}
			rows := make([][]interface{}, 0, len(events))
			for _, ev := range events {
				rows = append(rows, []interface{}{
					ev.CreatedAt.Format("2006-01-02 15:04"), ev.Type, ev.ActorUID, ev.Message,
				})
			}
			output.RenderTable([]string{"WHEN", "TYPE", "ACTOR", "MESSAGE"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "Number of events to fetch")
	return cmd
}
