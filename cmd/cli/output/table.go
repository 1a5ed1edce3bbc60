package output

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// RenderTable prints a pretty table to stdout.
func RenderTable(headers []string, rows [][]interface{}) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	headerRow := table.Row{}
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}

	t.Render()
}

// EquipmentHeaders are the columns for equipment tables.
var EquipmentHeaders = []string{"ID", "NAME", "SERIAL", "STATUS", "NEXT SERVICE", "ARCHIVED"}

// EquipmentRows converts equipment records to table rows.
func EquipmentRows(items []models.Equipment) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, e := range items {
		archived := ""
		if e.ArchivedAt != nil {
			archived = e.ArchivedAt.Format(time.DateOnly)
		}
		rows = append(rows, []interface{}{
			e.ID, e.Name, e.SerialNumber, e.Status, e.NextServiceDate, archived,
		})
	}
	return rows
}
