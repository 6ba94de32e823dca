package inventory

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/seenimoa/supplywatch/pkg/models"
)

// RenderReport writes a human-readable inventory report.
func RenderReport(w io.Writer, report *models.InventoryReport) {
	section(w, "Current Stock Levels")
	stockRows := make([][]string, 0, len(report.Stock))
	for _, s := range report.Stock {
		stockRows = append(stockRows, []string{
			s.ProductID, s.Name, s.Category,
			fmt.Sprintf("%d", s.CurrentStock),
			fmt.Sprintf("%d", s.MinStock),
			fmt.Sprintf("%d", s.MaxStock),
		})
	}
	renderTable(w, []string{"Product", "Name", "Category", "Stock", "Min", "Max"}, stockRows)

	section(w, "Products Needing Reorder")
	if len(report.Reorders) == 0 {
		color.New(color.FgGreen).Fprintf(w, "✓ all products at or above minimum stock\n")
	} else {
		reorderRows := make([][]string, 0, len(report.Reorders))
		for _, r := range report.Reorders {
			reorderRows = append(reorderRows, []string{
				r.ProductID, r.Name,
				fmt.Sprintf("%d", r.CurrentStock),
				fmt.Sprintf("%d", r.MinStock),
				fmt.Sprintf("%d", r.ReorderQuantity),
			})
		}
		renderTable(w, []string{"Product", "Name", "Stock", "Min", "Reorder Qty"}, reorderRows)
	}

	section(w, "Inventory Turnover Analysis")
	turnoverRows := make([][]string, 0, len(report.Turnover))
	for _, t := range report.Turnover {
		turnoverRows = append(turnoverRows, []string{
			t.ProductID, t.Name,
			fmt.Sprintf("%d", t.SalesQuantity),
			fmt.Sprintf("%.2f", t.AverageInventory),
			fmt.Sprintf("%.2f", t.TurnoverRatio),
		})
	}
	renderTable(w, []string{"Product", "Name", "Sales Qty", "Avg Inventory", "Turnover"}, turnoverRows)

	section(w, "Inventory Value Analysis")
	valueRows := make([][]string, 0, len(report.Values))
	for _, v := range report.Values {
		valueRows = append(valueRows, []string{
			v.ProductID,
			fmt.Sprintf("%d", v.Quantity),
			fmt.Sprintf("%.2f", v.AvgUnitPrice),
			fmt.Sprintf("%.2f", v.TotalValue),
		})
	}
	renderTable(w, []string{"Product", "Quantity", "Avg Unit Price", "Total Value"}, valueRows)
}

func section(w io.Writer, title string) {
	color.New(color.FgWhite, color.Bold).Fprintf(w, "\n%s\n", title)
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
	table.Header(headers)
	table.Bulk(rows)
	table.Render()
}
