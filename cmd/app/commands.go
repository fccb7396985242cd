package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/conciergerie/internal/config"
	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/provider"
	"github.com/akyairhashvil/conciergerie/internal/report"
	"github.com/akyairhashvil/conciergerie/internal/util"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func itemsCmd(c *cli) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "items [screen]",
		Short: "List the items behind each screen",
		Long: `List the items the provider serves. Screens are home, today, suggestions
and connections; without one every screen is listed.
The filter accepts status:, type:, priority: and category: clauses plus free text,
for example "status:missed call".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			screens := provider.Screens
			if len(args) == 1 {
				screens = []string{args[0]}
			}
			p, db, err := c.openProvider(ctx)
			if err != nil {
				return err
			}
			defer util.LogClose("close database", db)

			query := util.ParseSearchQuery(filter)
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Screen", "ID", "Title", "Status", "Detail"})
			for _, screen := range screens {
				items, err := provider.Items(ctx, p, screen)
				if err != nil {
					return err
				}
				for _, it := range items {
					row, fields := describe(it)
					if !query.Matches(fields) {
						continue
					}
					tw.AppendRow(append(table.Row{screen}, row...))
				}
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "search query")
	return cmd
}

// describe projects an item onto its table row and its search fields.
func describe(it models.Item) (table.Row, util.SearchFields) {
	switch v := it.(type) {
	case models.Task:
		return table.Row{v.ID, v.Title, v.Status, joinDetail(string(v.Type), v.Time)},
			util.SearchFields{Title: v.Title, Status: string(v.Status), Type: string(v.Type), Priority: string(v.Priority)}
	case models.Suggestion:
		return table.Row{v.ID, v.Title, "", joinDetail(string(v.Type), v.TimeSlot)},
			util.SearchFields{Title: v.Title, Type: string(v.Type), Priority: string(v.Priority)}
	case models.TodayTask:
		return table.Row{v.ID, v.Title, v.Status, joinDetail(v.Time, v.Category)},
			util.SearchFields{Title: v.Title, Status: string(v.Status), Category: v.Category}
	case models.Connection:
		return table.Row{v.ID, v.Name, v.Status, v.LastSync},
			util.SearchFields{Title: v.Name, Status: string(v.Status)}
	}
	return table.Row{it.ItemID(), it.ItemTitle(), "", ""}, util.SearchFields{Title: it.ItemTitle()}
}

func joinDetail(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " · " + b
}

func seedCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the sqlite data with a data file or the demo data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			ds := provider.Sample()
			if file != "" {
				var err error
				if ds, err = provider.LoadYAML(file); err != nil {
					return err
				}
			}
			db, err := c.openDB(ctx)
			if err != nil {
				return err
			}
			defer util.LogClose("close database", db)
			if err := provider.Seed(ctx, db, ds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s: %d tasks, %d suggestions, %d today, %d connections\n",
				c.settings.DBPath, len(ds.Tasks), len(ds.Suggestions), len(ds.Today), len(ds.Connections))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML data file (defaults to the demo data)")
	return cmd
}

func reportCmd(c *cli) *cobra.Command {
	var (
		dir   string
		since time.Duration
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF of the recorded outcomes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			if _, err := os.Stat(c.settings.DBPath); err != nil {
				return fmt.Errorf("no journal at %s: %w", c.settings.DBPath, err)
			}
			db, err := c.openDB(ctx)
			if err != nil {
				return err
			}
			defer util.LogClose("close database", db)

			now := time.Now()
			var from time.Time
			if since > 0 {
				from = now.Add(-since)
			}
			records, err := db.GetOutcomes(ctx, from)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = util.ReportsDir(config.AppName)
			}
			path, err := report.WriteFile(dir, records, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (%d outcomes)\n", path, len(records))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "output directory")
	cmd.Flags().DurationVar(&since, "since", 0, "only include outcomes this recent (0 for all)")
	return cmd
}

func exportCmd(c *cli) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current data as a YAML data file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)
			p, db, err := c.openProvider(ctx)
			if err != nil {
				return err
			}
			defer util.LogClose("close database", db)
			if dir == "" {
				dir = filepath.Join(util.ReportsDir(config.AppName), "exports")
			}
			path, err := provider.Export(ctx, p, dir, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "output directory")
	return cmd
}
