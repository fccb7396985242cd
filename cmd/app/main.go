package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/akyairhashvil/conciergerie/internal/config"
	"github.com/akyairhashvil/conciergerie/internal/database"
	"github.com/akyairhashvil/conciergerie/internal/notify"
	"github.com/akyairhashvil/conciergerie/internal/provider"
	"github.com/akyairhashvil/conciergerie/internal/tui"
	"github.com/akyairhashvil/conciergerie/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("conciergerie needs an interactive terminal")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the resolved settings from the root pre-run to each command.
type cli struct {
	v        *viper.Viper
	settings config.Settings
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.NewViper(util.DataDir(config.AppName))}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "A swipeable daily assistant for the terminal",
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runTUI(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String(config.KeyProvider, config.ProviderMemory, "data provider (memory or sqlite)")
	flags.String(config.KeyDB, "", "sqlite database path")
	flags.String(config.KeyData, "", "YAML data file")
	flags.String(config.KeyTheme, "", "color theme")
	flags.String(config.KeyTab, "", "tab to open on start")
	flags.String(config.KeyLogFile, "", "log file path")
	for _, k := range []string{config.KeyProvider, config.KeyDB, config.KeyData, config.KeyTheme, config.KeyTab, config.KeyLogFile} {
		f := flags.Lookup(k)
		if err := c.v.BindPFlag(k, f); err != nil {
			util.LogError("bind flag "+k, err)
		}
	}

	root.AddCommand(itemsCmd(c))
	root.AddCommand(seedCmd(c))
	root.AddCommand(reportCmd(c))
	root.AddCommand(exportCmd(c))
	return root
}

// load merges config.yaml and validates the result.
func (c *cli) load() error {
	if err := config.ReadConfigFile(c.v, util.ConfigDir(config.AppName)); err != nil {
		return err
	}
	s := config.FromViper(c.v)
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s
	return nil
}

// openProvider returns the configured provider. The database is non-nil
// only for the sqlite provider and must be closed by the caller.
func (c *cli) openProvider(ctx context.Context) (provider.Provider, *database.Database, error) {
	s := c.settings
	if s.Provider != config.ProviderSQLite {
		ds := provider.Sample()
		if s.DataFile != "" {
			var err error
			if ds, err = provider.LoadYAML(s.DataFile); err != nil {
				return nil, nil, err
			}
		}
		return provider.NewMemory(ds), nil, nil
	}

	db, err := c.openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	empty, err := db.IsEmpty(ctx)
	if err != nil {
		util.LogClose("close database", db)
		return nil, nil, err
	}
	if empty {
		ds, err := c.seedData()
		if err == nil {
			err = provider.Seed(ctx, db, ds)
		}
		if err != nil {
			util.LogClose("close database", db)
			return nil, nil, err
		}
	}
	return provider.NewSQL(db), db, nil
}

func (c *cli) openDB(ctx context.Context) (*database.Database, error) {
	if err := util.EnsureParent(c.settings.DBPath); err != nil {
		return nil, err
	}
	return database.Open(ctx, c.settings.DBPath)
}

// seedData is the configured data file, or the demo data.
func (c *cli) seedData() (provider.DataSet, error) {
	if c.settings.DataFile == "" {
		return provider.Sample(), nil
	}
	return provider.LoadYAML(c.settings.DataFile)
}

func (c *cli) runTUI(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}
	s := c.settings
	if err := util.EnsureParent(s.LogFile); err != nil {
		return err
	}
	logFile, err := tea.LogToFile(s.LogFile, config.AppName)
	if err != nil {
		return err
	}
	defer util.LogClose("close log", logFile)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	p, db, err := c.openProvider(ctx)
	if err != nil {
		return err
	}
	defer util.LogClose("close database", db)

	opts := tui.OptionsFromSettings(s, p)
	logSink := notify.LogSink{Logger: log.Default()}
	opts.Sink = logSink
	if db != nil {
		opts.Sink = notify.Multi{logSink, notify.NewJournal(db)}
		opts.Settings = db
	}
	opts.ThemeExplicit = cmd.Flags().Changed(config.KeyTheme)

	program := tea.NewProgram(tui.NewMainModel(ctx, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err = program.Run()
	return err
}
