package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jmorelli/restock/pkg/application/services/orchestration"
	"github.com/jmorelli/restock/pkg/domain/repositories"
	csvrepo "github.com/jmorelli/restock/pkg/infrastructure/repositories/csv"
	"github.com/jmorelli/restock/pkg/infrastructure/repositories/memory"
	sqliterepo "github.com/jmorelli/restock/pkg/infrastructure/repositories/sqlite"
	"github.com/jmorelli/restock/pkg/interfaces/cli/output"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp() *cli.App {
	return &cli.App{
		Name:    "restock",
		Usage:   "Demand, coverage, and order computation for warehouse capture sessions",
		Version: Version,
		Commands: []*cli.Command{
			reportCmd(),
			sectionCmd("demand", "Print the consolidated demand list", output.SectionDemand),
			sectionCmd("stats", "Print session extraction statistics", output.SectionStats),
			sectionCmd("coverage", "Print inventory station coverage", output.SectionCoverage),
			sectionCmd("order", "Print the recommended purchase order", output.SectionOrder),
			importCmd(),
		},
	}
}

// dataFlags are shared by every command that reads session data.
func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "db", Usage: "Path to SQLite database"},
		&cli.StringFlag{Name: "groups", Usage: "Path to capture groups CSV"},
		&cli.StringFlag{Name: "items", Usage: "Path to line items CSV"},
		&cli.StringFlag{Name: "stations", Usage: "Path to stations CSV"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "Output format: text|json"},
	}
}

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Run the full session report: demand, stats, coverage, and order",
		Flags: dataFlags(),
		Action: func(c *cli.Context) error {
			return runPlan(c, nil)
		},
	}
}

func sectionCmd(name, usage string, section output.Section) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: dataFlags(),
		Action: func(c *cli.Context) error {
			return runPlan(c, []output.Section{section})
		},
	}
}

func importCmd() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import CSV scenario files into a SQLite database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Required: true, Usage: "Path to SQLite database"},
			&cli.StringFlag{Name: "groups", Usage: "Path to capture groups CSV"},
			&cli.StringFlag{Name: "items", Usage: "Path to line items CSV"},
			&cli.StringFlag{Name: "stations", Usage: "Path to stations CSV"},
		},
		Action: runImport,
	}
}

// runPlan loads session data, runs the planning functions, and renders
// the requested sections.
func runPlan(c *cli.Context, sections []output.Section) error {
	groupRepo, stationRepo, cleanup, err := buildRepos(c)
	if err != nil {
		return err
	}
	defer cleanup()

	orchestrator := orchestration.NewSessionOrchestrator(groupRepo, stationRepo)
	plan, err := orchestrator.PlanSession(c.Context)
	if err != nil {
		return err
	}

	return output.Generate(os.Stdout, plan, output.Config{
		Format:   c.String("format"),
		Sections: sections,
	})
}

// buildRepos wires repositories from either a SQLite database or CSV
// scenario files.
func buildRepos(c *cli.Context) (repositories.GroupRepository, repositories.StationRepository, func(), error) {
	if dbPath := c.String("db"); dbPath != "" {
		db, err := sqliterepo.Init(dbPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return sqliterepo.NewGroupRepository(db), sqliterepo.NewStationRepository(db), func() { db.Close() }, nil
	}

	groupsFile := c.String("groups")
	itemsFile := c.String("items")
	stationsFile := c.String("stations")
	if groupsFile == "" || itemsFile == "" || stationsFile == "" {
		return nil, nil, nil, fmt.Errorf("either --db or all of --groups, --items, --stations must be provided")
	}

	loader := csvrepo.NewLoader()
	groups, err := loader.LoadGroups(groupsFile, itemsFile)
	if err != nil {
		return nil, nil, nil, err
	}
	stations, err := loader.LoadStations(stationsFile)
	if err != nil {
		return nil, nil, nil, err
	}

	groupRepo := memory.NewGroupRepository()
	if err := groupRepo.LoadGroups(groups); err != nil {
		return nil, nil, nil, err
	}
	stationRepo := memory.NewStationRepository()
	if err := stationRepo.LoadStations(stations); err != nil {
		return nil, nil, nil, err
	}
	return groupRepo, stationRepo, func() {}, nil
}

func runImport(c *cli.Context) error {
	groupsFile := c.String("groups")
	itemsFile := c.String("items")
	stationsFile := c.String("stations")
	if (groupsFile == "") != (itemsFile == "") {
		return fmt.Errorf("--groups and --items must be provided together")
	}
	if groupsFile == "" && stationsFile == "" {
		return fmt.Errorf("nothing to import: provide --groups/--items and/or --stations")
	}

	db, err := sqliterepo.Init(c.String("db"))
	if err != nil {
		return err
	}
	defer db.Close()

	loader := csvrepo.NewLoader()
	ctx := c.Context

	if groupsFile != "" {
		groups, err := loader.LoadGroups(groupsFile, itemsFile)
		if err != nil {
			return err
		}
		repo := sqliterepo.NewGroupRepository(db)
		for _, group := range groups {
			if _, err := repo.SaveGroup(ctx, group); err != nil {
				return err
			}
		}
		fmt.Printf("Imported %d capture groups\n", len(groups))
	}

	if stationsFile != "" {
		stations, err := loader.LoadStations(stationsFile)
		if err != nil {
			return err
		}
		repo := sqliterepo.NewStationRepository(db)
		for _, station := range stations {
			if _, err := repo.SaveStation(ctx, station); err != nil {
				return err
			}
		}
		fmt.Printf("Imported %d stations\n", len(stations))
	}

	return nil
}
