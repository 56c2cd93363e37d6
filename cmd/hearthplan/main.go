package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/avandermeer/hearthplan/internal/cli"
	"github.com/avandermeer/hearthplan/internal/config"
	"github.com/avandermeer/hearthplan/internal/db"
	"github.com/avandermeer/hearthplan/internal/domain"
	"github.com/avandermeer/hearthplan/internal/intent"
	"github.com/avandermeer/hearthplan/internal/planner"
	"github.com/avandermeer/hearthplan/internal/repository"
	"github.com/avandermeer/hearthplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	// DB path: env var or default ~/.hearthplan/hearthplan.db
	dbPath := os.Getenv("HEARTHPLAN_DB")
	if dbPath == "" {
		dbPath = filepath.Join(home, ".hearthplan", "hearthplan.db")
	}

	configPath := os.Getenv("HEARTHPLAN_CONFIG")
	if configPath == "" {
		configPath = filepath.Join(home, ".hearthplan", "config.yaml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	childRepo := repository.NewSQLiteChildRepo(database)
	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	adjustmentRepo := repository.NewSQLiteAdjustmentRepo(database)
	dayTypeRepo := repository.NewSQLiteDayTypeRepo(database)
	ladderRepo := repository.NewSQLiteLadderRepo(database)
	workbookRepo := repository.NewSQLiteWorkbookRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	newID := planner.NewUUIDGen()

	// The adjustment parser picks up any extra aliases from config.
	parser := intent.NewParser()
	for alias, day := range cfg.DayAliases {
		parser.AddDayAlias(alias, domain.Weekday(day))
	}
	for alias, subject := range cfg.SubjectAliases {
		parser.AddSubjectAlias(alias, domain.SubjectBucket(subject))
	}

	planSvc := service.NewPlanService(
		snapshotRepo, assignmentRepo, planRepo, adjustmentRepo, dayTypeRepo,
		service.PlanDefaults{
			HoursPerDay: cfg.HoursPerDay,
			AppBlocks:   cfg.DomainAppBlocks(),
			DayTypes:    cfg.DomainDayTypes(),
		},
		newID,
	)

	app := &cli.App{
		Family:      service.NewFamilyService(childRepo, snapshotRepo, newID, nil),
		Assignments: service.NewAssignmentService(assignmentRepo, snapshotRepo, newID),
		Plans:       planSvc,
		Adjust:      service.NewAdjustService(parser, adjustmentRepo, planSvc, newID),
		Ladders:     service.NewLadderService(uow, ladderRepo, newID, nil),
		Pace:        service.NewPaceService(workbookRepo, newID, nil),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
