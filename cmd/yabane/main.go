package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/yabane/internal/cli"
	"github.com/alexanderramin/yabane/internal/config"
	"github.com/alexanderramin/yabane/internal/db"
	"github.com/alexanderramin/yabane/internal/repository"
	"github.com/alexanderramin/yabane/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// --verbose is read before cobra parses so the observer can be wired
	// into the service constructors.
	verbose := false
	for _, arg := range os.Args[1:] {
		if arg == "--verbose" || arg == "-v" {
			verbose = true
		}
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var logW io.Writer
	if verbose {
		logW = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logW)

	projectRepo := repository.NewSQLiteProjectRepo(database)
	arrowRepo := repository.NewSQLiteArrowRepo(database)
	wbsRepo := repository.NewSQLiteWbsItemRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	memberRepo := repository.NewSQLiteMemberRepo(database)
	issueRepo := repository.NewSQLiteIssueRepo(database)
	purposeRepo := repository.NewSQLitePurposeRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Projects:   service.NewProjectService(projectRepo),
		Arrows:     service.NewArrowService(arrowRepo, uow, observer),
		Wbs:        service.NewWbsService(wbsRepo, uow),
		Milestones: service.NewMilestoneService(milestoneRepo, uow),
		Members:    service.NewMemberService(memberRepo, uow, observer),
		Issues:     service.NewIssueService(issueRepo),
		Purposes:   service.NewPurposeService(purposeRepo),
		Export: service.NewExportService(
			arrowRepo, wbsRepo, milestoneRepo, memberRepo, issueRepo, purposeRepo, observer),
		Config: cfg,
	}

	rootCmd := cli.NewRootCmd(app)
	registerVerboseFlag(rootCmd.PersistentFlags(), verbose)
	return rootCmd.Execute()
}

// registerVerboseFlag declares --verbose so cobra accepts the flag that was
// already consumed above.
func registerVerboseFlag(flags *pflag.FlagSet, value bool) {
	flags.BoolP("verbose", "v", value, "Log service use cases to stderr")
}
