package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/database"
	"github.com/akyairhashvil/flipclock/internal/tui"
	"github.com/akyairhashvil/flipclock/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	if flags.version {
		fmt.Println(config.AppName, tui.VersionLabel())
		return nil
	}

	// 1. Load config file
	file, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	// 2. Initialize Database
	dbPath := flags.dbPath
	if dbPath == "" {
		dbPath = file.DBPath
	}
	if dbPath == "" {
		dbRoot := util.DataDir(config.AppName)
		if err := os.MkdirAll(dbRoot, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		dbPath = filepath.Join(dbRoot, config.DBFileName)
	}
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	util.LogError("seed presets", db.SeedPresets(ctx, file.Presets))

	// 3. Resolve options
	opts, err := resolve(ctx, db, flags, file)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlain(ctx, os.Stdout, db, opts)
	}
	return runTUI(ctx, db, opts)
}

func runTUI(ctx context.Context, db *database.Database, opts resolved) error {
	if strings.TrimSpace(os.Getenv(config.DebugLogEnv)) != "" {
		f, err := tea.LogToFile(filepath.Join(util.DataDir(config.AppName), config.DebugLogFile), config.AppName)
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := tui.NewModel(ctx, db, tui.Options{
		Display: opts.display,
		Theme:   opts.theme,
		Preset:  opts.preset,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
