package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zresume/internal/cli"
	"github.com/zarlcorp/zresume/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zresume"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(os.Args[1])
		_ = app.Close()
		return
	}

	closeLog, err := cli.SetupLogging(cli.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "zresume: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := runTUI(ctx); err != nil {
		slog.Error("tui", "err", err)
		fmt.Fprintf(os.Stderr, "zresume: %v\n", err)
		_ = closeLog()
		_ = app.Close()
		os.Exit(1)
	}

	_ = closeLog()
	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zresume %s\n", version)
	case "sample":
		cli.CmdSample(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "zresume: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context) error {
	if !cli.Interactive() {
		return fmt.Errorf("the form needs an interactive terminal")
	}

	p := tea.NewProgram(tui.New(version), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(tui.Model); ok {
		if d, revealed := fm.Session().Details(); revealed {
			slog.Info("session closed", "submitted", d.Submitted,
				"education", len(d.Education), "experience", len(d.Experience), "skills", len(d.Skills))
		}
	}
	return nil
}
