// Package cli implements zresume's command-line subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zarlcorp/zresume/internal/form"
	"github.com/zarlcorp/zresume/internal/sample"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// LogEnv names the environment variable holding the log file path.
const LogEnv = "ZRESUME_LOG"

// LogPath returns the log file path, or "" when logging is off.
func LogPath() string {
	return strings.TrimSpace(os.Getenv(LogEnv))
}

// SetupLogging points the default slog logger at path. The terminal belongs
// to the TUI, so an empty path discards all records.
// The returned func closes the log file.
func SetupLogging(path string) (func() error, error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f.Close, nil
}

// Interactive reports whether stdout is a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// CmdSample prints the details of a randomly filled resume.
func CmdSample(args []string) {
	if err := RunSample(os.Stdout, args); err != nil {
		fmt.Fprintf(os.Stderr, "zresume: %v\n", err)
		os.Exit(1)
	}
}

// RunSample writes the details of a randomly filled resume to w as text,
// or as JSON or YAML when --json or --yaml is given.
func RunSample(w io.Writer, args []string) error {
	s, err := sample.New().Session()
	if err != nil {
		return err
	}

	d, ok := s.Details()
	if !ok {
		return fmt.Errorf("sample: details not revealed")
	}

	switch {
	case hasFlag(args, "--json"):
		return writeJSON(w, d)
	case hasFlag(args, "--yaml"):
		return writeYAML(w, d)
	}
	writeDetails(w, d)
	return nil
}

func writeDetails(w io.Writer, d form.Details) {
	fmt.Fprintf(w, "  name:       %s\n", d.Contact.Name)
	fmt.Fprintf(w, "  email:      %s\n", d.Contact.Email)
	fmt.Fprintf(w, "  address:    %s\n", d.Contact.Address)
	fmt.Fprintf(w, "  phone:      %s\n", d.Contact.Phone)

	fmt.Fprintln(w, "  education:")
	for _, e := range d.Education {
		fmt.Fprintf(w, "    - %s, %s (%s)\n", e.Designation, e.Institute, e.Year)
	}

	fmt.Fprintln(w, "  experience:")
	for _, e := range d.Experience {
		fmt.Fprintf(w, "    - %s at %s (%s)\n", e.Designation, e.Company, e.Year)
	}

	fmt.Fprintf(w, "  skills:     %s\n", strings.Join(d.Skills, ", "))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if strings.EqualFold(a, flag) {
			return true
		}
	}
	return false
}
