// Command storyedit is a terminal editor for styled stories.
//
// The document is a sequence of runs, each carrying a font family and a
// color. Ctrl+S asks for the installation PIN and submits the story.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/stylerun"
	"github.com/iw2rmb/stylerun/internal/config"
	"github.com/iw2rmb/stylerun/internal/logging"
	"github.com/iw2rmb/stylerun/story"
)

func main() {
	if err := runMain(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func runMain(args []string) error {
	fs := flag.NewFlagSet("storyedit", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a TOML config file")
	logFile := fs.String("log-file", "", "append logs to this file (overrides [log] file)")
	seed := fs.Uint64("seed", 0, "seed for shuffle; 0 picks a random seed")
	showVersion := fs.Bool("version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Println(stylerun.UserAgent())
		return nil
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	logger, closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	client := story.NewClient(cfg.Submit.BaseURL,
		story.WithTimeout(cfg.Submit.Timeout),
		story.WithLogger(logger.With().Str("component", "story").Logger()),
	)

	logger.Info().
		Str("version", stylerun.Version()).
		Str("backend", client.BaseURL()).
		Msg("storyedit starting")

	p := tea.NewProgram(newApp(cfg, client, systemClipboard{}, rng, logger), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// setupLogger logs to the configured file. Without one, logs are discarded
// because the terminal belongs to the UI.
func setupLogger(lc config.Log) (zerolog.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}
	if lc.File != "" {
		f, err := logging.OpenFile(lc.File)
		if err != nil {
			return zerolog.Nop(), closeFn, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	opts := logging.DefaultOptions(logging.ProfileRuntime, out)
	opts.App = "storyedit"
	opts.NoColor = lc.NoColor
	if lvl, ok := logging.ParseLevel(lc.Level); ok {
		opts.Level = lvl
	}
	logging.ApplyEnv(&opts)
	return logging.Configure(opts), closeFn, nil
}
