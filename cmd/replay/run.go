package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sketchcoach/sketchcoach/internal/config"
	"github.com/sketchcoach/sketchcoach/internal/replay"
)

var (
	jsonOutput bool
	showEvents bool
)

var runCmd = &cobra.Command{
	Use:   "run [script...]",
	Short: "Replay one or more scripts",
	Long:  "Replay each script against a fresh engine. Use - to read a script from stdin.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScripts,
}

func init() {
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	runCmd.Flags().BoolVar(&showEvents, "events", false, "list the events each script produced")
	rootCmd.AddCommand(runCmd)
}

func runScripts(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range args {
		res, err := runScript(cmd.Context(), cfg, path, cmd.InOrStdin())
		if err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		}
		if res == nil {
			continue
		}
		if err := report(out, path, res); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(args))
	}
	return nil
}

func runScript(ctx context.Context, cfg *config.Config, path string, stdin io.Reader) (*replay.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	script, err := replay.Load(in)
	if err != nil {
		return nil, err
	}

	runner, err := replay.NewRunner(cfg.Engine())
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	res, err := runner.Run(ctx, script)
	return &res, err
}

func report(w io.Writer, path string, res *replay.Result) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Script string `json:"script"`
			*replay.Result
		}{path, res})
	}

	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  Stage:    %s (%s)\n", res.Stage, res.Stage.Status())
	fmt.Fprintf(w, "  Steps:    %d\n", res.Steps)
	fmt.Fprintf(w, "  Progress: %d/%d\n", res.Progress.Completed(), len(res.Progress))
	if len(res.Rejected) > 0 {
		fmt.Fprintf(w, "  Rejected: %q\n", res.Rejected)
	}
	if showEvents {
		fmt.Fprintln(w, "  Events:")
		for _, ev := range res.Events {
			fmt.Fprintf(w, "    %-16s %s\n", ev.Type, ev.Stage)
		}
	}
	return nil
}
