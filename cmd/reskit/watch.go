package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reskit/reskit/internal/cli/config"
	"github.com/reskit/reskit/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate on resource changes",
	Long:  "Run an initial generation, then watch the resource directories and regenerate whenever they change",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		// Initial pass. A failing pass is not fatal here: the watcher keeps
		// running so the next save can fix the input.
		if err := runGenerate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}

		w, err := watch.New(cfg.Resources, cfg.Ignore, newLogger(), func(files []string) error {
			fmt.Printf("Changes in %d file(s), regenerating...\n", len(files))
			return runGenerate()
		})
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		fmt.Printf("Watching %v for resource changes (Ctrl+C to stop)\n", cfg.Resources)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		fmt.Println("\nStopping watcher")
		return nil
	},
}
