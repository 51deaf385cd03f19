package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/keelpoint/sitemotion/audio"
	"github.com/keelpoint/sitemotion/clock"
	"github.com/keelpoint/sitemotion/showcase"
)

var errNotTerminal = errors.New("run needs an interactive terminal on stdout")

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Present the page in the terminal",
	Long:  `Opens the page full screen. Scroll with the wheel or arrow keys, move the mouse over the hero card to tilt it, q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errNotTerminal
		}

		env, err := loadEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		opts := []showcase.Option{showcase.WithLogger(env.log)}

		noAudio, _ := cmd.Flags().GetBool("no-audio")
		if env.cfg.Showcase.Audio && !noAudio {
			cues := audio.NewCuePlayer()
			if err := cues.Initialize(); err != nil {
				// Non-fatal, the page runs without sound
				env.log.Warn("audio initialization failed", "error", err)
			} else {
				defer cues.Cleanup()
				opts = append(opts, showcase.WithCues(cues))
			}
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}

		presenter := showcase.NewPresenter(env.cfg, env.site, clock.NewRealTimeProvider(), opts...)
		host := showcase.NewHost(screen, presenter, env.cfg.Showcase.FrameInterval, env.cfg.Showcase.ScrollStep, env.log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return host.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("no-audio", false, "Disable audio cues")
}
