package main

import (
	"context"
	"strings"

	"github.com/lixenwraith/rsnake/constants"
	"github.com/lixenwraith/rsnake/render"
	"github.com/spf13/cobra"
)

// options holds the parsed command line
type options struct {
	color     colorValue
	leadColor colorValue
	speed     speedValue
	debug     bool
	chime     bool
}

func defaultOptions() *options {
	return &options{
		color:     render.RandomColor,
		leadColor: render.RandomColor,
		speed:     constants.DefaultSpeed,
	}
}

type runFunc func(ctx context.Context, opts *options) error

const keysHelp = `Keys while running:
  q, Q     quit
  0-9      set speed (0 fastest, 9 slowest)
  c / l    next body / lead color
  C / L    random body / lead color
  d        random colors, default speed`

// newRootCommand builds the CLI; run is invoked only after every flag validated
func newRootCommand(run runFunc) *cobra.Command {
	opts := defaultOptions()
	colors := strings.Join(render.ColorNames(), ", ")

	cmd := &cobra.Command{
		Use:           "rsnake",
		Short:         "A snake that wanders your terminal",
		Long:          "rsnake draws a self-moving snake that turns, grows and shrinks on a wrap-around terminal grid.\n\n" + keysHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.VarP(&opts.color, "color", "c", "Set the color ("+colors+")")
	f.VarP(&opts.leadColor, "lead_color", "l", "Set the lead (head) color ("+colors+")")
	f.VarP(&opts.speed, "speed", "s", "Set the speed (delay) 0-Fast, 5-Default, 9-Slow")
	f.BoolVar(&opts.debug, "debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	f.BoolVar(&opts.chime, "chime", false, "Play a short tone whenever the snake grows")

	return cmd
}
