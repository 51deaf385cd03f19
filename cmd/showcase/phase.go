package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/keelpoint/sitemotion/scroll"
)

const barCols = 20

// phaseCmd represents the phase command
var phaseCmd = &cobra.Command{
	Use:   "phase [progress...]",
	Short: "Print the scroll phase derived from pinned progress values",
	Long: `Maps each progress value in [0, 1] to its phase, window and styles.
Without arguments the whole range is sampled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		phases, _ := cmd.Flags().GetInt("phases")
		samples, _ := cmd.Flags().GetInt("samples")

		var values []float64
		for _, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("invalid progress %q: %w", a, err)
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			n := max(samples, 2)
			for i := 0; i < n; i++ {
				values = append(values, float64(i)/float64(n-1))
			}
		}

		out := termenv.NewOutput(cmd.OutOrStdout())
		accent := out.Color("#50aadc")

		for _, v := range values {
			p := scroll.Map(v, phases)
			filled := int(p.BarWidth(phases) * barCols)
			bar := out.String(strings.Repeat("━", filled)).Foreground(accent).String() + strings.Repeat("─", barCols-filled)

			fmt.Fprintf(out, "progress %.3f  index %d  %-5s  local %.3f  opacity %.3f  translate %.1f%%  %s\n",
				v, p.Index, p.Window, p.LocalProgress, p.Opacity, p.TranslateY, bar)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(phaseCmd)

	phaseCmd.Flags().Int("phases", 4, "Number of phases in the pinned section")
	phaseCmd.Flags().Int("samples", 11, "Samples across [0, 1] when no progress is given")
}
