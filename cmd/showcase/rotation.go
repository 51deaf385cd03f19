package main

import (
	"fmt"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/keelpoint/sitemotion/rotation"
)

// rotationCmd represents the rotation command
var rotationCmd = &cobra.Command{
	Use:   "rotation",
	Short: "Print the featured insights for one or more rotation weeks",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		at, _ := cmd.Flags().GetString("at")
		weeks, _ := cmd.Flags().GetInt("weeks")
		if count, _ := cmd.Flags().GetInt("count"); cmd.Flags().Changed("count") {
			env.cfg.Rotation.Count = count
		}

		now := time.Now()
		if at != "" {
			day, err := time.ParseInLocation(time.DateOnly, at, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --at %q: %w", at, err)
			}
			// Midday keeps DST offsets from shifting the day count
			now = day.Add(12 * time.Hour)
		}

		out := termenv.NewOutput(cmd.OutOrStdout())
		heading := out.Color("#818cf8")
		muted := out.Color("#9ca3af")

		selector := env.cfg.Selector()
		pool := env.site.RotationPool()
		ref := now

		for w := 0; w < max(weeks, 1); w++ {
			sel := selector.Select(pool, now)
			env.log.Debug("rotation selected", "seed", sel.Seed, "ids", sel.IDs)

			fmt.Fprintln(out, out.String(fmt.Sprintf("week %d-%02d  seed %d", now.Year(), rotation.WeekNumber(now), sel.Seed)).Bold().Foreground(heading))
			for i, id := range sel.IDs {
				in, _ := env.site.Insight(id)
				fmt.Fprintf(out, "  %d. %-22s %s\n", i+1, id, in.Title)
			}
			fmt.Fprintln(out, out.String(fmt.Sprintf("  refreshes %s (%s)",
				sel.NextRefreshAt.Format("Mon 2006-01-02 15:04"), sel.RefreshIn(ref))).Foreground(muted))

			now = sel.NextRefreshAt.Add(12 * time.Hour)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rotationCmd)

	rotationCmd.Flags().String("at", "", "Date to evaluate (YYYY-MM-DD), today when empty")
	rotationCmd.Flags().Int("weeks", 1, "Number of consecutive weeks to print")
	rotationCmd.Flags().Int("count", 0, "Override the number of featured insights")
}
