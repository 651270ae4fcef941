// ABOUTME: CLI commands for workout sessions: start, complete, cancel, list, active.
// ABOUTME: Completion routes through the repository so routine analytics stay fresh.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/repository"
	"github.com/spf13/cobra"
)

var (
	workoutType    string
	workoutRoutine string
	workoutLimit   int
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage workout sessions",
}

var workoutStartCmd = &cobra.Command{
	Use:   "start <name>",
	Short: "Start a workout session",
	Long: `Start a new workout session. Only one session can be active at a time;
starting while another is in progress fails.

EXAMPLES:

  fittrack workout start "Leg Day"
  fittrack workout start "Tempo Run" --type cardio-manual
  fittrack workout start "Push A" --routine 4f1c...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewWorkoutRepository(store)
		w, err := repo.Start(args[0], models.WorkoutType(workoutType), workoutRoutine)
		if err != nil {
			return err
		}
		fmt.Printf("Started %s workout %q (%s)\n", w.Type, w.Name, shortID(w.ID))
		return nil
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Complete a workout",
	Long: `Complete a workout session. With no argument, completes the active one.
Completion stamps the end time, computes the completion percentage from
the workout's sets, and refreshes the routine's analytics.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ""
		if len(args) > 0 {
			id = args[0]
		} else {
			active, err := store.GetActiveWorkout()
			if err != nil {
				return err
			}
			if active == nil {
				return fmt.Errorf("no workout in progress")
			}
			id = active.ID
		}

		repo := repository.NewWorkoutRepository(store)
		w, err := repo.Complete(id)
		if err != nil {
			return err
		}
		fmt.Printf("Completed %q at %.0f%%\n", w.Name, w.CompletionPercentage)
		return nil
	},
}

var workoutCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewWorkoutRepository(store)
		if err := repo.Cancel(); err != nil {
			return err
		}
		fmt.Println("Active workout discarded.")
		return nil
	},
}

var workoutActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the in-progress workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := store.GetActiveWorkout()
		if err != nil {
			return err
		}
		if w == nil {
			fmt.Println("No workout in progress.")
			return nil
		}
		fmt.Printf("%s  %s (%s), started %s\n", shortID(w.ID), w.Name, w.Type, w.StartTime)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := store.GetWorkouts()
		if err != nil {
			return err
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}
		if workoutLimit > 0 && len(workouts) > workoutLimit {
			workouts = workouts[:workoutLimit]
		}

		faint := color.New(color.Faint)
		green := color.New(color.FgGreen)
		for _, w := range workouts {
			status := faint.Sprint("in progress")
			if w.Completed {
				status = green.Sprintf("done %.0f%%", w.CompletionPercentage)
			}
			fmt.Printf("%s %s %s %s %s\n",
				faint.Sprint(shortID(w.ID)),
				faint.Sprint(w.CreatedAt),
				padRight(string(w.Type), 14),
				padRight(w.Name, 24),
				status)
		}
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func init() {
	workoutStartCmd.Flags().StringVarP(&workoutType, "type", "t", "regular",
		"workout type (regular, interval, cardio-gps, cardio-manual)")
	workoutStartCmd.Flags().StringVarP(&workoutRoutine, "routine", "r", "",
		"routine id this workout follows")
	workoutListCmd.Flags().IntVarP(&workoutLimit, "limit", "n", 20, "max results")

	workoutCmd.AddCommand(workoutStartCmd)
	workoutCmd.AddCommand(workoutCompleteCmd)
	workoutCmd.AddCommand(workoutCancelCmd)
	workoutCmd.AddCommand(workoutActiveCmd)
	workoutCmd.AddCommand(workoutListCmd)
	rootCmd.AddCommand(workoutCmd)
}
