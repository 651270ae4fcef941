// ABOUTME: CLI commands for body metrics: record and list.
// ABOUTME: Recording twice on one date updates the existing measurement.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/repository"
	"github.com/spf13/cobra"
)

var (
	metricUser    string
	metricDate    string
	metricBodyFat float64
	metricMuscle  float64
	metricNotes   string
	metricStart   string
	metricEnd     string
)

var metricCmd = &cobra.Command{
	Use:   "metric",
	Short: "Manage body metrics",
}

var metricRecordCmd = &cobra.Command{
	Use:   "record <weight-kg>",
	Short: "Record a body measurement",
	Long: `Record a body measurement for a date. One record per user per date;
recording again on the same date updates it.

EXAMPLES:

  fittrack metric record 82.5
  fittrack metric record 82.1 --body-fat 18.2 --date 2026-08-30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %q", args[0])
		}

		date := metricDate
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}

		var bodyFat, muscle *float64
		if cmd.Flags().Changed("body-fat") {
			bodyFat = &metricBodyFat
		}
		if cmd.Flags().Changed("muscle") {
			muscle = &metricMuscle
		}

		repo := repository.NewBodyRepository(store)
		m, err := repo.RecordMetric(metricUser, date, weight, bodyFat, muscle, metricNotes)
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %.1f kg on %s\n", m.WeightKg, m.Date)
		return nil
	},
}

var metricListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List body metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		if metricStart != "" && metricEnd != "" {
			repo := repository.NewBodyRepository(store)
			history, err := repo.History(metricUser, metricStart, metricEnd)
			if err != nil {
				return err
			}
			for _, m := range history {
				printMetric(faint, m.Date, m.WeightKg, m.BodyFatPercent, m.Notes)
			}
			return nil
		}

		all, err := store.GetBodyMetrics(metricUser)
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No metrics found.")
			return nil
		}
		for _, m := range all {
			printMetric(faint, m.Date, m.WeightKg, m.BodyFatPercent, m.Notes)
		}
		return nil
	},
}

func printMetric(faint *color.Color, date string, weight float64, bodyFat *float64, notes string) {
	fat := ""
	if bodyFat != nil {
		fat = fmt.Sprintf("  %.1f%% bf", *bodyFat)
	}
	extra := ""
	if notes != "" {
		extra = faint.Sprintf(" (%s)", notes)
	}
	fmt.Printf("%s  %.1f kg%s%s\n", faint.Sprint(date), weight, fat, extra)
}

func init() {
	metricRecordCmd.Flags().StringVar(&metricDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	metricRecordCmd.Flags().Float64Var(&metricBodyFat, "body-fat", 0, "body fat percentage")
	metricRecordCmd.Flags().Float64Var(&metricMuscle, "muscle", 0, "muscle mass in kg")
	metricRecordCmd.Flags().StringVar(&metricNotes, "notes", "", "optional notes")

	metricListCmd.Flags().StringVar(&metricStart, "from", "", "start date (YYYY-MM-DD)")
	metricListCmd.Flags().StringVar(&metricEnd, "to", "", "end date (YYYY-MM-DD)")

	metricCmd.PersistentFlags().StringVarP(&metricUser, "user", "u", "default", "user id")

	metricCmd.AddCommand(metricRecordCmd)
	metricCmd.AddCommand(metricListCmd)
	rootCmd.AddCommand(metricCmd)
}
