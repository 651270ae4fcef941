// ABOUTME: CLI commands for nutrition targets: set (replace active) and show.
// ABOUTME: Setting closes the current target before creating the new one.
package main

import (
	"fmt"

	"github.com/harperreed/fittrack/internal/repository"
	"github.com/spf13/cobra"
)

var (
	targetUser     string
	targetCalories float64
	targetProtein  float64
	targetCarbs    float64
	targetFat      float64
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Manage nutrition targets",
}

var targetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the active nutrition target",
	Long: `Replace the active nutrition target with new macro goals. The current
target (if any) is closed with today's date; the new one starts today.

EXAMPLES:

  fittrack target set --calories 2200 --protein 160 --carbs 220 --fat 70`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repository.NewNutritionRepository(store)
		t, err := repo.ReplaceActiveTarget(targetUser, targetCalories, targetProtein, targetCarbs, targetFat)
		if err != nil {
			return err
		}
		fmt.Printf("Active target: %.0f kcal  P%.0f C%.0f F%.0f (from %s)\n",
			t.Calories, t.Protein, t.Carbs, t.Fat, t.StartDate)
		return nil
	},
}

var targetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active nutrition target",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := store.GetActiveNutritionTarget(targetUser)
		if err != nil {
			return err
		}
		if t == nil {
			fmt.Println("No active target.")
			return nil
		}
		fmt.Printf("%.0f kcal  P%.0f C%.0f F%.0f (since %s)\n",
			t.Calories, t.Protein, t.Carbs, t.Fat, t.StartDate)
		return nil
	},
}

func init() {
	targetSetCmd.Flags().Float64Var(&targetCalories, "calories", 0, "daily calorie goal")
	targetSetCmd.Flags().Float64Var(&targetProtein, "protein", 0, "daily protein grams")
	targetSetCmd.Flags().Float64Var(&targetCarbs, "carbs", 0, "daily carb grams")
	targetSetCmd.Flags().Float64Var(&targetFat, "fat", 0, "daily fat grams")

	targetCmd.PersistentFlags().StringVarP(&targetUser, "user", "u", "default", "user id")

	targetCmd.AddCommand(targetSetCmd)
	targetCmd.AddCommand(targetShowCmd)
	rootCmd.AddCommand(targetCmd)
}
