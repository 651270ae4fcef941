// ABOUTME: CLI commands for the food library and daily food logs.
// ABOUTME: Logging routes through the repository so daily rollups stay fresh.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/repository"
	"github.com/spf13/cobra"
)

var (
	foodUser     string
	foodDate     string
	foodMeal     string
	foodServings float64
	foodCalories float64
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food library and food logs",
}

var foodAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a food to the library",
	Long: `Add a food to the library with per-serving macros.

EXAMPLES:

  fittrack food add "Oatmeal" --calories 150 --protein 5 --carbs 27 --fat 3
  fittrack food add "Chicken Breast" --calories 165 --protein 31`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := models.NewFood(args[0])
		f.Calories = foodCalories
		f.Protein = foodProtein
		f.Carbs = foodCarbs
		f.Fat = foodFat
		if _, err := store.SaveFood(f); err != nil {
			return err
		}
		fmt.Printf("Added %q (%s)\n", f.Name, shortID(f.ID))
		return nil
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := store.SearchFoodsByName(args[0])
		if err != nil {
			return err
		}
		if len(foods) == 0 {
			fmt.Println("No foods found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, f := range foods {
			fmt.Printf("%s %s %.0f kcal  P%.0f C%.0f F%.0f\n",
				faint.Sprint(shortID(f.ID)),
				padRight(f.Name, 28),
				f.Calories, f.Protein, f.Carbs, f.Fat)
		}
		return nil
	},
}

var foodLogCmd = &cobra.Command{
	Use:   "log <food-id>",
	Short: "Log a consumed food",
	Long: `Log a food for a date. Macros are snapshotted from the food scaled by
servings, and the day's rollup is recomputed.

EXAMPLES:

  fittrack food log 4f1c9a2e
  fittrack food log 4f1c9a2e --servings 1.5 --meal lunch
  fittrack food log 4f1c9a2e --date 2026-08-30`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := foodDate
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}

		repo := repository.NewNutritionRepository(store)
		l, err := repo.LogFood(foodUser, args[0], date, foodMeal, foodServings)
		if err != nil {
			return err
		}
		fmt.Printf("Logged %.1f serving(s) on %s (%.0f kcal)\n", l.Servings, l.Date, l.Calories)
		return nil
	},
}

var foodDayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show one day's food logs and rollup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now().UTC().Format("2006-01-02")
		if len(args) > 0 {
			date = args[0]
		}

		logs, err := store.GetFoodLogsByDate(date)
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			if l.UserID != foodUser {
				continue
			}
			meal := l.MealType
			if meal == "" {
				meal = "-"
			}
			fmt.Printf("%s %s %.1fx  %.0f kcal\n",
				faint.Sprint(shortID(l.ID)), padRight(meal, 10), l.Servings, l.Calories)
		}

		rollup, err := store.GetNutritionAnalyticByDate(foodUser, date)
		if err != nil {
			return err
		}
		if rollup == nil {
			fmt.Printf("%s: nothing logged\n", date)
			return nil
		}
		fmt.Printf("%s total: %.0f kcal  P%.0f C%.0f F%.0f (%d meals)\n",
			date, rollup.Calories, rollup.Protein, rollup.Carbs, rollup.Fat, rollup.MealsLogged)
		return nil
	},
}

func init() {
	foodAddCmd.Flags().Float64Var(&foodCalories, "calories", 0, "calories per serving")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "protein grams per serving")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "carb grams per serving")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "fat grams per serving")

	foodLogCmd.Flags().StringVar(&foodDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	foodLogCmd.Flags().StringVar(&foodMeal, "meal", "", "meal type (breakfast, lunch, dinner, snack)")
	foodLogCmd.Flags().Float64Var(&foodServings, "servings", 1, "servings consumed")

	foodCmd.PersistentFlags().StringVarP(&foodUser, "user", "u", "default", "user id")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodSearchCmd)
	foodCmd.AddCommand(foodLogCmd)
	foodCmd.AddCommand(foodDayCmd)
	rootCmd.AddCommand(foodCmd)
}
