// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Covers workout lifecycle, food logging, targets and body metrics.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// start_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a new workout session (fails if one is already active)",
	}, s.handleStartWorkout)

	// complete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_workout",
		Description: "Complete a workout and refresh its routine's analytics",
	}, s.handleCompleteWorkout)

	// get_active_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_active_workout",
		Description: "Get the currently in-progress workout, if any",
	}, s.handleGetActiveWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts",
	}, s.handleListWorkouts)

	// search_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_foods",
		Description: "Search the food library by name (case-insensitive substring)",
	}, s.handleSearchFoods)

	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a consumed food for a date and refresh that day's rollup",
	}, s.handleLogFood)

	// set_nutrition_target
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_nutrition_target",
		Description: "Replace the active nutrition target with new macro goals",
	}, s.handleSetNutritionTarget)

	// get_nutrition_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_nutrition_day",
		Description: "Get one day's nutrition rollup alongside the active target",
	}, s.handleGetNutritionDay)

	// record_body_metric
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_body_metric",
		Description: "Record or update a body measurement for a date",
	}, s.handleRecordBodyMetric)
}

// Tool input/output types

type startWorkoutInput struct {
	Name        string `json:"name" jsonschema:"description=Workout name,required"`
	WorkoutType string `json:"workout_type,omitempty" jsonschema:"description=Type of workout (regular, interval, cardio-gps, cardio-manual), defaults to regular"`
	RoutineID   string `json:"routine_id,omitempty" jsonschema:"description=Routine this workout follows"`
}

type workoutOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type completeWorkoutInput struct {
	ID string `json:"id" jsonschema:"description=Workout ID,required"`
}

type listWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type workoutListOutput struct {
	Workouts []*models.Workout `json:"workouts"`
}

type activeWorkoutOutput struct {
	Workout *models.Workout `json:"workout,omitempty"`
	Message string          `json:"message"`
}

type searchFoodsInput struct {
	Query string `json:"query" jsonschema:"description=Substring to match against food names,required"`
}

type foodListOutput struct {
	Foods []*models.Food `json:"foods"`
}

type logFoodInput struct {
	UserID   string  `json:"user_id" jsonschema:"description=User the log belongs to,required"`
	FoodID   string  `json:"food_id" jsonschema:"description=Food library ID,required"`
	Date     string  `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
	MealType string  `json:"meal_type,omitempty" jsonschema:"description=Meal (breakfast, lunch, dinner, snack)"`
	Servings float64 `json:"servings,omitempty" jsonschema:"description=Servings consumed, defaults to 1"`
}

type foodLogOutput struct {
	ID       string  `json:"id"`
	Calories float64 `json:"calories"`
	Message  string  `json:"message"`
}

type setTargetInput struct {
	UserID   string  `json:"user_id" jsonschema:"description=User the target belongs to,required"`
	Calories float64 `json:"calories" jsonschema:"description=Daily calorie goal,required"`
	Protein  float64 `json:"protein,omitempty" jsonschema:"description=Daily protein goal in grams"`
	Carbs    float64 `json:"carbs,omitempty" jsonschema:"description=Daily carb goal in grams"`
	Fat      float64 `json:"fat,omitempty" jsonschema:"description=Daily fat goal in grams"`
}

type targetOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type getNutritionDayInput struct {
	UserID string `json:"user_id" jsonschema:"description=User to report on,required"`
	Date   string `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

type nutritionDayOutput struct {
	Rollup *models.NutritionAnalytic `json:"rollup,omitempty"`
	Target *models.NutritionTarget   `json:"target,omitempty"`
}

type recordBodyMetricInput struct {
	UserID         string   `json:"user_id" jsonschema:"description=User the measurement belongs to,required"`
	Date           string   `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
	WeightKg       float64  `json:"weight_kg" jsonschema:"description=Weight in kilograms,required"`
	BodyFatPercent *float64 `json:"body_fat_percent,omitempty" jsonschema:"description=Body fat percentage"`
	MuscleMassKg   *float64 `json:"muscle_mass_kg,omitempty" jsonschema:"description=Muscle mass in kilograms"`
	Notes          string   `json:"notes,omitempty" jsonschema:"description=Optional notes"`
}

type bodyMetricOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	workoutType := models.WorkoutType(input.WorkoutType)
	if input.WorkoutType == "" {
		workoutType = models.WorkoutRegular
	}

	w, err := s.workouts.Start(input.Name, workoutType, input.RoutineID)
	if err != nil {
		return nil, workoutOutput{}, err
	}
	return nil, workoutOutput{
		ID:      w.ID,
		Name:    w.Name,
		Message: fmt.Sprintf("Started %s workout %q", w.Type, w.Name),
	}, nil
}

func (s *Server) handleCompleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input completeWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	w, err := s.workouts.Complete(input.ID)
	if err != nil {
		return nil, workoutOutput{}, err
	}
	return nil, workoutOutput{
		ID:      w.ID,
		Name:    w.Name,
		Message: fmt.Sprintf("Completed %q at %.0f%%", w.Name, w.CompletionPercentage),
	}, nil
}

func (s *Server) handleGetActiveWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, activeWorkoutOutput, error) {
	w, err := s.store.GetActiveWorkout()
	if err != nil {
		return nil, activeWorkoutOutput{}, err
	}
	if w == nil {
		return nil, activeWorkoutOutput{Message: "No workout in progress"}, nil
	}
	return nil, activeWorkoutOutput{Workout: w, Message: fmt.Sprintf("%q in progress", w.Name)}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, workoutListOutput, error) {
	workouts, err := s.store.GetWorkouts()
	if err != nil {
		return nil, workoutListOutput{}, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(workouts) > limit {
		workouts = workouts[:limit]
	}
	return nil, workoutListOutput{Workouts: workouts}, nil
}

func (s *Server) handleSearchFoods(ctx context.Context, req *mcp.CallToolRequest, input searchFoodsInput) (*mcp.CallToolResult, foodListOutput, error) {
	foods, err := s.store.SearchFoodsByName(input.Query)
	if err != nil {
		return nil, foodListOutput{}, err
	}
	return nil, foodListOutput{Foods: foods}, nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, foodLogOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	l, err := s.nutrition.LogFood(input.UserID, input.FoodID, date, input.MealType, input.Servings)
	if err != nil {
		return nil, foodLogOutput{}, err
	}
	return nil, foodLogOutput{
		ID:       l.ID,
		Calories: l.Calories,
		Message:  fmt.Sprintf("Logged %.1f serving(s) on %s", l.Servings, l.Date),
	}, nil
}

func (s *Server) handleSetNutritionTarget(ctx context.Context, req *mcp.CallToolRequest, input setTargetInput) (*mcp.CallToolResult, targetOutput, error) {
	t, err := s.nutrition.ReplaceActiveTarget(input.UserID, input.Calories, input.Protein, input.Carbs, input.Fat)
	if err != nil {
		return nil, targetOutput{}, err
	}
	return nil, targetOutput{
		ID:      t.ID,
		Message: fmt.Sprintf("Active target set to %.0f kcal", t.Calories),
	}, nil
}

func (s *Server) handleGetNutritionDay(ctx context.Context, req *mcp.CallToolRequest, input getNutritionDayInput) (*mcp.CallToolResult, nutritionDayOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	rollup, err := s.store.GetNutritionAnalyticByDate(input.UserID, date)
	if err != nil {
		return nil, nutritionDayOutput{}, err
	}
	target, err := s.store.GetActiveNutritionTarget(input.UserID)
	if err != nil {
		return nil, nutritionDayOutput{}, err
	}
	return nil, nutritionDayOutput{Rollup: rollup, Target: target}, nil
}

func (s *Server) handleRecordBodyMetric(ctx context.Context, req *mcp.CallToolRequest, input recordBodyMetricInput) (*mcp.CallToolResult, bodyMetricOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	m, err := s.body.RecordMetric(input.UserID, date, input.WeightKg, input.BodyFatPercent, input.MuscleMassKg, input.Notes)
	if err != nil {
		return nil, bodyMetricOutput{}, err
	}
	return nil, bodyMetricOutput{
		ID:      m.ID,
		Message: fmt.Sprintf("Recorded %.1f kg on %s", m.WeightKg, m.Date),
	}, nil
}
