// ABOUTME: Canonical schema definition shared by both storage backends.
// ABOUTME: Adding a field means adding a column here; migrations diff against this.
package storage

// ColumnType is the SQL affinity of a column in the relational backend.
type ColumnType string

const (
	TypeText    ColumnType = "TEXT"
	TypeInteger ColumnType = "INTEGER"
	TypeReal    ColumnType = "REAL"
)

// Column describes one field of an entity table. Structured columns hold
// JSON text in the relational engine and native values in the document
// store. Default is a SQL literal used both in CREATE TABLE and as the
// safe default for additive ALTER migrations.
type Column struct {
	Name       string
	Type       ColumnType
	PrimaryKey bool
	NotNull    bool
	Default    string
	Structured bool
}

// Index is a non-unique advisory lookup index.
type Index struct {
	Name    string
	Columns []string
}

// Table describes one entity family's relational shape.
type Table struct {
	Name    string
	Columns []Column
	Indexes []Index
}

// PrimaryKey returns the table's primary key column name.
func (t Table) PrimaryKey() string {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c.Name
		}
	}
	return ""
}

func timestamps() []Column {
	return []Column{
		{Name: "created_at", Type: TypeText, NotNull: true, Default: "''"},
		{Name: "updated_at", Type: TypeText, NotNull: true, Default: "''"},
	}
}

// Tables enumerates every entity table. Order matters only for readability;
// DDL and migrations are independent per table.
func Tables() []Table {
	return []Table{
		{
			Name: "workouts",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "name", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "type", Type: TypeText, NotNull: true, Default: "'regular'"},
				{Name: "exercises", Type: TypeText, Structured: true, Default: "'[]'"},
				{Name: "interval_config", Type: TypeText, Structured: true},
				{Name: "interval_progress", Type: TypeText, Structured: true},
				{Name: "cardio_data", Type: TypeText, Structured: true},
				{Name: "start_time", Type: TypeText},
				{Name: "end_time", Type: TypeText},
				{Name: "completed", Type: TypeInteger, Default: "0"},
				{Name: "completion_percentage", Type: TypeReal, Default: "0"},
				{Name: "routine_id", Type: TypeText},
				{Name: "program_id", Type: TypeText},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_workouts_created", Columns: []string{"created_at"}},
				{Name: "idx_workouts_routine", Columns: []string{"routine_id"}},
				{Name: "idx_workouts_program", Columns: []string{"program_id"}},
			},
		},
		{
			Name: "routines",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "name", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "exercises", Type: TypeText, Structured: true, Default: "'[]'"},
				{Name: "type", Type: TypeText, NotNull: true, Default: "'custom'"},
				{Name: "template_id", Type: TypeText},
				{Name: "is_favorite", Type: TypeInteger, Default: "0"},
				{Name: "difficulty", Type: TypeText},
				{Name: "estimated_duration", Type: TypeInteger, Default: "0"},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_routines_template", Columns: []string{"template_id"}},
				{Name: "idx_routines_favorite", Columns: []string{"is_favorite"}},
			},
		},
		{
			Name: "workout_programs",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "name", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "template_id", Type: TypeText},
				{Name: "workouts", Type: TypeText, Structured: true, Default: "'[]'"},
				{Name: "is_enabled", Type: TypeInteger, Default: "1"},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_programs_template", Columns: []string{"template_id"}},
			},
		},
		{
			Name: "routine_analytics",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "routine_id", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "total_completions", Type: TypeInteger, Default: "0"},
				{Name: "completion_rate", Type: TypeReal, Default: "0"},
				{Name: "avg_duration_minutes", Type: TypeReal, Default: "0"},
				{Name: "total_volume", Type: TypeReal, Default: "0"},
				{Name: "best_volume", Type: TypeReal, Default: "0"},
				{Name: "last_completed_at", Type: TypeText},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_routine_analytics_routine", Columns: []string{"routine_id"}},
			},
		},
		{
			Name: "exercises",
			Columns: []Column{
				{Name: "exercise_id", Type: TypeText, PrimaryKey: true},
				{Name: "name", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "gif_url", Type: TypeText},
				{Name: "body_parts", Type: TypeText, Structured: true, Default: "'[]'"},
				{Name: "equipments", Type: TypeText, Structured: true, Default: "'[]'"},
				{Name: "target_muscles", Type: TypeText, Structured: true, Default: "'[]'"},
				{Name: "secondary_muscles", Type: TypeText, Structured: true, Default: "'[]'"},
				{Name: "instructions", Type: TypeText, Structured: true, Default: "'[]'"},
			},
			Indexes: []Index{
				{Name: "idx_exercises_name", Columns: []string{"name"}},
			},
		},
		{
			Name: "body_parts",
			Columns: []Column{
				{Name: "name", Type: TypeText, PrimaryKey: true},
			},
		},
		{
			Name: "equipment",
			Columns: []Column{
				{Name: "name", Type: TypeText, PrimaryKey: true},
			},
		},
		{
			Name: "muscles",
			Columns: []Column{
				{Name: "name", Type: TypeText, PrimaryKey: true},
			},
		},
		{
			Name: "foods",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "name", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "brand", Type: TypeText},
				{Name: "barcode", Type: TypeText},
				{Name: "calories", Type: TypeReal, Default: "0"},
				{Name: "protein", Type: TypeReal, Default: "0"},
				{Name: "carbs", Type: TypeReal, Default: "0"},
				{Name: "fat", Type: TypeReal, Default: "0"},
				{Name: "fiber", Type: TypeReal, Default: "0"},
				{Name: "sugar", Type: TypeReal, Default: "0"},
				{Name: "sodium", Type: TypeReal, Default: "0"},
				{Name: "serving_size", Type: TypeText, Structured: true, Default: "'{}'"},
				{Name: "micronutrients", Type: TypeText, Structured: true},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_foods_created", Columns: []string{"created_at"}},
				{Name: "idx_foods_name", Columns: []string{"name"}},
				{Name: "idx_foods_barcode", Columns: []string{"barcode"}},
			},
		},
		{
			Name: "food_logs",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "food_id", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "user_id", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "date", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "meal_type", Type: TypeText},
				{Name: "servings", Type: TypeReal, Default: "1"},
				{Name: "calories", Type: TypeReal, Default: "0"},
				{Name: "protein", Type: TypeReal, Default: "0"},
				{Name: "carbs", Type: TypeReal, Default: "0"},
				{Name: "fat", Type: TypeReal, Default: "0"},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_food_logs_created", Columns: []string{"created_at"}},
				{Name: "idx_food_logs_date", Columns: []string{"date"}},
				{Name: "idx_food_logs_user", Columns: []string{"user_id"}},
			},
		},
		{
			Name: "nutrition_targets",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "user_id", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "calories", Type: TypeReal, Default: "0"},
				{Name: "protein", Type: TypeReal, Default: "0"},
				{Name: "carbs", Type: TypeReal, Default: "0"},
				{Name: "fat", Type: TypeReal, Default: "0"},
				{Name: "start_date", Type: TypeText},
				{Name: "end_date", Type: TypeText},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_nutrition_targets_user", Columns: []string{"user_id"}},
			},
		},
		{
			Name: "nutrition_analytics",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "user_id", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "date", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "calories", Type: TypeReal, Default: "0"},
				{Name: "protein", Type: TypeReal, Default: "0"},
				{Name: "carbs", Type: TypeReal, Default: "0"},
				{Name: "fat", Type: TypeReal, Default: "0"},
				{Name: "meals_logged", Type: TypeInteger, Default: "0"},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_nutrition_analytics_user", Columns: []string{"user_id", "date"}},
			},
		},
		{
			Name: "coaching_settings",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "user_id", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "goal", Type: TypeText},
				{Name: "activity_level", Type: TypeText},
				{Name: "weekly_rate_kg", Type: TypeReal, Default: "0"},
				{Name: "enabled", Type: TypeInteger, Default: "0"},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_coaching_settings_user", Columns: []string{"user_id"}},
			},
		},
		{
			Name: "body_metrics",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "user_id", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "date", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "weight_kg", Type: TypeReal, Default: "0"},
				{Name: "body_fat_percent", Type: TypeReal},
				{Name: "muscle_mass_kg", Type: TypeReal},
				{Name: "notes", Type: TypeText},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_body_metrics_user", Columns: []string{"user_id"}},
				{Name: "idx_body_metrics_date", Columns: []string{"date"}},
			},
		},
		{
			Name: "questionnaire_responses",
			Columns: append([]Column{
				{Name: "id", Type: TypeText, PrimaryKey: true},
				{Name: "user_id", Type: TypeText, NotNull: true, Default: "''"},
				{Name: "answers", Type: TypeText, Structured: true, Default: "'{}'"},
				{Name: "completed_at", Type: TypeText},
			}, timestamps()...),
			Indexes: []Index{
				{Name: "idx_questionnaire_user", Columns: []string{"user_id"}},
			},
		},
		{
			Name: "app_settings",
			Columns: []Column{
				{Name: "key", Type: TypeText, PrimaryKey: true},
				{Name: "value", Type: TypeText, Structured: true},
				{Name: "updated_at", Type: TypeText, NotNull: true, Default: "''"},
			},
		},
	}
}

// ObjectStore describes one document-store collection: its key path and
// which fields the backend keeps queryable.
type ObjectStore struct {
	Name    string
	KeyPath string
	Indexes []string
}

// StoreVersion is one step of the document store's additive upgrade path.
// A version only ever adds object stores or adds indexes to existing ones.
type StoreVersion struct {
	Version int
	Stores  []ObjectStore
}

// StoreVersions declares the document store's schema history. Opening the
// database applies every version above the persisted one, in order.
func StoreVersions() []StoreVersion {
	return []StoreVersion{
		{
			Version: 1,
			Stores: []ObjectStore{
				{Name: "workouts", KeyPath: "id", Indexes: []string{"createdAt", "type", "routineId"}},
				{Name: "routines", KeyPath: "id", Indexes: []string{"createdAt", "templateId", "isFavorite"}},
				{Name: "workout_programs", KeyPath: "id", Indexes: []string{"templateId"}},
				{Name: "exercises", KeyPath: "exerciseId", Indexes: []string{"name"}},
				{Name: "body_parts", KeyPath: "name"},
				{Name: "equipment", KeyPath: "name"},
				{Name: "muscles", KeyPath: "name"},
				{Name: "foods", KeyPath: "id", Indexes: []string{"createdAt", "name"}},
				{Name: "food_logs", KeyPath: "id", Indexes: []string{"date", "userId"}},
				{Name: "app_settings", KeyPath: "key"},
			},
		},
		{
			Version: 2,
			Stores: []ObjectStore{
				{Name: "nutrition_targets", KeyPath: "id", Indexes: []string{"userId"}},
				{Name: "nutrition_analytics", KeyPath: "id", Indexes: []string{"userId", "date"}},
				{Name: "coaching_settings", KeyPath: "id", Indexes: []string{"userId"}},
			},
		},
		{
			Version: 3,
			Stores: []ObjectStore{
				{Name: "routine_analytics", KeyPath: "id", Indexes: []string{"routineId"}},
				{Name: "body_metrics", KeyPath: "id", Indexes: []string{"userId", "date"}},
				{Name: "questionnaire_responses", KeyPath: "id", Indexes: []string{"userId"}},
			},
		},
	}
}

// CurrentStoreVersion returns the highest declared document-store version.
func CurrentStoreVersion() int {
	versions := StoreVersions()
	return versions[len(versions)-1].Version
}
