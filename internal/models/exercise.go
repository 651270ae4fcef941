// ABOUTME: Exercise library reference models, bulk-loaded once from bundled JSON.
// ABOUTME: Exercises key on exerciseId; body parts, equipment and muscles key on name.
package models

// Exercise is a reference-library entry describing one movement.
type Exercise struct {
	ExerciseID       string   `json:"exerciseId"`
	Name             string   `json:"name"`
	GifURL           string   `json:"gifUrl,omitempty"`
	BodyParts        []string `json:"bodyParts"`
	Equipments       []string `json:"equipments"`
	TargetMuscles    []string `json:"targetMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`
}

// BodyPart is a reference-library body part name.
type BodyPart struct {
	Name string `json:"name"`
}

// Equipment is a reference-library equipment name.
type Equipment struct {
	Name string `json:"name"`
}

// Muscle is a reference-library muscle name.
type Muscle struct {
	Name string `json:"name"`
}
