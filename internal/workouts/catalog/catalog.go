package catalog

import "time"

// MuscleGroup is a user-configurable category label (e.g. "Chest")
// used to classify exercises and workout logs.
type MuscleGroup struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Exercise struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscleGroup"`
	CreatedAt   time.Time `json:"createdAt"`
}
