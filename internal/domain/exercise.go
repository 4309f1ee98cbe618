package domain

// Exercise is a single entry inside a workout's exercise list. Exercises are
// embedded in their Workout document and are not independently addressable.
type Exercise struct {
	Name     string  `bson:"name" json:"name"`
	Sets     int     `bson:"sets" json:"sets"`
	Reps     int     `bson:"reps" json:"reps"`
	Weight   float64 `bson:"weight" json:"weight"`     // kg, 0 when the user does not track weight
	Duration float64 `bson:"duration" json:"duration"` // minutes, for time-based work like cardio
}
