// Package training computes distance, speed and spent calories for the
// supported workout kinds.
package training

import "github.com/sstent/trainingstats/internal/models"

const (
	LenStep = 0.65 // metres per step
	MInKm   = 1000
	MinInH  = 60
)

// Training is implemented by every workout kind. There is no default calorie
// formula: a kind that does not define SpentCalories is not a Training.
type Training interface {
	Kind() Kind
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	Info() models.InfoMessage
}

// Workout carries the sensor readings shared by all kinds.
type Workout struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg

	lenStep float64
}

func newWorkout(action int, duration, weight, lenStep float64) (Workout, error) {
	if err := checkCount("action", action); err != nil {
		return Workout{}, err
	}
	if err := checkPositive("duration", duration, ErrInvalidDuration); err != nil {
		return Workout{}, err
	}
	if err := checkNonNegative("weight", weight); err != nil {
		return Workout{}, err
	}

	return Workout{
		Action:   action,
		Duration: duration,
		Weight:   weight,
		lenStep:  lenStep,
	}, nil
}

// Distance returns the covered distance in km.
func (w Workout) Distance() float64 {
	return float64(w.Action) * w.lenStep / MInKm
}

// MeanSpeed returns the average speed in km/h.
func (w Workout) MeanSpeed() float64 {
	return w.Distance() / w.Duration
}

// info collects the summary for t, which must embed w.
func (w Workout) info(t Training) models.InfoMessage {
	return models.InfoMessage{
		TrainingType: t.Kind().String(),
		Duration:     w.Duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
