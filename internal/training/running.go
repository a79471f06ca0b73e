package training

import "github.com/sstent/trainingstats/internal/models"

const (
	CaloriesMeanSpeedMultiplier = 18
	CaloriesMeanSpeedShift      = 1.79
)

// Running is a run counted in steps.
type Running struct {
	Workout
}

// NewRunning validates the readings and builds a Running.
func NewRunning(action int, duration, weight float64) (Running, error) {
	w, err := newWorkout(action, duration, weight, LenStep)
	if err != nil {
		return Running{}, err
	}
	return Running{Workout: w}, nil
}

func (r Running) Kind() Kind { return KindRunning }

// SpentCalories returns the calories burned while running.
func (r Running) SpentCalories() float64 {
	return (CaloriesMeanSpeedMultiplier*r.MeanSpeed() + CaloriesMeanSpeedShift) *
		r.Weight / MInKm * (r.Duration * MinInH)
}

func (r Running) Info() models.InfoMessage {
	return r.info(r)
}
