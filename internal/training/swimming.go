package training

import "github.com/sstent/trainingstats/internal/models"

const (
	SwimmingLenStep                  = 1.38 // metres per stroke
	SwimmingCaloriesMeanSpeedShift   = 1.1
	SwimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim counted in strokes. Speed comes from the pool
// length and lap count, not from the strokes.
type Swimming struct {
	Workout
	LengthPool float64 // m
	CountPool  int     // laps
}

// NewSwimming validates the readings and builds a Swimming.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) (Swimming, error) {
	w, err := newWorkout(action, duration, weight, SwimmingLenStep)
	if err != nil {
		return Swimming{}, err
	}
	if err := checkNonNegative("pool length", lengthPool); err != nil {
		return Swimming{}, err
	}
	if err := checkCount("pool count", countPool); err != nil {
		return Swimming{}, err
	}
	return Swimming{Workout: w, LengthPool: lengthPool, CountPool: countPool}, nil
}

func (s Swimming) Kind() Kind { return KindSwimming }

// MeanSpeed returns the average speed in km/h over the swum laps.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / MInKm / s.Duration
}

// SpentCalories returns the calories burned while swimming.
func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + SwimmingCaloriesMeanSpeedShift) *
		SwimmingCaloriesWeightMultiplier * s.Weight * s.Duration
}

func (s Swimming) Info() models.InfoMessage {
	return s.info(s)
}
