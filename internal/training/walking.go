package training

import (
	"math"

	"github.com/sstent/trainingstats/internal/models"
)

const (
	CaloriesWeightMultiplier = 0.035
	CaloriesSpeedMultiplier  = 0.029
	// KmhInMsec is 1000/3600 rounded to three places. The reference output
	// is produced with the rounded value.
	KmhInMsec = 0.278
	CmInM     = 100
)

// SportsWalking is a walk counted in steps; the walker's height enters the
// calorie formula.
type SportsWalking struct {
	Workout
	Height float64 // cm
}

// NewSportsWalking validates the readings and builds a SportsWalking.
func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	w, err := newWorkout(action, duration, weight, LenStep)
	if err != nil {
		return SportsWalking{}, err
	}
	if err := checkPositive("height", height, ErrInvalidHeight); err != nil {
		return SportsWalking{}, err
	}
	return SportsWalking{Workout: w, Height: height}, nil
}

func (s SportsWalking) Kind() Kind { return KindWalking }

// SpentCalories returns the calories burned while walking.
func (s SportsWalking) SpentCalories() float64 {
	speedMs := s.MeanSpeed() * KmhInMsec
	return (CaloriesWeightMultiplier*s.Weight +
		(math.Pow(speedMs, 2)/(s.Height/CmInM))*CaloriesSpeedMultiplier*s.Weight) *
		s.Duration * MinInH
}

func (s SportsWalking) Info() models.InfoMessage {
	return s.info(s)
}
