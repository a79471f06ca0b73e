package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/sstent/trainingstats/internal/training"
)

var (
	// ErrNoActivityData is returned when an input holds no workouts at all.
	ErrNoActivityData = errors.New("no activity data found")
	// ErrUnsupportedSport is returned when none of the workouts in an input
	// is a run, walk or swim.
	ErrUnsupportedSport = errors.New("unsupported sport")
)

// Parser turns the raw content of an input file into sensor packages.
type Parser interface {
	ParseData(data []byte) ([]training.Package, error)
}

// Athlete holds the body data that device files usually leave out.
type Athlete struct {
	WeightKg    float64
	HeightCm    float64
	PoolLengthM float64 // used when a swim does not record its pool
}

// ParseFile picks a parser for filename and parses it.
func ParseFile(filename string, athlete Athlete) ([]training.Package, error) {
	p, err := NewParser(filename, athlete)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	packages, err := p.ParseData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return packages, nil
}

// landPackage builds a RUN or WLK package from a step count and duration.
func (a Athlete) landPackage(kind training.Kind, steps int, hours float64) training.Package {
	data := []float64{float64(steps), hours, a.WeightKg}
	if kind == training.KindWalking {
		data = append(data, a.HeightCm)
	}
	return training.Package{WorkoutType: kind.Code(), Data: data}
}

// swimPackage builds a SWM package. A non-positive pool length falls back to
// the athlete's default pool.
func (a Athlete) swimPackage(strokes int, hours, poolLength float64, laps int) training.Package {
	if poolLength <= 0 {
		poolLength = a.PoolLengthM
	}
	return training.Package{
		WorkoutType: training.CodeSwimming,
		Data:        []float64{float64(strokes), hours, a.WeightKg, poolLength, float64(laps)},
	}
}

// stepsForDistance converts metres into the step count that yields the same
// distance.
func stepsForDistance(meters float64) int {
	if meters <= 0 {
		return 0
	}
	return int(meters/training.LenStep + 0.5)
}
