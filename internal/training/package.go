package training

import "fmt"

// Package is one sensor reading: a workout code followed by its values in
// constructor order.
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, pool length, pool count
type Package struct {
	WorkoutType string
	Data        []float64
}

// Training builds the workout described by p.
func (p Package) Training() (Training, error) {
	return ReadPackage(p.WorkoutType, p.Data)
}

// SamplePackages returns the reference packages printed when no input is given.
func SamplePackages() []Package {
	return []Package{
		{WorkoutType: CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: CodeRunning, Data: []float64{15000, 1, 75}},
		{WorkoutType: CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}

// ReadPackage builds the Training for a sensor package code and its values.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	kind, err := ParseKind(workoutType)
	if err != nil {
		return nil, err
	}
	if len(data) != kind.DataLen() {
		return nil, fmt.Errorf("%w: %s expects %d, got %d",
			ErrDataLength, workoutType, kind.DataLen(), len(data))
	}

	action, err := toCount("action", data[0])
	if err != nil {
		return nil, err
	}
	duration, weight := data[1], data[2]

	var (
		t     Training
		build error
	)
	switch kind {
	case KindRunning:
		t, build = NewRunning(action, duration, weight)
	case KindWalking:
		t, build = NewSportsWalking(action, duration, weight, data[3])
	case KindSwimming:
		count, err := toCount("pool count", data[4])
		if err != nil {
			return nil, err
		}
		t, build = NewSwimming(action, duration, weight, data[3], count)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, workoutType)
	}
	if build != nil {
		return nil, fmt.Errorf("%s package: %w", workoutType, build)
	}
	return t, nil
}
