package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackage(t *testing.T) {
	testCases := []struct {
		workoutType string
		data        []float64
		kind        Kind
		calories    float64
	}{
		{workoutType: "SWM", data: []float64{720, 1, 80, 25, 40}, kind: KindSwimming, calories: 336},
		{workoutType: "RUN", data: []float64{15000, 1, 75}, kind: KindRunning, calories: 797.805},
		{workoutType: "WLK", data: []float64{9000, 1, 75, 180}, kind: KindWalking, calories: 349.2517475250001},
	}

	for _, tc := range testCases {
		t.Run(tc.workoutType, func(t *testing.T) {
			tr, err := ReadPackage(tc.workoutType, tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, tr.Kind())
			assert.Equal(t, tc.workoutType, tr.Kind().Code())
			assert.InDelta(t, tc.calories, tr.SpentCalories(), 1e-9)
		})
	}
}

func TestReadPackageErrors(t *testing.T) {
	testCases := []struct {
		name        string
		workoutType string
		data        []float64
		expectedErr error
	}{
		{name: "unknown code", workoutType: "XYZ", data: []float64{1, 1, 1}, expectedErr: ErrUnknownWorkoutType},
		{name: "lower case code", workoutType: "run", data: []float64{1, 1, 1}, expectedErr: ErrUnknownWorkoutType},
		{name: "empty code", workoutType: "", data: nil, expectedErr: ErrUnknownWorkoutType},
		{name: "running too many values", workoutType: "RUN", data: []float64{1, 1, 1, 180}, expectedErr: ErrDataLength},
		{name: "walking missing height", workoutType: "WLK", data: []float64{1, 1, 1}, expectedErr: ErrDataLength},
		{name: "swimming missing laps", workoutType: "SWM", data: []float64{720, 1, 80, 25}, expectedErr: ErrDataLength},
		{name: "fractional steps", workoutType: "RUN", data: []float64{100.5, 1, 75}, expectedErr: ErrInvalidValue},
		{name: "fractional laps", workoutType: "SWM", data: []float64{720, 1, 80, 25, 40.5}, expectedErr: ErrInvalidValue},
		{name: "zero duration", workoutType: "RUN", data: []float64{15000, 0, 75}, expectedErr: ErrInvalidDuration},
		{name: "zero height", workoutType: "WLK", data: []float64{9000, 1, 75, 0}, expectedErr: ErrInvalidHeight},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := ReadPackage(tc.workoutType, tc.data)
			require.ErrorIs(t, err, tc.expectedErr)
			assert.Nil(t, tr)
		})
	}
}

func TestReadPackageUnknownCodeIsReported(t *testing.T) {
	_, err := ReadPackage("XYZ", []float64{1, 1, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"XYZ"`)
}

func TestSamplePackages(t *testing.T) {
	expected := []string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
	}

	packages := SamplePackages()
	require.Len(t, packages, len(expected))
	for i, p := range packages {
		tr, err := p.Training()
		require.NoError(t, err)
		assert.Equal(t, expected[i], tr.Info().Message())
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{KindRunning, KindWalking, KindSwimming} {
		parsed, err := ParseKind(kind.Code())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Empty(t, Kind(0).Code())
}
