package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoMessageMessage(t *testing.T) {
	testCases := []struct {
		name     string
		info     InfoMessage
		expected string
	}{
		{
			name: "swimming reference",
			info: InfoMessage{TrainingType: "Swimming", Duration: 1, Distance: 0.9936, Speed: 1, Calories: 336},
			expected: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; " +
				"Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name: "walking reference",
			info: InfoMessage{TrainingType: "SportsWalking", Duration: 1, Distance: 5.85, Speed: 5.85, Calories: 349.2517475250001},
			expected: "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; " +
				"Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
		},
		{
			name: "zero values keep three decimals",
			info: InfoMessage{TrainingType: "Running"},
			expected: "Тип тренировки: Running; Длительность: 0.000 ч.; Дистанция: 0.000 км; " +
				"Ср. скорость: 0.000 км/ч; Потрачено ккал: 0.000.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.info.Message())
		})
	}
}

func TestInfoMessageIsStable(t *testing.T) {
	info := InfoMessage{TrainingType: "Running", Duration: 1.5, Distance: 9.75, Speed: 6.5, Calories: 797.805}

	first := info.Message()
	second := info.Message()

	assert.Equal(t, first, second)
	assert.Equal(t, "Running", info.TrainingType)
}
