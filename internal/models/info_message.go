package models

import "fmt"

// messagePattern is the report line printed for every processed training.
const messagePattern = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage holds the computed results of one training.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the summary line with every number to three decimals.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messagePattern,
		m.TrainingType,
		m.Duration,
		m.Distance,
		m.Speed,
		m.Calories,
	)
}
