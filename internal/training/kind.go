package training

import "fmt"

// Kind enumerates the supported workouts.
type Kind int

const (
	KindRunning Kind = iota + 1
	KindWalking
	KindSwimming
)

// Sensor package codes.
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

// ParseKind resolves a sensor package code.
func ParseKind(code string) (Kind, error) {
	switch code {
	case CodeRunning:
		return KindRunning, nil
	case CodeWalking:
		return KindWalking, nil
	case CodeSwimming:
		return KindSwimming, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkoutType, code)
	}
}

// String returns the name used in reports.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Code returns the sensor package code for k.
func (k Kind) Code() string {
	switch k {
	case KindRunning:
		return CodeRunning
	case KindWalking:
		return CodeWalking
	case KindSwimming:
		return CodeSwimming
	default:
		return ""
	}
}

// DataLen is the number of values a package of kind k carries.
func (k Kind) DataLen() int {
	switch k {
	case KindRunning:
		return 3
	case KindWalking:
		return 4
	case KindSwimming:
		return 5
	default:
		return 0
	}
}
