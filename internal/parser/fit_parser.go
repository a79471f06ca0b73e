package parser

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/tormoder/fit"

	"github.com/sstent/trainingstats/internal/training"
)

type FITParser struct {
	athlete Athlete
}

func NewFITParser(athlete Athlete) *FITParser {
	return &FITParser{athlete: athlete}
}

// ParseData returns one package per running, walking or swimming session.
func (p *FITParser) ParseData(data []byte) ([]training.Package, error) {
	fitFile, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file: %w", err)
	}

	activity, err := fitFile.Activity()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity from FIT: %w", err)
	}

	return p.sessionPackages(activity.Sessions)
}

func (p *FITParser) sessionPackages(sessions []*fit.SessionMsg) ([]training.Package, error) {
	if len(sessions) == 0 {
		return nil, ErrNoActivityData
	}

	var (
		packages []training.Package
		skipped  []string
	)
	for _, session := range sessions {
		if session == nil {
			continue
		}
		pkg, ok := p.sessionPackage(session)
		if !ok {
			skipped = append(skipped, session.Sport.String())
			continue
		}
		packages = append(packages, pkg)
	}

	if len(packages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSport, strings.Join(skipped, ", "))
	}
	return packages, nil
}

// sessionPackage maps a session summary onto a sensor package. FIT counts
// running and walking cycles as strides of two steps; for swims a cycle is
// one stroke.
func (p *FITParser) sessionPackage(session *fit.SessionMsg) (training.Package, bool) {
	hours := session.GetTotalTimerTimeScaled() / 3600
	cycles := validUint32(session.TotalCycles)

	switch session.Sport {
	case fit.SportRunning:
		return p.athlete.landPackage(training.KindRunning, 2*cycles, hours), true
	case fit.SportWalking:
		return p.athlete.landPackage(training.KindWalking, 2*cycles, hours), true
	case fit.SportSwimming:
		pool := session.GetPoolLengthScaled()
		if math.IsNaN(pool) {
			pool = 0
		}
		laps := validUint16(session.NumActiveLengths)
		return p.athlete.swimPackage(cycles, hours, pool, laps), true
	default:
		return training.Package{}, false
	}
}

func validUint32(v uint32) int {
	if v == ^uint32(0) {
		return 0
	}
	return int(v)
}

func validUint16(v uint16) int {
	if v == ^uint16(0) {
		return 0
	}
	return int(v)
}
