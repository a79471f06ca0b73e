package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/sstent/trainingstats/internal/training"
)

// TCXParser reads Training Center XML exports. TCX has no step count, so
// steps are derived from the lap distances.
type TCXParser struct {
	athlete Athlete
}

func NewTCXParser(athlete Athlete) *TCXParser {
	return &TCXParser{athlete: athlete}
}

func (p *TCXParser) ParseData(data []byte) ([]training.Package, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to read TCX document: %w", err)
	}

	activities := doc.FindElements("//Activities/Activity")
	if len(activities) == 0 {
		return nil, ErrNoActivityData
	}

	var (
		packages []training.Package
		skipped  []string
	)
	for _, activity := range activities {
		sport := activity.SelectAttrValue("Sport", "")
		kind, ok := tcxSportKind(sport)
		if !ok {
			skipped = append(skipped, sport)
			continue
		}

		var seconds, meters float64
		for _, lap := range activity.SelectElements("Lap") {
			lapSeconds, err := childFloat(lap, "TotalTimeSeconds")
			if err != nil {
				return nil, err
			}
			lapMeters, err := childFloat(lap, "DistanceMeters")
			if err != nil {
				return nil, err
			}
			seconds += lapSeconds
			meters += lapMeters
		}

		packages = append(packages, p.athlete.landPackage(kind, stepsForDistance(meters), seconds/3600))
	}

	if len(packages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSport, strings.Join(skipped, ", "))
	}
	return packages, nil
}

// tcxSportKind maps the Sport attribute. The schema only knows Running,
// Biking and Other; Walking is written by some exporters.
func tcxSportKind(sport string) (training.Kind, bool) {
	switch sport {
	case "Running":
		return training.KindRunning, true
	case "Walking":
		return training.KindWalking, true
	default:
		return 0, false
	}
}

func childFloat(e *etree.Element, tag string) (float64, error) {
	child := e.SelectElement(tag)
	if child == nil {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(child.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q: %w", tag, child.Text(), err)
	}
	return v, nil
}
