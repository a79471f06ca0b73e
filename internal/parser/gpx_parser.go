package parser

import (
	"encoding/xml"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sstent/trainingstats/internal/training"
)

// GPX represents the root element of a GPX file
type GPX struct {
	XMLName xml.Name   `xml:"gpx"`
	Tracks  []GPXTrack `xml:"trk"`
}

// GPXTrack is one recorded track; Type names the sport.
type GPXTrack struct {
	Name     string       `xml:"name"`
	Type     string       `xml:"type"`
	Segments []GPXSegment `xml:"trkseg"`
}

type GPXSegment struct {
	Points []GPXPoint `xml:"trkpt"`
}

type GPXPoint struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Time string  `xml:"time"`
}

// GPXParser turns every running or walking track into a package, deriving
// steps from the track length.
type GPXParser struct {
	athlete Athlete
}

func NewGPXParser(athlete Athlete) *GPXParser {
	return &GPXParser{athlete: athlete}
}

func (p *GPXParser) ParseData(data []byte) ([]training.Package, error) {
	var gpx GPX
	if err := xml.Unmarshal(data, &gpx); err != nil {
		return nil, err
	}

	if len(gpx.Tracks) == 0 {
		return nil, ErrNoActivityData
	}

	var (
		packages []training.Package
		skipped  []string
	)
	for _, track := range gpx.Tracks {
		kind, ok := gpxTrackKind(track.Type)
		if !ok {
			skipped = append(skipped, track.Type)
			continue
		}

		var points []GPXPoint
		for _, segment := range track.Segments {
			points = append(points, segment.Points...)
		}
		if len(points) == 0 {
			return nil, fmt.Errorf("track %q: %w", track.Name, ErrNoActivityData)
		}

		var meters float64
		for i := 1; i < len(points); i++ {
			meters += calculateDistance(points[i-1].Lat, points[i-1].Lon, points[i].Lat, points[i].Lon)
		}

		hours, err := trackHours(points)
		if err != nil {
			return nil, fmt.Errorf("track %q: %w", track.Name, err)
		}

		packages = append(packages, p.athlete.landPackage(kind, stepsForDistance(meters), hours))
	}

	if len(packages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSport, strings.Join(skipped, ", "))
	}
	return packages, nil
}

func gpxTrackKind(trackType string) (training.Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(trackType)) {
	case "running", "run", "trail_running":
		return training.KindRunning, true
	case "walking", "walk", "hiking":
		return training.KindWalking, true
	default:
		return 0, false
	}
}

// trackHours is the time between the first and last timestamped points.
func trackHours(points []GPXPoint) (float64, error) {
	var startTime, endTime time.Time
	for _, point := range points {
		if point.Time == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, point.Time)
		if err != nil {
			return 0, err
		}
		if startTime.IsZero() {
			startTime = t
		}
		endTime = t
	}
	return endTime.Sub(startTime).Hours(), nil
}

// Haversine formula for distance calculation
func calculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000 // Earth's radius in meters

	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
