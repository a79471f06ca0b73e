package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tcxRunning = `<?xml version="1.0" encoding="UTF-8"?>
<TrainingCenterDatabase xmlns="http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2">
  <Activities>
    <Activity Sport="Running">
      <Id>2024-05-01T07:00:00Z</Id>
      <Lap StartTime="2024-05-01T07:00:00Z">
        <TotalTimeSeconds>1800</TotalTimeSeconds>
        <DistanceMeters>4875</DistanceMeters>
        <Calories>400</Calories>
      </Lap>
      <Lap StartTime="2024-05-01T07:30:00Z">
        <TotalTimeSeconds>1800.0</TotalTimeSeconds>
        <DistanceMeters>4875.0</DistanceMeters>
      </Lap>
    </Activity>
    <Activity Sport="Biking">
      <Lap StartTime="2024-05-02T07:00:00Z">
        <TotalTimeSeconds>3600</TotalTimeSeconds>
        <DistanceMeters>30000</DistanceMeters>
      </Lap>
    </Activity>
  </Activities>
</TrainingCenterDatabase>`

func TestTCXParserParseData(t *testing.T) {
	packages, err := NewTCXParser(testAthlete).ParseData([]byte(tcxRunning))
	require.NoError(t, err)
	require.Len(t, packages, 1)

	assert.Equal(t, "RUN", packages[0].WorkoutType)
	assert.InDeltaSlice(t, []float64{15000, 1, 75}, packages[0].Data, 1e-9)

	tr, err := packages[0].Training()
	require.NoError(t, err)
	assert.InDelta(t, 9.75, tr.Distance(), 1e-9)
}

func TestTCXParserErrors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:        "no activities",
			input:       `<TrainingCenterDatabase><Activities/></TrainingCenterDatabase>`,
			expectedErr: ErrNoActivityData,
		},
		{
			name: "only biking",
			input: `<TrainingCenterDatabase><Activities><Activity Sport="Biking">
				<Lap><TotalTimeSeconds>60</TotalTimeSeconds></Lap></Activity></Activities></TrainingCenterDatabase>`,
			expectedErr: ErrUnsupportedSport,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTCXParser(testAthlete).ParseData([]byte(tc.input))
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestTCXParserBadNumber(t *testing.T) {
	input := `<TrainingCenterDatabase><Activities><Activity Sport="Walking">
		<Lap><TotalTimeSeconds>sixty</TotalTimeSeconds></Lap></Activity></Activities></TrainingCenterDatabase>`

	_, err := NewTCXParser(testAthlete).ParseData([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TotalTimeSeconds")
}
