package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// centered returns a box inside the typical odometer region.
func centered() BoundingBox {
	return BoundingBox{Left: 0.45, Top: 0.45, Width: 0.1, Height: 0.05}
}

func TestSelectReading_PureNumberWins(t *testing.T) {
	tokens := []Token{
		{Text: "45231", Confidence: 96, Box: centered()},
		{Text: "TRIP", Confidence: 99, Box: centered()},
	}

	reading, err := SelectReading(tokens)

	assert.NoError(t, err)
	assert.Equal(t, 45231.0, reading.Mileage)
	assert.Equal(t, MethodPureNumber, reading.Method)
	assert.Equal(t, 96.0, reading.Confidence)
}

func TestSelectReading_ConfidenceBeatsLength(t *testing.T) {
	// 90 vs 87 is outside the tie window: the more confident candidate wins
	// even though the other has more digits.
	tokens := []Token{
		{Text: "45231", Confidence: 90, Box: centered()},
		{Text: "1452319", Confidence: 87, Box: centered()},
	}

	reading, err := SelectReading(tokens)

	assert.NoError(t, err)
	assert.Equal(t, 45231.0, reading.Mileage)
}

func TestSelectReading_TieBrokenByLength(t *testing.T) {
	// 90 vs 88 is within the tie window: the longer digit string wins.
	tokens := []Token{
		{Text: "452310", Confidence: 90, Box: centered()},
		{Text: "1452319", Confidence: 88, Box: centered()},
	}

	reading, err := SelectReading(tokens)

	assert.NoError(t, err)
	assert.Equal(t, 1452319.0, reading.Mileage)
}

func TestSelectReading_LabelProximity(t *testing.T) {
	// 4-digit reading is too short for the pure-number heuristic but sits
	// right next to an ODO label.
	tokens := []Token{
		{Text: "ODO", Confidence: 95, Box: BoundingBox{Left: 0.40, Top: 0.50, Width: 0.05, Height: 0.04}},
		{Text: "9876", Confidence: 85, Box: BoundingBox{Left: 0.47, Top: 0.50, Width: 0.06, Height: 0.04}},
	}

	reading, err := SelectReading(tokens)

	assert.NoError(t, err)
	assert.Equal(t, 9876.0, reading.Mileage)
	assert.Equal(t, MethodLabelProximity, reading.Method)
}

func TestSelectReading_LabelTooFarAway(t *testing.T) {
	tokens := []Token{
		{Text: "ODO", Confidence: 95, Box: BoundingBox{Left: 0.05, Top: 0.05, Width: 0.05, Height: 0.04}},
		{Text: "9876", Confidence: 85, Box: BoundingBox{Left: 0.47, Top: 0.50, Width: 0.06, Height: 0.04}},
	}

	reading, err := SelectReading(tokens)

	// Falls through to the region heuristic instead.
	assert.NoError(t, err)
	assert.Equal(t, MethodOdometerRegion, reading.Method)
}

func TestSelectReading_RegionFallback(t *testing.T) {
	tokens := []Token{
		{Text: "8421", Confidence: 78, Box: BoundingBox{Left: 0.5, Top: 0.4, Width: 0.1, Height: 0.05}},
		// Outside the region, otherwise identical.
		{Text: "9999", Confidence: 78, Box: BoundingBox{Left: 0.05, Top: 0.05, Width: 0.1, Height: 0.05}},
	}

	reading, err := SelectReading(tokens)

	assert.NoError(t, err)
	assert.Equal(t, 8421.0, reading.Mileage)
	assert.Equal(t, MethodOdometerRegion, reading.Method)
}

func TestSelectReading_HighConfidenceLastResort(t *testing.T) {
	// Four digits, far outside the odometer region, but near-certain.
	tokens := []Token{
		{Text: "1234", Confidence: 97, Box: BoundingBox{Left: 0.05, Top: 0.9, Width: 0.1, Height: 0.05}},
	}

	reading, err := SelectReading(tokens)

	assert.NoError(t, err)
	assert.Equal(t, MethodHighConfidence, reading.Method)
}

func TestSelectReading_NoCandidates(t *testing.T) {
	tokens := []Token{
		{Text: "DASHBOARD", Confidence: 99, Box: centered()},
		{Text: "123", Confidence: 99, Box: centered()}, // too short for every heuristic
	}

	_, err := SelectReading(tokens)

	assert.ErrorIs(t, err, ErrNoReadingFound)
}

func TestSelectReading_SeparatorsStripped(t *testing.T) {
	tokens := []Token{
		{Text: "45,231", Confidence: 96, Box: centered()},
	}

	reading, err := SelectReading(tokens)

	assert.NoError(t, err)
	assert.Equal(t, 45231.0, reading.Mileage)
	assert.Equal(t, "45,231", reading.RawText)
}
