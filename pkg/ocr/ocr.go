// Package ocr extracts the odometer reading from detected text tokens.
package ocr

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNoReadingFound is returned when no token satisfies any detection
// heuristic.
var ErrNoReadingFound = errors.New("no odometer reading found in image")

// BoundingBox locates a token within the image, normalized to [0, 1].
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Token is a single piece of text detected by the OCR provider, with its
// confidence on a 0-100 scale.
type Token struct {
	Text       string
	Confidence float64
	Box        BoundingBox
}

// Provider defines the interface for an external OCR service.
type Provider interface {
	// DetectText runs text detection over image bytes.
	DetectText(ctx context.Context, image []byte) ([]Token, error)
}

// Reading is the single best odometer reading extracted from an image.
type Reading struct {
	Mileage    float64
	Confidence float64
	RawText    string
	Box        BoundingBox
	Method     string
}

// Detection heuristic names, recorded on the upload for observability.
const (
	MethodPureNumber     = "pure_number"
	MethodLabelProximity = "label_proximity"
	MethodOdometerRegion = "odometer_region"
	MethodHighConfidence = "high_confidence"
)

// confidenceTieWindow is the band within which two candidates are considered
// equally confident and the longer digit string wins. Outside the band the
// higher confidence always wins.
const confidenceTieWindow = 2.0

// labelWords are tokens that indicate an odometer caption on the dashboard.
var labelWords = map[string]bool{
	"odo":      true,
	"odometer": true,
	"mileage":  true,
	"miles":    true,
	"mi":       true,
	"km":       true,
	"trip":     true,
	"total":    true,
}

// Extractor picks the best odometer reading out of a provider's tokens.
type Extractor struct {
	Provider Provider
}

// NewExtractor creates a new Extractor.
func NewExtractor(provider Provider) *Extractor {
	return &Extractor{Provider: provider}
}

// Extract runs OCR and applies the detection heuristics in priority order.
// The first heuristic that yields any candidate decides the candidate set;
// within it the selection prefers certainty, then longer (more specific)
// readings.
func (e *Extractor) Extract(ctx context.Context, image []byte) (*Reading, error) {
	tokens, err := e.Provider.DetectText(ctx, image)
	if err != nil {
		return nil, err
	}
	return SelectReading(tokens)
}

// SelectReading applies the four detection heuristics to an already-detected
// token list. Split out from Extract so the policy is testable without a
// provider.
func SelectReading(tokens []Token) (*Reading, error) {
	heuristics := []struct {
		method string
		filter func([]Token) []Token
	}{
		{MethodPureNumber, pureNumberCandidates},
		{MethodLabelProximity, labelProximityCandidates},
		{MethodOdometerRegion, regionCandidates},
		{MethodHighConfidence, highConfidenceCandidates},
	}

	for _, h := range heuristics {
		candidates := h.filter(tokens)
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		for _, c := range candidates[1:] {
			if betterCandidate(c, best) {
				best = c
			}
		}

		mileage, _ := strconv.ParseFloat(digitsOf(best.Text), 64)
		return &Reading{
			Mileage:    mileage,
			Confidence: best.Confidence,
			RawText:    best.Text,
			Box:        best.Box,
			Method:     h.method,
		}, nil
	}

	return nil, ErrNoReadingFound
}

// betterCandidate reports whether a should be preferred over b: higher
// confidence first, with near-equal confidences resolved toward the longer
// digit string.
func betterCandidate(a, b Token) bool {
	if math.Abs(a.Confidence-b.Confidence) <= confidenceTieWindow {
		da, db := len(digitsOf(a.Text)), len(digitsOf(b.Text))
		if da != db {
			return da > db
		}
	}
	return a.Confidence > b.Confidence
}

// Heuristic 1: pure numeric tokens of 5-7 digits with confidence > 85.
func pureNumberCandidates(tokens []Token) []Token {
	var out []Token
	for _, t := range tokens {
		d := digitsOf(t.Text)
		if d != "" && isNumeric(t.Text) && len(d) >= 5 && len(d) <= 7 && t.Confidence > 85 {
			out = append(out, t)
		}
	}
	return out
}

// Heuristic 2: numeric tokens spatially near odometer-related labels, 4-7
// digits, confidence > 80. "Near" means center distance under 10% of the
// image dimensions on both axes.
func labelProximityCandidates(tokens []Token) []Token {
	var labels []Token
	for _, t := range tokens {
		if labelWords[strings.ToLower(strings.Trim(t.Text, ".:"))] {
			labels = append(labels, t)
		}
	}
	if len(labels) == 0 {
		return nil
	}

	var out []Token
	for _, t := range tokens {
		d := digitsOf(t.Text)
		if !isNumeric(t.Text) || len(d) < 4 || len(d) > 7 || t.Confidence <= 80 {
			continue
		}
		for _, l := range labels {
			if math.Abs(center(t.Box).x-center(l.Box).x) < 0.1 && math.Abs(center(t.Box).y-center(l.Box).y) < 0.1 {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// Heuristic 3: numeric tokens inside the typical odometer region of a
// dashboard photo, confidence > 75.
func regionCandidates(tokens []Token) []Token {
	var out []Token
	for _, t := range tokens {
		d := digitsOf(t.Text)
		if !isNumeric(t.Text) || len(d) < 4 || len(d) > 7 || t.Confidence <= 75 {
			continue
		}
		if t.Box.Left >= 0.3 && t.Box.Left <= 0.9 && t.Box.Top >= 0.2 && t.Box.Top <= 0.8 {
			out = append(out, t)
		}
	}
	return out
}

// Heuristic 4: any 4-7 digit token with confidence > 95.
func highConfidenceCandidates(tokens []Token) []Token {
	var out []Token
	for _, t := range tokens {
		d := digitsOf(t.Text)
		if isNumeric(t.Text) && len(d) >= 4 && len(d) <= 7 && t.Confidence > 95 {
			out = append(out, t)
		}
	}
	return out
}

type point struct{ x, y float64 }

func center(b BoundingBox) point {
	return point{x: b.Left + b.Width/2, y: b.Top + b.Height/2}
}

// digitsOf strips separators and returns only the digit characters.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isNumeric reports whether the token is a number once common odometer
// separators are removed.
func isNumeric(s string) bool {
	cleaned := strings.NewReplacer(",", "", ".", "", " ", "").Replace(s)
	if cleaned == "" {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
