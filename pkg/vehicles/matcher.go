// Package vehicles matches an AI vehicle detection against a user's
// registered vehicles.
package vehicles

import (
	"strings"

	"github.com/greenmiles/odometer-rewards/pkg/models"
)

// Attribute weights and the acceptance threshold for a fuzzy match. A match
// needs at least two agreeing attributes including make or model.
const (
	typeWeight     = 0.4
	makeWeight     = 0.3
	modelWeight    = 0.3
	matchThreshold = 0.7
)

// Match pairs a vehicle with the confidence of the match.
type Match struct {
	Vehicle    *models.Vehicle
	Confidence float64
}

// MatchVehicle resolves which of the user's vehicles appears in the photo.
// An explicitly supplied vehicle ID that resolves wins outright; otherwise,
// including when the supplied ID is unknown, the detection is scored against
// each active registered vehicle and the best score above the threshold is
// taken. Returns nil when nothing matches.
func MatchVehicle(vehicles []*models.Vehicle, detection *models.VehicleDetection, explicitVehicleID string) *Match {
	if explicitVehicleID != "" {
		for _, v := range vehicles {
			if v.Id == explicitVehicleID {
				return &Match{Vehicle: v, Confidence: 1.0}
			}
		}
	}

	if detection == nil {
		return nil
	}

	var best *Match
	for _, v := range vehicles {
		if !v.Active {
			continue
		}
		score := score(v, detection)
		if score <= matchThreshold {
			continue
		}
		if best == nil || score > best.Confidence {
			best = &Match{Vehicle: v, Confidence: score}
		}
	}
	return best
}

// score computes the weighted attribute agreement between a registered
// vehicle and a detection.
func score(v *models.Vehicle, d *models.VehicleDetection) float64 {
	var s float64
	if equalFold(v.Type, d.Type) {
		s += typeWeight
	}
	if equalFold(v.Make, d.Make) {
		s += makeWeight
	}
	if equalFold(v.Model, d.Model) {
		s += modelWeight
	}
	return s
}

func equalFold(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && b != "" && strings.EqualFold(a, b)
}
