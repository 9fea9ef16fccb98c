package classify

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/orderkit/pkg/sanitizer"
)

// HealthStatus is a body-mass-index band.
type HealthStatus string

const (
	Underweight HealthStatus = "Underweight"
	Normal      HealthStatus = "Normal"
	Overweight  HealthStatus = "Overweight"
	Obese       HealthStatus = "Obese"
)

var healthBands = MustLadder(
	[]float64{18.5, 25, 30},
	[]HealthStatus{Underweight, Normal, Overweight, Obese},
)

// BodyMassIndex is weight / height², rounded to 2 places.
// Weight is in kilograms, height in meters. Both must be positive and
// finite, and so must the quotient.
func BodyMassIndex(weightKg, heightM float64) (float64, error) {
	if !(weightKg > 0) || math.IsInf(weightKg, 0) {
		return 0, fmt.Errorf("%w: weight must be positive and finite, got %v", ErrInvalidMeasurement, weightKg)
	}
	if !(heightM > 0) || math.IsInf(heightM, 0) {
		return 0, fmt.Errorf("%w: height must be positive and finite, got %v", ErrInvalidMeasurement, heightM)
	}
	bmi := weightKg / (heightM * heightM)
	if math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return 0, fmt.Errorf("%w: weight %v over height %v squared overflows", ErrInvalidMeasurement, weightKg, heightM)
	}
	return sanitizer.RoundToDecimalPlaces(bmi, 2), nil
}

// Health returns the band of an already computed, rounded index.
func Health(bmi float64) HealthStatus {
	return healthBands.Classify(bmi)
}
