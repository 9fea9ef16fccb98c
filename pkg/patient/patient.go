package patient

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/orderkit/pkg/classify"
)

// EmergencyContactKey is the contact entry required for patients over EmergencyContactAge.
const (
	EmergencyContactKey = "emergency_contact"
	EmergencyContactAge = 70
)

// Input is the raw intake form.
type Input struct {
	Name           string            `json:"name" yaml:"name"`
	Age            int               `json:"age" yaml:"age"`
	WeightKg       float64           `json:"weight" yaml:"weight"`
	HeightM        float64           `json:"height" yaml:"height"`
	Email          string            `json:"email" yaml:"email"`
	Married        *bool             `json:"married,omitempty" yaml:"married,omitempty"`
	Allergies      []string          `json:"allergies,omitempty" yaml:"allergies,omitempty"`
	ContactDetails map[string]string `json:"contact_details,omitempty" yaml:"contact_details,omitempty"`
}

// Patient is an accepted intake record.
type Patient struct {
	Name           string            `json:"name" yaml:"name"`
	Age            int               `json:"age" yaml:"age"`
	WeightKg       float64           `json:"weight" yaml:"weight"`
	HeightM        float64           `json:"height" yaml:"height"`
	Email          string            `json:"email" yaml:"email"`
	Married        *bool             `json:"married,omitempty" yaml:"married,omitempty"`
	Allergies      []string          `json:"allergies" yaml:"allergies"`
	ContactDetails map[string]string `json:"contact_details" yaml:"contact_details"`
}

// BMI is weight / height² rounded to 2 places. A Patient whose index cannot
// be computed, such as the zero Patient, reports 0.
func (p Patient) BMI() float64 {
	bmi, err := classify.BodyMassIndex(p.WeightKg, p.HeightM)
	if err != nil {
		return 0
	}
	return bmi
}

// HealthStatus is the band of BMI.
func (p Patient) HealthStatus() classify.HealthStatus {
	return classify.Health(p.BMI())
}

// Profile is the derived view of a Patient.
type Profile struct {
	Name         string                `json:"name" yaml:"name"`
	Age          int                   `json:"age" yaml:"age"`
	BMI          float64               `json:"bmi" yaml:"bmi"`
	HealthStatus classify.HealthStatus `json:"health_status" yaml:"health_status"`
}

// Describe returns the derived view of p.
func Describe(p Patient) Profile {
	bmi := p.BMI()
	return Profile{
		Name:         p.Name,
		Age:          p.Age,
		BMI:          bmi,
		HealthStatus: classify.Health(bmi),
	}
}

func (p Patient) clone() Patient {
	p.Allergies = slices.Clone(p.Allergies)
	p.ContactDetails = maps.Clone(p.ContactDetails)
	if p.Married != nil {
		married := *p.Married
		p.Married = &married
	}
	return p
}
