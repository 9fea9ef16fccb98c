package patient_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderkit/pkg/classify"
	"github.com/dmitrymomot/orderkit/pkg/patient"
	"github.com/dmitrymomot/orderkit/pkg/validator"
)

func validInput() patient.Input {
	return patient.Input{
		Name:     "  sayantan   roy ",
		Age:      26,
		WeightKg: 72,
		HeightM:  1.72,
		Email:    "Sayantan@HDFCBank.com",
		Allergies: []string{
			" pollen ", "dust", "", "pollen",
		},
		ContactDetails: map[string]string{
			"phone": " 8597715603 ",
		},
	}
}

func TestConstruct(t *testing.T) {
	t.Parallel()

	p, err := patient.NewValidator().Construct(validInput())
	require.NoError(t, err)

	assert.Equal(t, "SAYANTAN ROY", p.Name)
	assert.Equal(t, "sayantan@hdfcbank.com", p.Email)
	assert.Equal(t, []string{"pollen", "dust"}, p.Allergies)
	assert.Equal(t, map[string]string{"phone": "8597715603"}, p.ContactDetails)
	assert.Nil(t, p.Married)

	assert.Equal(t, 24.34, p.BMI())
	assert.Equal(t, classify.Normal, p.HealthStatus())
	assert.Equal(t, patient.Profile{Name: "SAYANTAN ROY", Age: 26, BMI: 24.34, HealthStatus: classify.Normal}, patient.Describe(p))
}

func TestConstruct_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	married := true
	in := validInput()
	in.Married = &married
	p, err := patient.NewValidator().Construct(in)
	require.NoError(t, err)

	married = false
	in.ContactDetails["phone"] = "changed"
	assert.True(t, *p.Married)
	assert.Equal(t, "8597715603", p.ContactDetails["phone"])
}

func TestConstruct_FieldRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*patient.Input)
		field    string
		sentinel error
	}{
		{"blank name", func(in *patient.Input) { in.Name = "   " }, "name", validator.ErrFieldFormat},
		{"long name", func(in *patient.Input) { in.Name = strings.Repeat("a", 51) }, "name", validator.ErrFieldFormat},
		{"zero age", func(in *patient.Input) { in.Age = 0 }, "age", validator.ErrFieldRange},
		{"age 100", func(in *patient.Input) { in.Age = 100 }, "age", validator.ErrFieldRange},
		{"zero weight", func(in *patient.Input) { in.WeightKg = 0 }, "weight", validator.ErrFieldRange},
		{"negative height", func(in *patient.Input) { in.HeightM = -1.7 }, "height", validator.ErrFieldRange},
		{"infinite weight", func(in *patient.Input) { in.WeightKg = math.Inf(1) }, "weight", validator.ErrFieldRange},
		{"NaN height", func(in *patient.Input) { in.HeightM = math.NaN() }, "height", validator.ErrFieldRange},
		{"bad email", func(in *patient.Input) { in.Email = "sayantan" }, "email", validator.ErrFieldFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validInput()
			tt.mutate(&in)
			_, err := patient.NewValidator().Construct(in)
			require.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.field, validator.ExtractValidationErrors(err)[0].Field)
		})
	}
}

func TestConstruct_NameLength(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Name = strings.Repeat("z", 50)
	_, err := patient.NewValidator().Construct(in)
	assert.NoError(t, err)

	in.Name += "k"
	_, err = patient.NewValidator().Construct(in)
	assert.ErrorIs(t, err, validator.ErrFieldFormat)
}

func TestConstruct_AllowedDomains(t *testing.T) {
	t.Parallel()

	v := patient.NewValidator(patient.WithAllowedDomains("icicbank.com", " hdfcbank.com "))
	_, err := v.Construct(validInput())
	assert.NoError(t, err)

	in := validInput()
	in.Email = "sayantan@gmail.com"
	_, err = v.Construct(in)
	require.ErrorIs(t, err, validator.ErrFieldFormat)
	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, "validation.email_domain", errs[0].TranslationKey)

	_, err = patient.NewValidator().Construct(in)
	assert.NoError(t, err, "any domain without an allow list")
}

func TestConstruct_EmergencyContact(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Age = 71
	_, err := patient.NewValidator().Construct(in)
	require.ErrorIs(t, err, validator.ErrCrossFieldRule)
	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, "contact_details", errs[0].Field)
	assert.Equal(t, "emergency_contact", errs[0].TranslationValues["key"])

	in.ContactDetails = map[string]string{"emergency_contact": "235678"}
	_, err = patient.NewValidator().Construct(in)
	assert.NoError(t, err)

	in = validInput()
	in.Age = 70
	_, err = patient.NewValidator().Construct(in)
	assert.NoError(t, err, "exactly 70 needs no emergency contact")
}

func TestConstruct_OverflowingBMI(t *testing.T) {
	t.Parallel()

	var in patient.Input
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Tiny", "age": 30, "weight": 70, "height": 1e-200, "email": "tiny@example.com"
	}`), &in))

	var (
		p   patient.Patient
		err error
	)
	require.NotPanics(t, func() { p, err = patient.NewValidator().Construct(in) })
	require.ErrorIs(t, err, validator.ErrCrossFieldRule)
	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, "height", errs[0].Field)
	assert.Equal(t, "validation.bmi", errs[0].TranslationKey)
	assert.Equal(t, patient.Patient{}, p)

	assert.NotPanics(t, func() {
		assert.Equal(t, patient.Profile{Name: "X", HealthStatus: classify.Underweight},
			patient.Describe(patient.Patient{Name: "X", WeightKg: 70, HeightM: 1e-200}))
	})
}

func TestConstruct_AllErrors(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Age = 0
	in.Email = "bad"
	_, err := patient.NewValidator(patient.WithAllErrors()).Construct(in)
	assert.Equal(t, []string{"age", "email"}, validator.ExtractValidationErrors(err).Fields())
}

func TestBMI_HealthBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		weight, height float64
		want           classify.HealthStatus
	}{
		{50, 1.8, classify.Underweight},
		{70, 1.75, classify.Normal},
		{85, 1.75, classify.Overweight},
		{110, 1.75, classify.Obese},
	}
	for _, tt := range tests {
		p := patient.Patient{WeightKg: tt.weight, HeightM: tt.height}
		assert.Equal(t, tt.want, p.HealthStatus())
	}

	assert.Equal(t, 0.0, patient.Patient{}.BMI())
}
