package patient

import (
	"github.com/dmitrymomot/orderkit/pkg/classify"
	"github.com/dmitrymomot/orderkit/pkg/sanitizer"
	"github.com/dmitrymomot/orderkit/pkg/validator"
)

const maxNameLength = 50

var cleanName = sanitizer.Compose(sanitizer.NormalizeWhitespace, sanitizer.ToUpper)

// Validator constructs Patients from raw Input.
type Validator struct {
	domains   []string
	aggregate bool
	fields    *validator.Registry[Input]
}

type Option func(*Validator)

// WithAllowedDomains restricts email addresses to the given domains.
func WithAllowedDomains(domains ...string) Option {
	return func(v *Validator) {
		v.domains = sanitizer.Apply(domains, sanitizer.TrimStringSlice, sanitizer.FilterEmpty)
	}
}

// WithAllErrors reports every failing rule of a phase instead of the first one.
func WithAllErrors() Option {
	return func(v *Validator) { v.aggregate = true }
}

func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	v.fields = fieldRules(v.domains)
	return v
}

// Construct normalizes in, checks its fields, then the record rules.
func (v *Validator) Construct(in Input) (Patient, error) {
	in = in.normalize()

	validateFields, applyRules := v.fields.Validate, validator.First
	if v.aggregate {
		validateFields, applyRules = v.fields.ValidateAll, validator.Apply
	}

	if err := validateFields(in); err != nil {
		return Patient{}, err
	}

	candidate := Patient{
		Name:           in.Name,
		Age:            in.Age,
		WeightKg:       in.WeightKg,
		HeightM:        in.HeightM,
		Email:          in.Email,
		Married:        in.Married,
		Allergies:      in.Allergies,
		ContactDetails: in.ContactDetails,
	}
	if err := applyRules(recordRules(candidate)...); err != nil {
		return Patient{}, err
	}
	return candidate.clone(), nil
}

func (in Input) normalize() Input {
	in.Name = cleanName(in.Name)
	in.Email = sanitizer.NormalizeEmail(in.Email)
	in.Allergies = sanitizer.CleanStringSlice(in.Allergies)
	in.ContactDetails = sanitizer.CleanStringMap(in.ContactDetails)
	return in
}

func fieldRules(domains []string) *validator.Registry[Input] {
	return validator.NewRegistry[Input]().
		Field("name",
			func(in Input) validator.Rule { return validator.Required("name", in.Name) },
			func(in Input) validator.Rule { return validator.MaxLen("name", in.Name, maxNameLength) },
		).
		Field("age",
			func(in Input) validator.Rule { return validator.GreaterThan("age", in.Age, 0) },
			func(in Input) validator.Rule { return validator.LessThan("age", in.Age, 100) },
		).
		Field("weight",
			func(in Input) validator.Rule { return validator.Finite("weight", in.WeightKg) },
			func(in Input) validator.Rule { return validator.GreaterThan("weight", in.WeightKg, 0) },
		).
		Field("height",
			func(in Input) validator.Rule { return validator.Finite("height", in.HeightM) },
			func(in Input) validator.Rule { return validator.GreaterThan("height", in.HeightM, 0) },
		).
		Field("email",
			func(in Input) validator.Rule { return validator.ValidEmail("email", in.Email) },
			func(in Input) validator.Rule {
				return validator.When(len(domains) > 0, validator.EmailDomainIn("email", in.Email, domains))
			},
		)
}

// recordRules run on a field-valid candidate. A height so small that
// weight / height² overflows is rejected here, so every accepted Patient
// has a finite BMI.
func recordRules(p Patient) []validator.Rule {
	return []validator.Rule{
		validator.CrossField("height", "weight and height do not give a valid body mass index", "validation.bmi", nil,
			func() bool {
				_, err := classify.BodyMassIndex(p.WeightKg, p.HeightM)
				return err == nil
			}),
		validator.RequiredKeyWhen("contact_details", p.ContactDetails, EmergencyContactKey,
			p.Age > EmergencyContactAge, "patients older than 70 must have an emergency contact"),
	}
}
