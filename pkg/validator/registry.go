package validator

// FieldRule builds a rule for one field from the whole input value, so it can
// consult sibling values.
type FieldRule[T any] func(in T) Rule

// NestedRules builds a list of rules for a composite field, such as a nested
// record or every element of a collection.
type NestedRules[T any] func(in T) []Rule

// Registry is an ordered mapping from field name to the rules attached to it.
// Fields are evaluated in the order they were first declared; rules of a field
// in the order they were attached.
type Registry[T any] struct {
	order  []string
	fields map[string][]NestedRules[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{fields: make(map[string][]NestedRules[T])}
}

// Field attaches rules to name. Calling Field again for the same name appends
// to its rule list without changing its position.
func (r *Registry[T]) Field(name string, rules ...FieldRule[T]) *Registry[T] {
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		r.attach(name, func(in T) []Rule { return []Rule{rule(in)} })
	}
	return r
}

// Nested attaches a builder producing several rules for name.
func (r *Registry[T]) Nested(name string, rules NestedRules[T]) *Registry[T] {
	if rules != nil {
		r.attach(name, rules)
	}
	return r
}

func (r *Registry[T]) attach(name string, builder NestedRules[T]) {
	if _, ok := r.fields[name]; !ok {
		r.order = append(r.order, name)
	}
	r.fields[name] = append(r.fields[name], builder)
}

// Fields returns field names in declaration order.
func (r *Registry[T]) Fields() []string {
	fields := make([]string, len(r.order))
	copy(fields, r.order)
	return fields
}

// Rules expands every builder against in, in declaration order.
func (r *Registry[T]) Rules(in T) []Rule {
	var rules []Rule
	for _, name := range r.order {
		for _, builder := range r.fields[name] {
			rules = append(rules, builder(in)...)
		}
	}
	return rules
}

// Validate stops at the first failing rule.
// Builders of later fields are not expanded once a field has failed.
func (r *Registry[T]) Validate(in T) error {
	for _, name := range r.order {
		for _, builder := range r.fields[name] {
			if err := First(builder(in)...); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateAll reports every failing rule.
func (r *Registry[T]) ValidateAll(in T) error {
	return Apply(r.Rules(in)...)
}
