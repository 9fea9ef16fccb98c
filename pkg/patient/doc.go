// Package patient validates patient intake records with the same two-phase
// flow as package order: normalization, field rules, then record rules.
// Accepted records expose their body-mass index and health band, computed
// from the current field values on every call.
package patient
