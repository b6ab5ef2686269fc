// Package statements models typed causal assertions and assembles them into
// signed graphs.
//
// A Statement is one subject→object assertion with a type drawn from a
// closed set. Regulation types carry a polarity (Activation and
// IncreaseAmount are positive, Inhibition and DecreaseAmount negative);
// modification and binding types (Phosphorylation, Dephosphorylation,
// Complex) carry none and cannot contribute edges to a signed graph.
package statements

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/elda27/indra/causal"
)

// ErrUnknownType is returned by ParseType for names outside the closed set.
var ErrUnknownType = errors.New("statements: unknown statement type")

// Type classifies a causal assertion.
type Type int

const (
	// Activation: the subject activates the object.
	Activation Type = iota

	// Inhibition: the subject inhibits the object.
	Inhibition

	// IncreaseAmount: the subject increases the object's amount.
	IncreaseAmount

	// DecreaseAmount: the subject decreases the object's amount.
	DecreaseAmount

	// Phosphorylation: the subject phosphorylates the object.
	Phosphorylation

	// Dephosphorylation: the subject dephosphorylates the object.
	Dephosphorylation

	// Complex: the subject and object form a complex.
	Complex
)

// Valid reports whether t is one of the defined statement types.
func (t Type) Valid() bool { return t >= Activation && t <= Complex }

// String returns the canonical type name.
func (t Type) String() string {
	switch t {
	case Activation:
		return "Activation"
	case Inhibition:
		return "Inhibition"
	case IncreaseAmount:
		return "IncreaseAmount"
	case DecreaseAmount:
		return "DecreaseAmount"
	case Phosphorylation:
		return "Phosphorylation"
	case Dephosphorylation:
		return "Dephosphorylation"
	case Complex:
		return "Complex"
	default:
		return "Unknown"
	}
}

// Sign maps the type to the edge polarity it asserts. Activation and
// IncreaseAmount are positive regulation, Inhibition and DecreaseAmount
// negative; every other type has no polarity and reports ok=false.
func (t Type) Sign() (causal.Sign, bool) {
	switch t {
	case Activation, IncreaseAmount:
		return causal.Positive, true
	case Inhibition, DecreaseAmount:
		return causal.Negative, true
	default:
		return 0, false
	}
}

// ParseType resolves a canonical type name, case-insensitively.
func ParseType(s string) (Type, error) {
	for t := Activation; t <= Complex; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Statement is one typed causal assertion between two entities.
type Statement struct {
	// ID uniquely identifies the assertion.
	ID uuid.UUID

	// Type classifies the assertion.
	Type Type

	// Subject is the acting entity.
	Subject string

	// Object is the acted-on entity.
	Object string

	// Belief is the overall support for the assertion, in [0, 1].
	Belief float64

	// Evidence lists the mentions supporting the assertion.
	Evidence []causal.Evidence
}

// New builds a Statement with a fresh unique ID.
func New(t Type, subject, object string, belief float64, ev ...causal.Evidence) Statement {
	return Statement{
		ID:       uuid.New(),
		Type:     t,
		Subject:  subject,
		Object:   object,
		Belief:   belief,
		Evidence: ev,
	}
}

// String renders the statement in "Activation(BRAF, MAP2K1)" notation.
func (s Statement) String() string {
	return fmt.Sprintf("%s(%s, %s)", s.Type, s.Subject, s.Object)
}
