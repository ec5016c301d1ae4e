// Package draft wraps the text-completion service that writes the body
// paragraph of a document from a user-supplied topic.
package draft

import (
	"context"

	"formalgen/internal/lookup"
)

// Kind selects which document the body is drafted for.
type Kind string

const (
	KindOfficeOrder Kind = "order"
	KindCircular    Kind = "circular"
)

// Drafter generates plain body text for a topic. Implementations must not
// retry or cache; a failed call propagates to the caller.
type Drafter interface {
	Draft(ctx context.Context, topic string, lang lookup.Language, kind Kind) (string, error)
}
