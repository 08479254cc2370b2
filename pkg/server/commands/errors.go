package commands

import (
	"errors"
	"fmt"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
)

var (
	ErrDeleteSchemaConcept = errors.New("schema concepts cannot be deleted")
	ErrMissingMatch        = errors.New("delete query has no match")
)

// DeleteSchemaConceptError is returned when a delete query binds a variable to a
// schema concept. Schema concepts are removed with undefine.
type DeleteSchemaConceptError struct {
	Var     graql.Variable
	Concept *concept.Concept
}

func (e *DeleteSchemaConceptError) Error() string {
	return fmt.Sprintf("cannot delete %s bound to %s: use undefine to remove schema concepts", e.Concept, e.Var)
}

func (e *DeleteSchemaConceptError) Unwrap() error {
	return ErrDeleteSchemaConcept
}
