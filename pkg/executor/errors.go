package executor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
)

var (
	ErrConflictingProperty       = errors.New("conflicting property")
	ErrPropertyOnExistingConcept = errors.New("property conflicts with an existing concept")
	ErrUnexpectedProperty        = errors.New("unexpected property")
	ErrMissingProperty           = errors.New("missing property")
	ErrUndefinedVariable         = errors.New("undefined variable")
	ErrInvalidSchemaMutation     = errors.New("invalid schema mutation")
	ErrMetaConceptInstantiation  = errors.New("meta concept cannot be instantiated")
	ErrConceptAlreadyExists      = errors.New("concept already exists")
	ErrCyclicDependency          = errors.New("cyclic dependency")
	ErrUnsupportedProperty       = errors.New("unsupported property")
	ErrInvalidCast               = errors.New("invalid cast")

	// ErrUnreachable signals a broken internal invariant rather than a user error.
	ErrUnreachable = errors.New("internal error: unreachable state")
)

// ConflictingPropertyError is returned when one variable is given two different
// values for the same builder parameter.
type ConflictingPropertyError struct {
	Statement string
	Param     Param
	Existing  any
	Value     any
}

func (e *ConflictingPropertyError) Error() string {
	return fmt.Sprintf("the statement '%s' has conflicting %s values '%v' and '%v'", e.Statement, e.Param, e.Existing, e.Value)
}

func (e *ConflictingPropertyError) Unwrap() error {
	return ErrConflictingProperty
}

// PropertyConflictOnExistingConceptError is returned when a parameter disagrees
// with the concept found by id or label.
type PropertyConflictOnExistingConceptError struct {
	Statement string
	Param     Param
	Concept   *concept.Concept
	Expected  any
	Actual    any
}

func (e *PropertyConflictOnExistingConceptError) Error() string {
	return fmt.Sprintf("the statement '%s' sets %s '%v' but the existing concept %s has '%v'", e.Statement, e.Param, e.Expected, e.Concept, e.Actual)
}

func (e *PropertyConflictOnExistingConceptError) Unwrap() error {
	return ErrPropertyOnExistingConcept
}

// UnexpectedPropertyError is returned when a parameter was supplied but not used
// to build the new concept.
type UnexpectedPropertyError struct {
	Statement string
	Param     Param
	Value     any
	Concept   *concept.Concept
}

func (e *UnexpectedPropertyError) Error() string {
	return fmt.Sprintf("the statement '%s' sets %s '%v' which does not apply to %s", e.Statement, e.Param, e.Value, e.Concept)
}

func (e *UnexpectedPropertyError) Unwrap() error {
	return ErrUnexpectedProperty
}

// MissingPropertyError is returned when building a concept requires a parameter
// that was not supplied.
type MissingPropertyError struct {
	Statement string
	Param     Param
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("the statement '%s' is missing %s", e.Statement, e.Param)
}

func (e *MissingPropertyError) Unwrap() error {
	return ErrMissingProperty
}

// UndefinedVariableError is returned for variables that cannot be resolved to a concept.
type UndefinedVariableError struct {
	Var       graql.Variable
	Statement string
}

func (e *UndefinedVariableError) Error() string {
	if e.Statement == "" {
		return fmt.Sprintf("the variable %s is not defined", e.Var)
	}
	return fmt.Sprintf("the variable %s is not defined by '%s'", e.Var, e.Statement)
}

func (e *UndefinedVariableError) Unwrap() error {
	return ErrUndefinedVariable
}

// InvalidSchemaMutationError is returned when a supertype of an incompatible kind
// is assigned to a schema concept.
type InvalidSchemaMutationError struct {
	Statement string
	Concept   *concept.Concept
	Super     *concept.Concept
	Cause     error
}

func (e *InvalidSchemaMutationError) Error() string {
	msg := fmt.Sprintf("the statement '%s' cannot make %s a subtype of %s", e.Statement, e.Concept, e.Super)
	if e.Concept == nil {
		msg = fmt.Sprintf("the statement '%s' cannot create a subtype of %s", e.Statement, e.Super)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InvalidSchemaMutationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidSchemaMutation, e.Cause}
	}
	return []error{ErrInvalidSchemaMutation}
}

// MetaConceptInstantiationError is returned when the root meta type is instantiated.
type MetaConceptInstantiationError struct {
	Statement string
	Type      *concept.Concept
}

func (e *MetaConceptInstantiationError) Error() string {
	return fmt.Sprintf("the statement '%s' instantiates the meta type '%s'", e.Statement, e.Type.Label)
}

func (e *MetaConceptInstantiationError) Unwrap() error {
	return ErrMetaConceptInstantiation
}

// ConceptAlreadyExistsError is returned when more parameters are added to a
// variable that has already been resolved.
type ConceptAlreadyExistsError struct {
	Var       graql.Variable
	Statement string
	Concept   *concept.Concept
}

func (e *ConceptAlreadyExistsError) Error() string {
	return fmt.Sprintf("the variable %s in '%s' is already bound to %s", e.Var, e.Statement, e.Concept)
}

func (e *ConceptAlreadyExistsError) Unwrap() error {
	return ErrConceptAlreadyExists
}

// CyclicDependencyError is returned when the properties of a query cannot be ordered.
type CyclicDependencyError struct {
	Var       graql.Variable
	Statement string
	Cycle     []graql.Variable
}

func (e *CyclicDependencyError) Error() string {
	msg := fmt.Sprintf("the statement '%s' has a cyclic dependency on %s", e.Statement, e.Var)
	if len(e.Cycle) > 0 {
		names := make([]string, 0, len(e.Cycle))
		for _, v := range e.Cycle {
			names = append(names, v.String())
		}
		msg += " (cycle through " + strings.Join(names, ", ") + ")"
	}
	return msg
}

func (e *CyclicDependencyError) Unwrap() error {
	return ErrCyclicDependency
}

// UnsupportedPropertyError is returned when a property cannot be used in a query mode.
type UnsupportedPropertyError struct {
	Mode     Mode
	Var      graql.Variable
	Property graql.Property
}

func (e *UnsupportedPropertyError) Error() string {
	return fmt.Sprintf("the property '%s %s' is not supported in %s queries", e.Var, e.Property, e.Mode)
}

func (e *UnsupportedPropertyError) Unwrap() error {
	return ErrUnsupportedProperty
}

// InvalidCastError is returned when a variable is bound to a concept of the wrong kind.
type InvalidCastError struct {
	Var      graql.Variable
	Concept  *concept.Concept
	Expected string
}

func (e *InvalidCastError) Error() string {
	return fmt.Sprintf("the variable %s is bound to %s, expected %s", e.Var, e.Concept, e.Expected)
}

func (e *InvalidCastError) Unwrap() error {
	return ErrInvalidCast
}
