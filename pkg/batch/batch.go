// Package batch decodes YAML or JSON batch files into write queries.
//
// A batch is a list of queries, each holding exactly one of define, insert,
// undefine or delete:
//
//	queries:
//	  - define:
//	      - {label: name, sub: attribute, datatype: string}
//	      - {label: person, sub: entity, owns: [name]}
//	  - insert:
//	      statements:
//	        - {var: x, isa: person, has: [{type: name, value: Alice}]}
//
// References starting with '$' name variables. Any other reference is a type
// label.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/graql"
)

// ErrInvalidBatch is wrapped by every decoding error.
var ErrInvalidBatch = errors.New("invalid batch")

// Query is one decoded write query. Exactly one field is set.
type Query struct {
	Define   *graql.DefineQuery
	Insert   *graql.InsertQuery
	Undefine *graql.UndefineQuery
	Delete   *graql.DeleteQuery
}

// Kind names the set field: define, insert, undefine or delete.
func (q Query) Kind() string {
	switch {
	case q.Define != nil:
		return "define"
	case q.Insert != nil:
		return "insert"
	case q.Undefine != nil:
		return "undefine"
	case q.Delete != nil:
		return "delete"
	}
	return ""
}

func (q Query) String() string {
	switch {
	case q.Define != nil:
		return q.Define.String()
	case q.Insert != nil:
		return q.Insert.String()
	case q.Undefine != nil:
		return q.Undefine.String()
	case q.Delete != nil:
		return q.Delete.String()
	}
	return ""
}

type file struct {
	Queries []querySpec `json:"queries"`
}

type querySpec struct {
	Define   []statementSpec `json:"define,omitempty"`
	Insert   *insertSpec     `json:"insert,omitempty"`
	Undefine []statementSpec `json:"undefine,omitempty"`
	Delete   *deleteSpec     `json:"delete,omitempty"`
}

type insertSpec struct {
	Match      map[string]string `json:"match,omitempty"`
	Statements []statementSpec   `json:"statements"`
}

type deleteSpec struct {
	Match map[string]string `json:"match"`
	Vars  []string          `json:"vars"`
}

type statementSpec struct {
	Var      string       `json:"var,omitempty"`
	ID       string       `json:"id,omitempty"`
	Label    string       `json:"label,omitempty"`
	Isa      string       `json:"isa,omitempty"`
	Sub      string       `json:"sub,omitempty"`
	Value    any          `json:"value,omitempty"`
	DataType string       `json:"datatype,omitempty"`
	Regex    string       `json:"regex,omitempty"`
	Abstract bool         `json:"abstract,omitempty"`
	Owns     []string     `json:"owns,omitempty"`
	Keys     []string     `json:"keys,omitempty"`
	Plays    []string     `json:"plays,omitempty"`
	Relates  []roleSpec   `json:"relates,omitempty"`
	Has      []hasSpec    `json:"has,omitempty"`
	Players  []playerSpec `json:"players,omitempty"`
	When     string       `json:"when,omitempty"`
	Then     string       `json:"then,omitempty"`
}

// roleSpec is a related role, written either as a bare reference or as
// {role: ..., as: ...} to declare it a subtype of another role.
type roleSpec struct {
	Role string `json:"role"`
	As   string `json:"as,omitempty"`
}

func (r *roleSpec) UnmarshalJSON(data []byte) error {
	var role string
	if err := json.Unmarshal(data, &role); err == nil {
		r.Role = role
		return nil
	}

	type plain roleSpec
	return json.Unmarshal(data, (*plain)(r))
}

// hasSpec attaches an attribute. Value creates or reuses an attribute of
// Type. Attribute references an attribute bound elsewhere. Via names the
// implicit ownership relation.
type hasSpec struct {
	Type      string `json:"type"`
	Value     any    `json:"value,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Via       string `json:"via,omitempty"`
}

type playerSpec struct {
	Role   string `json:"role"`
	Player string `json:"player"`
}

// ReadFile decodes the batch file at path.
func ReadFile(path string) ([]Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return Decode(data)
}

// Decode parses a YAML or JSON batch. Every problem found is reported,
// joined into one error.
func Decode(data []byte) ([]Query, error) {
	var f file
	err := yaml.UnmarshalStrict(data, &f, func(d *json.Decoder) *json.Decoder {
		d.UseNumber()
		return d
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}

	queries := make([]Query, 0, len(f.Queries))
	var errs []error
	for i, spec := range f.Queries {
		d := &decoder{path: fmt.Sprintf("queries[%d]", i)}
		q := d.query(spec)
		errs = append(errs, d.errs...)
		queries = append(queries, q)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}
	return queries, nil
}

// decoder collects the errors of one query. Variables are scoped to the query.
type decoder struct {
	path string
	errs []error
	vars map[string]*graql.Statement
}

func (d *decoder) errorf(path, format string, args ...any) {
	d.errs = append(d.errs, fmt.Errorf(path+": "+format, args...))
}

func (d *decoder) query(spec querySpec) Query {
	set := 0
	if spec.Define != nil {
		set++
	}
	if spec.Insert != nil {
		set++
	}
	if spec.Undefine != nil {
		set++
	}
	if spec.Delete != nil {
		set++
	}
	if set != 1 {
		d.errorf(d.path, "exactly one of define, insert, undefine or delete must be set")
		return Query{}
	}

	switch {
	case spec.Define != nil:
		return Query{Define: graql.Define(d.statements(d.path+".define", spec.Define)...)}
	case spec.Undefine != nil:
		return Query{Undefine: graql.Undefine(d.statements(d.path+".undefine", spec.Undefine)...)}
	case spec.Insert != nil:
		statements := d.statements(d.path+".insert.statements", spec.Insert.Statements)
		if len(spec.Insert.Match) == 0 {
			return Query{Insert: graql.Insert(statements...)}
		}
		return Query{Insert: graql.MatchInsert(d.match(d.path+".insert.match", spec.Insert.Match), statements...)}
	default:
		match := d.match(d.path+".delete.match", spec.Delete.Match)
		if len(spec.Delete.Vars) == 0 {
			d.errorf(d.path+".delete.vars", "no variables to delete")
		}
		vars := make([]graql.Variable, 0, len(spec.Delete.Vars))
		for _, name := range spec.Delete.Vars {
			v := graql.Var(name)
			if _, ok := match[v]; !ok {
				d.errorf(d.path+".delete.vars", "$%s is not bound by the match", v.Name())
			}
			vars = append(vars, v)
		}
		return Query{Delete: graql.Delete(match, vars...)}
	}
}

func (d *decoder) match(path string, bindings map[string]string) graql.IDMatcher {
	m := make(graql.IDMatcher, len(bindings))
	for name, id := range bindings {
		if id == "" {
			d.errorf(path, "empty id for $%s", strings.TrimPrefix(name, "$"))
			continue
		}
		m[graql.Var(name)] = concept.ID(id)
	}
	return m
}

func (d *decoder) statements(path string, specs []statementSpec) []*graql.Statement {
	if len(specs) == 0 {
		d.errorf(path, "no statements")
	}
	d.vars = make(map[string]*graql.Statement)

	out := make([]*graql.Statement, 0, len(specs))
	seen := make(map[*graql.Statement]struct{}, len(specs))
	for i, spec := range specs {
		s := d.statement(fmt.Sprintf("%s[%d]", path, i), spec)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// variable returns the statement of the user defined variable name, shared
// by every reference within the query.
func (d *decoder) variable(name string) *graql.Statement {
	name = strings.TrimPrefix(name, "$")
	if s, ok := d.vars[name]; ok {
		return s
	}
	s := graql.V(name)
	d.vars[name] = s
	return s
}

// ref resolves a reference: '$name' is a variable, anything else a label.
func (d *decoder) ref(path, ref string) *graql.Statement {
	switch {
	case ref == "" || ref == "$":
		d.errorf(path, "empty reference")
		return graql.Anon()
	case strings.HasPrefix(ref, "$"):
		return d.variable(ref)
	default:
		return graql.Type(ref)
	}
}

func (d *decoder) statement(path string, spec statementSpec) *graql.Statement {
	var s *graql.Statement
	if spec.Var != "" {
		s = d.variable(spec.Var)
	} else {
		s = graql.Anon()
	}

	if spec.ID != "" {
		s.ID(concept.ID(spec.ID))
	}
	if spec.Label != "" {
		s.Label(spec.Label)
	}
	if spec.Isa != "" {
		s.Isa(d.ref(path+".isa", spec.Isa))
	}
	if spec.Sub != "" {
		s.Sub(d.ref(path+".sub", spec.Sub))
	}
	if spec.Value != nil {
		s.Val(spec.Value)
	}
	if spec.DataType != "" {
		dt, err := concept.ParseDataType(spec.DataType)
		if err != nil {
			d.errorf(path+".datatype", "%v", err)
		} else {
			s.DataType(dt)
		}
	}
	if spec.Regex != "" {
		s.Regex(spec.Regex)
	}
	if spec.Abstract {
		s.Abstract()
	}
	for _, owned := range spec.Owns {
		s.Owns(d.ref(path+".owns", owned))
	}
	for _, key := range spec.Keys {
		s.Key(d.ref(path+".keys", key))
	}
	for _, role := range spec.Plays {
		s.Plays(d.ref(path+".plays", role))
	}
	for _, role := range spec.Relates {
		if role.As != "" {
			s.RelatesAs(d.ref(path+".relates", role.Role), d.ref(path+".relates.as", role.As))
		} else {
			s.Relates(d.ref(path+".relates", role.Role))
		}
	}
	for _, has := range spec.Has {
		d.has(path+".has", s, has)
	}
	for _, p := range spec.Players {
		s.Rel(d.ref(path+".players.role", p.Role), d.ref(path+".players.player", p.Player))
	}
	if spec.When != "" {
		s.When(spec.When)
	}
	if spec.Then != "" {
		s.Then(spec.Then)
	}

	if len(s.Properties) == 0 {
		d.errorf(path, "statement without properties")
	}
	return s
}

func (d *decoder) has(path string, s *graql.Statement, spec hasSpec) {
	if spec.Type == "" || strings.HasPrefix(spec.Type, "$") {
		d.errorf(path, "has needs an attribute type label")
		return
	}

	var attribute *graql.Statement
	switch {
	case spec.Value != nil && spec.Attribute != "":
		d.errorf(path, "has takes either a value or an attribute, not both")
		return
	case spec.Value != nil:
		attribute = graql.Anon().Isa(graql.Type(spec.Type)).Val(spec.Value)
	case spec.Attribute != "":
		attribute = d.ref(path+".attribute", spec.Attribute)
	default:
		d.errorf(path, "has needs a value or an attribute")
		return
	}

	relation := graql.Anon()
	if spec.Via != "" {
		relation = d.ref(path+".via", spec.Via)
	}
	s.HasVia(spec.Type, attribute, relation)
}
