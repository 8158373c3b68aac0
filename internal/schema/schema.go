// Package schema defines the clinical field registries that drive the rest
// of the application: which columns a dataset has, how each value is typed,
// which columns are derived rather than entered, and how columns are split
// between patient-level and sample-level attributes during export.
package schema

import (
	"fmt"
	"sort"
)

// Kind is the value type of a clinical field.
type Kind int

const (
	String Kind = iota
	Int
	Float
	Date
	DateList
	Bool
)

// String returns the cBioPortal datatype name for the kind.
func (k Kind) String() string {
	switch k {
	case Int, Float:
		return "NUMBER"
	case Bool:
		return "BOOLEAN"
	default:
		return "STRING"
	}
}

// Name returns the registry name of the kind.
func (k Kind) Name() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Date:
		return "date"
	case DateList:
		return "date_list"
	case Bool:
		return "bool"
	default:
		return "str"
	}
}

// Field describes a single clinical column.
type Field struct {
	Name    string
	Kind    Kind
	Options []string // suggested values shown at data entry; not enforced unless noted

	PatientLevel bool // exported into the patient table instead of the sample table
	Derived      bool // computed by the calculation engine, never hand-entered
	Drop         bool // removed before export (identifying information)
}

// StudyInfoField is a study-level metadata key with its suggested values.
type StudyInfoField struct {
	Key     string
	Options []string
}

// Schema is an ordered clinical field registry for one dataset flavor.
type Schema struct {
	Name            string
	SampleIDColumn  string
	StudyInfoFields []StudyInfoField

	fields []Field
	index  map[string]int
}

// New builds a schema from an ordered field list. The first field is the
// sample identifier column.
func New(name string, fields []Field, studyInfo []StudyInfoField) *Schema {
	s := &Schema{
		Name:            name,
		SampleIDColumn:  fields[0].Name,
		StudyInfoFields: studyInfo,
		fields:          fields,
		index:           make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s
}

// Fields returns the ordered field list.
func (s *Schema) Fields() []Field {
	return s.fields
}

// Field looks up a field by column name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Has reports whether the schema declares the column.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Columns returns the display column names in schema order.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// PatientLevelColumns returns the columns exported at patient level, in
// schema order.
func (s *Schema) PatientLevelColumns() []string {
	var out []string
	for _, f := range s.fields {
		if f.PatientLevel {
			out = append(out, f.Name)
		}
	}
	return out
}

// DropColumns returns the columns removed before export, in schema order.
func (s *Schema) DropColumns() []string {
	var out []string
	for _, f := range s.fields {
		if f.Drop {
			out = append(out, f.Name)
		}
	}
	return out
}

// DerivedColumns returns the columns computed by the calculation engine.
func (s *Schema) DerivedColumns() []string {
	var out []string
	for _, f := range s.fields {
		if f.Derived {
			out = append(out, f.Name)
		}
	}
	return out
}

// UnknownFieldError reports a record key that the schema does not declare.
type UnknownFieldError struct {
	Schema string
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("schema %q has no field %q", e.Schema, e.Field)
}

// ValidateRecord rejects record keys that the schema does not declare.
func (s *Schema) ValidateRecord(rec map[string]string) error {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !s.Has(k) {
			return &UnknownFieldError{Schema: s.Name, Field: k}
		}
	}
	return nil
}

var registry = map[string]*Schema{}

func register(s *Schema) *Schema {
	registry[s.Name] = s
	return s
}

// ByName returns a registered schema.
func ByName(name string) (*Schema, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (available: %v)", name, Names())
	}
	return s, nil
}

// Names returns the registered schema names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
