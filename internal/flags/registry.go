// Package flags is the generic field layer over a scan: a fixed, ordered
// table of fields, each resolvable to a typed accessor into one Scan.
package flags

import (
	"fmt"

	"github.com/user/nmapcraft/internal/model"
)

var (
	order  []FieldID
	byName map[string]FieldID
)

func init() {
	if len(fields) != int(fieldCount) {
		panic(fmt.Sprintf("flags: table has %d fields, want %d", len(fields), fieldCount))
	}
	order = make([]FieldID, len(fields))
	byName = make(map[string]FieldID, len(fields))
	for i, f := range fields {
		if f.ID != FieldID(i) {
			panic(fmt.Sprintf("flags: field %q at position %d has id %d", f.Name, i, f.ID))
		}
		if _, dup := byName[f.Name]; dup {
			panic(fmt.Sprintf("flags: duplicate field name %q", f.Name))
		}
		order[i] = f.ID
		byName[f.Name] = f.ID
	}
}

// TypeMismatchError reports a typed resolve against a field of another kind.
type TypeMismatchError struct {
	Field FieldID
	Want  Kind
	Got   Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %s is %s, not %s", e.Field, e.Got, e.Want)
}

func (id FieldID) valid() bool {
	return id >= 0 && id < fieldCount
}

func (id FieldID) String() string {
	if !id.valid() {
		return fmt.Sprintf("field(%d)", int(id))
	}
	return fields[id].Name
}

// Enumerate returns every field in display order. The slice is a fresh copy.
func Enumerate() []FieldID {
	return append([]FieldID(nil), order...)
}

// First returns the first field.
func First() FieldID {
	return order[0]
}

// Next returns the field after id, wrapping to the first.
func Next(id FieldID) FieldID {
	return FieldID((int(id) + 1) % len(order))
}

// Prev returns the field before id, wrapping to the last.
func Prev(id FieldID) FieldID {
	return FieldID((int(id) - 1 + len(order)) % len(order))
}

// Lookup returns the static description of id. It panics on an unknown id.
func Lookup(id FieldID) Field {
	if !id.valid() {
		panic(fmt.Sprintf("flags: unknown field %d", int(id)))
	}
	f := fields[id]
	f.Choices = append([]string(nil), f.Choices...)
	return f
}

// ByName finds a field by its kebab-case name.
func ByName(name string) (FieldID, bool) {
	id, ok := byName[name]
	return id, ok
}

// InSection returns the fields of one section in display order.
func InSection(sec Section) []FieldID {
	var out []FieldID
	for _, f := range fields {
		if f.Section == sec {
			out = append(out, f.ID)
		}
	}
	return out
}

// VariantArity returns the number of choices of an enumerated field.
func VariantArity(id FieldID) (int, bool) {
	if !id.valid() || fields[id].Kind != KindChoice {
		return 0, false
	}
	return len(fields[id].Choices), true
}

// Resolve returns the accessor for id bound to s. Accessors for different
// fields are independent of each other.
func Resolve(s *model.Scan, id FieldID) Accessor {
	if !id.valid() {
		panic(fmt.Sprintf("flags: unknown field %d", int(id)))
	}
	return fields[id].bind(s)
}

func resolveAs(s *model.Scan, id FieldID, want Kind) Accessor {
	acc := Resolve(s, id)
	if acc.Kind() != want {
		panic(&TypeMismatchError{Field: id, Want: want, Got: acc.Kind()})
	}
	return acc
}

// Bool resolves a boolean field.
func Bool(s *model.Scan, id FieldID) *BoolField {
	return resolveAs(s, id, KindBool).(*BoolField)
}

// Int resolves an optional integer field.
func Int(s *model.Scan, id FieldID) *IntField {
	return resolveAs(s, id, KindOptionalInt).(*IntField)
}

// Float resolves an optional float field.
func Float(s *model.Scan, id FieldID) *FloatField {
	return resolveAs(s, id, KindOptionalFloat).(*FloatField)
}

// String resolves an optional string field.
func String(s *model.Scan, id FieldID) *StringField {
	return resolveAs(s, id, KindOptionalString).(*StringField)
}

// Path resolves an optional path field.
func Path(s *model.Scan, id FieldID) *PathField {
	return resolveAs(s, id, KindOptionalPath).(*PathField)
}

// StringList resolves a string list field.
func StringList(s *model.Scan, id FieldID) *StringListField {
	return resolveAs(s, id, KindStringList).(*StringListField)
}

// IntList resolves an integer list field.
func IntList(s *model.Scan, id FieldID) *IntListField {
	return resolveAs(s, id, KindIntList).(*IntListField)
}

// Choice resolves an enumerated field.
func Choice(s *model.Scan, id FieldID) *ChoiceField {
	return resolveAs(s, id, KindChoice).(*ChoiceField)
}
