package flags

import (
	"fmt"
	"math"
	"net/netip"

	"github.com/user/nmapcraft/internal/model"
)

// Kind tags the value shape behind a field.
type Kind int

const (
	KindBool Kind = iota
	KindOptionalInt
	KindOptionalFloat
	KindOptionalString
	KindOptionalPath
	KindStringList
	KindIntList
	KindChoice
)

var kindNames = map[Kind]string{
	KindBool:           "bool",
	KindOptionalInt:    "int",
	KindOptionalFloat:  "float",
	KindOptionalString: "string",
	KindOptionalPath:   "path",
	KindStringList:     "string-list",
	KindIntList:        "int-list",
	KindChoice:         "choice",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Accessor is a typed handle into one field of a scan. Callers switch on the
// concrete type (or Kind) and never on the field identifier.
type Accessor interface {
	Kind() Kind
}

// BoolField accesses a plain boolean.
type BoolField struct {
	p *bool
}

func (f *BoolField) Kind() Kind { return KindBool }
func (f *BoolField) Get() bool { return *f.p }
func (f *BoolField) Set(v bool) { *f.p = v }
func (f *BoolField) Toggle() { *f.p = !*f.p }

// IntField accesses an optional integer bounded to [Min, Max].
type IntField struct {
	Min, Max int

	get   func() (int, bool)
	set   func(int)
	clear func()
}

func (f *IntField) Kind() Kind { return KindOptionalInt }

// Get returns the value and whether it is set.
func (f *IntField) Get() (int, bool) { return f.get() }

// Set stores v, rejecting values outside the field's bounds.
func (f *IntField) Set(v int) error {
	if v < f.Min || v > f.Max {
		return fmt.Errorf("value %d out of range %d-%d", v, f.Min, f.Max)
	}
	f.set(v)
	return nil
}

// Clear unsets the field.
func (f *IntField) Clear() { f.clear() }

// FloatField accesses an optional float bounded to [Min, Max].
type FloatField struct {
	Min, Max float64

	p **float32
}

func (f *FloatField) Kind() Kind { return KindOptionalFloat }

func (f *FloatField) Get() (float64, bool) {
	if *f.p == nil {
		return 0, false
	}
	return float64(**f.p), true
}

func (f *FloatField) Set(v float64) error {
	if math.IsNaN(v) || v < f.Min || v > f.Max {
		return fmt.Errorf("value %g out of range %g-%g", v, f.Min, f.Max)
	}
	x := float32(v)
	*f.p = &x
	return nil
}

func (f *FloatField) Clear() { *f.p = nil }

// StringField accesses an optional free-text value. Some fields validate
// on Set (addresses, technique payloads).
type StringField struct {
	get   func() (string, bool)
	set   func(string) error
	clear func()
}

func (f *StringField) Kind() Kind { return KindOptionalString }
func (f *StringField) Get() (string, bool) { return f.get() }
func (f *StringField) Set(v string) error { return f.set(v) }
func (f *StringField) Clear() { f.clear() }

// PathField accesses an optional filesystem path.
type PathField struct {
	p **string
}

func (f *PathField) Kind() Kind { return KindOptionalPath }

func (f *PathField) Get() (string, bool) {
	if *f.p == nil {
		return "", false
	}
	return **f.p, true
}

func (f *PathField) Set(v string) { *f.p = &v }
func (f *PathField) Clear() { *f.p = nil }

// StringListField accesses an ordered list of strings.
type StringListField struct {
	p *[]string
}

func (f *StringListField) Kind() Kind { return KindStringList }

// Get returns a copy of the list.
func (f *StringListField) Get() []string {
	return append([]string(nil), (*f.p)...)
}

// Set replaces the list with a copy of v.
func (f *StringListField) Set(v []string) {
	if len(v) == 0 {
		*f.p = nil
		return
	}
	*f.p = append([]string(nil), v...)
}

func (f *StringListField) Clear() { *f.p = nil }

// IntListField accesses an ordered list of bounded integers.
type IntListField struct {
	Min, Max int

	get func() []int
	set func([]int)
}

func (f *IntListField) Kind() Kind { return KindIntList }
func (f *IntListField) Get() []int { return f.get() }

// Set replaces the list. Any entry outside the bounds rejects the whole call.
func (f *IntListField) Set(v []int) error {
	for _, n := range v {
		if n < f.Min || n > f.Max {
			return fmt.Errorf("value %d out of range %d-%d", n, f.Min, f.Max)
		}
	}
	f.set(v)
	return nil
}

func (f *IntListField) Clear() { f.set(nil) }

// ChoiceField accesses a value picked from a small fixed set.
type ChoiceField struct {
	labels []string

	get   func() (int, bool)
	set   func(int)
	clear func()
	isSet func() bool
	text  func() string
}

func (f *ChoiceField) Kind() Kind { return KindChoice }

// Get returns the selected index and whether exactly one choice is selected.
func (f *ChoiceField) Get() (int, bool) { return f.get() }

func (f *ChoiceField) Set(i int) error {
	if i < 0 || i >= len(f.labels) {
		return fmt.Errorf("choice %d out of range 0-%d", i, len(f.labels)-1)
	}
	f.set(i)
	return nil
}

func (f *ChoiceField) Clear() { f.clear() }

// Labels returns the display label of every choice.
func (f *ChoiceField) Labels() []string {
	return append([]string(nil), f.labels...)
}

// Len returns the number of choices.
func (f *ChoiceField) Len() int { return len(f.labels) }

type unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

func boolField(p *bool) Accessor {
	return &BoolField{p: p}
}

func optionalUint[T unsigned](p **T, min, max int) Accessor {
	return &IntField{
		Min: min,
		Max: max,
		get: func() (int, bool) {
			if *p == nil {
				return 0, false
			}
			return int(**p), true
		},
		set:   func(v int) { x := T(v); *p = &x },
		clear: func() { *p = nil },
	}
}

// countField exposes a stacked count (verbosity, debug level). Zero reads as unset.
func countField(p *uint8) Accessor {
	return &IntField{
		Min:   0,
		Max:   math.MaxUint8,
		get:   func() (int, bool) { return int(*p), *p > 0 },
		set:   func(v int) { *p = uint8(v) },
		clear: func() { *p = 0 },
	}
}

func floatField(p **float32, min, max float64) Accessor {
	return &FloatField{Min: min, Max: max, p: p}
}

func optionalString(p **string) Accessor {
	return &StringField{
		get: func() (string, bool) {
			if *p == nil {
				return "", false
			}
			return **p, true
		},
		set:   func(v string) error { *p = &v; return nil },
		clear: func() { *p = nil },
	}
}

func addrField(p **netip.Addr) Accessor {
	return &StringField{
		get: func() (string, bool) {
			if *p == nil {
				return "", false
			}
			return (*p).String(), true
		},
		set: func(v string) error {
			addr, err := netip.ParseAddr(v)
			if err != nil {
				return fmt.Errorf("invalid address %q: %w", v, err)
			}
			*p = &addr
			return nil
		},
		clear: func() { *p = nil },
	}
}

func pathField(p **string) Accessor {
	return &PathField{p: p}
}

func stringList(p *[]string) Accessor {
	return &StringListField{p: p}
}

func uintList[T unsigned](p *[]T, max int) Accessor {
	return &IntListField{
		Min: 0,
		Max: max,
		get: func() []int {
			out := make([]int, 0, len(*p))
			for _, v := range *p {
				out = append(out, int(v))
			}
			return out
		},
		set: func(v []int) {
			if len(v) == 0 {
				*p = nil
				return
			}
			out := make([]T, 0, len(v))
			for _, n := range v {
				out = append(out, T(n))
			}
			*p = out
		},
	}
}

func timingChoice(p **model.TimingTemplate) Accessor {
	return &ChoiceField{
		labels: timingLabels,
		get: func() (int, bool) {
			if *p == nil {
				return 0, false
			}
			return int(**p), true
		},
		set:   func(i int) { t := model.TimingTemplate(i); *p = &t },
		clear: func() { *p = nil },
		isSet: func() bool { return *p != nil },
		text:  func() string { return "" },
	}
}

// techniqueChoice selects a single scan technique. Selecting replaces any
// composite; a payload carries over between payload-bearing cases.
func techniqueChoice(p *model.ScanTechnique) Accessor {
	return &ChoiceField{
		labels: techniqueLabels,
		get: func() (int, bool) {
			for i, c := range techniqueChoices {
				if c.Kind == p.Kind && (c.Kind != model.TechSCTP || c.SCTP == p.SCTP) {
					return i, true
				}
			}
			return 0, false
		},
		set: func(i int) {
			next := techniqueChoices[i]
			if next.Kind.HasPayload() && p.Kind.HasPayload() {
				next.Arg = p.Arg
			}
			*p = next
		},
		clear: func() { *p = model.Syn() },
		isSet: func() bool { return p.Kind != model.TechSYN },
		text:  func() string { return p.String() },
	}
}

func techniquePayload(p *model.ScanTechnique) Accessor {
	return &StringField{
		get: func() (string, bool) {
			if !p.Kind.HasPayload() {
				return "", false
			}
			return p.Arg, true
		},
		set: func(v string) error {
			if !p.Kind.HasPayload() {
				return fmt.Errorf("scan technique %s takes no argument", p.Kind)
			}
			p.Arg = v
			return nil
		},
		clear: func() {
			if p.Kind.HasPayload() {
				p.Arg = ""
			}
		},
	}
}
