package flags

import (
	"fmt"
	"strconv"
	"strings"
)

// Assign sets acc from user-entered text. Empty text clears optional and list
// fields; booleans accept the usual spellings; choices accept an index or a
// label (case-insensitive).
func Assign(acc Accessor, raw string) error {
	raw = strings.TrimSpace(raw)

	switch f := acc.(type) {
	case *BoolField:
		b, err := parseBool(raw)
		if err != nil {
			return err
		}
		f.Set(b)
		return nil

	case *IntField:
		if raw == "" {
			f.Clear()
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("not a number: %q", raw)
		}
		return f.Set(n)

	case *FloatField:
		if raw == "" {
			f.Clear()
			return nil
		}
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return fmt.Errorf("not a number: %q", raw)
		}
		return f.Set(v)

	case *StringField:
		if raw == "" {
			f.Clear()
			return nil
		}
		return f.Set(raw)

	case *PathField:
		if raw == "" {
			f.Clear()
			return nil
		}
		f.Set(raw)
		return nil

	case *StringListField:
		f.Set(splitList(raw))
		return nil

	case *IntListField:
		parts := splitList(raw)
		nums := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return fmt.Errorf("not a number: %q", p)
			}
			nums = append(nums, n)
		}
		return f.Set(nums)

	case *ChoiceField:
		if raw == "" {
			f.Clear()
			return nil
		}
		if n, err := strconv.Atoi(raw); err == nil {
			return f.Set(n)
		}
		// A full label wins; otherwise its first word must pick exactly one.
		match, count := -1, 0
		for i, label := range f.labels {
			if strings.EqualFold(label, raw) {
				return f.Set(i)
			}
			if word, _, _ := strings.Cut(label, " "); strings.EqualFold(word, raw) {
				match, count = i, count+1
			}
		}
		switch count {
		case 0:
			return fmt.Errorf("unknown choice %q", raw)
		case 1:
			return f.Set(match)
		}
		return fmt.Errorf("ambiguous choice %q", raw)
	}

	return fmt.Errorf("unsupported accessor kind %s", acc.Kind())
}

// Format renders the current value of acc as text Assign accepts.
func Format(acc Accessor) string {
	switch f := acc.(type) {
	case *BoolField:
		return strconv.FormatBool(f.Get())
	case *IntField:
		if v, ok := f.Get(); ok {
			return strconv.Itoa(v)
		}
	case *FloatField:
		if v, ok := f.Get(); ok {
			return strconv.FormatFloat(v, 'g', -1, 32)
		}
	case *StringField:
		v, _ := f.Get()
		return v
	case *PathField:
		v, _ := f.Get()
		return v
	case *StringListField:
		return strings.Join(f.Get(), ",")
	case *IntListField:
		nums := f.Get()
		parts := make([]string, len(nums))
		for i, n := range nums {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	case *ChoiceField:
		if i, ok := f.Get(); ok {
			return f.labels[i]
		}
		return f.text()
	}
	return ""
}

// IsSet reports whether acc differs from its default.
func IsSet(acc Accessor) bool {
	switch f := acc.(type) {
	case *BoolField:
		return f.Get()
	case *IntField:
		_, ok := f.Get()
		return ok
	case *FloatField:
		_, ok := f.Get()
		return ok
	case *StringField:
		_, ok := f.Get()
		return ok
	case *PathField:
		_, ok := f.Get()
		return ok
	case *StringListField:
		return len(f.Get()) > 0
	case *IntListField:
		return len(f.Get()) > 0
	case *ChoiceField:
		return f.isSet()
	}
	return false
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "", "false", "no", "off", "0":
		return false, nil
	case "true", "yes", "on", "1":
		return true, nil
	}
	return false, fmt.Errorf("not a boolean: %q", raw)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
