package attr

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Declarations is an ordered property→value map, as found in a CSS
// declaration list (the content of a style="…" attribute). Property order
// is first-insertion order; setting a property again overwrites its value
// in place.
type Declarations struct {
	m *linkedhashmap.Map
}

// NewDeclarations creates an empty declaration list.
func NewDeclarations() *Declarations {
	return &Declarations{m: linkedhashmap.New()}
}

// ParseDeclarations parses a CSS declaration list, e.g.
//
//	max-width: 480px; margin-left: auto; margin-right: auto
//
// Property names are lower-cased and trimmed, values are trimmed.
// Segments without a property or without a value are dropped. For
// duplicate properties the last occurrence wins.
//
// ParseDeclarations will never return an error; input which is not a
// declaration list yields an empty Declarations.
func ParseDeclarations(s string) *Declarations {
	d := NewDeclarations()
	s = strings.TrimSpace(s)
	if s == "" {
		return d
	}
	// douceur only closes a declaration at a ';' and reports the final one
	// with an empty value when the terminator is missing, so make sure the
	// list is terminated before handing it over.
	terminated := s
	if !strings.HasSuffix(terminated, ";") {
		terminated += ";"
	}
	if decls, err := parser.ParseDeclarations(terminated); err == nil {
		for _, decl := range decls {
			d.Set(decl.Property, decl.Value)
		}
		return d
	}
	// Hand-edited style strings are frequently not valid CSS. Fall back to
	// a tolerant split on ';' and first ':'.
	tracer().Debugf("attr: style not parseable as CSS, splitting tolerantly: %q", s)
	for _, segment := range strings.Split(s, ";") {
		prop, value, found := strings.Cut(segment, ":")
		if !found {
			continue
		}
		d.Set(prop, value)
	}
	return d
}

// Set stores a declaration, normalizing the property name. Empty
// properties and empty values are dropped.
func (d *Declarations) Set(property, value string) {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)
	if property == "" || value == "" {
		return
	}
	d.m.Put(property, value)
}

// Get returns the value for a property, and whether it is present.
func (d *Declarations) Get(property string) (string, bool) {
	v, ok := d.m.Get(strings.ToLower(strings.TrimSpace(property)))
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Has reports whether a property is present.
func (d *Declarations) Has(property string) bool {
	_, ok := d.Get(property)
	return ok
}

// Is reports whether a property is present with the given value.
func (d *Declarations) Is(property, value string) bool {
	v, ok := d.Get(property)
	return ok && v == value
}

// Remove deletes a property. Removing an absent property is a no-op.
func (d *Declarations) Remove(property string) {
	d.m.Remove(strings.ToLower(strings.TrimSpace(property)))
}

// Size returns the number of declarations.
func (d *Declarations) Size() int {
	return d.m.Size()
}

// IsEmpty reports whether no declarations are present.
func (d *Declarations) IsEmpty() bool {
	return d.m.Size() == 0
}

// Each calls f for every declaration, in insertion order.
func (d *Declarations) Each(f func(property, value string)) {
	d.m.Each(func(key, value interface{}) {
		f(key.(string), value.(string))
	})
}

// String serializes the declarations as a CSS declaration list, joining
// `property: value` pairs with `; ` in insertion order.
func (d *Declarations) String() string {
	var b strings.Builder
	first := true
	d.Each(func(property, value string) {
		if !first {
			b.WriteString("; ")
		}
		first = false
		b.WriteString(property)
		b.WriteString(": ")
		b.WriteString(value)
	})
	return b.String()
}
