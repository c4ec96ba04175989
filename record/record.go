// Package record provides a typo-safe options/record type.
//
// A Record is a named bag of attribute values whose attribute set is fixed at
// construction. Reading or writing a name that was never set fails with a
// typed error instead of silently producing a zero value, which is the entire
// reason the type exists: misspelled option names in scripts should blow up
// early and loudly.
//
// Records are not safe for concurrent mutation; callers serialize.
package record

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// UnknownAttributeError is returned when a read or bulk update names an
// attribute outside the record's fixed attribute set.
type UnknownAttributeError struct{ Name string }

// Error implements the error interface.
func (e UnknownAttributeError) Error() string {
	// Example: record: unknown attribute "widht"
	return "record: unknown attribute " + strconv.Quote(e.Name)
}

// CannotAddAttributeError is returned when a write attempts to introduce an
// attribute name that was not present at construction.
type CannotAddAttributeError struct{ Name string }

// Error implements the error interface.
func (e CannotAddAttributeError) Error() string {
	// Example: record: cannot add attribute "extra" after construction
	return "record: cannot add attribute " + strconv.Quote(e.Name) + " after construction"
}

// CannotDeleteAttributeError is returned by Delete. The attribute set is
// immutable in shape for the life of the record, so every delete fails.
type CannotDeleteAttributeError struct{ Name string }

// Error implements the error interface.
func (e CannotDeleteAttributeError) Error() string {
	// Example: record: cannot delete attribute "width"
	return "record: cannot delete attribute " + strconv.Quote(e.Name)
}

// Record is a named bag of attribute values with a fixed attribute set.
//
// The set of attribute names is locked when New returns: values may be
// overwritten via Set or Update, but names can never be added, renamed, or
// removed. Construct one with the full defaults, then layer caller overrides
// on top with Update:
//
//	opts := record.New(map[string]any{"width": 60, "sep": "\t"})
//	if _, err := opts.Update(overrides); err != nil { ... }
type Record struct {
	attrs map[string]any
}

// New constructs a Record whose attribute set is exactly the keys of initial.
// The map is copied; later mutation of initial does not affect the record.
// A nil map yields a record with no attributes.
func New(initial map[string]any) *Record {
	attrs := make(map[string]any, len(initial))
	for k, v := range initial {
		attrs[k] = v
	}
	return &Record{attrs: attrs}
}

// Get returns the value stored under name.
//
// It returns UnknownAttributeError if name is outside the attribute set,
// rather than a zero value, so a misspelled name cannot pass unnoticed.
func (r *Record) Get(name string) (any, error) {
	v, ok := r.attrs[name]
	if !ok {
		return nil, UnknownAttributeError{Name: name}
	}
	return v, nil
}

// MustGet returns the value stored under name or panics.
//
// Useful in scripts and tests where a missing attribute should fail fast.
func (r *Record) MustGet(name string) any {
	v, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Set overwrites the value of an existing attribute.
//
// It returns CannotAddAttributeError if name is outside the attribute set:
// assignment can never grow the record.
func (r *Record) Set(name string, value any) error {
	if _, ok := r.attrs[name]; !ok {
		return CannotAddAttributeError{Name: name}
	}
	r.attrs[name] = value
	return nil
}

// Delete always fails with CannotDeleteAttributeError; the attribute set
// cannot shrink.
func (r *Record) Delete(name string) error {
	return CannotDeleteAttributeError{Name: name}
}

// Update overwrites the values of existing attributes in bulk and returns the
// receiver for chaining.
//
// Every name in values is validated against the attribute set before any
// value is written: if any name is unknown, Update returns
// UnknownAttributeError and the record is observably unchanged.
func (r *Record) Update(values map[string]any) (*Record, error) {
	for name := range values {
		if _, ok := r.attrs[name]; !ok {
			return r, UnknownAttributeError{Name: name}
		}
	}
	for name, value := range values {
		r.attrs[name] = value
	}
	return r, nil
}

// MustUpdate is Update or panic, for chained defaults-then-overrides
// construction:
//
//	opts := record.New(defaults).MustUpdate(overrides)
func (r *Record) MustUpdate(values map[string]any) *Record {
	if _, err := r.Update(values); err != nil {
		panic(err)
	}
	return r
}

// Has reports whether name is in the attribute set.
func (r *Record) Has(name string) bool {
	_, ok := r.attrs[name]
	return ok
}

// Len returns the number of attributes.
func (r *Record) Len() int { return len(r.attrs) }

// Names returns the attribute names in sorted order.
func (r *Record) Names() []string {
	names := make([]string, 0, len(r.attrs))
	for name := range r.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the name->value mapping. Mutating the returned
// map does not affect the record.
func (r *Record) Snapshot() map[string]any {
	cp := make(map[string]any, len(r.attrs))
	for k, v := range r.attrs {
		cp[k] = v
	}
	return cp
}

// Equal reports whether other holds the same name->value mapping.
//
// other may be a *Record or a plain map[string]any; values are compared with
// reflect.DeepEqual. Any other type, including nil, compares unequal — Equal
// never fails.
func (r *Record) Equal(other any) bool {
	switch o := other.(type) {
	case *Record:
		if o == nil {
			return false
		}
		return mapsDeepEqual(r.attrs, o.attrs)
	case map[string]any:
		return mapsDeepEqual(r.attrs, o)
	default:
		return false
	}
}

func mapsDeepEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}

// String renders the record as record{name:value, ...} with names sorted,
// mainly for test failure output.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteString("record{")
	for i, name := range r.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s:%v", name, r.attrs[name])
	}
	sb.WriteString("}")
	return sb.String()
}
