// Package typecodec converts lattice types and literals to and from the
// tagged wire record {"kind": "<Variant>", ...}. JSON is the interchange
// form; msgpack is the compact form used by the on-disk cache.
//
// Function types keep only their name and fixed return type on the wire.
// Their effect is not representable, so a decoded function always returns
// a constant.
package typecodec

import "errors"

var (
	// ErrUnknownKind is returned for a record whose kind is not registered.
	ErrUnknownKind = errors.New("typecodec: unknown kind")
	// ErrNotSerializable is returned for variants without a wire form.
	ErrNotSerializable = errors.New("typecodec: variant has no wire form")
	// ErrMalformed is returned for records missing required fields.
	ErrMalformed = errors.New("typecodec: malformed record")
)

// Record is the wire form of a type.
type Record struct {
	Kind string `json:"kind,omitempty" msgpack:"kind,omitempty"`
	// Legacy carries the variant name in records written under the older
	// "type" key.
	Legacy string `json:"type,omitempty" msgpack:"type,omitempty"`

	Empty    bool      `json:"empty,omitempty" msgpack:"empty,omitempty"`
	Subtype  *Record   `json:"subtype,omitempty" msgpack:"subtype,omitempty"`
	Elements []*Record `json:"elements,omitempty" msgpack:"elements,omitempty"`

	Literals []*LiteralRecord `json:"literals,omitempty" msgpack:"literals,omitempty"`
	Keys     []*Record        `json:"keys,omitempty" msgpack:"keys,omitempty"`
	Values   []*Record        `json:"values,omitempty" msgpack:"values,omitempty"`

	Name       string             `json:"name,omitempty" msgpack:"name,omitempty"`
	Submodules map[string]*Record `json:"submodules,omitempty" msgpack:"submodules,omitempty"`
	Fields     map[string]*Record `json:"fields,omitempty" msgpack:"fields,omitempty"`
	Returns    *Record            `json:"returns,omitempty" msgpack:"returns,omitempty"`
}

func (r *Record) kindName() string {
	if r.Kind != "" {
		return r.Kind
	}
	return r.Legacy
}

// LiteralRecord is the wire form of a literal. Value holds a number, a
// boolean or a string; tuples use Elements.
type LiteralRecord struct {
	Kind     string           `json:"kind,omitempty" msgpack:"kind,omitempty"`
	Legacy   string           `json:"type,omitempty" msgpack:"type,omitempty"`
	Value    any              `json:"value,omitempty" msgpack:"value,omitempty"`
	Elements []*LiteralRecord `json:"elements,omitempty" msgpack:"elements,omitempty"`
}

func (r *LiteralRecord) kindName() string {
	if r.Kind != "" {
		return r.Kind
	}
	return r.Legacy
}
