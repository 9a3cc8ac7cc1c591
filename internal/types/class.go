package types

import (
	"fmt"
	"maps"

	"fortio.org/safecast"
)

// ClassID indexes a class definition inside a Classes arena.
type ClassID uint32

// NoClassID marks the absence of a class.
const NoClassID ClassID = 0

func (id ClassID) IsValid() bool { return id != NoClassID }

// ClassInfo is a class definition. Every instance of the class reads and
// writes this same Fields map.
type ClassInfo struct {
	Name   string
	Fields map[string]*Type
}

// Classes stores class definitions in a slice-based arena. Class and instance
// types hold a handle into it instead of owning the definition.
type Classes struct {
	data []ClassInfo
}

// NewClasses creates an arena with an optional capacity hint.
func NewClasses(capacity uint32) *Classes {
	if capacity == 0 {
		capacity = 16
	}
	return &Classes{
		data: make([]ClassInfo, 1, capacity+1), // index 0 reserved for NoClassID
	}
}

func (c *Classes) alloc(name string, fields map[string]*Type) ClassID {
	value, err := safecast.Conv[uint32](len(c.data))
	if err != nil {
		panic(fmt.Errorf("classes arena overflow: %w", err))
	}
	if fields == nil {
		fields = make(map[string]*Type)
	}
	c.data = append(c.data, ClassInfo{Name: name, Fields: fields})
	return ClassID(value)
}

// Define allocates a new class and returns its class type.
func (c *Classes) Define(name string) *Type {
	return &Type{Kind: KindClass, Class: ClassRef{Arena: c, ID: c.alloc(name, nil)}}
}

// Get returns the definition or nil for an invalid ID.
func (c *Classes) Get(id ClassID) *ClassInfo {
	if c == nil || !id.IsValid() || int(id) >= len(c.data) {
		return nil
	}
	return &c.data[id]
}

// Len reports the number of classes excluding the sentinel.
func (c *Classes) Len() int { return len(c.data) - 1 }

// cloneClass copies a definition into a new slot. The field map is copied
// shallowly: a class may hold attributes typed as itself, and a deep copy
// would never terminate.
func (c *Classes) cloneClass(id ClassID) *Type {
	info := c.Get(id)
	if info == nil {
		return Unknown()
	}
	name := info.Name
	fields := maps.Clone(info.Fields)
	return &Type{Kind: KindClass, Class: ClassRef{Arena: c, ID: c.alloc(name, fields)}}
}

// ClassRef is a handle to a class definition.
type ClassRef struct {
	Arena *Classes
	ID    ClassID
}

// Info resolves the handle, or nil when it is empty.
func (r ClassRef) Info() *ClassInfo {
	return r.Arena.Get(r.ID)
}

// AddAttr sets an attribute on a class, or through an instance on its class.
func (t *Type) AddAttr(name string, attr *Type) {
	if t.Kind != KindClass && t.Kind != KindInstance {
		return
	}
	if info := t.Class.Info(); info != nil {
		info.Fields[name] = attr
	}
}

// Instance returns a new instance of class type t.
func (t *Type) Instance() *Type {
	if t.Kind != KindClass {
		return Unknown()
	}
	return &Type{Kind: KindInstance, Class: t.Class}
}

// Constructor is the synthesized __init__ of class type t, returning an
// instance of t.
func (t *Type) Constructor() *Type {
	return Func("__init__", t.Instance())
}
