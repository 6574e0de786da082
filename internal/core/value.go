package core

import (
	"fmt"
	"strconv"

	"github.com/argyle-sh/argyle/fsys"
)

// Value is a typed argument value: a tagged variant with exactly one case
// per ArgType. File and Folder values carry a path string before
// resolution and an open handle afterwards.
type Value struct {
	typ    ArgType
	b      bool
	n      uint64
	i      int64
	f      float64
	s      string
	opened bool
	file   fsys.File
	folder fsys.Folder
}

// Bool returns a Bool-typed value.
func Bool(v bool) Value { return Value{typ: TypeBool, b: v} }

// Nat returns a Nat-typed value.
func Nat(v uint64) Value { return Value{typ: TypeNat, n: v} }

// Int returns an Int-typed value.
func Int(v int64) Value { return Value{typ: TypeInt, i: v} }

// Float returns a Float-typed value.
func Float(v float64) Value { return Value{typ: TypeFloat, f: v} }

// String returns a String-typed value.
func String(v string) Value { return Value{typ: TypeString, s: v} }

// FilePath returns an unresolved File-typed value holding a path.
func FilePath(path string) Value { return Value{typ: TypeFile, s: path} }

// FolderPath returns an unresolved Folder-typed value holding a path.
func FolderPath(path string) Value { return Value{typ: TypeFolder, s: path} }

// FileHandle returns a resolved File-typed value.
func FileHandle(h fsys.File) Value {
	return Value{typ: TypeFile, s: h.Path, opened: true, file: h}
}

// FolderHandle returns a resolved Folder-typed value.
func FolderHandle(h fsys.Folder) Value {
	return Value{typ: TypeFolder, s: h.Path, opened: true, folder: h}
}

// Type reports which variant the value holds.
func (v Value) Type() ArgType { return v.typ }

// Bool returns the boolean payload. Valid only for Bool values.
func (v Value) Bool() bool { return v.b }

// Nat returns the non-negative integer payload. Valid only for Nat values.
func (v Value) Nat() uint64 { return v.n }

// Int returns the signed integer payload. Valid only for Int values.
func (v Value) Int() int64 { return v.i }

// Float returns the floating-point payload. Valid only for Float values.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload. Valid only for String values.
func (v Value) Str() string { return v.s }

// Path returns the path of a File or Folder value.
func (v Value) Path() string { return v.s }

// Opened reports whether a File or Folder value has been resolved.
func (v Value) Opened() bool { return v.opened }

// File returns the open handle of a resolved File value.
func (v Value) File() fsys.File { return v.file }

// Folder returns the open handle of a resolved Folder value.
func (v Value) Folder() fsys.Folder { return v.folder }

// Equal reports whether two values have the same type and payload. File
// and Folder values compare by path.
func (v Value) Equal(o Value) bool {
	if v.typ != o.typ {
		return false
	}

	switch v.typ {
	case TypeBool:
		return v.b == o.b
	case TypeNat:
		return v.n == o.n
	case TypeInt:
		return v.i == o.i
	case TypeFloat:
		return v.f == o.f
	case TypeString, TypeFile, TypeFolder:
		return v.s == o.s
	}

	return false
}

func (v Value) String() string {
	switch v.typ {
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeNat:
		return strconv.FormatUint(v.n, 10)
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeString:
		return v.s
	case TypeFile, TypeFolder:
		return v.s
	}

	return fmt.Sprintf("<%s>", v.typ)
}

// Record is the ordered, typed argument record handed to handlers. It is
// exclusively owned by a single execute call.
type Record struct {
	order []string
	vals  map[string]Value
}

func newRecord() *Record {
	return &Record{vals: map[string]Value{}}
}

// Has reports whether name resolved to a value.
func (r *Record) Has(name string) bool {
	_, ok := r.vals[name]
	return ok
}

// Get returns the value resolved for name.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.vals[name]
	return v, ok
}

// Names lists the resolved names in schema declaration order.
func (r *Record) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Len reports how many arguments resolved.
func (r *Record) Len() int { return len(r.vals) }

func (r *Record) set(name string, v Value) {
	if _, ok := r.vals[name]; !ok {
		r.order = append(r.order, name)
	}

	r.vals[name] = v
}
