// Package json parses RFC 8259 JSON text into an in-memory tree of tagged
// Value nodes. It does not serialize values back to text, does not stream,
// and does not accept relaxed JSON dialects: a parse either fully succeeds
// or fails with a precise ParseStatus identifying the offending production.
package json

import "sort"

// Tag identifies which payload of a Value is live.
type Tag int

// The full tag set a Value can carry. None is the zero value: it denotes an
// uninitialized Value or one left behind by a failed container parse. A
// successful parse never
// produces a None-tagged root, but None is still observable (e.g. via
// Member on a key that does not exist).
const (
	TagNone Tag = iota
	TagNull
	TagBool
	TagNumber
	TagString
	TagArray
	TagObject
	numTags
)

var tagStrings = [numTags]string{
	"none", "null", "bool", "number", "string", "array", "object",
}

// String returns a short name for the tag, or "unknown" if t is out of range.
func (t Tag) String() string {
	if t < 0 || t >= numTags {
		return "unknown"
	}
	return tagStrings[t]
}

// member is one (key, value) pair of an Object, kept in a slice that is
// always maintained in ascending key order so iteration and Clone need no
// extra sorting step.
type member struct {
	key   string
	value Value
}

// Value is a tagged-union JSON node. The zero Value is tagged None.
//
// Arrays and Objects own their children: cloning a Value via Clone deep-copies
// the whole subtree. Mutation of a scalar payload happens exclusively through
// the Set*/Init* builders; the typed accessors (Bool, Number, Str) are
// read-only and return ErrType when the tag does not match.
type Value struct {
	tag     Tag
	boolean bool
	number  float64
	str     string
	arr     []Value
	obj     []member
}

// Type reports which payload is live.
func (v *Value) Type() Tag { return v.tag }

// IsNone reports whether v is tagged None.
func (v *Value) IsNone() bool { return v.tag == TagNone }

// Len returns the element count for Array/Object, the byte length for
// String, and 0 for every other tag.
func (v *Value) Len() int {
	switch v.tag {
	case TagArray:
		return len(v.arr)
	case TagObject:
		return len(v.obj)
	case TagString:
		return len(v.str)
	default:
		return 0
	}
}

// Bool returns the boolean payload. ErrType is returned if v is not tagged
// Bool.
func (v *Value) Bool() (bool, error) {
	if v.tag != TagBool {
		return false, ErrType
	}
	return v.boolean, nil
}

// Number returns the float64 payload. ErrType is returned if v is not
// tagged Number.
func (v *Value) Number() (float64, error) {
	if v.tag != TagNumber {
		return 0, ErrType
	}
	return v.number, nil
}

// Str returns the string payload. ErrType is returned if v is not tagged
// String.
func (v *Value) Str() (string, error) {
	if v.tag != TagString {
		return "", ErrType
	}
	return v.str, nil
}

// SetNull re-tags v as Null, discarding any prior payload.
func (v *Value) SetNull() { *v = Value{tag: TagNull} }

// SetBool re-tags v as Bool with the given payload.
func (v *Value) SetBool(b bool) { *v = Value{tag: TagBool, boolean: b} }

// SetNumber re-tags v as Number with the given payload.
func (v *Value) SetNumber(f float64) { *v = Value{tag: TagNumber, number: f} }

// SetString re-tags v as String with the given payload.
func (v *Value) SetString(s string) { *v = Value{tag: TagString, str: s} }

// InitArray re-tags v as an empty Array, ready for PushBack.
func (v *Value) InitArray() { *v = Value{tag: TagArray, arr: []Value{}} }

// PushBack appends child to v's Array. v must already be tagged Array (via
// InitArray); violating this precondition panics.
func (v *Value) PushBack(child Value) {
	if v.tag != TagArray {
		panic("json: PushBack on non-array Value")
	}
	v.arr = append(v.arr, child)
}

// Index returns a pointer to the i-th element of v's Array. i must satisfy
// 0 <= i < v.Len(); violating this precondition (or calling Index on a
// non-Array) panics, since out-of-bounds access is a programmer error the
// library does not attempt to recover from.
func (v *Value) Index(i int) *Value {
	if v.tag != TagArray {
		panic("json: Index on non-array Value")
	}
	return &v.arr[i]
}

// InitObject re-tags v as an empty Object, ready for Insert.
func (v *Value) InitObject() { *v = Value{tag: TagObject, obj: []member{}} }

// search returns the position at which key belongs in v.obj (sorted
// ascending) and whether it is already present there.
func (v *Value) search(key string) (int, bool) {
	i := sort.Search(len(v.obj), func(i int) bool { return v.obj[i].key >= key })
	return i, i < len(v.obj) && v.obj[i].key == key
}

// Insert adds (key, child) to v's Object. v must already be tagged Object
// (via InitObject). If key is already present, the existing value is kept
// and child is discarded: first writer wins.
func (v *Value) Insert(key string, child Value) {
	if v.tag != TagObject {
		panic("json: Insert on non-object Value")
	}
	i, found := v.search(key)
	if found {
		return
	}
	v.obj = append(v.obj, member{})
	copy(v.obj[i+1:], v.obj[i:])
	v.obj[i] = member{key: key, value: child}
}

// Member returns a pointer to the child under key, creating a None-valued
// entry in sorted position if key is absent. This mirrors the underlying
// ordered slice's insert-or-get semantics, so assignment through the
// returned pointer (e.g. obj.Member("x").SetNumber(1)) behaves as an lvalue
// subscript would. v must already be tagged Object.
func (v *Value) Member(key string) *Value {
	if v.tag != TagObject {
		panic("json: Member on non-object Value")
	}
	i, found := v.search(key)
	if found {
		return &v.obj[i].value
	}
	v.obj = append(v.obj, member{})
	copy(v.obj[i+1:], v.obj[i:])
	v.obj[i] = member{key: key}
	return &v.obj[i].value
}

// Lookup is the non-mutating counterpart to Member: it never grows v.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v.tag != TagObject {
		return nil, false
	}
	i, found := v.search(key)
	if !found {
		return nil, false
	}
	return &v.obj[i].value, true
}

// Clone deep-copies v, including every Array/Object descendant.
func (v *Value) Clone() Value {
	out := Value{tag: v.tag, boolean: v.boolean, number: v.number, str: v.str}
	if v.arr != nil {
		out.arr = make([]Value, len(v.arr))
		for i := range v.arr {
			out.arr[i] = v.arr[i].Clone()
		}
	}
	if v.obj != nil {
		out.obj = make([]member, len(v.obj))
		for i := range v.obj {
			out.obj[i] = member{key: v.obj[i].key, value: v.obj[i].value.Clone()}
		}
	}
	return out
}

// ArrayIter is a random-access cursor over an Array's elements, the Go
// rendering of a C++-style operator-overloaded iterator ( +, -, +=, -=, [],
// relational, difference ).
type ArrayIter struct {
	vals []Value
	pos  int
}

// Elements returns a cursor positioned at the first element of v's Array
// (the "begin" iterator). v must be tagged Array.
func (v *Value) Elements() ArrayIter {
	if v.tag != TagArray {
		panic("json: Elements on non-array Value")
	}
	return ArrayIter{vals: v.arr}
}

// Valid reports whether the cursor currently refers to an in-range element.
func (it ArrayIter) Valid() bool { return it.pos >= 0 && it.pos < len(it.vals) }

// At returns a pointer to the element the cursor currently refers to.
// Dereferencing an invalid (out-of-range) cursor panics.
func (it ArrayIter) At() *Value {
	return &it.vals[it.pos]
}

// Pos returns the cursor's current index.
func (it ArrayIter) Pos() int { return it.pos }

// Advance moves the cursor forward by n (the "+="/"+" operators).
func (it ArrayIter) Advance(n int) ArrayIter { it.pos += n; return it }

// Retreat moves the cursor backward by n (the "-="/"-" operators).
func (it ArrayIter) Retreat(n int) ArrayIter { it.pos -= n; return it }

// Seek repositions the cursor to index i.
func (it ArrayIter) Seek(i int) ArrayIter { it.pos = i; return it }

// Compare returns the iterator difference (other.Pos() - it.Pos()),
// mirroring the source iterator's subtraction operator.
func (it ArrayIter) Compare(other ArrayIter) int { return other.pos - it.pos }

// Equal reports whether both cursors refer to the same position.
func (it ArrayIter) Equal(other ArrayIter) bool { return it.pos == other.pos }

// ObjectIter is a bidirectional cursor over an Object's (key, value) pairs,
// yielded in ascending key order.
type ObjectIter struct {
	members []member
	pos     int
}

// Entries returns a cursor positioned at the first (lowest-key) pair of v's
// Object (the "begin" iterator). v must be tagged Object.
func (v *Value) Entries() ObjectIter {
	if v.tag != TagObject {
		panic("json: Entries on non-object Value")
	}
	return ObjectIter{members: v.obj}
}

// Valid reports whether the cursor currently refers to an in-range pair.
func (it ObjectIter) Valid() bool { return it.pos >= 0 && it.pos < len(it.members) }

// Next advances the cursor to the next pair.
func (it *ObjectIter) Next() { it.pos++ }

// Prev moves the cursor to the previous pair.
func (it *ObjectIter) Prev() { it.pos-- }

// Key returns the key of the pair the cursor currently refers to.
func (it ObjectIter) Key() string { return it.members[it.pos].key }

// Value returns a pointer to the value of the pair the cursor currently
// refers to.
func (it ObjectIter) Value() *Value { return &it.members[it.pos].value }

// Equal reports whether both cursors refer to the same position.
func (it ObjectIter) Equal(other ObjectIter) bool { return it.pos == other.pos }
