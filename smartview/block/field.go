package block

// Range is a half-open byte range [Start, End) in the parsed buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return o.Start >= r.Start && o.End <= r.End
}

func (r Range) union(o Range) Range {
	return Range{Start: min(r.Start, o.Start), End: max(r.End, o.End)}
}

// Kind is the semantic type tag renderers use to format a field.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUint8
	KindUint16
	KindUint32
	KindGUID
	KindFileTime
	KindANSI
	KindUnicode
	KindBytes
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindUint8:    "uint8",
	KindUint16:   "uint16",
	KindUint32:   "uint32",
	KindGUID:     "guid",
	KindFileTime: "filetime",
	KindANSI:     "ansi",
	KindUnicode:  "unicode",
	KindBytes:    "bytes",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Element is anything that can hang off a Node.
type Element interface {
	Range() Range
}

// Leaf is the type-erased view of a Field that renderers consume.
type Leaf interface {
	Element
	Kind() Kind
	Present() bool
	// Interface returns the decoded value, or nil when not present.
	Interface() any
}

// Field is one decoded value together with the bytes it was read from.
// The zero Field is not present.
type Field[T any] struct {
	value   T
	kind    Kind
	rng     Range
	present bool
}

func newField[T any](kind Kind, v T, start, end int) Field[T] {
	return Field[T]{value: v, kind: kind, rng: Range{Start: start, End: end}, present: true}
}

// Value returns the decoded value or ErrNotPresent.
func (f Field[T]) Value() (T, error) {
	if !f.present {
		var zero T
		return zero, ErrNotPresent
	}
	return f.value, nil
}

// Get returns the decoded value, or the zero value when not present.
func (f Field[T]) Get() T {
	return f.value
}

// Present reports whether the field was decoded.
func (f Field[T]) Present() bool { return f.present }

// Range returns the source byte range; the zero Range when not present.
func (f Field[T]) Range() Range { return f.rng }

// Kind returns the declared semantic type. Fields that were never handed to
// a Decoder fall back to the tag implied by T.
func (f Field[T]) Kind() Kind {
	if f.kind != KindInvalid {
		return f.kind
	}
	switch any(f.value).(type) {
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case GUID:
		return KindGUID
	case []byte:
		return KindBytes
	}
	return KindInvalid
}

func (f Field[T]) Interface() any {
	if !f.present {
		return nil
	}
	return f.value
}
