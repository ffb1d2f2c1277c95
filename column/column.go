package column

// Kind identifies the element type stored in a Column.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindBool holds bool elements.
	KindBool
	// KindInt holds int64 elements.
	KindInt
	// KindUInt holds uint64 elements (panel indices, flag masks).
	KindUInt
	// KindDouble holds float64 elements.
	KindDouble
	// KindString holds string elements.
	KindString
	// KindVec2 holds model.Vec2 elements.
	KindVec2
	// KindVec3 holds model.Vec3 elements.
	KindVec3
	// KindInt3 holds model.Int3 elements (miller indices).
	KindInt3
	// KindInt6 holds model.Int6 elements (bounding boxes).
	KindInt6
	// KindShoebox holds model.Shoebox elements.
	KindShoebox
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindUInt:
		return "UInt"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindVec2:
		return "Vec2"
	case KindVec3:
		return "Vec3"
	case KindInt3:
		return "Int3"
	case KindInt6:
		return "Int6"
	case KindShoebox:
		return "Shoebox"
	default:
		return "Invalid"
	}
}

// Column is a homogeneously typed sequence of row values. All columns of a
// Table share the same length at all times.
type Column interface {
	// Kind returns the element kind.
	Kind() Kind
	// Len returns the number of rows.
	Len() int
	// Resize grows the column with zero values or truncates it to n rows.
	Resize(n int)
	// Select returns a new column holding the chosen rows, in order.
	// Row indices must already be validated by the caller.
	Select(rows []uint32) Column
	// Clone returns a deep copy of the column handle and its backing slice.
	// Element payloads that are themselves slices (shoebox grids) are shared.
	Clone() Column

	extend(other Column) error
}

// data is the single generic column implementation behind every Kind.
type data[T any] struct {
	kind Kind
	v    []T
}

func (c *data[T]) Kind() Kind { return c.kind }

func (c *data[T]) Len() int { return len(c.v) }

func (c *data[T]) Resize(n int) {
	if n <= len(c.v) {
		c.v = c.v[:n]
		return
	}
	grown := make([]T, n)
	copy(grown, c.v)
	c.v = grown
}

func (c *data[T]) Select(rows []uint32) Column {
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = c.v[r]
	}
	return &data[T]{kind: c.kind, v: out}
}

func (c *data[T]) Clone() Column {
	out := make([]T, len(c.v))
	copy(out, c.v)
	return &data[T]{kind: c.kind, v: out}
}

func (c *data[T]) extend(other Column) error {
	o, ok := other.(*data[T])
	if !ok || o.kind != c.kind {
		return &KindError{Want: c.kind, Got: other.Kind()}
	}
	c.v = append(c.v, o.v...)
	return nil
}
