package value

import (
	"fmt"
	"github.com/shopspring/decimal"
	"lnodelist/registry"
	"math"
	"strconv"
	"strings"
)

// Kind enumerates what a Box holds. The kind decides which payload field is valid.
type Kind int

const (
	Nil       Kind = iota // no payload
	Integer               // i
	Float                 // f
	String                // s, owned copy
	Boolean               // b
	Reference             // h, a claim on a registry entry
)

func (k Kind) String() string {
	switch k {
	case Nil:
		return "nil"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// Box stores one list element. A Reference box never owns the referenced
// object, only its registry handle.
type Box struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
	h    registry.Handle
}

// Encode boxes v. Values without a primitive mapping are parked in reg.
func Encode(reg *registry.Registry, v any) *Box {
	switch x := v.(type) {
	case nil:
		return &Box{kind: Nil}
	case bool:
		return &Box{kind: Boolean, b: x}
	case int:
		return &Box{kind: Integer, i: int64(x)}
	case int8:
		return &Box{kind: Integer, i: int64(x)}
	case int16:
		return &Box{kind: Integer, i: int64(x)}
	case int32:
		return &Box{kind: Integer, i: int64(x)}
	case int64:
		return &Box{kind: Integer, i: x}
	case uint:
		return encodeUint(uint64(x))
	case uint8:
		return &Box{kind: Integer, i: int64(x)}
	case uint16:
		return &Box{kind: Integer, i: int64(x)}
	case uint32:
		return &Box{kind: Integer, i: int64(x)}
	case uint64:
		return encodeUint(x)
	case float32:
		return &Box{kind: Float, f: float64(x)}
	case float64:
		return &Box{kind: Float, f: x}
	case decimal.Decimal:
		return encodeDecimal(x)
	case string:
		return &Box{kind: String, s: strings.Clone(x)}
	case []byte:
		return &Box{kind: String, s: string(x)}
	default:
		return &Box{kind: Reference, h: reg.Acquire(v)}
	}
}

func encodeUint(u uint64) *Box {
	if u > math.MaxInt64 {
		return &Box{kind: Float, f: float64(u)}
	}
	return &Box{kind: Integer, i: int64(u)}
}

// decimals with no fractional part that fit in 64 bits are integers.
func encodeDecimal(d decimal.Decimal) *Box {
	if d.Equal(d.Truncate(0)) {
		n := d.IntPart()
		if decimal.NewFromInt(n).Equal(d) {
			return &Box{kind: Integer, i: n}
		}
	}
	f, _ := d.Float64()
	return &Box{kind: Float, f: f}
}

func (b *Box) Kind() Kind {
	return b.kind
}

// Decode returns the boxed value: int64, float64, string, bool, nil, or
// the referenced object. It never changes the box.
func (b *Box) Decode(reg *registry.Registry) any {
	switch b.kind {
	case Integer:
		return b.i
	case Float:
		return b.f
	case String:
		return b.s
	case Boolean:
		return b.b
	case Reference:
		v, _ := reg.Resolve(b.h)
		return v
	default:
		return nil
	}
}

// Text renders the boxed value for joining.
func (b *Box) Text(reg *registry.Registry) string {
	switch b.kind {
	case Integer:
		return strconv.FormatInt(b.i, 10)
	case Float:
		return formatFloat(b.f)
	case String:
		return b.s
	case Boolean:
		return strconv.FormatBool(b.b)
	case Reference:
		return fmt.Sprint(b.Decode(reg))
	default:
		return "nil"
	}
}

// floats always read as floats, so 2.0 stays "2.0".
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', 14, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Copy returns a box holding the same value. A reference copy shares the
// handle and takes its own claim on it.
func (b *Box) Copy(reg *registry.Registry) *Box {
	c := *b
	if c.kind == Reference && c.h.IsValid() {
		reg.Retain(c.h)
	}
	return &c
}

// Release gives back what the box holds. Callers drop the box right after.
func (b *Box) Release(reg *registry.Registry) {
	if b.kind == Reference && b.h.IsValid() {
		reg.Release(b.h)
		b.h = 0
	}
	b.s = ""
}
