package value

import (
	"github.com/shopspring/decimal"
	"lnodelist/registry"
	"math"
	"testing"
)

func TestEncodeKinds(t *testing.T) {
	reg := registry.New()
	tests := []struct {
		name string
		in   any
		kind Kind
		want any
	}{
		{"nil", nil, Nil, nil},
		{"bool", true, Boolean, true},
		{"int", 7, Integer, int64(7)},
		{"int8", int8(-3), Integer, int64(-3)},
		{"uint32", uint32(9), Integer, int64(9)},
		{"huge uint64", uint64(math.MaxUint64), Float, float64(math.MaxUint64)},
		{"float32", float32(0.5), Float, 0.5},
		{"float64", 2.25, Float, 2.25},
		{"whole float stays float", 3.0, Float, 3.0},
		{"string", "abc", String, "abc"},
		{"bytes", []byte("xyz"), String, "xyz"},
		{"whole decimal", decimal.RequireFromString("42"), Integer, int64(42)},
		{"whole decimal with exponent", decimal.New(12, 2), Integer, int64(1200)},
		{"fractional decimal", decimal.RequireFromString("1.25"), Float, 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Encode(reg, tt.in)
			if b.Kind() != tt.kind {
				t.Fatalf("kind = %v, want %v", b.Kind(), tt.kind)
			}
			if got := b.Decode(reg); got != tt.want {
				t.Errorf("Decode() = %#v, want %#v", got, tt.want)
			}
			b.Release(reg)
		})
	}
	if reg.Len() != 0 {
		t.Errorf("primitive boxes must not touch the registry, %d handles live", reg.Len())
	}
}

func TestBytesAreCopied(t *testing.T) {
	reg := registry.New()
	src := []byte("abc")
	b := Encode(reg, src)
	src[0] = 'z'
	if b.Decode(reg) != "abc" {
		t.Errorf("box aliases caller storage: %v", b.Decode(reg))
	}
}

func TestReferenceRoundTrip(t *testing.T) {
	reg := registry.New()
	obj := map[string]int{"a": 1}
	b := Encode(reg, obj)
	if b.Kind() != Reference {
		t.Fatalf("kind = %v", b.Kind())
	}
	if reg.Len() != 1 {
		t.Fatalf("expected one handle, got %d", reg.Len())
	}
	got := b.Decode(reg).(map[string]int)
	got["b"] = 2
	if len(obj) != 2 {
		t.Error("decode should hand back the same object")
	}
	// decode twice, nothing consumed
	if b.Decode(reg) == nil {
		t.Error("second decode lost the value")
	}
	b.Release(reg)
	if reg.Len() != 0 {
		t.Errorf("release left %d handles", reg.Len())
	}
}

func TestCopySharesHandle(t *testing.T) {
	reg := registry.New()
	b := Encode(reg, []string{"x"})
	c := b.Copy(reg)
	b.Release(reg)
	b.Release(reg) // second release is a no-op
	if _, ok := c.Decode(reg).([]string); !ok {
		t.Fatal("copy lost its reference when the source was released")
	}
	if reg.Stats().Released != 1 {
		t.Errorf("double release dropped %d claims", reg.Stats().Released)
	}
	c.Release(reg)
	if reg.Len() != 0 {
		t.Errorf("copy left %d handles", reg.Len())
	}
	p := Encode(reg, 7).Copy(reg)
	if p.Decode(reg) != int64(7) || reg.Stats().Acquired != 1 {
		t.Errorf("primitive copy = %v, stats %+v", p.Decode(reg), reg.Stats())
	}
}

func TestText(t *testing.T) {
	reg := registry.New()
	tests := []struct {
		in   any
		want string
	}{
		{nil, "nil"},
		{false, "false"},
		{12, "12"},
		{2.0, "2.0"},
		{0.1, "0.1"},
		{1e20, "1e+20"},
		{math.Inf(1), "+Inf"},
		{"s", "s"},
		{[]int{1}, "[1]"},
	}
	for _, tt := range tests {
		b := Encode(reg, tt.in)
		if got := b.Text(reg); got != tt.want {
			t.Errorf("Text(%#v) = %q, want %q", tt.in, got, tt.want)
		}
		b.Release(reg)
	}
}
