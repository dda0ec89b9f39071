package list

import (
	"errors"
	"lnodelist/registry"
	"reflect"
	"testing"
)

// checkChain verifies the size against both walking directions and the end links.
func checkChain(t *testing.T, l *List) {
	t.Helper()
	if l.size == 0 {
		if l.head != nil || l.tail != nil {
			t.Fatalf("empty list with dangling ends: head=%p tail=%p", l.head, l.tail)
		}
		return
	}
	if l.head.prev != nil || l.tail.next != nil {
		t.Fatal("head.prev and tail.next must be nil")
	}
	forward := 0
	var last *node
	for n := l.head; n != nil; n = n.next {
		if n.next != nil && n.next.prev != n {
			t.Fatalf("broken back link at position %d", forward+1)
		}
		forward++
		last = n
	}
	if last != l.tail {
		t.Fatal("forward walk does not end at tail")
	}
	backward := 0
	for n := l.tail; n != nil; n = n.prev {
		backward++
	}
	if forward != l.size || backward != l.size {
		t.Fatalf("size %d, forward %d, backward %d", l.size, forward, backward)
	}
}

func ints(vals ...int64) []any {
	res := make([]any, len(vals))
	for i, v := range vals {
		res[i] = v
	}
	return res
}

func assertValues(t *testing.T, l *List, want []any) {
	t.Helper()
	checkChain(t, l)
	if got := l.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
}

func TestFifoLifo(t *testing.T) {
	l := New()
	l.Push(1)
	l.Push(2)
	l.Push(3)
	if l.Size() != 3 {
		t.Fatalf("size = %d", l.Size())
	}
	if v, err := l.Pop(); err != nil || v != int64(3) {
		t.Fatalf("pop = %v, %v", v, err)
	}
	if v, err := l.PopLeft(); err != nil || v != int64(1) {
		t.Fatalf("popleft = %v, %v", v, err)
	}
	if v, _ := l.Get(1); v != int64(2) {
		t.Errorf("get(1) = %v", v)
	}
	checkChain(t, l)
}

func TestPushLeft(t *testing.T) {
	l := New()
	l.PushLeft("b")
	l.PushLeft("a")
	l.Push("c")
	assertValues(t, l, []any{"a", "b", "c"})
}

func TestRoundTripKinds(t *testing.T) {
	obj := &struct{}{}
	for _, v := range []any{int64(-5), 1.5, "str", true, false, nil, obj} {
		l := New()
		l.Push(v)
		if got, _ := l.Get(1); got != v {
			t.Errorf("get after push: %#v != %#v", got, v)
		}
		l.PushLeft(v)
		if got, _ := l.PopLeft(); got != v {
			t.Errorf("popleft after pushleft: %#v != %#v", got, v)
		}
	}
}

func TestInsertDelete(t *testing.T) {
	l := Make(10, 20, 30)
	if err := l.Insert(2, 99); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, ints(10, 99, 20, 30))
	if err := l.Delete(3); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, ints(10, 99, 30))

	if err := l.Insert(1, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.Insert(l.Size()+1, 100); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, ints(0, 10, 99, 30, 100))

	if err := l.Delete(1); err != nil {
		t.Fatal(err)
	}
	if err := l.Delete(-1); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, ints(10, 99, 30))
}

func TestInsertIntoEmpty(t *testing.T) {
	l := New()
	if err := l.Insert(1, "x"); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []any{"x"})
}

func TestIndexResolution(t *testing.T) {
	for _, size := range []int{1, 2, 5, 6, 11} {
		l := New()
		for i := 1; i <= size; i++ {
			l.Push(i * 100)
		}
		for i := 1; i <= size; i++ {
			got, err := l.Get(i)
			if err != nil {
				t.Fatal(err)
			}
			if got != int64(i*100) {
				t.Errorf("size %d: get(%d) = %v", size, i, got)
			}
			// reference forward walk
			n := l.head
			for j := 1; j < i; j++ {
				n = n.next
			}
			if l.nodeAt(i) != n {
				t.Errorf("size %d: nodeAt(%d) differs from forward walk", size, i)
			}
		}
	}
}

func TestNegativeIndex(t *testing.T) {
	l := Make("a", "b", "c", "d")
	last, _ := l.Get(-1)
	end, _ := l.Get(l.Size())
	if last != end {
		t.Errorf("get(-1) = %v, get(size) = %v", last, end)
	}
	first, _ := l.Get(-l.Size())
	if first != "a" {
		t.Errorf("get(-size) = %v", first)
	}
	if err := l.Set(-2, "C"); err != nil {
		t.Fatal(err)
	}
	assertValues(t, l, []any{"a", "b", "C", "d"})
}

func TestErrors(t *testing.T) {
	l := New()
	if _, err := l.PopLeft(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("popleft on empty: %v", err)
	}
	if _, err := l.Pop(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("pop on empty: %v", err)
	}
	if err := l.Remove(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("remove on empty: %v", err)
	}
	if err := l.RemoveLeft(); !errors.Is(err, ErrEmptyList) {
		t.Errorf("removeleft on empty: %v", err)
	}
	if err := l.Delete(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("delete on empty: %v", err)
	}

	l = Make(1, 2, 3)
	if _, err := l.Get(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("get(0): %v", err)
	}
	_, err := l.Get(l.Size() + 1)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("get(size+1): %v", err)
	}
	if err.Error() != "list size: 3 --- index 4: index out of range" {
		t.Errorf("message should carry size and index, got %q", err.Error())
	}
	if _, err = l.Get(-4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("get(-4): %v", err)
	}
	if err = l.Set(5, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("set(5): %v", err)
	}
	if err = l.Insert(0, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("insert(0): %v", err)
	}
	if err = l.Insert(-1, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("insert(-1): %v", err)
	}
	if err = l.Insert(5, 1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("insert(size+2): %v", err)
	}
	if _, err = l.Slice(3, 2); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("slice(3,2): %v", err)
	}
	if _, err = l.Join(",", 3, 2); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("join(3,2): %v", err)
	}
	// failed calls leave the list alone
	assertValues(t, l, ints(1, 2, 3))
}

func TestReverse(t *testing.T) {
	for _, size := range []int{0, 1, 2, 3, 6} {
		l := New()
		want := make([]any, 0, size)
		for i := 1; i <= size; i++ {
			l.Push(i)
			want = append(want, int64(i))
		}
		l.Reverse()
		reversed := make([]any, size)
		for i, v := range want {
			reversed[size-1-i] = v
		}
		assertValues(t, l, reversed)
		l.Reverse()
		assertValues(t, l, want)
	}
}

func TestClear(t *testing.T) {
	reg := registry.New()
	l := New(WithRegistry(reg))
	l.Push(map[string]int{})
	l.Push(1)
	l.Push(func() {})
	l.Clear()
	assertValues(t, l, []any{})
	if reg.Len() != 0 {
		t.Errorf("clear left %d handles", reg.Len())
	}
	l.Push("again")
	assertValues(t, l, []any{"again"})
}

func TestExtend(t *testing.T) {
	a := Make(1, 2)
	b := Make("x", "y")
	a.Extend(b)
	assertValues(t, a, []any{int64(1), int64(2), "x", "y"})
	assertValues(t, b, []any{"x", "y"})

	a.Extend(New())
	if a.Size() != 4 {
		t.Errorf("extend by empty changed size to %d", a.Size())
	}

	b.Extend(b)
	assertValues(t, b, []any{"x", "y", "x", "y"})
}

func TestSliceIndependent(t *testing.T) {
	l := Make(1, 2, 3, 4, 5)
	sl, err := l.Slice(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	assertValues(t, sl, ints(2, 3, 4))
	_ = sl.Set(1, 200)
	sl.Push(6)
	assertValues(t, l, ints(1, 2, 3, 4, 5))

	all, _ := l.Slice()
	assertValues(t, all, ints(1, 2, 3, 4, 5))
	tail, _ := l.Slice(-2)
	assertValues(t, tail, ints(4, 5))
	if _, err = New().Slice(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("slice of empty list: %v", err)
	}
}

func TestSliceReferencesHoldOwnClaims(t *testing.T) {
	reg := registry.New()
	obj := []int{1}
	l := New(WithRegistry(reg))
	l.Push(obj)
	sl, _ := l.Slice()
	l.Extend(sl)
	if reg.Len() != 1 || reg.Stats().Acquired != 1 {
		t.Fatalf("copies should share one handle, got %+v", reg.Stats())
	}
	l.Clear()
	got, _ := sl.Get(1)
	if got.([]int)[0] != 1 {
		t.Error("slice lost its reference when the source was cleared")
	}
	sl.Clear()
	if reg.Len() != 0 {
		t.Errorf("%d handles leaked", reg.Len())
	}
}

func TestJoin(t *testing.T) {
	l := Make(1, 2, 3, 4, 5)
	if s, err := l.Join(",", 2, 4); err != nil || s != "2,3,4" {
		t.Errorf("join = %q, %v", s, err)
	}
	if s, _ := l.Join(""); s != "12345" {
		t.Errorf("join all = %q", s)
	}
	if s, _ := l.Join("-", -2); s != "4-5" {
		t.Errorf("join tail = %q", s)
	}
	if s, _ := Make("a", 1.5, true, nil).Join(" "); s != "a 1.5 true nil" {
		t.Errorf("mixed join = %q", s)
	}
	if s, err := New().Join(",", 7, 1); err != nil || s != "" {
		t.Errorf("empty list join = %q, %v", s, err)
	}
}

func TestSetReleasesOldReference(t *testing.T) {
	reg := registry.New()
	l := New(WithRegistry(reg))
	l.Push(&struct{}{})
	if err := l.Set(1, 7); err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 0 {
		t.Errorf("overwritten reference still holds %d handles", reg.Len())
	}
	_, _ = l.Pop()
}

func TestString(t *testing.T) {
	l := Make(1, 2)
	want := "NodeList <Length: 2, Reference: " + l.ID() + ">"
	if l.String() != want {
		t.Errorf("String() = %q", l.String())
	}
}
