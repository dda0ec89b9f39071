package list

import (
	"fmt"
	"github.com/google/uuid"
	"lnodelist/registry"
	"lnodelist/value"
	"runtime"
	"strings"
)

// List is a doubly linked list of boxed values of any kind.
// Indices are 1-based; a negative index counts from the tail (-1 is the last element).
// A List is not safe for concurrent use.
type List struct {
	id   uuid.UUID
	reg  *registry.Registry
	size int
	head *node
	tail *node
}

type Option func(l *List)

// WithRegistry makes the list park non-primitive values in reg instead of registry.Default.
func WithRegistry(reg *registry.Registry) Option {
	return func(l *List) {
		if reg != nil {
			l.reg = reg
		}
	}
}

func New(opts ...Option) *List {
	l := &List{
		id:  uuid.New(),
		reg: registry.Default,
	}
	for _, opt := range opts {
		opt(l)
	}
	// an unreachable list still owes its handles back to the registry
	runtime.SetFinalizer(l, (*List).Clear)
	return l
}

// Make builds a list holding values in order.
func Make(values ...any) *List {
	l := New()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

func (l *List) ID() string {
	return l.id.String()
}

func (l *List) Size() int {
	return l.size
}

func (l *List) String() string {
	return fmt.Sprintf("NodeList <Length: %d, Reference: %s>", l.size, l.id)
}

// checkIdx normalizes a negative index and validates it against 1..size.
func (l *List) checkIdx(i int) (int, error) {
	idx := i
	if i < 0 {
		idx = l.size + 1 + i
	}
	if idx <= 0 || idx > l.size {
		return 0, indexErr(l.size, i)
	}
	return idx, nil
}

// bounds reads the optional [start, end] pair, defaulting to the whole list.
func (l *List) bounds(op string, b []int) (start int, end int, err error) {
	start, end = 1, l.size
	if len(b) > 0 {
		start = b[0]
	}
	if len(b) > 1 {
		end = b[1]
	}
	if start, err = l.checkIdx(start); err != nil {
		return 0, 0, err
	}
	if end, err = l.checkIdx(end); err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, rangeErr(op, start, end)
	}
	return start, end, nil
}

func (l *List) Push(v any) {
	l.pushRaw().box = value.Encode(l.reg, v)
}

func (l *List) PushLeft(v any) {
	l.pushLeftRaw().box = value.Encode(l.reg, v)
}

func (l *List) Pop() (any, error) {
	if l.size <= 0 {
		return nil, emptyErr(l.size)
	}
	v := l.tail.box.Decode(l.reg)
	l.removeTail()
	return v, nil
}

func (l *List) PopLeft() (any, error) {
	if l.size <= 0 {
		return nil, emptyErr(l.size)
	}
	v := l.head.box.Decode(l.reg)
	l.removeHead()
	return v, nil
}

// Remove drops the tail without decoding it.
func (l *List) Remove() error {
	if l.size <= 0 {
		return emptyErr(l.size)
	}
	l.removeTail()
	return nil
}

// RemoveLeft drops the head without decoding it.
func (l *List) RemoveLeft() error {
	if l.size <= 0 {
		return emptyErr(l.size)
	}
	l.removeHead()
	return nil
}

func (l *List) Get(i int) (any, error) {
	idx, err := l.checkIdx(i)
	if err != nil {
		return nil, err
	}
	return l.nodeAt(idx).box.Decode(l.reg), nil
}

func (l *List) Set(i int, v any) error {
	idx, err := l.checkIdx(i)
	if err != nil {
		return err
	}
	n := l.nodeAt(idx)
	n.box.Release(l.reg)
	n.box = value.Encode(l.reg, v)
	return nil
}

// Insert places v so that it ends up at position idx. idx = Size()+1 appends.
// Negative indices are rejected.
func (l *List) Insert(idx int, v any) error {
	if idx <= 0 || idx > l.size+1 {
		return indexErr(l.size, idx)
	}
	var n *node
	switch {
	case idx == 1:
		n = l.pushLeftRaw()
	case idx == l.size+1:
		n = l.pushRaw()
	default:
		n = l.insertRaw(idx)
	}
	n.box = value.Encode(l.reg, v)
	return nil
}

func (l *List) Delete(i int) error {
	idx, err := l.checkIdx(i)
	if err != nil {
		return err
	}
	l.removeNode(l.nodeAt(idx))
	return nil
}

// Reverse flips the chain in place by swapping every node's links.
func (l *List) Reverse() {
	if l.size <= 1 {
		return
	}
	l.head = l.tail
	temp := l.tail.prev
	for temp != nil {
		l.tail.prev = l.tail.next
		l.tail.next = temp
		l.tail = temp
		temp = temp.prev
	}
	l.tail.prev = l.tail.next
	l.tail.next = nil
}

// Clear frees every node and returns every registry claim.
func (l *List) Clear() {
	for l.size > 0 {
		l.removeTail()
	}
}

// Extend appends a copy of every value of other. Extending a list by itself
// doubles it.
func (l *List) Extend(other *List) {
	n := other.head
	for count := other.size; count > 0; count-- {
		l.pushRaw().box = l.copyFrom(other, n.box)
		n = n.next
	}
}

// copyFrom copies a box of src into l. Lists sharing a registry share handles.
func (l *List) copyFrom(src *List, b *value.Box) *value.Box {
	if src.reg == l.reg {
		return b.Copy(l.reg)
	}
	return value.Encode(l.reg, b.Decode(src.reg))
}

// Slice copies the values in [start, end] into a new list.
// Both bounds are optional and default to the first and last element.
func (l *List) Slice(b ...int) (*List, error) {
	start, end, err := l.bounds("slice", b)
	if err != nil {
		return nil, err
	}
	sl := New(WithRegistry(l.reg))
	n := l.nodeAt(start)
	for i := start; i <= end; i++ {
		sl.pushRaw().box = n.box.Copy(l.reg)
		n = n.next
	}
	return sl, nil
}

// Join concatenates the text of the values in [start, end] with sep between them.
// An empty list always joins to "".
func (l *List) Join(sep string, b ...int) (string, error) {
	if l.size == 0 {
		return "", nil
	}
	start, end, err := l.bounds("join", b)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	n := l.nodeAt(start)
	for i := start; i <= end; i++ {
		if i > start {
			sb.WriteString(sep)
		}
		sb.WriteString(n.box.Text(l.reg))
		n = n.next
	}
	return sb.String(), nil
}

// Values decodes the whole list, head first.
func (l *List) Values() []any {
	res := make([]any, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		res = append(res, n.box.Decode(l.reg))
	}
	return res
}
