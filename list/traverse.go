package list

import "lnodelist/value"

// Callbacks receive the decoded value and its 1-based index. They must not
// add or remove nodes of the list being walked.

type Consumer func(val any, idx int)

type Mapper func(val any, idx int) any

type Expected func(val any, idx int) bool

func (l *List) ForEach(consumer Consumer) {
	idx := 0
	for n := l.head; n != nil; n = n.next {
		idx++
		consumer(n.box.Decode(l.reg), idx)
	}
}

// Map replaces every value with mapper's result. The list is changed in place;
// pair it with Slice to keep the original.
func (l *List) Map(mapper Mapper) {
	idx := 0
	for n := l.head; n != nil; n = n.next {
		idx++
		res := mapper(n.box.Decode(l.reg), idx)
		n.box.Release(l.reg)
		n.box = value.Encode(l.reg, res)
	}
}

func (l *List) Some(expected Expected) bool {
	return l.match(expected) != nil
}

// Find returns the first value accepted by expected, or nil.
func (l *List) Find(expected Expected) any {
	if n := l.match(expected); n != nil {
		return n.box.Decode(l.reg)
	}
	return nil
}

func (l *List) match(expected Expected) *node {
	idx := 0
	for n := l.head; n != nil; n = n.next {
		idx++
		if expected(n.box.Decode(l.reg), idx) {
			return n
		}
	}
	return nil
}
