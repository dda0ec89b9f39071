package list

import "lnodelist/value"

type node struct {
	box  *value.Box
	prev *node
	next *node
}

// nodeAt resolves a checked 1-based index, walking from whichever end is closer.
func (l *List) nodeAt(idx int) (n *node) {
	if idx-1 <= l.size-idx {
		n = l.head
		for i := 1; i < idx; i++ {
			n = n.next
		}
	} else {
		n = l.tail
		for i := l.size; i > idx; i-- {
			n = n.prev
		}
	}
	return n
}

// pushRaw appends a node without a box.
func (l *List) pushRaw() *node {
	n := &node{prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
	return n
}

// pushLeftRaw prepends a node without a box.
func (l *List) pushLeftRaw() *node {
	n := &node{next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
	return n
}

// insertRaw splices a node without a box before position idx, 1 < idx <= size.
func (l *List) insertRaw(idx int) *node {
	prev := l.nodeAt(idx - 1)
	next := prev.next
	n := &node{prev: prev, next: next}
	prev.next = n
	next.prev = n
	l.size++
	return n
}

func (l *List) free(n *node) {
	if n.box != nil {
		n.box.Release(l.reg)
		n.box = nil
	}
	n.prev = nil
	n.next = nil
	l.size--
}

func (l *List) removeHead() {
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.free(n)
}

func (l *List) removeTail() {
	n := l.tail
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	l.free(n)
}

func (l *List) removeNode(n *node) {
	if n.prev == nil {
		l.removeHead()
		return
	}
	if n.next == nil {
		l.removeTail()
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	l.free(n)
}
