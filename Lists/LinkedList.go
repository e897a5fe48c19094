package Lists

import "slices"

type node[T any] struct {
	v          T
	prev, next *node[T]
}

// LinkedList is a doubly linked List. The zero value is an empty list.
type LinkedList[T comparable] struct {
	head, tail *node[T]
	sz         uint
}

func New[T comparable](es ...T) *LinkedList[T] {
	l := new(LinkedList[T])
	for _, e := range es {
		l.Add(e)
	}
	return l
}

func (u *LinkedList[T]) Size() uint {
	return u.sz
}

func (u *LinkedList[T]) linkLast(e T) {
	n := &node[T]{e, u.tail, nil}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
}

func (u *LinkedList[T]) unlink(n *node[T]) {
	if n.prev == nil {
		u.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		u.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	u.sz--
}

// at walks from whichever end is nearer to i.
// Time: O(min(i, Size()-i))
func (u *LinkedList[T]) at(i uint) *node[T] {
	if i >= u.sz {
		return nil
	}
	if i < u.sz>>1 {
		cur := u.head
		for ; i > 0; i-- {
			cur = cur.next
		}
		return cur
	}
	cur := u.tail
	for j := u.sz - 1; j > i; j-- {
		cur = cur.prev
	}
	return cur
}

func (u *LinkedList[T]) find(e T) (*node[T], int) {
	i := 0
	for cur := u.head; cur != nil; cur = cur.next {
		if cur.v == e {
			return cur, i
		}
		i++
	}
	return nil, -1
}

func (u *LinkedList[T]) Add(e T) {
	u.linkLast(e)
}

// Push e to the front of the list.
func (u *LinkedList[T]) Push(e T) {
	n := &node[T]{e, nil, u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.prev = n
	}
	u.head = n
	u.sz++
}

func (u *LinkedList[T]) Remove(e T) bool {
	if n, _ := u.find(e); n != nil {
		u.unlink(n)
		return true
	}
	return false
}

// RemoveAt index i, returning the removed element.
func (u *LinkedList[T]) RemoveAt(i uint) (T, bool) {
	if n := u.at(i); n != nil {
		u.unlink(n)
		return n.v, true
	}
	return *new(T), false
}

func (u *LinkedList[T]) Get(i uint) (T, bool) {
	if n := u.at(i); n != nil {
		return n.v, true
	}
	return *new(T), false
}

func (u *LinkedList[T]) Set(i uint, v T) (T, bool) {
	if n := u.at(i); n != nil {
		old := n.v
		n.v = v
		return old, true
	}
	return *new(T), false
}

func (u *LinkedList[T]) First() (T, bool) {
	if u.head == nil {
		return *new(T), false
	}
	return u.head.v, true
}

func (u *LinkedList[T]) Last() (T, bool) {
	if u.tail == nil {
		return *new(T), false
	}
	return u.tail.v, true
}

func (u *LinkedList[T]) All() []T {
	vs := make([]T, 0, u.sz)
	for cur := u.head; cur != nil; cur = cur.next {
		vs = append(vs, cur.v)
	}
	return vs
}

func (u *LinkedList[T]) Contains(e T) bool {
	n, _ := u.find(e)
	return n != nil
}

func (u *LinkedList[T]) IndexOf(e T) int {
	_, i := u.find(e)
	return i
}

func (u *LinkedList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// Sort is stable. The nodes keep their positions; only the values move.
// Time: O(n log n); Space: O(n)
func (u *LinkedList[T]) Sort(cmp func(a, b T) int) {
	vs := u.All()
	slices.SortStableFunc(vs, cmp)
	i := 0
	for cur := u.head; cur != nil; cur = cur.next {
		cur.v = vs[i]
		i++
	}
}

func (u *LinkedList[T]) Range(f func(T) bool) {
	for cur := u.head; cur != nil; cur = cur.next {
		if !f(cur.v) {
			return
		}
	}
}

// Reverse iterates from the tail until f returns false.
func (u *LinkedList[T]) Reverse(f func(T) bool) {
	for cur := u.tail; cur != nil; cur = cur.prev {
		if !f(cur.v) {
			return
		}
	}
}
