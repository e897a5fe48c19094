package Queues

// circArrQ is a circular array. content[head] is the head, content[tail] is the next free slot.
// When sz==len(content) head==tail.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (this *circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize the underlying array to newLen>=sz, moving the head to index 0.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head, this.tail = 0, this.sz%newLen
}

// Shrink the underlying array to fit the elements.
func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 2)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

// Peek returns the head without removing it, or the zero value when empty.
func (this *circArrQ[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[this.head]
	}
}

func (this *circArrQ[T]) Values() []T {
	vs := make([]T, 0, this.sz)
	for i, j := uint(0), this.head; i < this.sz; i, j = i+1, (j+1)%uint(len(this.content)) {
		vs = append(vs, this.content[j])
	}
	return vs
}
