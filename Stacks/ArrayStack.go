package Stacks

// ArrayStack is a slice backed Stack. The zero value is an empty stack.
type ArrayStack[T any] struct {
	content []T
}

func MakeArrayStack[T any](initCap uint) *ArrayStack[T] {
	return &ArrayStack[T]{make([]T, 0, initCap)}
}

func (u *ArrayStack[T]) Empty() bool {
	return len(u.content) == 0
}

func (u *ArrayStack[T]) Size() uint {
	return uint(len(u.content))
}

func (u *ArrayStack[T]) Push(item T) {
	u.content = append(u.content, item)
}

func (u *ArrayStack[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), &EmptyStackError{}
	}
	last := len(u.content) - 1
	t := u.content[last]
	u.content[last] = *new(T)
	u.content = u.content[:last]
	return t, nil
}

// Peek returns the top without removing it. The bool is false on an empty stack.
func (u *ArrayStack[T]) Peek() (T, bool) {
	if u.Empty() {
		return *new(T), false
	}
	return u.content[len(u.content)-1], true
}

// Reset empties the stack but keeps the allocated memory.
func (u *ArrayStack[T]) Reset() {
	clear(u.content)
	u.content = u.content[:0]
}

func (u *ArrayStack[T]) Values() []T {
	return append([]T(nil), u.content...)
}
