package Stacks

type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
	Size() uint
	//Values from bottom to top.
	Values() []T
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
