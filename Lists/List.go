package Lists

// List is an indexed sequence of comparable elements. Indexes start at 0.
// Receivers returning a bool as the second value use it to tell whether
// the first value is defined.
type List[T comparable] interface {
	Size() uint
	//Add e to the end of the List.
	Add(e T)
	//Remove the first occurrence of e. Returns false if e isn't in the List.
	Remove(e T) bool
	//Get the element at index i.
	Get(i uint) (T, bool)
	//Set the element at index i to v, returning the previous element.
	Set(i uint, v T) (T, bool)
	//All elements in order.
	All() []T
	Contains(e T) bool
	//IndexOf the first occurrence of e. -1 if e isn't in the List.
	IndexOf(e T) int
	Clear()
	//Sort the List in place with a comparison function like the one slices.SortFunc takes.
	Sort(cmp func(a, b T) int)
	//Range over the elements in order until f returns false.
	Range(f func(T) bool)
}
