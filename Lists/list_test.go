package Lists

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestLinkedList_AddGetSet(t *testing.T) {
	var l List[int] = New[int]()
	for i := 0; i < 20; i++ {
		l.Add(i * 2)
	}
	if l.Size() != 20 {
		t.Errorf("size is %d, want 20", l.Size())
	}
	for i := uint(0); i < 20; i++ {
		if v, ok := l.Get(i); !ok || v != int(i*2) {
			t.Errorf("get(%d) is %d, want %d", i, v, i*2)
		}
	}
	if _, ok := l.Get(20); ok {
		t.Error("get out of range")
	}
	if old, ok := l.Set(15, -1); !ok || old != 30 {
		t.Errorf("set returned %d", old)
	}
	if l.IndexOf(-1) != 15 || !l.Contains(-1) {
		t.Error("set value not found at 15")
	}
	if l.IndexOf(1) != -1 {
		t.Error("found absent value")
	}
}

func TestLinkedList_Remove(t *testing.T) {
	l := New(1, 2, 3, 4, 5)
	if !l.Remove(1) || !l.Remove(5) || !l.Remove(3) {
		t.Error("failed to remove")
	}
	if l.Remove(3) {
		t.Error("removed twice")
	}
	if got := l.All(); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("all is %v", got)
	}
	if f, _ := l.First(); f != 2 {
		t.Errorf("first is %d", f)
	}
	if b, _ := l.Last(); b != 4 {
		t.Errorf("last is %d", b)
	}
	if v, ok := l.RemoveAt(1); !ok || v != 4 {
		t.Errorf("removeAt is %d", v)
	}
	l.Remove(2)
	if l.Size() != 0 {
		t.Errorf("size is %d", l.Size())
	}
	if _, ok := l.First(); ok {
		t.Error("empty list has a first element")
	}
	l.Push(9)
	l.Add(10)
	l.Push(8)
	if got := l.All(); !slices.Equal(got, []int{8, 9, 10}) {
		t.Errorf("all is %v", got)
	}
}

func TestLinkedList_Sort(t *testing.T) {
	l := new(LinkedList[int])
	a := make([]int, 500)
	for i := range a {
		a[i] = rg.Intn(1000)
		l.Add(a[i])
	}
	l.Sort(cmp.Compare[int])
	slices.Sort(a)
	if got := l.All(); !slices.Equal(got, a) {
		t.Error("sorted list differs")
	}
	var back []int
	l.Reverse(func(v int) bool {
		back = append(back, v)
		return true
	})
	slices.Reverse(back)
	if !slices.Equal(back, a) {
		t.Error("reverse iteration differs")
	}
	n := 0
	l.Range(func(int) bool {
		n++
		return n < 10
	})
	if n != 10 {
		t.Errorf("range visited %d, want 10", n)
	}
	l.Clear()
	if l.Size() != 0 || len(l.All()) != 0 {
		t.Error("clear left elements")
	}
}
