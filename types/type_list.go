package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable list of types.
type TypeList struct {
	l *immutable.List
}

func NewTypeList(ts ...Type) TypeList {
	if len(ts) == 0 {
		return EmptyTypeList
	}
	b := immutable.NewListBuilder(emptyList)
	for _, t := range ts {
		b.Append(t)
	}
	return TypeList{b.List()}
}

func SingletonTypeList(t Type) TypeList {
	return TypeList{emptyList.Append(t)}
}

func (l TypeList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l TypeList) Get(i int) Type { return l.l.Get(i).(Type) }

// Append returns a new list with t at its end. The receiver is not modified.
func (l TypeList) Append(t Type) TypeList {
	imm := l.l
	if imm == nil {
		imm = emptyList
	}
	return TypeList{imm.Append(t)}
}

// If f returns false, iteration will be stopped.
func (l TypeList) Range(f func(int, Type) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Type)) {
			return
		}
	}
}

// Contains reports whether the list contains a type identical to t.
func (l TypeList) Contains(t Type) bool {
	found := false
	l.Range(func(_ int, x Type) bool {
		found = Identical(x, t)
		return !found
	})
	return found
}

// Slice copies the list into a new slice.
func (l TypeList) Slice() []Type {
	out := make([]Type, 0, l.Len())
	l.Range(func(_ int, t Type) bool {
		out = append(out, t)
		return true
	})
	return out
}
