package modlist

import (
	"errors"
	"testing"
)

func TestListAppendRemove(t *testing.T) {
	l := NewList()
	if err := l.Append("a", Info{Name: "A"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	_ = l.Append("b", Info{Name: "B"})
	_ = l.Append("c", Info{Name: "C"})

	if err := l.Append("b", Info{}); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate Append error = %v, want ErrDuplicateID", err)
	}
	assertOrder(t, l, "a", "b", "c")

	info, ok := l.Remove("b")
	if !ok || info.Name != "B" {
		t.Fatalf("Remove(b) = %v, %v", info, ok)
	}
	assertOrder(t, l, "a", "c")
	if i, _ := l.Index("c"); i != 1 {
		t.Errorf("Index(c) = %d after remove, want 1", i)
	}
	if _, ok := l.Remove("b"); ok {
		t.Error("second Remove(b) should report false")
	}
	if l.Contains("b") {
		t.Error("Contains(b) after remove")
	}
}

func TestListZeroValue(t *testing.T) {
	var l List
	if l.Len() != 0 || l.Contains("a") {
		t.Fatal("zero list should be empty")
	}
	if _, ok := l.Remove("a"); ok {
		t.Error("Remove on empty list")
	}
	if err := l.Append("a", Info{}); err != nil {
		t.Fatalf("Append on zero value: %v", err)
	}
	if i, ok := l.Index("a"); !ok || i != 0 {
		t.Errorf("Index(a) = %d, %v", i, ok)
	}
}

func TestListMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []ID
	}{
		{"down", 0, 2, IDs("b", "c", "a", "d")},
		{"up", 3, 1, IDs("a", "d", "b", "c")},
		{"noop", 2, 2, IDs("a", "b", "c", "d")},
		{"to end", 0, 3, IDs("b", "c", "d", "a")},
		{"to front", 3, 0, IDs("d", "a", "b", "c")},
		{"adjacent down", 1, 2, IDs("a", "c", "b", "d")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ListOf(IDs("a", "b", "c", "d")...)
			if err := l.Move(tt.from, tt.to); err != nil {
				t.Fatalf("Move: %v", err)
			}
			assertOrder(t, l, tt.want...)
			for i, id := range tt.want {
				if got, _ := l.Index(id); got != i {
					t.Errorf("Index(%s) = %d, want %d", id, got, i)
				}
			}
		})
	}
}

func TestListMoveOutOfRange(t *testing.T) {
	l := ListOf("a", "b")
	for _, tc := range [][2]int{{-1, 0}, {0, 2}, {2, 0}} {
		if err := l.Move(tc[0], tc[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Move(%d, %d) error = %v", tc[0], tc[1], err)
		}
	}
	if err := l.MoveTo("zzz", 0); !errors.Is(err, ErrNotInList) {
		t.Errorf("MoveTo(unknown) error = %v", err)
	}
	if err := l.MoveTo("b", 0); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	assertOrder(t, l, "b", "a")
}

func TestListCloneIsIndependent(t *testing.T) {
	l := ListOf("a", "b", "c")
	c := l.Clone()
	_ = c.Move(0, 2)
	c.Remove("b")

	assertOrder(t, l, "a", "b", "c")
	assertOrder(t, c, "c", "a")
}

func TestListOfDropsDuplicates(t *testing.T) {
	l := ListOf("a", "b", "a")
	assertOrder(t, l, "a", "b")
}

func TestListGetAndEntries(t *testing.T) {
	l := NewList()
	_ = l.Append("a", Info{Name: "Alpha", Authors: []string{"x"}})
	info, ok := l.Get("a")
	if !ok || info.Name != "Alpha" {
		t.Errorf("Get(a) = %v, %v", info, ok)
	}
	if _, ok := l.Get("b"); ok {
		t.Error("Get(b) should miss")
	}
	entries := l.Entries()
	entries[0].ID = "mutated"
	if l.At(0).ID != "a" {
		t.Error("Entries should return a copy")
	}
}
