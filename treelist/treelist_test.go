package treelist_test

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/qntx/jointree/treelist"
)

func TestListAdd(t *testing.T) {
	t.Parallel()

	list := treelist.NewAVL[int]()

	if got := list.Add(3, 1, 2); got != 3 {
		t.Errorf("Add() = %d, want 3", got)
	}

	if got := list.Add(2, 4); got != 1 {
		t.Errorf("Add(2, 4) = %d, want 1 (2 already present)", got)
	}

	want := []int{1, 2, 3, 4}
	if got := list.Values(); !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}

	if err := list.Validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestListRemove(t *testing.T) {
	t.Parallel()

	list := treelist.NewWB(1, 2, 3, 4)

	if got := list.Remove(2, 5); got != 1 {
		t.Errorf("Remove(2, 5) = %d, want 1", got)
	}

	want := []int{1, 3, 4}
	if got := list.Values(); !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestListContains(t *testing.T) {
	t.Parallel()

	list := treelist.NewAVL(1, 2, 3)

	if !list.Contains(1, 2, 3) {
		t.Errorf("Contains(1,2,3) = false, want true")
	}

	if list.Contains(1, 4) {
		t.Errorf("Contains(1,4) = true, want false")
	}
}

func TestListAt(t *testing.T) {
	t.Parallel()

	list := treelist.NewAVL(10, 20, 30)

	for i, want := range []int{10, 20, 30} {
		got, err := list.At(i)
		if err != nil {
			t.Fatalf("At(%d) returned error %v", i, err)
		}

		if got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}

	if _, err := list.At(3); err == nil {
		t.Errorf("At(3) should report an out-of-bounds error")
	}
}

func TestListIterAndRIter(t *testing.T) {
	t.Parallel()

	list := treelist.NewAVL(1, 2, 3)

	var forward []int
	for v := range list.Iter() {
		forward = append(forward, v)
	}

	if want := []int{1, 2, 3}; !slices.Equal(forward, want) {
		t.Errorf("Iter() = %v, want %v", forward, want)
	}

	var reverse []int
	for v := range list.RIter() {
		reverse = append(reverse, v)
	}

	if want := []int{3, 2, 1}; !slices.Equal(reverse, want) {
		t.Errorf("RIter() = %v, want %v", reverse, want)
	}
}

func TestListEnumerable(t *testing.T) {
	t.Parallel()

	list := treelist.NewAVL(1, 2, 3)

	var sum int

	list.Each(func(_ int, v int) { sum += v })

	if sum != 6 {
		t.Errorf("Each sum = %d, want 6", sum)
	}

	if !list.Any(func(_ int, v int) bool { return v == 2 }) {
		t.Errorf("Any(v==2) = false, want true")
	}

	if !list.All(func(_ int, v int) bool { return v > 0 }) {
		t.Errorf("All(v>0) = false, want true")
	}

	if idx, val := list.Find(func(_ int, v int) bool { return v == 3 }); idx != 2 || val != 3 {
		t.Errorf("Find(v==3) = (%d, %d), want (2, 3)", idx, val)
	}
}

func TestListSerialization(t *testing.T) {
	t.Parallel()

	list := treelist.NewAVL("a", "b", "c")

	bytes, err := list.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	other := treelist.NewAVL[string]()
	if err := other.UnmarshalJSON(bytes); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	if want := []string{"a", "b", "c"}; !slices.Equal(other.Values(), want) {
		t.Errorf("round trip Values() = %v, want %v", other.Values(), want)
	}

	if _, err := json.Marshal(list); err != nil {
		t.Errorf("json.Marshal: %v", err)
	}
}

func TestListString(t *testing.T) {
	t.Parallel()

	list := treelist.NewAVL(1)

	if !strings.HasPrefix(list.String(), "TreeList") {
		t.Errorf("String should start with container name")
	}
}

func TestListClone(t *testing.T) {
	t.Parallel()

	list := treelist.NewAVL(1, 2, 3)
	clone := list.Clone()

	clone.Add(4)
	list.Remove(1)

	if !clone.Contains(1) || clone.Len() != 4 {
		t.Errorf("clone should retain 1 and also see its own addition, got %v", clone.Values())
	}

	if list.Contains(4) {
		t.Errorf("list should not see clone's later addition")
	}
}
