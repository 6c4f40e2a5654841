package treeset_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/qntx/jointree/treeset"
)

func TestSetNewAVL(t *testing.T) {
	t.Parallel()

	set := treeset.NewAVL(2, 1)
	if actualValue := set.Len(); actualValue != 2 {
		t.Errorf("Got %v expected %v", actualValue, 2)
	}

	values := set.Values()
	if actualValue := values[0]; actualValue != 1 {
		t.Errorf("Got %v expected %v", actualValue, 1)
	}

	if actualValue := values[1]; actualValue != 2 {
		t.Errorf("Got %v expected %v", actualValue, 2)
	}

	if err := set.Validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestSetNewWB(t *testing.T) {
	t.Parallel()

	set := treeset.NewWB(2, 1, 3, 0, 5, 4)
	if actualValue := set.Len(); actualValue != 6 {
		t.Errorf("Got %v expected %v", actualValue, 6)
	}

	if err := set.Validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestSetAdd(t *testing.T) {
	t.Parallel()

	set := treeset.NewAVL[int]()
	set.Add()
	set.Add(1)
	set.Add(2)
	set.Add(2, 3)
	set.Add()

	if actualValue := set.Empty(); actualValue {
		t.Errorf("Got %v expected %v", actualValue, false)
	}

	if actualValue := set.Len(); actualValue != 3 {
		t.Errorf("Got %v expected %v", actualValue, 3)
	}
}

func TestSetContains(t *testing.T) {
	t.Parallel()

	set := treeset.NewAVL[int]()
	set.Add(3, 1, 2)

	if actualValue := set.Contains(); !actualValue {
		t.Errorf("Got %v expected %v", actualValue, true)
	}

	if actualValue := set.Contains(1); !actualValue {
		t.Errorf("Got %v expected %v", actualValue, true)
	}

	if actualValue := set.Contains(1, 2, 3); !actualValue {
		t.Errorf("Got %v expected %v", actualValue, true)
	}

	if actualValue := set.Contains(1, 2, 3, 4); actualValue {
		t.Errorf("Got %v expected %v", actualValue, false)
	}
}

func TestSetRemove(t *testing.T) {
	t.Parallel()

	set := treeset.NewAVL[int]()
	set.Add(3, 1, 2)
	set.Remove()

	if actualValue := set.Len(); actualValue != 3 {
		t.Errorf("Got %v expected %v", actualValue, 3)
	}

	set.Remove(1)

	if actualValue := set.Len(); actualValue != 2 {
		t.Errorf("Got %v expected %v", actualValue, 2)
	}

	set.Remove(3)
	set.Remove(3)
	set.Remove()
	set.Remove(2)

	if actualValue := set.Len(); actualValue != 0 {
		t.Errorf("Got %v expected %v", actualValue, 0)
	}
}

func TestSetSerialization(t *testing.T) {
	t.Parallel()

	set := treeset.NewAVL[string]()
	set.Add("a", "b", "c")

	var err error

	assert := func() {
		if actualValue, expectedValue := set.Len(), 3; actualValue != expectedValue {
			t.Errorf("Got %v expected %v", actualValue, expectedValue)
		}

		if actualValue := set.Contains("a", "b", "c"); !actualValue {
			t.Errorf("Got %v expected %v", actualValue, true)
		}

		if err != nil {
			t.Errorf("Got error %v", err)
		}
	}

	assert()

	bytes, err := set.MarshalJSON()

	assert()

	err = set.UnmarshalJSON(bytes)

	assert()

	_, err = json.Marshal([]any{"a", "b", "c", set})
	if err != nil {
		t.Errorf("Got error %v", err)
	}

	err = json.Unmarshal([]byte(`["1","2","3"]`), set)
	if err != nil {
		t.Errorf("Got error %v", err)
	}
}

func TestSetString(t *testing.T) {
	t.Parallel()

	c := treeset.NewAVL[int]()
	c.Add(1)

	if !strings.HasPrefix(c.String(), "TreeSet") {
		t.Errorf("String should start with container name")
	}
}

func TestSetIntersection(t *testing.T) {
	t.Parallel()

	set := treeset.NewAVL[string]()
	another := treeset.NewAVL[string]()

	intersection := set.Intersection(another)
	if actualValue, expectedValue := intersection.Len(), 0; actualValue != expectedValue {
		t.Errorf("Got %v expected %v", actualValue, expectedValue)
	}

	set.Add("a", "b", "c", "d")
	another.Add("c", "d", "e", "f")

	intersection = set.Intersection(another)

	if actualValue, expectedValue := intersection.Len(), 2; actualValue != expectedValue {
		t.Errorf("Got %v expected %v", actualValue, expectedValue)
	}

	if actualValue := intersection.Contains("c", "d"); !actualValue {
		t.Errorf("Got %v expected %v", actualValue, true)
	}

	if err := intersection.Validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}
}

func TestSetUnion(t *testing.T) {
	t.Parallel()

	set := treeset.NewWB[string]()
	another := treeset.NewWB[string]()

	union := set.Union(another)
	if actualValue, expectedValue := union.Len(), 0; actualValue != expectedValue {
		t.Errorf("Got %v expected %v", actualValue, expectedValue)
	}

	set.Add("a", "b", "c", "d")
	another.Add("c", "d", "e", "f")

	union = set.Union(another)

	if actualValue, expectedValue := union.Len(), 6; actualValue != expectedValue {
		t.Errorf("Got %v expected %v", actualValue, expectedValue)
	}

	if actualValue := union.Contains("a", "b", "c", "d", "e", "f"); !actualValue {
		t.Errorf("Got %v expected %v", actualValue, true)
	}

	if err := union.Validate(); err != nil {
		t.Errorf("invariant violated: %v", err)
	}

	// Operands are untouched by a non-destructive union.
	if set.Len() != 4 || another.Len() != 4 {
		t.Errorf("operands mutated by Union: set.Len()=%d another.Len()=%d", set.Len(), another.Len())
	}
}

func TestSetDifference(t *testing.T) {
	t.Parallel()

	set := treeset.NewAVL[string]()
	another := treeset.NewAVL[string]()

	difference := set.Difference(another)
	if actualValue, expectedValue := difference.Len(), 0; actualValue != expectedValue {
		t.Errorf("Got %v expected %v", actualValue, expectedValue)
	}

	set.Add("a", "b", "c", "d")
	another.Add("c", "d", "e", "f")

	difference = set.Difference(another)

	if actualValue, expectedValue := difference.Len(), 2; actualValue != expectedValue {
		t.Errorf("Got %v expected %v", actualValue, expectedValue)
	}

	if actualValue := difference.Contains("a", "b"); !actualValue {
		t.Errorf("Got %v expected %v", actualValue, true)
	}
}

func TestSetEquals(t *testing.T) {
	t.Parallel()

	a := treeset.NewAVL(1, 2, 3)
	b := treeset.NewAVL(3, 2, 1)
	c := treeset.NewAVL(1, 2, 4)

	if !a.SetEquals(b) {
		t.Errorf("expected a to equal b")
	}

	if a.SetEquals(c) {
		t.Errorf("expected a not to equal c")
	}
}

func TestSetSubsetSupersetOverlap(t *testing.T) {
	t.Parallel()

	a := treeset.NewAVL(1, 2)
	b := treeset.NewAVL(1, 2, 3)
	c := treeset.NewAVL(5, 6)

	if !a.IsSubset(b) {
		t.Errorf("expected a to be a subset of b")
	}

	if !b.IsSuperset(a) {
		t.Errorf("expected b to be a superset of a")
	}

	if a.IsSubset(c) {
		t.Errorf("expected a not to be a subset of c")
	}

	if !a.Overlaps(b) {
		t.Errorf("expected a and b to overlap")
	}

	if a.Overlaps(c) {
		t.Errorf("expected a and c not to overlap")
	}
}

func TestSetMismatchedComparators(t *testing.T) {
	t.Parallel()

	a := treeset.NewAVLWith(func(x, y int) int { return x - y })
	b := treeset.NewAVLWith(func(x, y int) int { return y - x })

	a.Add(1, 2, 3)
	b.Add(1, 2, 3)

	if got := a.Union(b).Len(); got != 0 {
		t.Errorf("Union across mismatched comparators = %d elements, want 0", got)
	}

	if a.SetEquals(b) {
		t.Errorf("SetEquals across mismatched comparators should be false")
	}
}

func TestSetEnumerable(t *testing.T) {
	t.Parallel()

	set := treeset.NewAVL(1, 2, 3)

	var sum int

	set.Each(func(_ int, v int) { sum += v })

	if sum != 6 {
		t.Errorf("Each sum = %d, want 6", sum)
	}

	if !set.Any(func(_ int, v int) bool { return v == 2 }) {
		t.Errorf("Any(v==2) = false, want true")
	}

	if set.All(func(_ int, v int) bool { return v > 0 }) != true {
		t.Errorf("All(v>0) = false, want true")
	}

	if idx, val := set.Find(func(_ int, v int) bool { return v == 3 }); idx != 2 || val != 3 {
		t.Errorf("Find(v==3) = (%d, %d), want (2, 3)", idx, val)
	}

	doubled := set.Map(func(_ int, v int) int { return v * 2 })
	if got := doubled.Values(); len(got) != 3 || got[0] != 2 || got[2] != 6 {
		t.Errorf("Map(v*2) = %v", got)
	}

	evens := set.Select(func(_ int, v int) bool { return v%2 == 0 })
	if got := evens.Values(); len(got) != 1 || got[0] != 2 {
		t.Errorf("Select(even) = %v, want [2]", got)
	}
}

func TestSetClone(t *testing.T) {
	t.Parallel()

	set := treeset.NewAVL(1, 2, 3)
	clone := set.Clone()

	clone.Add(4)
	set.Remove(1)

	if !clone.Contains(1) {
		t.Errorf("clone should not see set's later removal")
	}

	if set.Contains(4) {
		t.Errorf("set should not see clone's later addition")
	}
}
