package warehouse

import "testing"

func TestComponentSparseSetInsertGetRemove(t *testing.T) {
	set := NewComponentSparseSet[int]()
	e1 := Entity{Index: 1, Generation: 1}
	e2 := Entity{Index: 2, Generation: 1}

	if set.Contains(e1) {
		t.Fatalf("empty set should not contain e1")
	}

	if _, existed := set.Insert(e1, 10, 1); existed {
		t.Fatalf("first insert should report no previous value")
	}
	set.Insert(e2, 20, 1)

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}

	v, ok := set.Get(e1)
	if !ok || *v != 10 {
		t.Fatalf("Get(e1) = %v, %v, want 10, true", v, ok)
	}

	old, removed := set.Remove(e1)
	if !removed || old != 10 {
		t.Fatalf("Remove(e1) = %v, %v, want 10, true", old, removed)
	}
	if set.Contains(e1) {
		t.Fatalf("e1 should be gone after Remove")
	}
	if !set.Contains(e2) {
		t.Fatalf("e2 should survive removing e1")
	}
}

func TestComponentSparseSetOverwritePreservesAdded(t *testing.T) {
	set := NewComponentSparseSet[int]()
	e := Entity{Index: 1, Generation: 1}

	set.Insert(e, 1, 5)
	ticks, _ := set.GetTicks(e)
	if ticks.Added != 5 || ticks.Changed != 5 {
		t.Fatalf("initial ticks = %+v, want Added=5 Changed=5", ticks)
	}

	old, existed := set.Insert(e, 2, 9)
	if !existed || old != 1 {
		t.Fatalf("overwrite should report previous value 1, got %v existed=%v", old, existed)
	}
	ticks, _ = set.GetTicks(e)
	if ticks.Added != 5 {
		t.Fatalf("overwriting an existing slot must not reset Added, got %d want 5", ticks.Added)
	}
	if ticks.Changed != 9 {
		t.Fatalf("overwriting an existing slot must bump Changed, got %d want 9", ticks.Changed)
	}
}

func TestComponentSparseSetRemoveSwapsTail(t *testing.T) {
	set := NewComponentSparseSet[string]()
	e1 := Entity{Index: 1, Generation: 1}
	e2 := Entity{Index: 2, Generation: 1}
	e3 := Entity{Index: 3, Generation: 1}

	set.Insert(e1, "a", 1)
	set.Insert(e2, "b", 1)
	set.Insert(e3, "c", 1)

	set.Remove(e1)

	if set.Len() != 2 {
		t.Fatalf("Len() after remove = %d, want 2", set.Len())
	}
	for _, e := range []Entity{e2, e3} {
		idx, ok := set.IndexOf(e)
		if !ok {
			t.Fatalf("IndexOf(%v) not found after tail swap", e)
		}
		if set.EntityAt(idx) != e {
			t.Fatalf("EntityAt(%d) = %v, want %v", idx, set.EntityAt(idx), e)
		}
	}
}
