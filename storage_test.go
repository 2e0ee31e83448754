package warehouse

import "testing"

type posComp struct{ X, Y int }
type velComp struct{ X, Y int }
type healthComp struct{ HP int }

// TestUngroupedSparseSetQuery covers scenario S1: two sparse sets with no
// group family declared, queried plain and with an exclusion.
func TestUngroupedSparseSetQuery(t *testing.T) {
	storage, err := NewComponentStorage(NewGroupLayout())
	if err != nil {
		t.Fatalf("NewComponentStorage: %v", err)
	}
	RegisterComponent[posComp](storage)
	RegisterComponent[velComp](storage)

	e1 := Entity{Index: 1, Generation: 1}
	e2 := Entity{Index: 2, Generation: 1}

	Insert(storage, e1, posComp{X: 1}, 1)
	Insert(storage, e2, posComp{X: 2}, 1)
	Insert(storage, e1, velComp{X: 9}, 1)

	pos, ok := GetComp[posComp](storage)
	if !ok {
		t.Fatalf("GetComp[posComp] failed")
	}
	defer pos.Release()
	vel, ok := GetComp[velComp](storage)
	if !ok {
		t.Fatalf("GetComp[velComp] failed")
	}
	defer vel.Release()

	var both []Entity
	ForEach2(pos, vel, nil, ChangeFilter{}, ChangeFilter{}, storage.groups, func(e Entity, p *posComp, v *velComp) {
		both = append(both, e)
	})
	if len(both) != 1 || both[0] != e1 {
		t.Fatalf("(Pos,Vel) = %v, want exactly [e1]", both)
	}

	var posOnly []Entity
	for e := range Cursor1(pos, vel, ChangeFilter{}, storage.groups) {
		posOnly = append(posOnly, e)
	}
	if len(posOnly) != 1 || posOnly[0] != e2 {
		t.Fatalf("Pos excluding Vel = %v, want exactly [e2]", posOnly)
	}
}

func buildABCLayout(t *testing.T) *ComponentStorage {
	t.Helper()
	layout := NewGroupLayout()
	fb := layout.NewFamily()
	Level(fb, componentType[posComp](), componentType[velComp]())
	Level(fb, componentType[posComp](), componentType[velComp](), componentType[healthComp]())
	fb.Build()

	storage, err := NewComponentStorage(layout)
	if err != nil {
		t.Fatalf("NewComponentStorage: %v", err)
	}
	RegisterComponent[posComp](storage)
	RegisterComponent[velComp](storage)
	RegisterComponent[healthComp](storage)
	return storage
}

// TestGroupingPromotesOnInsert covers scenario S2.
func TestGroupingPromotesOnInsert(t *testing.T) {
	storage := buildABCLayout(t)

	e1 := Entity{Index: 1, Generation: 1} // (Pos, Vel)
	e2 := Entity{Index: 2, Generation: 1} // (Pos, Vel, Health)
	e3 := Entity{Index: 3, Generation: 1} // (Pos)

	InsertBundle2(storage, e1, posComp{X: 1}, velComp{X: 1}, 1)
	InsertBundle3(storage, e2, posComp{X: 2}, velComp{X: 2}, healthComp{HP: 2}, 1)
	Insert(storage, e3, posComp{X: 3}, 1)

	if storage.groups[0].len != 2 {
		t.Fatalf("groups[0].len = %d, want 2", storage.groups[0].len)
	}
	if storage.groups[1].len != 1 {
		t.Fatalf("groups[1].len = %d, want 1", storage.groups[1].len)
	}

	posSet, _ := getSet[posComp](storage)
	if posSet.EntityAt(0) != e2 {
		t.Fatalf("dense slot 0 = %v, want e2 (the fully-grouped entity)", posSet.EntityAt(0))
	}
	if posSet.EntityAt(1) != e1 {
		t.Fatalf("dense slot 1 = %v, want e1", posSet.EntityAt(1))
	}

	pos, _ := GetComp[posComp](storage)
	defer pos.Release()
	vel, _ := GetComp[velComp](storage)
	defer vel.Release()
	health, _ := GetComp[healthComp](storage)
	defer health.Release()

	var pv []Entity
	ForEach2(pos, vel, nil, ChangeFilter{}, ChangeFilter{}, storage.groups, func(e Entity, p *posComp, v *velComp) {
		pv = append(pv, e)
	})
	if len(pv) != 2 {
		t.Fatalf("(Pos,Vel) dense query yielded %d entities, want 2", len(pv))
	}

	var pvh []Entity
	ForEach3(pos, vel, health, nil, ChangeFilter{}, ChangeFilter{}, ChangeFilter{}, storage.groups, func(e Entity, p *posComp, v *velComp, h *healthComp) {
		pvh = append(pvh, e)
	})
	if len(pvh) != 1 || pvh[0] != e2 {
		t.Fatalf("(Pos,Vel,Health) dense query = %v, want exactly [e2]", pvh)
	}

	var pvExclHealth []Entity
	ForEach2(pos, vel, health, ChangeFilter{}, ChangeFilter{}, storage.groups, func(e Entity, p *posComp, v *velComp) {
		pvExclHealth = append(pvExclHealth, e)
	})
	if len(pvExclHealth) != 1 || pvExclHealth[0] != e1 {
		t.Fatalf("(Pos,Vel) excluding Health = %v, want exactly [e1]", pvExclHealth)
	}
}

// TestUngroupPassDemotes covers scenario S3.
func TestUngroupPassDemotes(t *testing.T) {
	storage := buildABCLayout(t)
	e1 := Entity{Index: 1, Generation: 1}
	e2 := Entity{Index: 2, Generation: 1}

	InsertBundle2(storage, e1, posComp{X: 1}, velComp{X: 1}, 1)
	InsertBundle3(storage, e2, posComp{X: 2}, velComp{X: 2}, healthComp{HP: 2}, 1)

	Remove[velComp](storage, e1)

	if storage.groups[0].len != 1 {
		t.Fatalf("groups[0].len after demoting e1 = %d, want 1", storage.groups[0].len)
	}
	posSet, _ := getSet[posComp](storage)
	if posSet.EntityAt(0) != e2 {
		t.Fatalf("groups[0] element 0 = %v, want e2", posSet.EntityAt(0))
	}
}

// TestDestroyDemotesFromEveryGroup covers scenario S4.
func TestDestroyDemotesFromEveryGroup(t *testing.T) {
	storage := buildABCLayout(t)
	e1 := Entity{Index: 1, Generation: 1}
	e2 := Entity{Index: 2, Generation: 1}

	InsertBundle2(storage, e1, posComp{X: 1}, velComp{X: 1}, 1)
	InsertBundle3(storage, e2, posComp{X: 2}, velComp{X: 2}, healthComp{HP: 2}, 1)

	storage.DeleteAll(e2)

	if storage.groups[0].len != 1 {
		t.Fatalf("groups[0].len after destroying e2 = %d, want 1", storage.groups[0].len)
	}
	if storage.groups[1].len != 0 {
		t.Fatalf("groups[1].len after destroying e2 = %d, want 0", storage.groups[1].len)
	}
	posSet, _ := getSet[posComp](storage)
	if posSet.Contains(e2) {
		t.Fatalf("e2 should be absent from posComp set after DeleteAll")
	}
	velSet, _ := getSet[velComp](storage)
	if velSet.Contains(e2) {
		t.Fatalf("e2 should be absent from velComp set after DeleteAll")
	}
	healthSet, _ := getSet[healthComp](storage)
	if healthSet.Len() != 0 {
		t.Fatalf("healthComp set should be empty after destroying its only entity, len=%d", healthSet.Len())
	}
}

// TestSingleInsertOfHigherLevelComponentDoesNotReinflateLowerGroup covers a
// single-type Insert of a component introduced above level 0 onto an entity
// already promoted into group 0 by an earlier bundle insert. Its insertRange
// starts at the component's own introGroupIndex (matching deleteRange), and
// group 0's count must stay put for an entity that is already grouped there.
func TestSingleInsertOfHigherLevelComponentDoesNotReinflateLowerGroup(t *testing.T) {
	storage := buildABCLayout(t)
	e1 := Entity{Index: 1, Generation: 1}

	InsertBundle2(storage, e1, posComp{X: 1}, velComp{X: 1}, 1)
	if storage.groups[0].len != 1 {
		t.Fatalf("groups[0].len after bundle insert = %d, want 1", storage.groups[0].len)
	}

	Insert(storage, e1, healthComp{HP: 9}, 1)

	if storage.groups[0].len != 1 {
		t.Fatalf("groups[0].len after appending Health via single Insert = %d, want 1 (must not re-count an already-grouped entity)", storage.groups[0].len)
	}
	if storage.groups[1].len != 1 {
		t.Fatalf("groups[1].len after appending Health via single Insert = %d, want 1", storage.groups[1].len)
	}

	posSet, _ := getSet[posComp](storage)
	if posSet.Len() != 1 {
		t.Fatalf("posComp dense array len = %d, want 1 (group[0].len must never exceed it)", posSet.Len())
	}
}
