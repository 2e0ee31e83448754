package warehouse

import "testing"

func TestGroupLayoutRejectsNonIncreasingArity(t *testing.T) {
	layout := NewGroupLayout()
	fb := layout.NewFamily()
	Level(fb, componentType[posComp](), componentType[velComp]())
	Level(fb, componentType[posComp]())
	fb.Build()

	if _, err := NewComponentStorage(layout); err == nil {
		t.Fatalf("expected LayoutConflictError for a non-increasing level, got nil")
	} else if _, ok := err.(LayoutConflictError); !ok {
		t.Fatalf("expected LayoutConflictError, got %T: %v", err, err)
	}
}

func TestGroupLayoutRejectsTypeReuseAcrossFamilies(t *testing.T) {
	layout := NewGroupLayout()
	fb1 := layout.NewFamily()
	Level(fb1, componentType[posComp](), componentType[velComp]())
	fb1.Build()

	fb2 := layout.NewFamily()
	Level(fb2, componentType[posComp](), componentType[healthComp]())
	fb2.Build()

	if _, err := NewComponentStorage(layout); err == nil {
		t.Fatalf("expected LayoutConflictError for reusing posComp across families, got nil")
	} else if _, ok := err.(LayoutConflictError); !ok {
		t.Fatalf("expected LayoutConflictError, got %T: %v", err, err)
	}
}

func TestGroupLayoutRejectsNonPrefixExtension(t *testing.T) {
	layout := NewGroupLayout()
	fb := layout.NewFamily()
	Level(fb, componentType[posComp](), componentType[velComp]())
	Level(fb, componentType[velComp](), componentType[healthComp](), componentType[posComp]())
	fb.Build()

	if _, err := NewComponentStorage(layout); err == nil {
		t.Fatalf("expected LayoutConflictError for a level that doesn't extend its predecessor, got nil")
	}
}

func TestGroupLayoutAcceptsValidFamily(t *testing.T) {
	layout := NewGroupLayout()
	fb := layout.NewFamily()
	Level(fb, componentType[posComp](), componentType[velComp]())
	Level(fb, componentType[posComp](), componentType[velComp](), componentType[healthComp]())
	fb.Build()

	storage, err := NewComponentStorage(layout)
	if err != nil {
		t.Fatalf("valid layout should build cleanly, got %v", err)
	}
	if len(storage.groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(storage.groups))
	}
	if len(storage.families) != 1 {
		t.Fatalf("len(families) = %d, want 1", len(storage.families))
	}
}
