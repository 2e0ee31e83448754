package warehouse

import "reflect"

// componentType returns the reflect.Type identifying T as a component kind,
// used as the map key into ComponentStorage.typeMeta.
func componentType[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// layoutLevel is one declared nesting level of a family under construction:
// the cumulative, strictly-growing list of component types that must all be
// present for an entity to belong to this level's group (a group
// family is an ordered list of levels of strictly increasing arity").
type layoutLevel struct {
	types []reflect.Type
}

type layoutFamily struct {
	levels []layoutLevel
}

// GroupLayout is the declarative configuration surface for group discipline
// Callers build one family at
// a time via FamilyBuilder before handing the layout to NewComponentStorage.
type GroupLayout struct {
	families []layoutFamily
}

// NewGroupLayout returns an empty layout with no families declared.
func NewGroupLayout() *GroupLayout {
	return &GroupLayout{}
}

// FamilyBuilder accumulates the levels of a single group family.
type FamilyBuilder struct {
	layout *GroupLayout
	family layoutFamily
}

// NewFamily starts declaring a new group family on the layout.
func (l *GroupLayout) NewFamily() *FamilyBuilder {
	return &FamilyBuilder{layout: l}
}

// Level declares one nesting level by its full cumulative component-type
// list. Each call's list must strictly extend the previous call's list (same
// prefix, strictly greater length); violating this, or reusing a type
// already claimed by another family, surfaces as a LayoutConflictError when
// the layout is built.
func Level(b *FamilyBuilder, types ...reflect.Type) *FamilyBuilder {
	b.family.levels = append(b.family.levels, layoutLevel{types: types})
	return b
}

// Build finalizes the family and appends it to its layout.
func (b *FamilyBuilder) Build() *GroupLayout {
	b.layout.families = append(b.layout.families, b.family)
	return b.layout
}

// validate checks strictly-increasing, prefix-extending arities within each
// family and no type reuse across families.
func (l *GroupLayout) validate() error {
	seen := map[reflect.Type]bool{}
	for _, fam := range l.families {
		if len(fam.levels) == 0 {
			return LayoutConflictError{Reason: "family declares no levels"}
		}
		if len(fam.levels) > Config.maxGroupsPerFamily {
			return LayoutConflictError{Reason: "family declares more levels than maxGroupsPerFamily"}
		}
		prev := fam.levels[0].types
		if len(prev) == 0 {
			return LayoutConflictError{Reason: "group level must declare at least one component type"}
		}
		for _, t := range prev {
			if seen[t] {
				return LayoutConflictError{Reason: "component type " + t.String() + " claimed by more than one family"}
			}
			seen[t] = true
		}
		for li := 1; li < len(fam.levels); li++ {
			cur := fam.levels[li].types
			if len(cur) <= len(prev) {
				return LayoutConflictError{Reason: "family arities must be strictly increasing"}
			}
			for i, t := range prev {
				if cur[i] != t {
					return LayoutConflictError{Reason: "group level must extend the previous level's component list"}
				}
			}
			for _, t := range cur[len(prev):] {
				if seen[t] {
					return LayoutConflictError{Reason: "component type " + t.String() + " claimed by more than one family"}
				}
				seen[t] = true
			}
			prev = cur
		}
	}
	return nil
}
