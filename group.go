package warehouse

import "github.com/TheBitDrifter/mask"

// queryMask pairs a "must be present" and a "must be absent" mask.Mask over
// a family's local storage-slot bit space. A group's include mask is a
// queryMask with an empty Exclude half; its exclude mask additionally
// demands the newly-added slots at that level be absent. Equality between
// two queryMasks (via plain Go ==, since mask.Mask is a comparable value
// type) is how a query's combined views are tested against a group's
// boundary.
type queryMask struct {
	Include mask.Mask
	Exclude mask.Mask
}

// groupMetadata is the static, per-group description: the half-open range
// of storage slots the group owns, plus the family-local include/exclude
// masks used to test entity membership.
type groupMetadata struct {
	storageStart int
	storageEnd   int
	includeMask  queryMask
	excludeMask  queryMask
}

// groupLevel is one nesting level of a group family: its static metadata
// plus the mutable count of entities currently grouped at this level.
type groupLevel struct {
	metadata groupMetadata
	len      int
}

// groupFamily records the span, within ComponentStorage's flat groups
// slice, that belongs to one family. familyID is a small stable integer,
// preferred over pointer identity so aliasing checks stay valid across
// copies, assigned in declaration order.
type groupFamily struct {
	familyID     int
	groupStart   int // global index of this family's innermost group
	groupEnd     int // global index one past this family's outermost group
	storageStart int // global storage index of this family's first slot
	totalArity   int // total number of component slots in the family
}

// groupRange names the contiguous slice of a single family's groups
// affected by one mutation. A tuple insert/remove spanning several
// families produces one groupRange per distinct family: families
// share no storages, so the passes over each range never interact.
type groupRange struct {
	familyID int
	start    int // global group index, inclusive
	end      int // global group index, exclusive
}

// mergeGroupRange folds a newly-discovered range into an accumulator,
// widening an existing entry for the same family (lower start wins; end is
// always that family's fixed group_end) or appending a new one.
func mergeGroupRange(ranges []groupRange, r groupRange) []groupRange {
	for i := range ranges {
		if ranges[i].familyID == r.familyID {
			if r.start < ranges[i].start {
				ranges[i].start = r.start
			}
			if r.end > ranges[i].end {
				ranges[i].end = r.end
			}
			return ranges
		}
	}
	return append(ranges, r)
}

// runGroupPass handles an entity gaining a component. Groups
// are walked innermost (lowest index) to outermost within each affected
// family; the pass stops at the first group the entity does not yet
// satisfy, since a group's include mask is always a superset of its inner
// neighbor's.
func runGroupPass(sets []anySparseSet, groups []groupLevel, affected []groupRange, entity Entity) {
	for _, r := range affected {
		for gi := r.start; gi < r.end; gi++ {
			g := &groups[gi]
			if !entityPresentInRange(sets, g.metadata.storageStart, g.metadata.storageEnd, entity) {
				break
			}

			first := g.metadata.storageStart
			d, ok := sets[first].IndexOf(entity)
			if !ok || d < g.len {
				// Already grouped at this level: nothing to promote or count.
				continue
			}

			for s := g.metadata.storageStart; s < g.metadata.storageEnd; s++ {
				d, _ := sets[s].IndexOf(entity)
				sets[s].Swap(d, g.len)
			}
			g.len++
		}
	}
}

// runUngroupPass handles an entity about to lose a
// component. Groups are walked outermost to innermost within each affected
// family so an entity demoted out of an outer group is still correctly
// positioned when the inner group is considered next.
func runUngroupPass(sets []anySparseSet, groups []groupLevel, affected []groupRange, entity Entity) {
	for _, r := range affected {
		for gi := r.end - 1; gi >= r.start; gi-- {
			g := &groups[gi]
			first := g.metadata.storageStart
			d, ok := sets[first].IndexOf(entity)
			if !ok || d >= g.len {
				continue
			}

			for s := g.metadata.storageStart; s < g.metadata.storageEnd; s++ {
				d, _ := sets[s].IndexOf(entity)
				sets[s].Swap(d, g.len-1)
			}
			g.len--
		}
	}
}

// runUngroupAll demotes entity out of every group of every family,
// descending family order, used by ComponentStorage.DeleteAll.
func runUngroupAll(sets []anySparseSet, groups []groupLevel, families []groupFamily, entity Entity) {
	for i := len(families) - 1; i >= 0; i-- {
		f := families[i]
		runUngroupPass(sets, groups, []groupRange{{familyID: f.familyID, start: f.groupStart, end: f.groupEnd}}, entity)
	}
}

func entityPresentInRange(sets []anySparseSet, start, end int, entity Entity) bool {
	for s := start; s < end; s++ {
		if !sets[s].Contains(entity) {
			return false
		}
	}
	return true
}

// bitRangeMask constructs a mask.Mask with bits lo..hi (exclusive) set,
// used once at layout-construction time for a group's include/exclude
// masks. Never mutated afterward.
func bitRangeMask(lo, hi int) mask.Mask {
	var m mask.Mask
	for i := lo; i < hi; i++ {
		m.Mark(uint32(i))
	}
	return m
}

// singleBitMask constructs a mask.Mask with exactly one bit set, used both
// for a group level's "new bits added at this level" accounting and for a
// component's own storage bit.
func singleBitMask(bit int) mask.Mask {
	var m mask.Mask
	m.Mark(uint32(bit))
	return m
}

// includeQueryMask is the include-mask for a group of the given arity: every
// slot 0..arity must be present.
func includeQueryMask(arity int) queryMask {
	return queryMask{Include: bitRangeMask(0, arity)}
}

// excludeQueryMask is the exclude-mask for a group level that extends a
// previous arity of prevArity up to arity: the previous prefix must still
// be present, and the newly-added slots must be absent.
func excludeQueryMask(prevArity, arity int) queryMask {
	return queryMask{
		Include: bitRangeMask(0, prevArity),
		Exclude: bitRangeMask(prevArity, arity),
	}
}
