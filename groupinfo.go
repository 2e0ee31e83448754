package warehouse

import "github.com/TheBitDrifter/mask"

// GroupInfo is the short-lived, copyable handle a view carries identifying
// which group family it belongs to and which storage slot it occupies
// GroupInfo is a short-lived, copyable handle; it holds no
// ownership"). The zero value is the "ungrouped" handle and combines with
// anything by yielding the other side unchanged, mirroring
// CombinedGroupInfo's `None` starting state in the source this spec
// distills.
type GroupInfo struct {
	valid       bool
	familyID    int
	groupOffset int // global index into ComponentStorage.groups
	bits        []int
	storageMask mask.Mask
}

func newGroupInfo(familyID, groupOffset, bit int) GroupInfo {
	return GroupInfo{
		valid:       true,
		familyID:    familyID,
		groupOffset: groupOffset,
		bits:        []int{bit},
		storageMask: singleBitMask(bit),
	}
}

// Combine merges two GroupInfo handles. Aliasing is decided by family id,
// not pointer identity. The result's offset is the
// max of the two and its storage mask is their union; combining
// with the zero value is the identity operation so a query with an empty
// include/exclude list can still combine cleanly with its base.
func (g GroupInfo) Combine(other GroupInfo) (GroupInfo, bool) {
	if !g.valid {
		return other, true
	}
	if !other.valid {
		return g, true
	}
	if g.familyID != other.familyID {
		return GroupInfo{}, false
	}

	bits := make([]int, 0, len(g.bits)+len(other.bits))
	bits = append(bits, g.bits...)
	bits = append(bits, other.bits...)

	var m mask.Mask
	for _, b := range bits {
		m.Mark(uint32(b))
	}

	offset := g.groupOffset
	if other.groupOffset > offset {
		offset = other.groupOffset
	}

	return GroupInfo{
		valid:       true,
		familyID:    g.familyID,
		groupOffset: offset,
		bits:        bits,
		storageMask: m,
	}, true
}

// groupLen is the dense-iteration window for a fully combined base+include
// GroupInfo: Some(group.len) iff the combined storage mask equals the
// group's include mask exactly.
func groupLen(combined GroupInfo, groups []groupLevel) (int, bool) {
	if !combined.valid {
		return 0, false
	}
	g := groups[combined.groupOffset]
	want := queryMask{Include: combined.storageMask}
	if want == g.metadata.includeMask {
		return g.len, true
	}
	return 0, false
}

// excludeGroupRange is the exclusion window used when a query must skip
// entities in an inner group but stay inside an outer one
// `exclude_group_range`). baseIncl and exclude must share a family; the
// window is evaluated at the larger of the two offsets.
func excludeGroupRange(baseIncl, exclude GroupInfo, groups []groupLevel) (int, int, bool) {
	if !baseIncl.valid || !exclude.valid || baseIncl.familyID != exclude.familyID {
		return 0, 0, false
	}

	offset := baseIncl.groupOffset
	if exclude.groupOffset > offset {
		offset = exclude.groupOffset
	}
	if offset == 0 {
		// Global group 0 has no previous group to bound the window. A
		// family's innermost level never yields a window anyway: its
		// excludeMask has an empty Include half, and a valid baseIncl
		// always carries at least one bit.
		return 0, 0, false
	}

	want := queryMask{Include: baseIncl.storageMask, Exclude: exclude.storageMask}
	g := groups[offset]
	prev := groups[offset-1]
	if want == g.metadata.excludeMask {
		return g.len, prev.len, true
	}
	return 0, 0, false
}
