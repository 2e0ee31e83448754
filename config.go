package warehouse

// Config holds process-wide tunables for the core, in the same spirit as
// the teacher's package-level table-event configuration: a single mutable
// value that callers set once before building any World.
var Config config = config{
	initialSparseCapacity: 64,
	initialDenseCapacity:  64,
	maxGroupsPerFamily:    32,
}

type config struct {
	// initialSparseCapacity is the starting capacity reserved for a new
	// SparseVec's backing slice.
	initialSparseCapacity int
	// initialDenseCapacity is the starting capacity reserved for a new
	// component sparse set's dense arrays.
	initialDenseCapacity int
	// maxGroupsPerFamily bounds how many nested groups a single family may
	// declare; GroupLayout validation rejects a family with more levels.
	maxGroupsPerFamily int
}

// SetInitialCapacities configures the starting capacity for sparse vecs and
// component dense arrays created after this call.
func (c *config) SetInitialCapacities(sparse, dense int) {
	c.initialSparseCapacity = sparse
	c.initialDenseCapacity = dense
}
