package clust

// OrbitGenerator forces a custom cluster into orbit enumeration, bypassing
// the site and cluster filters, optionally together with every subcluster
// of the prototype.
type OrbitGenerator struct {
	Prototype          IntegralCluster
	IncludeSubclusters bool
}

// SubClusterCounter is a non-restartable finite lazy sequence over every
// subcluster of a prototype (all 2ⁿ site subsets, the empty and the full
// cluster included).
type SubClusterCounter struct {
	proto IntegralCluster
	mask  uint64
	limit uint64
}

// NewSubClusterCounter starts the sequence for the given prototype.
// Prototypes are small site clusters; sizes beyond 63 sites are a
// programmer error.
func NewSubClusterCounter(proto IntegralCluster) *SubClusterCounter {
	if proto.Size() > 63 {
		panic("clust: SubClusterCounter: prototype too large")
	}
	return &SubClusterCounter{proto: proto.Copy(), limit: 1 << uint(proto.Size())}
}

// Valid reports whether the sequence still has a value.
func (c *SubClusterCounter) Valid() bool { return c.mask < c.limit }

// Value returns the current subcluster. Panics after the sequence is
// exhausted (programmer error).
func (c *SubClusterCounter) Value() IntegralCluster {
	if !c.Valid() {
		panic("clust: SubClusterCounter: value past the end")
	}
	var sub IntegralCluster
	for i := 0; i < c.proto.Size(); i++ {
		if c.mask&(1<<uint(i)) != 0 {
			sub = append(sub, c.proto[i])
		}
	}
	return sub
}

// Next advances to the following subcluster.
func (c *SubClusterCounter) Next() { c.mask++ }
