package entity

// RollupTree groups flat usage records into owner -> dimension -> day buckets.
// Nodes are created on first reference and iteration follows first-seen
// insertion order, so report output is reproducible for a given input order.
//
// Single-level reports (no secondary grouping axis) use the empty dimension
// id; the tree then holds exactly one anonymous dimension per owner and the
// summation invariant total(owner) == sum(dimension totals) still holds.
//
// Totals are always derived from the day leaves, never stored, so they cannot
// go stale. A day absent from a node contributes exactly 0.0.
type RollupTree struct {
	order  []string
	owners map[string]*OwnerNode
}

// NewRollupTree creates an empty rollup tree.
func NewRollupTree() *RollupTree {
	return &RollupTree{owners: make(map[string]*OwnerNode)}
}

// Owner returns the node for the given owner, creating it on first reference.
func (t *RollupTree) Owner(name string) *OwnerNode {
	node, ok := t.owners[name]
	if !ok {
		node = &OwnerNode{Name: name, dimensions: make(map[string]*DimensionNode)}
		t.owners[name] = node
		t.order = append(t.order, name)
	}
	return node
}

// Add records cost for (owner, dimension, date). Costs for an existing key
// are summed, never overwritten.
func (t *RollupTree) Add(owner, dimensionID, displayName, date string, cost float64) {
	t.Owner(owner).Dimension(dimensionID, displayName).AddCost(date, cost)
}

// Owners returns the owner nodes in first-seen order.
func (t *RollupTree) Owners() []*OwnerNode {
	nodes := make([]*OwnerNode, 0, len(t.order))
	for _, name := range t.order {
		nodes = append(nodes, t.owners[name])
	}
	return nodes
}

// Len returns the number of owners in the tree.
func (t *RollupTree) Len() int {
	return len(t.order)
}

// OwnerNode is the top tier of the rollup: one person and the dimensions the
// billing rows attributed to them.
type OwnerNode struct {
	Name string

	order      []string
	dimensions map[string]*DimensionNode
}

// Dimension returns the child node for the given dimension id, creating it on
// first reference. The display name is fixed on creation; later calls with a
// different name keep the first one.
func (n *OwnerNode) Dimension(id, displayName string) *DimensionNode {
	node, ok := n.dimensions[id]
	if !ok {
		node = &DimensionNode{ID: id, DisplayName: displayName, days: make(map[string]*DayBucket)}
		n.dimensions[id] = node
		n.order = append(n.order, id)
	}
	return node
}

// Dimensions returns the dimension nodes in first-seen order.
func (n *OwnerNode) Dimensions() []*DimensionNode {
	nodes := make([]*DimensionNode, 0, len(n.order))
	for _, id := range n.order {
		nodes = append(nodes, n.dimensions[id])
	}
	return nodes
}

// Total is the sum of the owner's dimension totals.
func (n *OwnerNode) Total() float64 {
	total := 0.0
	for _, dim := range n.dimensions {
		total += dim.Total()
	}
	return total
}

// DailyTotal is the aggregate cost across all dimensions for one day.
func (n *OwnerNode) DailyTotal(date string) float64 {
	total := 0.0
	for _, dim := range n.dimensions {
		total += dim.DayCost(date)
	}
	return total
}

// DimensionNode is the optional middle tier: a billing account or a product
// under one owner.
type DimensionNode struct {
	ID          string
	DisplayName string

	days map[string]*DayBucket
}

// AddCost adds cost to the bucket for date, creating the bucket on first
// reference.
func (n *DimensionNode) AddCost(date string, cost float64) {
	bucket, ok := n.days[date]
	if !ok {
		bucket = &DayBucket{Date: date}
		n.days[date] = bucket
	}
	bucket.Cost += cost
}

// DayCost returns the cost stored for date, or 0.0 when the day is absent.
func (n *DimensionNode) DayCost(date string) float64 {
	if bucket, ok := n.days[date]; ok {
		return bucket.Cost
	}
	return 0.0
}

// Total is the sum of the dimension's day costs.
func (n *DimensionNode) Total() float64 {
	total := 0.0
	for _, bucket := range n.days {
		total += bucket.Cost
	}
	return total
}

// DayBucket is the leaf of the rollup: the cost for one calendar day.
type DayBucket struct {
	Date string
	Cost float64
}
