package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollupTree_DuplicateKeysAreSummed(t *testing.T) {
	tree := NewRollupTree()
	tree.Add("john.doe", "QA", "QA", "2017-09-01", 100)
	tree.Add("john.doe", "QA", "QA", "2017-09-01", 50)

	dim := tree.Owner("john.doe").Dimension("QA", "QA")
	assert.Equal(t, 150.0, dim.DayCost("2017-09-01"))
}

func TestRollupTree_TotalsAreDerivedFromLeaves(t *testing.T) {
	tree := NewRollupTree()
	tree.Add("john.doe", "QA", "QA", "2017-09-01", 100)
	tree.Add("john.doe", "QA", "QA", "2017-09-02", 100)
	tree.Add("john.doe", "Nova", "Nova", "2017-09-01", 25.5)
	tree.Add("jane.doe", "QA", "QA", "2017-09-01", 10)

	john := tree.Owner("john.doe")

	// owner total == sum over dimension totals == sum over day costs
	sum := 0.0
	for _, dim := range john.Dimensions() {
		sum += dim.Total()
	}
	assert.Equal(t, sum, john.Total())
	assert.Equal(t, 225.5, john.Total())
	assert.Equal(t, 10.0, tree.Owner("jane.doe").Total())
}

func TestRollupTree_MissingDayIsZero(t *testing.T) {
	tree := NewRollupTree()
	tree.Add("john.doe", "QA", "QA", "2017-09-01", 100)

	john := tree.Owner("john.doe")
	assert.Equal(t, 0.0, john.DailyTotal("2017-09-15"))
	assert.Equal(t, 0.0, john.Dimension("QA", "QA").DayCost("2017-09-15"))
}

func TestRollupTree_DailyTotalAggregatesAcrossDimensions(t *testing.T) {
	tree := NewRollupTree()
	tree.Add("john.doe", "QA", "QA", "2017-09-01", 100)
	tree.Add("john.doe", "Nova", "Nova", "2017-09-01", 40)

	assert.Equal(t, 140.0, tree.Owner("john.doe").DailyTotal("2017-09-01"))
}

func TestRollupTree_IterationFollowsFirstSeenOrder(t *testing.T) {
	tree := NewRollupTree()
	tree.Add("zoe.last", "B", "B", "2017-09-01", 1)
	tree.Add("adam.first", "A", "A", "2017-09-01", 1)
	tree.Add("zoe.last", "A", "A", "2017-09-02", 1)

	owners := tree.Owners()
	assert.Equal(t, "zoe.last", owners[0].Name)
	assert.Equal(t, "adam.first", owners[1].Name)

	dims := owners[0].Dimensions()
	assert.Equal(t, "B", dims[0].ID)
	assert.Equal(t, "A", dims[1].ID)
}

func TestRollupTree_FirstDisplayNameWins(t *testing.T) {
	tree := NewRollupTree()
	tree.Add("john.doe", "123", "Project X", "2017-09-01", 1)
	tree.Add("john.doe", "123", "something else", "2017-09-02", 1)

	dim := tree.Owner("john.doe").Dimension("123", "ignored")
	assert.Equal(t, "Project X", dim.DisplayName)
}

func TestRollupTree_SingleLevelUsesAnonymousDimension(t *testing.T) {
	tree := NewRollupTree()
	tree.Add("john.doe", "", "", "2017-09-01", 100)
	tree.Add("john.doe", "", "", "2017-09-02", 50)

	john := tree.Owner("john.doe")
	assert.Len(t, john.Dimensions(), 1)
	assert.Equal(t, 150.0, john.Total())
	assert.Equal(t, 100.0, john.DailyTotal("2017-09-01"))
}
