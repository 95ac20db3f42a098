package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
)

func TestBuildTree_DropsUnmatchedOwnersSilently(t *testing.T) {
	console := &fakeConsole{}
	cfg := testConfig(`john\.doe`, 0, nil)

	records := []entity.UsageRecord{
		{Owner: "john.doe", DimensionID: "QA", Date: "2017-09-01", Cost: 100},
		{Owner: "jane.doe", DimensionID: "QA", Date: "2017-09-01", Cost: 90000},
	}
	tree := buildTree(records, cfg.OwnerPattern, console)

	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, "john.doe", tree.Owners()[0].Name)
	assert.Empty(t, console.warnings, "dropped owners are not warnings")
}

func TestBuildTree_OwnerPatternMatchesWholeID(t *testing.T) {
	console := &fakeConsole{}
	cfg := testConfig(`john\.doe`, 0, nil)

	records := []entity.UsageRecord{
		{Owner: "john.doenut", DimensionID: "QA", Date: "2017-09-01", Cost: 10},
	}
	tree := buildTree(records, cfg.OwnerPattern, console)
	assert.Equal(t, 0, tree.Len())
}

func TestBuildTree_MalformedDateSkipsRowAndWarns(t *testing.T) {
	console := &fakeConsole{}
	cfg := testConfig(`.*`, 0, nil)

	records := []entity.UsageRecord{
		{Owner: "john.doe", DimensionID: "QA", Date: "not-a-date", Cost: 100},
		{Owner: "john.doe", DimensionID: "QA", Date: "2017-09-01", Cost: 50},
	}
	tree := buildTree(records, cfg.OwnerPattern, console)

	assert.Equal(t, 50.0, tree.Owner("john.doe").Total())
	assert.Len(t, console.warnings, 1)
}

func TestBuildTree_SumsDuplicateKeysInAnyOrder(t *testing.T) {
	console := &fakeConsole{}
	cfg := testConfig(`.*`, 0, nil)

	a := []entity.UsageRecord{
		{Owner: "john.doe", DimensionID: "QA", Date: "2017-09-01", Cost: 100},
		{Owner: "john.doe", DimensionID: "QA", Date: "2017-09-01", Cost: 50},
	}
	b := []entity.UsageRecord{a[1], a[0]}

	treeA := buildTree(a, cfg.OwnerPattern, console)
	treeB := buildTree(b, cfg.OwnerPattern, console)

	assert.Equal(t, 150.0, treeA.Owner("john.doe").Dimension("QA", "QA").DayCost("2017-09-01"))
	assert.Equal(t, treeA.Owner("john.doe").Total(), treeB.Owner("john.doe").Total())
}

func TestBuildTree_DimensionNameFallsBackToID(t *testing.T) {
	console := &fakeConsole{}
	cfg := testConfig(`.*`, 0, nil)

	records := []entity.UsageRecord{
		{Owner: "john.doe", DimensionID: "123456789", DimensionName: "", Date: "2017-09-01", Cost: 1},
		{Owner: "john.doe", DimensionID: "987654321", DimensionName: "Project X", Date: "2017-09-01", Cost: 1},
	}
	tree := buildTree(records, cfg.OwnerPattern, console)

	dims := tree.Owner("john.doe").Dimensions()
	assert.Equal(t, "123456789", dims[0].DisplayName)
	assert.Equal(t, "Project X", dims[1].DisplayName)
}

func TestParseCost_MalformedValueWarns(t *testing.T) {
	console := &fakeConsole{}

	_, ok := parseCost("12,5", console)
	assert.False(t, ok)
	assert.Len(t, console.warnings, 1)

	v, ok := parseCost("12.5", console)
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)
}
