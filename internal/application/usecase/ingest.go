package usecase

import (
	"regexp"
	"strconv"
	"time"

	"github.com/finreport/aws-spend-report-go/internal/domain/entity"
	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

// buildTree folds flat usage records into a rollup tree. Records whose owner
// does not match the allow-list are dropped silently; records with an
// unparseable date are skipped with a warning, never fatal to the batch.
// Duplicate (owner, dimension, date) keys sum their costs regardless of the
// order the rows arrive in.
func buildTree(records []entity.UsageRecord, ownerPattern *regexp.Regexp, console types.ConsoleInterface) *entity.RollupTree {
	tree := entity.NewRollupTree()
	for _, rec := range records {
		if !ownerPattern.MatchString(rec.Owner) {
			continue
		}
		if _, err := time.Parse(entity.DateLayout, rec.Date); err != nil {
			console.LogWarning("Skipping row for %s: unparseable start date %q", rec.Owner, rec.Date)
			continue
		}
		name := rec.DimensionName
		if name == "" {
			name = rec.DimensionID
		}
		tree.Add(rec.Owner, rec.DimensionID, name, rec.Date, rec.Cost)
	}
	return tree
}

// parseCost parses the cost column of a result row. A malformed value is a
// row-level problem: the row is skipped and a warning logged.
func parseCost(raw string, console types.ConsoleInterface) (float64, bool) {
	cost, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		console.LogWarning("Skipping row: unparseable cost %q", raw)
		return 0, false
	}
	return cost, true
}
