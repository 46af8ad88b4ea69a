package stats

import (
	"math"
	"time"

	"grind/internal/model"
)

// computeProjections estimates completion dates for the catalog goal
// and the overall goal from the average daily pace since Jan 1 of the
// active year. A zero pace yields a nil DaysRemaining (unbounded ETA).
func computeProjections(solvedCatalog, solvedAll int, opts model.Options) model.Projections {
	start := time.Date(opts.Year, time.January, 1, 0, 0, 0, 0, opts.Now.Location())
	elapsed := int(opts.Now.Sub(start).Hours()/24) + 1
	if elapsed < 1 {
		elapsed = 1
	}

	return model.Projections{
		Catalog: projectGoal(solvedCatalog, opts.CatalogGoal, elapsed, opts.Now),
		All:     projectGoal(solvedAll, opts.OverallGoal, elapsed, opts.Now),
	}
}

func projectGoal(solved, goal, elapsedDays int, now time.Time) model.Projection {
	avg := float64(solved) / float64(elapsedDays)
	remaining := goal - solved
	if remaining < 0 {
		remaining = 0
	}
	proj := model.Projection{AvgPerDay: avg}
	if avg <= 0 {
		return proj
	}
	days := int(math.Ceil(float64(remaining) / avg))
	proj.DaysRemaining = &days
	proj.ETA = now.AddDate(0, 0, days).Format(dateLayout)
	return proj
}
