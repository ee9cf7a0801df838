package pmrollup

import (
	"log/slog"

	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
)

// Report lists what a run skipped or could not place.
type Report struct {
	Projects  int
	Personnel int

	// MissingWBS lists work-breakdown files that were not found.
	MissingWBS []string
	// MissingTimesheets lists timesheet files that were not found.
	MissingTimesheets []string
	// OrphanTasks counts task rows that appeared before any phase row.
	OrphanTasks int
	// UnmatchedActive lists active-phase rows naming an unknown project or phase.
	UnmatchedActive []string
	// OrphanKeys lists timesheet keys that do not resolve to a task in the tree.
	OrphanKeys []models.TaskKey
	// Records counts accumulated timesheet records.
	Records int
}

// LogValue implements slog.LogValuer.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("projects", r.Projects),
		slog.Int("personnel", r.Personnel),
		slog.Int("missing_wbs", len(r.MissingWBS)),
		slog.Int("missing_timesheets", len(r.MissingTimesheets)),
		slog.Int("orphan_tasks", r.OrphanTasks),
		slog.Int("unmatched_active", len(r.UnmatchedActive)),
		slog.Int("orphan_keys", len(r.OrphanKeys)),
		slog.Int("records", r.Records),
	)
}

// findOrphanKeys returns the timesheet keys the exporter will never reach.
func findOrphanKeys(reg *models.Registry, ts *models.Timesheets) []models.TaskKey {
	var orphans []models.TaskKey
	for _, k := range ts.Keys() {
		if !reg.HasTask(k) {
			orphans = append(orphans, k)
		}
	}
	return orphans
}
