package pmrollup

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/parser"
	"github.com/xuri/excelize/v2"
)

// Result is the assembled project tree and timesheet index of one run.
type Result struct {
	Registry   *models.Registry
	Timesheets *models.Timesheets
	Report     Report
}

// Run reads the master workbook in dir and every work-breakdown and timesheet
// workbook it references. Each workbook is closed before the next is opened.
func Run(dir string, opts Options, log *slog.Logger) (*Result, error) {
	if log == nil {
		log = slog.Default()
	}
	res := &Result{
		Registry:   models.NewRegistry(),
		Timesheets: models.NewTimesheets(),
	}
	masterPath := filepath.Join(dir, opts.MasterFile)

	if err := loadRegistry(masterPath, opts, res); err != nil {
		return nil, err
	}
	log.Info("registry loaded",
		slog.String("file", masterPath),
		slog.Int("projects", res.Report.Projects),
		slog.Int("personnel", res.Report.Personnel))

	if err := loadWBS(dir, opts, res, log); err != nil {
		return nil, err
	}
	if err := markActive(masterPath, opts, res, log); err != nil {
		return nil, err
	}
	if err := loadTimesheets(dir, opts, res, log); err != nil {
		return nil, err
	}

	res.Report.OrphanKeys = findOrphanKeys(res.Registry, res.Timesheets)
	for _, k := range res.Report.OrphanKeys {
		log.Warn("timesheet entry has no matching task",
			slog.String("project", k.Project),
			slog.String("phase", models.PhaseKey{Name: k.PhaseName, Number: k.PhaseNumber}.String()),
			slog.String("task", k.Task))
	}
	log.Info("run complete", slog.Any("report", res.Report))

	return res, nil
}

func loadRegistry(path string, opts Options, res *Result) error {
	return withWorkbook("registry", path, false, func(f *excelize.File) error {
		projects, err := openSheet("registry", path, f, SheetProjects)
		if err != nil {
			return err
		}
		personnel, err := openSheet("registry", path, f, SheetPersonnel)
		if err != nil {
			return err
		}

		res.Report.Projects = parser.ReadProjects(projects, opts.RegistryStartRow, res.Registry)
		res.Registry.Personnel = parser.ReadPersonnel(personnel, opts.RegistryStartRow)
		res.Report.Personnel = len(res.Registry.Personnel)
		return nil
	})
}

func loadWBS(dir string, opts Options, res *Result, log *slog.Logger) error {
	for _, p := range res.Registry.Projects() {
		path := filepath.Join(dir, opts.WBSFile(p.Code))
		err := withWorkbook("wbs", path, true, func(f *excelize.File) error {
			sheet, err := openSheet("wbs", path, f, SheetWBS)
			if err != nil {
				return err
			}
			stats := parser.ReadWBS(sheet, opts.WBSStartRow, p)
			res.Report.OrphanTasks += stats.Orphans
			log.Debug("work breakdown loaded",
				slog.String("project", p.Name),
				slog.String("file", path),
				slog.Int("phases", stats.Phases),
				slog.Int("tasks", stats.Tasks))
			if stats.Orphans > 0 {
				log.Warn("task rows before any phase dropped",
					slog.String("file", path),
					slog.Int("rows", stats.Orphans))
			}
			return nil
		})
		if errors.Is(err, ErrOptionalSourceMissing) {
			log.Info("file not found", slog.String("file", path), slog.String("project", p.Name))
			res.Report.MissingWBS = append(res.Report.MissingWBS, path)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func markActive(path string, opts Options, res *Result, log *slog.Logger) error {
	return withWorkbook("active", path, false, func(f *excelize.File) error {
		sheet, err := openSheet("active", path, f, SheetActivePhases)
		if err != nil {
			return err
		}
		marked, unmatched := parser.MarkActivePhases(sheet, opts.RegistryStartRow, res.Registry)
		for _, u := range unmatched {
			log.Debug("active phase not in registry", slog.String("phase", u))
		}
		res.Report.UnmatchedActive = unmatched
		log.Debug("active phases marked", slog.Int("marked", marked))
		return nil
	})
}

func loadTimesheets(dir string, opts Options, res *Result, log *slog.Logger) error {
	seen := make(map[string]bool)
	for _, person := range res.Registry.Personnel {
		if opts.DedupePersonnel {
			if seen[person] {
				log.Debug("duplicate personnel entry skipped", slog.String("person", person))
				continue
			}
			seen[person] = true
		}

		path := filepath.Join(dir, opts.TimesheetFile(person))
		err := withWorkbook("timesheet", path, true, func(f *excelize.File) error {
			sheet, err := openSheet("timesheet", path, f, SheetTimesheet)
			if err != nil {
				return err
			}
			stats := parser.ReadTimesheet(sheet, opts.Timesheet, person, res.Timesheets)
			res.Report.Records += stats.Records
			log.Debug("timesheet loaded",
				slog.String("person", person),
				slog.String("file", path),
				slog.Int("rows", stats.Rows),
				slog.Int("records", stats.Records))
			if stats.Ignored > 0 {
				log.Debug("non-numeric hours ignored",
					slog.String("file", path),
					slog.Int("cells", stats.Ignored))
			}
			return nil
		})
		if errors.Is(err, ErrOptionalSourceMissing) {
			log.Info("file not found", slog.String("file", path), slog.String("person", person))
			res.Report.MissingTimesheets = append(res.Report.MissingTimesheets, path)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// withWorkbook opens path, runs fn and closes the workbook. A missing file is
// ErrOptionalSourceMissing when optional is set, ErrSourceNotFound otherwise.
func withWorkbook(stage, path string, optional bool, fn func(*excelize.File) error) error {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return NewLoadError(stage, path, "", err)
		}
		if optional {
			return NewLoadError(stage, path, "", ErrOptionalSourceMissing)
		}
		return NewLoadError(stage, path, "", ErrSourceNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return NewLoadError(stage, path, "", err)
	}
	defer f.Close()

	return fn(f)
}

// openSheet requires sheetName to exist in f.
func openSheet(stage, path string, f *excelize.File, sheetName string) (*parser.Sheet, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, NewLoadError(stage, path, sheetName, ErrSheetNotFound)
	}
	sheet, err := parser.OpenSheet(f, sheetName)
	if err != nil {
		return nil, NewLoadError(stage, path, sheetName, err)
	}
	return sheet, nil
}
