package models

import "time"

// TaskKey identifies a task across project, phase and task name.
type TaskKey struct {
	Project     string
	PhaseName   string
	PhaseNumber string
	Task        string
}

// KeyFor builds the timesheet key of a task in the project tree.
func KeyFor(project string, ph *Phase, t *Task) TaskKey {
	return TaskKey{Project: project, PhaseName: ph.Name, PhaseNumber: ph.Number, Task: t.Name}
}

// Record is one day of hours logged by a person.
type Record struct {
	Date  time.Time
	Hours float64
}

// TaskLog holds the records logged against one task, grouped by person.
type TaskLog struct {
	people  []string
	records map[string][]Record
}

// People returns the contributing people in order of first contribution.
func (l *TaskLog) People() []string {
	return l.people
}

// Records returns the records of a person in accumulation order.
func (l *TaskLog) Records(person string) []Record {
	return l.records[person]
}

// Timesheets indexes logged hours by task key.
type Timesheets struct {
	logs map[TaskKey]*TaskLog
	keys []TaskKey
}

// NewTimesheets creates an empty index.
func NewTimesheets() *Timesheets {
	return &Timesheets{logs: make(map[TaskKey]*TaskLog)}
}

// Add appends a record for (k, person). Records are never merged or replaced.
func (ts *Timesheets) Add(k TaskKey, person string, rec Record) {
	l, ok := ts.logs[k]
	if !ok {
		l = &TaskLog{records: make(map[string][]Record)}
		ts.logs[k] = l
		ts.keys = append(ts.keys, k)
	}
	if _, ok := l.records[person]; !ok {
		l.people = append(l.people, person)
	}
	l.records[person] = append(l.records[person], rec)
}

// Lookup returns the log of k, if anything was recorded against it.
func (ts *Timesheets) Lookup(k TaskKey) (*TaskLog, bool) {
	l, ok := ts.logs[k]
	return l, ok
}

// Keys returns every key with records, in order of first record.
func (ts *Timesheets) Keys() []TaskKey {
	return ts.keys
}

// Len returns the number of keys with records.
func (ts *Timesheets) Len() int {
	return len(ts.keys)
}
