package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
)

func TestClassifyRow(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	g := memGrid{
		7: {"Design", 1, "Ana", nil, nil, nil, nil, due, 40},
		8: {nil, "Spec", nil, "Bo", nil, "Cy", "Open", nil, 8.5},
		9: {nil, nil, nil, nil, nil, nil, nil, nil, nil},
	}

	phase := ClassifyRow(g, 7)
	require.Equal(t, RowPhase, phase.Kind)
	assert.Nil(t, phase.Task)
	assert.Equal(t, &models.Phase{
		Name:              "Design",
		Number:            "1",
		ResponsiblePerson: "Ana",
		DateOfFinishing:   "2024-03-01",
		RequiredTime:      "40",
	}, phase.Phase)

	task := ClassifyRow(g, 8)
	require.Equal(t, RowTask, task.Kind)
	assert.Nil(t, task.Phase)
	assert.Equal(t, &models.Task{
		Name:           "Spec",
		FirstCoworker:  "Bo",
		SecondCoworker: "",
		ThirdCoworker:  "Cy",
		Status:         "Open",
		RequiredTime:   "8.5",
	}, task.Task)

	assert.Equal(t, RowBlank, ClassifyRow(g, 9).Kind)
	assert.Equal(t, RowBlank, ClassifyRow(g, 42).Kind)
}

func TestReadWBS(t *testing.T) {
	g := memGrid{
		7:  {nil, "Stray"},
		8:  {"Design", 1, "Ana"},
		9:  {nil, "Spec"},
		10: {nil, "Review"},
		11: {"Build", 2, "Bo"},
		12: {"Test", 3, "Cy"},
		13: {nil, "Smoke"},
	}
	p := models.NewProject("Alpha", "7")

	stats := ReadWBS(g, 7, p)
	assert.Equal(t, WBSStats{Phases: 3, Tasks: 3, Orphans: 1}, stats)

	phases := p.Phases()
	require.Len(t, phases, 3)
	assert.Equal(t, "Design", phases[0].Name)
	require.Len(t, phases[0].Tasks, 2)
	assert.Equal(t, "Spec", phases[0].Tasks[0].Name)
	assert.Equal(t, "Review", phases[0].Tasks[1].Name)

	assert.Empty(t, phases[1].Tasks, "phase followed by a phase has no tasks")

	require.Len(t, phases[2].Tasks, 1)
	assert.Equal(t, "Smoke", phases[2].Tasks[0].Name)

	for _, ph := range phases {
		for _, task := range ph.Tasks {
			assert.NotEqual(t, "Stray", task.Name)
		}
	}
}

func TestReadWBSDuplicatePhaseReplaces(t *testing.T) {
	g := memGrid{
		7:  {"Design", 1, "Ana"},
		8:  {nil, "Old task"},
		9:  {"Build", 2, "Bo"},
		10: {"Design", 1, "Dee", nil, nil, nil, nil, nil, 12},
		11: {nil, "New task"},
	}
	p := models.NewProject("Alpha", "7")
	ReadWBS(g, 7, p)

	phases := p.Phases()
	require.Len(t, phases, 2)
	assert.Equal(t, "Design", phases[0].Name, "replaced phase keeps its position")
	assert.Equal(t, "Dee", phases[0].ResponsiblePerson)
	assert.Equal(t, "12", phases[0].RequiredTime)
	require.Len(t, phases[0].Tasks, 1)
	assert.Equal(t, "New task", phases[0].Tasks[0].Name)
	assert.Equal(t, "Build", phases[1].Name)
}

func TestReadWBSSkipsBlankRows(t *testing.T) {
	g := memGrid{
		7:  {"Design", 1},
		8:  {},
		9:  {nil, "Spec"},
		12: {nil, "Review"},
	}
	p := models.NewProject("Alpha", "7")
	stats := ReadWBS(g, 7, p)

	assert.Equal(t, 2, stats.Tasks)
	ph, ok := p.Phase(models.PhaseKey{Name: "Design", Number: "1"})
	require.True(t, ok)
	assert.Len(t, ph.Tasks, 2)
}

func TestRowKindString(t *testing.T) {
	assert.Equal(t, "phase", RowPhase.String())
	assert.Equal(t, "task", RowTask.String())
	assert.Equal(t, "blank", RowBlank.String())
}
