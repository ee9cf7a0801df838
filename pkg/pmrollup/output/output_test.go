package output

import (
	"encoding/json"
	"encoding/xml"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
	"gopkg.in/yaml.v3"
)

func sampleTree() (*models.Registry, *models.Timesheets) {
	reg := models.NewRegistry()

	alpha := models.NewProject("Alpha", "7")
	design := &models.Phase{Name: "Design", Number: "1", Tasks: []*models.Task{{Name: "Spec"}}}
	alpha.PutPhase(design)
	reg.PutProject(alpha)
	reg.PutProject(models.NewProject("Beta", "12"))

	ts := models.NewTimesheets()
	ts.Add(models.KeyFor("Alpha", design, design.Tasks[0]), "Jo",
		models.Record{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Hours: 3})
	return reg, ts
}

func TestToXMLRoundTripScenario(t *testing.T) {
	data, err := ToXML(Build(sampleTree()), false)
	require.NoError(t, err)

	expected := xml.Header +
		`<Projects>` +
		`<Project name="Alpha" code="0007">` +
		`<Phase name="Design" number="1">` +
		`<ResponsiblePerson></ResponsiblePerson><DateOfFinishing></DateOfFinishing><RequiredTime></RequiredTime><IsActive>False</IsActive>` +
		`<Task name="Spec">` +
		`<FirstCoworker></FirstCoworker><SecondCoworker></SecondCoworker><ThirdCoworker></ThirdCoworker>` +
		`<TaskStatus></TaskStatus><DateOfFinishing></DateOfFinishing><RequiredTime></RequiredTime>` +
		`<Personnel name="Jo"><Record date="2024-01-10" hours="3"></Record></Personnel>` +
		`</Task></Phase></Project>` +
		`<Project name="Beta" code="0012"></Project>` +
		`</Projects>` + "\n"
	assert.Equal(t, expected, string(data))
}

func TestBuildOmitsPersonnelWithoutRecords(t *testing.T) {
	reg, ts := sampleTree()
	alpha, _ := reg.Project("Alpha")
	design, _ := alpha.Phase(models.PhaseKey{Name: "Design", Number: "1"})
	design.Tasks = append(design.Tasks, &models.Task{Name: "Review", FirstCoworker: "Sam", Status: "Done"})
	design.Active = true

	doc := Build(reg, ts)
	require.Len(t, doc.Projects, 2)
	phase := doc.Projects[0].Phases[0]
	assert.Equal(t, Flag(true), phase.IsActive)
	require.Len(t, phase.Tasks, 2)
	assert.Len(t, phase.Tasks[0].Personnel, 1)
	assert.Nil(t, phase.Tasks[1].Personnel)
	assert.Equal(t, "Sam", phase.Tasks[1].FirstCoworker)
	assert.Empty(t, doc.Projects[1].Phases)

	data, err := ToXML(doc, true)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "<IsActive>True</IsActive>")
	assert.Equal(t, 1, strings.Count(out, "<Personnel "))
	assert.Contains(t, out, "\n  <Project ")
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(Build(sampleTree()), true)
	require.NoError(t, err)

	var decoded struct {
		Projects []struct {
			Name   string `json:"name"`
			Code   string `json:"code"`
			Phases []struct {
				IsActive bool `json:"is_active"`
				Tasks    []struct {
					Personnel []struct {
						Name    string   `json:"name"`
						Records []Record `json:"records"`
					} `json:"personnel"`
				} `json:"tasks"`
			} `json:"phases"`
		} `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Projects, 2)
	assert.Equal(t, "0007", decoded.Projects[0].Code)
	assert.False(t, decoded.Projects[0].Phases[0].IsActive)
	assert.Equal(t, []Record{{Date: "2024-01-10", Hours: "3"}},
		decoded.Projects[0].Phases[0].Tasks[0].Personnel[0].Records)
	assert.NotNil(t, decoded.Projects[1].Phases)
	assert.Contains(t, string(data), `"phases": []`)
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(Build(sampleTree()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "projects")
	assert.Contains(t, string(data), "code: \"0007\"")
	assert.Contains(t, string(data), "is_active: false")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"xml", FormatXML, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got)
	}
}

func TestMarshalAndWriteFile(t *testing.T) {
	doc := Build(sampleTree())

	for _, f := range []Format{FormatXML, FormatJSON, FormatYAML} {
		data, err := Marshal(doc, f, false)
		require.NoError(t, err, f)
		assert.NotEmpty(t, data)
	}
	_, err := Marshal(doc, "csv", false)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "out.xml")
	assert.NoError(t, WriteFile(path, []byte("<Projects/>")))
	assert.Error(t, WriteFile(filepath.Join(t.TempDir(), "missing", "out.xml"), nil))
}
