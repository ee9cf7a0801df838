// Package output renders an assembled project tree as XML, JSON or YAML.
package output

import (
	"encoding/xml"

	"github.com/ukaji3/pmrollup-go/pkg/pmrollup/models"
)

// Document is the export view of a run.
type Document struct {
	XMLName  xml.Name  `xml:"Projects" json:"-" yaml:"-"`
	Projects []Project `xml:"Project" json:"projects" yaml:"projects"`
}

// Project is one registry entry.
type Project struct {
	Name   string  `xml:"name,attr" json:"name" yaml:"name"`
	Code   string  `xml:"code,attr" json:"code" yaml:"code"`
	Phases []Phase `xml:"Phase" json:"phases" yaml:"phases"`
}

// Phase is one work-breakdown phase.
type Phase struct {
	Name              string `xml:"name,attr" json:"name" yaml:"name"`
	Number            string `xml:"number,attr" json:"number" yaml:"number"`
	ResponsiblePerson string `xml:"ResponsiblePerson" json:"responsible_person" yaml:"responsible_person"`
	DateOfFinishing   string `xml:"DateOfFinishing" json:"date_of_finishing" yaml:"date_of_finishing"`
	RequiredTime      string `xml:"RequiredTime" json:"required_time" yaml:"required_time"`
	IsActive          Flag   `xml:"IsActive" json:"is_active" yaml:"is_active"`
	Tasks             []Task `xml:"Task" json:"tasks" yaml:"tasks"`
}

// Task is one work item with the hours logged against it.
type Task struct {
	Name            string      `xml:"name,attr" json:"name" yaml:"name"`
	FirstCoworker   string      `xml:"FirstCoworker" json:"first_coworker" yaml:"first_coworker"`
	SecondCoworker  string      `xml:"SecondCoworker" json:"second_coworker" yaml:"second_coworker"`
	ThirdCoworker   string      `xml:"ThirdCoworker" json:"third_coworker" yaml:"third_coworker"`
	TaskStatus      string      `xml:"TaskStatus" json:"task_status" yaml:"task_status"`
	DateOfFinishing string      `xml:"DateOfFinishing" json:"date_of_finishing" yaml:"date_of_finishing"`
	RequiredTime    string      `xml:"RequiredTime" json:"required_time" yaml:"required_time"`
	Personnel       []Personnel `xml:"Personnel" json:"personnel,omitempty" yaml:"personnel,omitempty"`
}

// Personnel groups the records of one person.
type Personnel struct {
	Name    string   `xml:"name,attr" json:"name" yaml:"name"`
	Records []Record `xml:"Record" json:"records" yaml:"records"`
}

// Record is one day of logged hours.
type Record struct {
	Date  string `xml:"date,attr" json:"date" yaml:"date"`
	Hours string `xml:"hours,attr" json:"hours" yaml:"hours"`
}

// Flag is a boolean rendered as True/False in XML.
type Flag bool

func (f Flag) String() string {
	if f {
		return "True"
	}
	return "False"
}

// MarshalXML implements xml.Marshaler.
func (f Flag) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(f.String(), start)
}

// Build walks the project tree and attaches the timesheet records of each task.
func Build(reg *models.Registry, ts *models.Timesheets) *Document {
	doc := &Document{Projects: make([]Project, 0, len(reg.Projects()))}

	for _, p := range reg.Projects() {
		proj := Project{Name: p.Name, Code: p.Code, Phases: make([]Phase, 0, len(p.Phases()))}

		for _, ph := range p.Phases() {
			phase := Phase{
				Name:              ph.Name,
				Number:            ph.Number,
				ResponsiblePerson: ph.ResponsiblePerson,
				DateOfFinishing:   ph.DateOfFinishing,
				RequiredTime:      ph.RequiredTime,
				IsActive:          Flag(ph.Active),
				Tasks:             make([]Task, 0, len(ph.Tasks)),
			}
			for _, t := range ph.Tasks {
				task := Task{
					Name:            t.Name,
					FirstCoworker:   t.FirstCoworker,
					SecondCoworker:  t.SecondCoworker,
					ThirdCoworker:   t.ThirdCoworker,
					TaskStatus:      t.Status,
					DateOfFinishing: t.DateOfFinishing,
					RequiredTime:    t.RequiredTime,
				}
				if log, ok := ts.Lookup(models.KeyFor(p.Name, ph, t)); ok {
					task.Personnel = personnelOf(log)
				}
				phase.Tasks = append(phase.Tasks, task)
			}
			proj.Phases = append(proj.Phases, phase)
		}
		doc.Projects = append(doc.Projects, proj)
	}

	return doc
}

func personnelOf(log *models.TaskLog) []Personnel {
	groups := make([]Personnel, 0, len(log.People()))
	for _, person := range log.People() {
		recs := log.Records(person)
		group := Personnel{Name: person, Records: make([]Record, 0, len(recs))}
		for _, r := range recs {
			group.Records = append(group.Records, Record{
				Date:  r.Date.Format("2006-01-02"),
				Hours: models.FormatNumber(r.Hours),
			})
		}
		groups = append(groups, group)
	}
	return groups
}
