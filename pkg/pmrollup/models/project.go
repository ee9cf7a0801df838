package models

// CodeWidth is the zero-padded width of a project code.
const CodeWidth = 4

// PhaseKey identifies a phase within a project.
type PhaseKey struct {
	Name   string
	Number string
}

// String renders the key as "<name> - <number>".
func (k PhaseKey) String() string {
	return k.Name + " - " + k.Number
}

// Task is a single work item inside a phase.
type Task struct {
	Name string
	// FirstCoworker, SecondCoworker and ThirdCoworker are distinct slots;
	// a blank first slot does not promote the second.
	FirstCoworker   string
	SecondCoworker  string
	ThirdCoworker   string
	Status          string
	DateOfFinishing string
	RequiredTime    string
}

// Phase groups tasks under a responsible person.
type Phase struct {
	Name              string
	Number            string
	ResponsiblePerson string
	DateOfFinishing   string
	RequiredTime      string
	// Tasks keeps the order the rows appeared in the sheet.
	Tasks []*Task
	// Active is set only by the active-phase marker.
	Active bool
}

// Key returns the phase's composite key.
func (p *Phase) Key() PhaseKey {
	return PhaseKey{Name: p.Name, Number: p.Number}
}

// Project is a registry entry and the root of its phase tree.
type Project struct {
	Name string
	Code string

	phases []*Phase
	index  map[PhaseKey]int
}

// NewProject creates a project with an empty phase collection.
func NewProject(name, code string) *Project {
	return &Project{
		Name:  name,
		Code:  ZeroPad(code, CodeWidth),
		index: make(map[PhaseKey]int),
	}
}

// PutPhase stores ph under its key. A phase with the same key is replaced
// in place: it keeps its position and its tasks are discarded.
func (p *Project) PutPhase(ph *Phase) {
	k := ph.Key()
	if i, ok := p.index[k]; ok {
		p.phases[i] = ph
		return
	}
	p.index[k] = len(p.phases)
	p.phases = append(p.phases, ph)
}

// Phase looks up a phase by key.
func (p *Project) Phase(k PhaseKey) (*Phase, bool) {
	i, ok := p.index[k]
	if !ok {
		return nil, false
	}
	return p.phases[i], true
}

// Phases returns the phases in insertion order.
func (p *Project) Phases() []*Phase {
	return p.phases
}
