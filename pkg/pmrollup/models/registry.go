package models

// Registry holds the projects and personnel listed in the master workbook.
type Registry struct {
	// Personnel keeps sheet order and duplicates.
	Personnel []string

	projects []*Project
	index    map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// PutProject stores p under its name. An existing project with the same name
// is replaced in place.
func (r *Registry) PutProject(p *Project) {
	if i, ok := r.index[p.Name]; ok {
		r.projects[i] = p
		return
	}
	r.index[p.Name] = len(r.projects)
	r.projects = append(r.projects, p)
}

// Project looks up a project by name.
func (r *Registry) Project(name string) (*Project, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.projects[i], true
}

// Projects returns the projects in sheet order.
func (r *Registry) Projects() []*Project {
	return r.projects
}

// HasTask reports whether k resolves to a task in the project tree.
func (r *Registry) HasTask(k TaskKey) bool {
	p, ok := r.Project(k.Project)
	if !ok {
		return false
	}
	ph, ok := p.Phase(PhaseKey{Name: k.PhaseName, Number: k.PhaseNumber})
	if !ok {
		return false
	}
	for _, t := range ph.Tasks {
		if t.Name == k.Task {
			return true
		}
	}
	return false
}
