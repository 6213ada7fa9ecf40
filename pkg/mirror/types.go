package mirror

// ChangeType represents the type of change in a mirror plan
type ChangeType string

const (
	ChangeTypeCreate ChangeType = "create"
	ChangeTypeUpdate ChangeType = "update"
	ChangeTypeDelete ChangeType = "delete"
)

// FileChange represents a single planned operation on a destination path
type FileChange struct {
	Type  ChangeType `json:"type"`
	Path  string     `json:"path"`
	IsDir bool       `json:"is_dir,omitempty"`
}

// Plan represents the set of changes that makes a destination match its
// source. Copy changes come first in lexicographic path order, followed
// by deletes in lexicographic path order, so plans are deterministic for
// a given source and destination state.
type Plan struct {
	Changes []FileChange `json:"changes,omitempty"`
}

// IsEmpty reports whether the plan contains no changes
func (p *Plan) IsEmpty() bool {
	return len(p.Changes) == 0
}

// Summary returns the number of creates, updates and deletes in the plan
func (p *Plan) Summary() (creates, updates, deletes int) {
	for _, c := range p.Changes {
		switch c.Type {
		case ChangeTypeCreate:
			creates++
		case ChangeTypeUpdate:
			updates++
		case ChangeTypeDelete:
			deletes++
		}
	}
	return creates, updates, deletes
}
