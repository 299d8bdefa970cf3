package domain

// ChangeSet is the snapshot of modified files taken once at the start of a run.
type ChangeSet struct {
	// Files holds the changed paths in status-output order. Duplicates are kept.
	Files []string

	// Fallback is set when the status query could not be used. Files is then
	// empty by policy rather than because nothing changed.
	Fallback bool

	// Reason explains a fallback. It is nil otherwise.
	Reason error
}

// NewChangeSet returns a change set read successfully from version control.
func NewChangeSet(files []string) ChangeSet {
	return ChangeSet{Files: files}
}

// FallbackChangeSet returns the empty change set used when the status query fails.
func FallbackChangeSet(reason error) ChangeSet {
	return ChangeSet{Fallback: true, Reason: reason}
}

// Empty reports whether no files are part of the change set.
func (c ChangeSet) Empty() bool {
	return len(c.Files) == 0
}
