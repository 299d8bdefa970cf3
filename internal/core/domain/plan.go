package domain

// Plan is everything a run derives from the change set before touching the filesystem.
type Plan struct {
	ChangeSet ChangeSet

	// CacheArtifacts is invalidated before and after the test run. The same
	// slice is used for both passes.
	CacheArtifacts []string

	// TestFiles is passed to the test runner in this order.
	TestFiles []string
}

// RunResult is what the orchestrator reports after a run.
type RunResult struct {
	Plan      Plan
	TypeCheck *Invocation
	Tests     *Invocation
	State     State
}
