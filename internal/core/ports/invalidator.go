package ports

// CacheInvalidator deletes cache artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=invalidator.go -destination=mocks/mock_invalidator.go -package=mocks
type CacheInvalidator interface {
	// Invalidate removes each path in order and returns the ones that existed.
	//
	// Paths that are already absent are skipped. Any other failure stops the
	// batch and is returned; later paths are left untouched.
	Invalidate(paths []string) ([]string, error)
}
