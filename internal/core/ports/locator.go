package ports

// CacheLocator finds the compiled-cache artifact of a source file.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type CacheLocator interface {
	// LocateCache returns the root-relative artifact path, if any.
	LocateCache(file string) (string, bool)
}

// TestLocator derives the paired test file of a source file.
type TestLocator interface {
	// LocateTest returns the root-relative test path if the file is backup-guarded.
	LocateTest(file string) (string, bool)
}
