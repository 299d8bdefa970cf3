package ports

import (
	"context"

	"go.trai.ch/mutrun/internal/core/domain"
)

// ChangeSetReader lists the files modified in the working copy.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type ChangeSetReader interface {
	// ReadChangeSet queries version control once.
	//
	// An unusable status query yields a fallback change set, not an error.
	ReadChangeSet(ctx context.Context) (domain.ChangeSet, error)
}
