// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mutrun/internal/adapters/config"
	_ "go.trai.ch/mutrun/internal/adapters/logger"
	_ "go.trai.ch/mutrun/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/mutrun/internal/app"
)
