// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/viewgraph/internal/adapters/config"
	_ "go.trai.ch/viewgraph/internal/adapters/logger"
	_ "go.trai.ch/viewgraph/internal/adapters/resolver"
	_ "go.trai.ch/viewgraph/internal/adapters/state"
	_ "go.trai.ch/viewgraph/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/viewgraph/internal/app"
	_ "go.trai.ch/viewgraph/internal/engine/validity"
)
