package main

import (
	"sync"

	"github.com/tintwork/tintwork/internal/export"
	"github.com/tintwork/tintwork/internal/logger"
)

var (
	appMu       sync.RWMutex
	appLog      *logger.Logger
	appRegistry *export.Registry
)

// setAppState installs the process-wide logger and exporter registry the
// commands run against. Tests swap these for isolated instances.
func setAppState(log *logger.Logger, registry *export.Registry) {
	appMu.Lock()
	defer appMu.Unlock()
	appLog = log
	appRegistry = registry
}

func appLogger() *logger.Logger {
	appMu.RLock()
	defer appMu.RUnlock()
	return appLog
}

func exporterRegistry() *export.Registry {
	appMu.RLock()
	defer appMu.RUnlock()
	return appRegistry
}
