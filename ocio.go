package ocio_go

import (
	"sync"

	"github.com/kpfaulkner/ocio-go/catalog"
	"github.com/kpfaulkner/ocio-go/config"
)

const (
	VersionString = "0.1.0"
	VersionHex    = 0x000100
)

var (
	currentMu      sync.Mutex
	currentConfig  *config.Config
	currentCatalog *catalog.Catalog
)

// GetCurrentConfig returns the process-wide config, loading it from the
// environment on first use. Failures are reported and surface as nil.
func GetCurrentConfig() *config.Config {
	currentMu.Lock()
	defer currentMu.Unlock()

	if currentConfig == nil {
		cfg, err := config.CreateFromEnv()
		if err != nil {
			config.ReportError(err)
			return nil
		}
		currentConfig = cfg
		currentCatalog = catalog.NewCatalog(cfg)
	}
	return currentConfig
}

// SetCurrentConfig replaces the process-wide config. Meant for startup,
// before concurrent readers exist.
func SetCurrentConfig(cfg *config.Config) {
	currentMu.Lock()
	defer currentMu.Unlock()
	currentConfig = cfg
	if cfg != nil {
		currentCatalog = catalog.NewCatalog(cfg)
	} else {
		currentCatalog = nil
	}
}

// CurrentCatalog returns the catalog over the process-wide config, loading
// the config if needed.
func CurrentCatalog() *catalog.Catalog {
	if GetCurrentConfig() == nil {
		return nil
	}
	currentMu.Lock()
	defer currentMu.Unlock()
	return currentCatalog
}
