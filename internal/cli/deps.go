package cli

import (
	"github.com/sonos-tools/sonosctl/internal/appconfig"
	"github.com/sonos-tools/sonosctl/internal/sonos"
)

// Dependency injection points for tests.
var (
	newConfigStore = func() (appconfig.Store, error) { return appconfig.NewDefaultStore() }

	newSpeakerClient = func(flags *rootFlags) (*sonos.Client, error) { return speakerClient(flags) }
)
