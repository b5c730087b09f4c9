package app

import (
	"errors"
	"fmt"
	"sync"

	"onboardctl/internal/onboarding"
	"onboardctl/internal/settings"
	"onboardctl/internal/state"
	"onboardctl/pkg/logging"
)

// ErrNoSite is returned when a command needs the settings API but no site
// is configured.
var ErrNoSite = errors.New("no site configured: set site in the config file, pass --site, or use --offline-connected")

// Services holds the stores and collaborators shared by the commands.
type Services struct {
	Store state.Store
	// StatePath is the backing file of Store, empty for in-memory state.
	StatePath string

	settings    settings.Source
	settingsErr error

	navOnce sync.Once
	nav     *onboarding.Navigator
}

// InitializeServices creates the state store and the settings source.
func InitializeServices(cfg *Config) (*Services, error) {
	s := &Services{}

	if cfg.Ephemeral {
		s.Store = state.NewMemoryStore()
		logging.Debug(bootstrapSubsystem, "Using in-memory wizard state")
	} else {
		dir, err := cfg.Onboard.ResolveStateDir()
		if err != nil {
			return nil, err
		}
		fs := state.NewFileStore(dir, state.SiteID(cfg.Onboard.Site))
		s.Store = fs
		s.StatePath = fs.Path()
		logging.Debug(bootstrapSubsystem, "Using wizard state file %s", fs.Path())
	}

	switch {
	case cfg.OfflineConnected:
		s.settings = settings.NewStatic(true)
	case cfg.Onboard.Site == "":
		s.settingsErr = ErrNoSite
	default:
		client, err := settings.NewClient(*cfg.Onboard)
		if err != nil {
			return nil, fmt.Errorf("failed to create settings client: %w", err)
		}
		s.settings = settings.NewCache(client)
	}

	return s, nil
}

// Navigator returns the wizard navigator, seeding it from the store on
// first use.
func (s *Services) Navigator() *onboarding.Navigator {
	s.navOnce.Do(func() {
		s.nav = onboarding.New(s.Store)
	})
	return s.nav
}

// Settings returns the settings source, or ErrNoSite when none can be built.
func (s *Services) Settings() (settings.Source, error) {
	if s.settingsErr != nil {
		return nil, s.settingsErr
	}
	return s.settings, nil
}

// Reset forgets the stored wizard position.
func (s *Services) Reset() error {
	for _, key := range []string{onboarding.StepKey, onboarding.BackStepKey} {
		if err := s.Store.Delete(key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	return nil
}
