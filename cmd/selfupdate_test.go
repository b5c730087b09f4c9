package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withRelease stubs the release lookup and the running version.
func withRelease(t *testing.T, version string, release *selfupdate.Release, found bool, err error) {
	t.Helper()
	origDetect, origVersion := detectLatest, rootCmd.Version
	t.Cleanup(func() { detectLatest, rootCmd.Version = origDetect, origVersion })

	rootCmd.Version = version
	detectLatest = func(context.Context) (*selfupdate.Release, bool, error) {
		return release, found, err
	}
}

func TestSelfUpdate_RefusesDevelopmentBuilds(t *testing.T) {
	cfg := writeTestConfig(t)
	for _, version := range []string{"", "dev"} {
		t.Run("version "+version, func(t *testing.T) {
			withRelease(t, version, nil, false, errors.New("must not be called"))

			_, err := runCLI(t, cfg, "self-update")
			assert.ErrorIs(t, err, errDevelopmentVersion)
		})
	}
}

func TestSelfUpdate_LookupFailure(t *testing.T) {
	cfg := writeTestConfig(t)
	withRelease(t, "1.0.0", nil, false, errors.New("rate limited"))

	_, err := runCLI(t, cfg, "self-update")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error detecting latest version")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSelfUpdate_NoRelease(t *testing.T) {
	cfg := writeTestConfig(t)
	withRelease(t, "1.0.0", nil, false, nil)

	_, err := runCLI(t, cfg, "self-update")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no release found for onboardctl/onboardctl")
}

func TestSelfUpdate_RejectsArgs(t *testing.T) {
	cfg := writeTestConfig(t)
	withRelease(t, "1.0.0", nil, false, nil)

	_, err := runCLI(t, cfg, "self-update", "extra")
	assert.Error(t, err)
}

func TestSelfUpdate_Help(t *testing.T) {
	cfg := writeTestConfig(t)
	sub, _, err := rootCmd.Find([]string{"self-update"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Flags().Set("help", "false") })

	out, err := runCLI(t, cfg, "self-update", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Checks for the latest release of onboardctl")
}
