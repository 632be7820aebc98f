package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeRelease struct {
	version string
	newer   bool
}

func (r fakeRelease) Version() string { return r.version }

func (r fakeRelease) LessOrEqual(string) bool { return !r.newer }

// stubUpdater replaces the release lookup and install steps and returns a
// pointer to the number of installs performed.
func stubUpdater(t *testing.T, r release, found bool, detectErr error) *int {
	t.Helper()
	origDetect, origInstall := detectLatest, installRelease
	t.Cleanup(func() { detectLatest, installRelease = origDetect, origInstall })

	installs := 0
	detectLatest = func(ctx context.Context, slug string) (release, bool, error) {
		if slug != githubRepoSlug {
			t.Errorf("Expected slug %s, got %s", githubRepoSlug, slug)
		}
		return r, found, detectErr
	}
	installRelease = func(ctx context.Context, got release) error {
		installs++
		return nil
	}
	return &installs
}

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := rootCmd.Version
	rootCmd.Version = v
	t.Cleanup(func() { rootCmd.Version = original })
}

func TestNewSelfUpdateCmd(t *testing.T) {
	c := newSelfUpdateCmd()
	if c.Use != "self-update" {
		t.Errorf("Expected Use to be 'self-update', got %s", c.Use)
	}
	if c.Short == "" || c.Long == "" {
		t.Error("Expected Short and Long descriptions to be set")
	}
	if c.RunE == nil {
		t.Error("Expected RunE function to be set")
	}
}

func TestRunSelfUpdate_RefusesDevelopmentBuilds(t *testing.T) {
	for _, v := range []string{"dev", ""} {
		withVersion(t, v)
		installs := stubUpdater(t, fakeRelease{version: "1.0.0", newer: true}, true, nil)

		err := runSelfUpdate(nil, nil)
		if err == nil || !strings.Contains(err.Error(), "cannot self-update a development version") {
			t.Errorf("version %q: unexpected error %v", v, err)
		}
		if *installs != 0 {
			t.Errorf("version %q: expected no install", v)
		}
	}
}

func TestRunSelfUpdate_AlreadyLatest(t *testing.T) {
	withVersion(t, "0.4.0")
	installs := stubUpdater(t, fakeRelease{version: "0.4.0"}, true, nil)

	c, stdout, _ := newTestCmd()
	if err := runSelfUpdate(c, nil); err != nil {
		t.Fatalf("self-update: %v", err)
	}
	if !strings.Contains(stdout.String(), "Current version (0.4.0) is the latest") {
		t.Errorf("Unexpected output %q", stdout.String())
	}
	if *installs != 0 {
		t.Errorf("Expected no install, got %d", *installs)
	}
}

func TestRunSelfUpdate_InstallsNewerRelease(t *testing.T) {
	withVersion(t, "0.4.0")
	installs := stubUpdater(t, fakeRelease{version: "0.5.1", newer: true}, true, nil)

	c, stdout, _ := newTestCmd()
	if err := runSelfUpdate(c, nil); err != nil {
		t.Fatalf("self-update: %v", err)
	}
	if *installs != 1 {
		t.Errorf("Expected one install, got %d", *installs)
	}
	if !strings.Contains(stdout.String(), "Successfully updated to version 0.5.1") {
		t.Errorf("Unexpected output %q", stdout.String())
	}
}

func TestRunSelfUpdate_InstallFailure(t *testing.T) {
	withVersion(t, "0.4.0")
	stubUpdater(t, fakeRelease{version: "0.5.1", newer: true}, true, nil)
	installRelease = func(context.Context, release) error { return errors.New("permission denied") }

	c, _, _ := newTestCmd()
	err := runSelfUpdate(c, nil)
	if err == nil || !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("Expected the install error, got %v", err)
	}
}

func TestRunSelfUpdate_DetectFailures(t *testing.T) {
	withVersion(t, "0.4.0")

	stubUpdater(t, nil, false, nil)
	err := runSelfUpdate(nil, nil)
	if err == nil || !strings.Contains(err.Error(), githubRepoSlug) {
		t.Errorf("Expected a not-found error naming the repository, got %v", err)
	}

	rateLimited := errors.New("API rate limit exceeded")
	stubUpdater(t, nil, false, rateLimited)
	err = runSelfUpdate(nil, nil)
	if !errors.Is(err, rateLimited) {
		t.Errorf("Expected the detect error to be wrapped, got %v", err)
	}
}

func TestSelfUpdateCommandHelp(t *testing.T) {
	c := newSelfUpdateCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs([]string{"--help"})

	if err := c.Execute(); err != nil {
		t.Fatalf("Error executing self-update help: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "Checks for the latest release") || !strings.Contains(output, "self-update") {
		t.Errorf("Help output should contain the long description and command name. Got: %q", output)
	}
}
