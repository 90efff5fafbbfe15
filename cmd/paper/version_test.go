package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintVersion(t *testing.T) {
	tests := []struct {
		name          string
		version       string
		build         string
		buildTime     string
		expectContain []string
	}{
		{
			name:          "dev build",
			version:       "dev",
			build:         "unknown",
			buildTime:     "",
			expectContain: []string{"paper version dev", "Go version:", "OS/Arch:"},
		},
		{
			name:          "release build with commit",
			version:       "0.3.0",
			build:         "abc1234",
			buildTime:     "2026-10-01_12:00:00",
			expectContain: []string{"paper version 0.3.0", "(build: abc1234)", "[2026-10-01_12:00:00]", "Go version:", "OS/Arch:"},
		},
		{
			name:          "release build without buildtime",
			version:       "1.0.0",
			build:         "def5678",
			buildTime:     "",
			expectContain: []string{"paper version 1.0.0", "(build: def5678)", "Go version:", "OS/Arch:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion := Version
			origBuild := Build
			origBuildTime := BuildTime
			defer func() {
				Version = origVersion
				Build = origBuild
				BuildTime = origBuildTime
			}()

			Version = tt.version
			Build = tt.build
			BuildTime = tt.buildTime

			var buf bytes.Buffer
			printVersion(&buf)
			output := buf.String()

			for _, expected := range tt.expectContain {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain %q, but got:\n%s", expected, output)
				}
			}
		})
	}
}

func TestVersionCommandSkipsSetup(t *testing.T) {
	// A stale theme makes setup warn; version must stay quiet.
	t.Setenv("PAPER_THEME", "does-not-exist")
	out, err := runPaper(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "paper version") || strings.Contains(out, "Warning") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestVersionVariablesDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if Build == "" {
		t.Error("Build should have a default value")
	}
}
