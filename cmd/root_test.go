package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	// Test root command properties
	if rootCmd.Use != "envseek" {
		t.Errorf("Expected Use to be 'envseek', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionFlagOutput(t *testing.T) {
	// Execute the real root command so the version template is exercised
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	SetVersion("1.0.0")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	if !strings.Contains(buf.String(), "envseek version 1.0.0") {
		t.Errorf("Expected version output, got: %s", buf.String())
	}
}

func TestLogLevelFromEnvironment(t *testing.T) {
	// ENVSEEK_LOG_LEVEL must reach the logger when the flag is not given.
	t.Setenv("ENVSEEK_LOG_LEVEL", "debug")
	t.Setenv("ROOTTEST_VAR", "value")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"get", "ROOTTEST_VAR", "--source", "system"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "value") {
		t.Errorf("Expected resolved value on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "backend system resolved") {
		t.Errorf("Expected a resolver debug trace on stderr at the configured level, got %q", errOut.String())
	}
}

func TestLogLevelFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("ENVSEEK_LOG_LEVEL", "debug")
	t.Setenv("ROOTTEST_VAR", "value")

	// Restore the persistent flag so later executions see it as unset.
	flag := rootCmd.PersistentFlags().Lookup("log-level")
	defer func() {
		flag.Changed = false
		_ = flag.Value.Set("info")
	}()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"get", "ROOTTEST_VAR", "--source", "system", "--log-level", "warn"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if strings.Contains(errOut.String(), "backend system resolved") {
		t.Errorf("Expected the explicit flag to win over the environment, got %q", errOut.String())
	}
}
