package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"setlist/internal/songcache"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	cachePath  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, base)

	cachePath := filepath.Join(base, "songcache.bin")
	writeEmptyCache(t, cachePath, songcache.CurrentVersion, false)

	return &cliTestEnv{
		baseDir:    base,
		configPath: configPath,
		cachePath:  cachePath,
	}
}

func writeTestConfig(t *testing.T, path, base string) {
	t.Helper()
	content := fmt.Sprintf(`
[paths]
catalog_dir = %q
log_dir = %q

[scan]
default_device = "test-device"
`,
		filepath.ToSlash(filepath.Join(base, "catalog")),
		filepath.ToSlash(filepath.Join(base, "logs")),
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// writeEmptyCache produces a structurally valid cache with empty string
// tables and all five sections empty.
func writeEmptyCache(t *testing.T, path string, version int32, fullPaths bool) {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, version); err != nil {
		t.Fatalf("write version: %v", err)
	}
	flag := byte(0)
	if fullPaths {
		flag = 1
	}
	buf.WriteByte(flag)
	// 8 string tables plus 5 record sections, each an empty count.
	for i := 0; i < 13; i++ {
		if err := binary.Write(&buf, binary.LittleEndian, int32(0)); err != nil {
			t.Fatalf("write count: %v", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write cache: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q does not contain %q", output, want)
	}
}

func TestCLIScanAndListCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"scan", env.cachePath}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, `Ingested 0 songs for device "test-device"`)

	out, _, err = runCLI(t, []string{"devices"}, env.configPath)
	if err != nil {
		t.Fatalf("devices: %v", err)
	}
	requireContains(t, out, "test-device")

	out, _, err = runCLI(t, []string{"songs"}, env.configPath)
	if err != nil {
		t.Fatalf("songs: %v", err)
	}
	requireContains(t, out, "No songs match")
}

func TestCLIScanDeviceFlagOverridesDefault(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"scan", env.cachePath, "--device", "living-room"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, `device "living-room"`)
}

func TestCLIScanJSONSummary(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"scan", env.cachePath, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("scan --json: %v", err)
	}
	var summary struct {
		Device  string `json:"device"`
		Entries int    `json:"entries"`
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if summary.Device != "test-device" || summary.Entries != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestCLIScanReportsRejectedCache(t *testing.T) {
	env := setupCLITestEnv(t)
	writeEmptyCache(t, env.cachePath, songcache.CurrentVersion+1, false)

	out, _, err := runCLI(t, []string{"scan", env.cachePath}, env.configPath)
	if err != nil {
		t.Fatalf("scan of rejected cache should succeed: %v", err)
	}
	requireContains(t, out, "Cache rejected")

	// Nothing was ingested.
	out, _, err = runCLI(t, []string{"devices"}, env.configPath)
	if err != nil {
		t.Fatalf("devices: %v", err)
	}
	requireContains(t, out, "No devices scanned yet")
}

func TestCLIScanFailsOnTruncatedCache(t *testing.T) {
	env := setupCLITestEnv(t)
	data, err := os.ReadFile(env.cachePath)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(env.cachePath, data[:len(data)-2], 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runCLI(t, []string{"scan", env.cachePath}, env.configPath); err == nil {
		t.Fatal("expected scan of truncated cache to fail")
	}
}

func TestCLIInspectEmptyCache(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"inspect", env.cachePath, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("inspect --json: %v", err)
	}
	var report struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if report.Total != 0 {
		t.Fatalf("total = %d, want 0", report.Total)
	}
}

func TestCLIInspectReportsRejection(t *testing.T) {
	env := setupCLITestEnv(t)
	writeEmptyCache(t, env.cachePath, songcache.CurrentVersion, true)

	out, _, err := runCLI(t, []string{"inspect", env.cachePath}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "Cache rejected")
}

func TestCLIConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "default_device:       test-device")
	requireContains(t, out, fmt.Sprintf("cache_version:        %d", songcache.CurrentVersion))
}
