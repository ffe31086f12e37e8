package textab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.SheetName != "Tables" {
		t.Errorf("default sheet name = %q, expected %q", opts.SheetName, "Tables")
	}
	if opts.WidthThreshold != 10 {
		t.Errorf("default width threshold = %d, expected 10", opts.WidthThreshold)
	}
	if opts.LegacyDecimalNormalization {
		t.Error("legacy decimal normalization enabled by default")
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	profile := "sheet: Export\nwidth_threshold: 20\nlegacy_decimal: true\n"
	if err := os.WriteFile(path, []byte(profile), 0644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() returned error: %v", err)
	}
	if opts.SheetName != "Export" {
		t.Errorf("sheet name = %q, expected %q", opts.SheetName, "Export")
	}
	if opts.WidthThreshold != 20 {
		t.Errorf("width threshold = %d, expected 20", opts.WidthThreshold)
	}
	if !opts.LegacyDecimalNormalization {
		t.Error("legacy decimal normalization not enabled by the profile")
	}
}

func TestLoadOptionsPartialProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("sheet: Export\n"), 0644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() returned error: %v", err)
	}
	if opts.SheetName != "Export" {
		t.Errorf("sheet name = %q, expected %q", opts.SheetName, "Export")
	}
	if opts.WidthThreshold != 10 {
		t.Errorf("width threshold = %d, expected the default 10", opts.WidthThreshold)
	}
}

func TestLoadOptionsEmptyProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() returned error: %v", err)
	}
	if opts != DefaultOptions() {
		t.Errorf("options = %+v, expected the defaults", opts)
	}
}

func TestLoadOptionsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("sheets: Export\n"), 0644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}

	if _, err := LoadOptions(path); err == nil || !strings.Contains(err.Error(), "sheets") {
		t.Errorf("LoadOptions() error = %v, expected a rejected unknown key", err)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadOptions() on a missing file succeeded, expected error")
	}
}
