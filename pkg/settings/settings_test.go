package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_Defaults(t *testing.T) {
	s := &Settings{}

	if s.DefaultPlan != "" {
		t.Errorf("DefaultPlan should be empty, got %q", s.DefaultPlan)
	}
	if s.JSONLogs {
		t.Error("JSONLogs should default to false")
	}
}

func TestSettings_SettersGetters(t *testing.T) {
	s := &Settings{}

	s.SetDefaultPlan("/etc/lagmigrate/plan.yaml")
	if s.DefaultPlan != "/etc/lagmigrate/plan.yaml" {
		t.Errorf("SetDefaultPlan() failed, got %q", s.DefaultPlan)
	}
}

func TestSettings_Clear(t *testing.T) {
	s := &Settings{
		DefaultPlan: "/path/plan.yaml",
		JSONLogs:    true,
	}

	s.Clear()

	if s.DefaultPlan != "" || s.JSONLogs {
		t.Error("Clear() should reset all fields")
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "settings.json")

	s := &Settings{DefaultPlan: "/plans/edge1.yaml", JSONLogs: true}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.DefaultPlan != s.DefaultPlan || loaded.JSONLogs != s.JSONLogs {
		t.Errorf("LoadFrom() = %+v, want %+v", loaded, s)
	}
}

func TestSettings_LoadMissingFile(t *testing.T) {
	loaded, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom() on missing file error = %v, want empty settings", err)
	}
	if loaded.DefaultPlan != "" {
		t.Errorf("missing file should yield empty settings, got %+v", loaded)
	}
}

func TestSettings_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should error on corrupt JSON")
	}
}
