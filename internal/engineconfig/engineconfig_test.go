package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_MissingReturnsDefault(t *testing.T) {
	p, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracer.yaml")
	if err := os.WriteFile(path, []byte("variant: gpt\nshow_fps: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Variant != "gpt" || !p.ShowFPS {
		t.Errorf("file values not applied: %+v", p)
	}
	if p.Width != 320 || p.Height != 320 || p.Supersample != 1 {
		t.Errorf("defaults lost: %+v", p)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracer.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if p != Default() {
		t.Errorf("got %+v, want defaults on error", p)
	}
}

func TestSaveFile_ThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tracer.yaml")
	want := Prefs{Variant: "phi4", Width: 160, Height: 120, Supersample: 2, ShowMemAlloc: true}
	if err := SaveFile(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
