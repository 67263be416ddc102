package resources

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"
)

func TestIcon_LoadsEmbeddedSVG(t *testing.T) {
	for _, name := range []string{IconRunning, IconPaused, IconStopped} {
		resource, err := Icon(name)
		if err != nil {
			t.Fatalf("Icon(%q): %v", name, err)
		}
		if resource.Name() != name {
			t.Errorf("resource name = %q, expected %q", resource.Name(), name)
		}
		if !bytes.Contains(resource.Content(), []byte("<svg")) {
			t.Errorf("%s is not an svg", name)
		}
	}
}

func TestIcon_Cached(t *testing.T) {
	first := MustIcon(IconRunning)
	second := MustIcon(IconRunning)
	if first != second {
		t.Error("second lookup did not return the cached resource")
	}
}

func TestIcon_Missing(t *testing.T) {
	_, err := Icon("missing.svg")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustIcon did not panic")
		}
	}()
	MustIcon("missing.svg")
}
