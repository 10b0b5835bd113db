package hdf5

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFallback(t *testing.T) {
	if got := WrapperVersion(); got != fallbackVersion {
		t.Fatalf("expected fallback version %q, got %q", fallbackVersion, got)
	}
}

// unavailable reports whether err is one of the no-native-bindings errors.
func unavailable(err error) bool {
	return errors.Is(err, ErrNotBuilt) || errors.Is(err, ErrCGONotEnabled)
}

func TestVersionSupported(t *testing.T) {
	cases := []struct {
		major, minor uint32
		want         bool
	}{
		{0, 9, false},
		{1, 7, false},
		{1, 8, true},
		{1, 14, true},
		{2, 0, true},
	}
	for _, tc := range cases {
		if got := versionSupported(tc.major, tc.minor); got != tc.want {
			t.Errorf("versionSupported(%d, %d) = %v, want %v", tc.major, tc.minor, got, tc.want)
		}
	}
}

func TestOpenReleasesSerializer(t *testing.T) {
	lib, err := Open(Config{})
	if err != nil && !unavailable(err) {
		t.Fatalf("unexpected error from Open: %v", err)
	}

	if global.held() {
		t.Fatal("serializer still held after Open")
	}
	ran := false
	Sync(func() { ran = true })
	if !ran {
		t.Fatal("serializer unusable after Open")
	}

	if err == nil {
		if cerr := lib.Close(); cerr != nil {
			t.Fatalf("Close failed: %v", cerr)
		}
	}
}

func TestOpen(t *testing.T) {
	lib, err := Open(Config{})
	if err != nil {
		if !unavailable(err) {
			t.Fatalf("unexpected error from Open: %v", err)
		}
		if lib != nil {
			t.Fatalf("expected nil library, got %+v", lib)
		}
		return
	}

	// Native bindings present: the handle closes once, then reports closed.
	if err := lib.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := lib.Close(); !errors.Is(err, ErrLibraryClosed) {
		t.Fatalf("second Close = %v, want ErrLibraryClosed", err)
	}
}

func TestLibraryCloseIdempotence(t *testing.T) {
	var nilLib *Library
	if err := nilLib.Close(); err != nil {
		t.Fatalf("nil Close = %v", err)
	}

	l := &Library{}
	if err := l.Close(); err != nil {
		t.Fatalf("first Close = %v", err)
	}
	if err := l.Close(); !errors.Is(err, ErrLibraryClosed) {
		t.Fatalf("second Close = %v, want ErrLibraryClosed", err)
	}
}

func TestLibraryVersion(t *testing.T) {
	major, minor, _, err := LibraryVersion()
	if err != nil {
		if !unavailable(err) {
			t.Fatalf("unexpected error from LibraryVersion: %v", err)
		}
		assert.Equal(t, "unknown", LibraryVersionString())
		return
	}

	// Initialization enforces the 1.8 floor, so anything reported here must
	// already satisfy it.
	if major < 1 || (major == 1 && minor < 8) {
		t.Fatalf("unsupported version reported: %d.%d", major, minor)
	}
	assert.Regexp(t, `^\d+\.\d+\.\d+$`, LibraryVersionString())
}

func TestIdentityHelpers(t *testing.T) {
	valid, err := IsValid(ID(-1))
	if err != nil {
		if !unavailable(err) {
			t.Fatalf("unexpected error from IsValid: %v", err)
		}
	} else if valid {
		t.Fatal("negative identifier reported valid")
	}

	if _, err := RefCount(ID(-1)); err == nil {
		t.Fatal("RefCount on a junk identifier reported success")
	}
}
