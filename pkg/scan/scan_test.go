package scan

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestScan_MatchesSupportedExtensions(t *testing.T) {
	fsys := fstest.MapFS{
		"root/a.jpg":     &fstest.MapFile{Data: []byte("a")},
		"root/b.mp4":     &fstest.MapFile{Data: []byte("b")},
		"root/c.mov":     &fstest.MapFile{Data: []byte("c")},
		"root/d.avi":     &fstest.MapFile{Data: []byte("d")},
		"root/e.mkv":     &fstest.MapFile{Data: []byte("e")},
		"root/notes.txt": &fstest.MapFile{Data: []byte("f")},
	}

	got, err := Scan(fsys, "root", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.jpg", "b.mp4", "c.mov", "d.avi", "e.mkv"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, want)
	}
}

func TestScan_ExtensionsAreCaseSensitive(t *testing.T) {
	fsys := fstest.MapFS{
		"root/a.JPG": &fstest.MapFile{Data: []byte("a")},
		"root/b.Mp4": &fstest.MapFile{Data: []byte("b")},
		"root/c.jpg": &fstest.MapFile{Data: []byte("c")},
	}

	got, err := Scan(fsys, "root", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"c.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, want)
	}
}

func TestScan_DoesNotRecurse(t *testing.T) {
	fsys := fstest.MapFS{
		"root/a.jpg":         &fstest.MapFile{Data: []byte("a")},
		"root/sub/b.mp4":     &fstest.MapFile{Data: []byte("b")},
		"root/clips.mp4/c.x": &fstest.MapFile{Data: []byte("c")},
	}

	got, err := Scan(fsys, "root", DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, want)
	}
}

func TestScan_NormalizesExtensionSpelling(t *testing.T) {
	fsys := fstest.MapFS{
		"root/a.mp4": &fstest.MapFile{Data: []byte("a")},
	}

	got, err := Scan(fsys, "root", Options{Extensions: []string{"mp4", " ", ""}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a.mp4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected result\n got: %#v\nwant: %#v", got, want)
	}
}

func TestScan_MissingRootReturnsError(t *testing.T) {
	fsys := fstest.MapFS{}

	if _, err := Scan(fsys, "missing", DefaultOptions()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
