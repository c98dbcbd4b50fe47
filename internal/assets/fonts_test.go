package assets

import (
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/basicfont"
)

func TestLoadFaceFallsBackWhenMissing(t *testing.T) {
	face := LoadFace(fstest.MapFS{}, "fonts/runner.ttf", 16)
	if face != basicfont.Face7x13 {
		t.Error("expected the built-in face when the font file is missing")
	}
}

func TestLoadFaceFallsBackOnGarbage(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/runner.ttf": &fstest.MapFile{Data: []byte("not a font")},
	}
	face := LoadFace(fsys, "fonts/runner.ttf", 16)
	if face != basicfont.Face7x13 {
		t.Error("expected the built-in face for an unparsable font")
	}
}
