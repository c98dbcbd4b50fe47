// internal/assets/fonts.go
package assets

import (
	"io/fs"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFace parses a TTF from fsys and builds a face of the given size.
// Any failure falls back to the built-in bitmap face after a log line;
// text stays readable either way.
func LoadFace(fsys fs.FS, path string, size float64) font.Face {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		log.Printf("WARNING: failed to read font %s, using built-in face: %v", path, err)
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		log.Printf("WARNING: failed to parse font %s, using built-in face: %v", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: failed to build font face from %s, using built-in face: %v", path, err)
		return basicfont.Face7x13
	}
	return face
}
