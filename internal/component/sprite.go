package component

// Sprite names the image an entity is drawn with. The render system
// resolves the name through the image manager and falls back to a flat
// shape when the image is absent.
type Sprite struct {
	Name string
}
