// Package content embeds the game's static assets: definition files and
// the image set. The same file tree can also be served over HTTP and
// mirrored by the offline cache.
package content

import "embed"

//go:embed data images
var FS embed.FS
