package formdef

import (
	"embed"
	"io/fs"
)

//go:embed forms/*.yaml
var embeddedForms embed.FS

// EmbeddedFS returns the bundled form definitions.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedForms, "forms")
	if err != nil {
		// the embed directive guarantees the subpath exists
		panic(err)
	}
	return sub
}

// Default loads the bundled example form definition.
func Default() (*Definition, error) {
	return Load(EmbeddedFS(), "example.yaml")
}
