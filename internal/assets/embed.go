package assets

import (
	"embed"
	"io/fs"
)

// Names of the bundled assets.
const (
	VertexShader   = "main.vert"
	FragmentShader = "main.frag"
	CowModel       = "cow.obj"
)

//go:embed data
var embedded embed.FS

// Embedded returns the assets compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path
		panic(err)
	}
	return sub
}
