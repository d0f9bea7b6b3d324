package asset

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed data/*.yaml data/*.txt
var embedded embed.FS

// Embedded returns the built-in sheets and images
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // static path
	}
	return sub
}

// Open returns the asset filesystem rooted at dir, or the embedded one when dir is empty
func Open(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}
