package web

import (
	"embed"
	"io/fs"
)

// staticFiles holds the page, its script and stylesheet.
//
//go:embed static/*
var staticFiles embed.FS

// IndexFile is the page served at the site root.
const IndexFile = "index.html"

// StaticFS returns the embedded files rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
