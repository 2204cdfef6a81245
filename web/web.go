package web

import "embed"

//go:embed templates/*.html
var TemplateFiles embed.FS

//go:embed content/*.md
var ContentFiles embed.FS
