package python

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// ClassTemplate is the path of the charm class template inside TemplatesFS.
const ClassTemplate = "templates/charm_class.py.tpl"

// TemplatesFS exposes the embedded template bundle so callers can copy or
// extend the stock charm class template.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
