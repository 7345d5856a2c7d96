// Package template renders embedded document templates.
//
// The only template today is the default configuration document, written by
// the config store when no config file exists. It is a JSON template so the
// seed content stays readable as a file rather than a Go literal; the one
// dynamic value is the URL of the config file itself, used by the
// "Edit this config" link.
//
// # Rendering
//
//	data, err := template.RenderDefault(template.DefaultData{
//	    ConfigURL: "file://~/.config/hop/config.json",
//	})
//
// String values interpolated into JSON templates must go through the "json"
// template function, which quotes and escapes them:
//
//	"url": {{ json .ConfigURL }}
package template
