package server

import (
	"embed"
	"html/template"
)

//go:embed views/*.tmpl
var viewFS embed.FS

var viewTemplates = template.Must(template.New("views").
	Funcs(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}).
	ParseFS(viewFS, "views/*.tmpl"))
