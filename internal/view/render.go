package view

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

//nolint:gochecknoglobals // Parsed once at init; read-only afterwards.
var pageTemplate = template.Must(
	template.New("page.html.tmpl").
		Funcs(template.FuncMap{"display": display}).
		ParseFS(templateFS, "templates/page.html.tmpl"),
)

func display(visible bool) string {
	if visible {
		return "block"
	}
	return "none"
}

// RenderHTML writes the full page for vm.
func RenderHTML(w io.Writer, vm *ViewModel) error {
	if err := pageTemplate.Execute(w, vm); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// RenderJSON writes vm as indented JSON.
func RenderJSON(w io.Writer, vm *ViewModel) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(vm)
}

// RenderPlain writes vm as unstyled text, one field per line.
func RenderPlain(w io.Writer, vm *ViewModel) error {
	var err error
	switch vm.State {
	case StateLoading:
		_, err = fmt.Fprintln(w, "Loading...")
	case StateError:
		_, err = fmt.Fprintf(w, "Error: %s\n", vm.ErrorMessage)
	case StateContent:
		_, err = fmt.Fprintf(w, "%s\n\nEntity:   %s\nMaximum:  %s (FY %s)\nMinimum:  %s (FY %s)\n",
			vm.Heading, vm.EntityName, vm.MaxValue, vm.MaxFY, vm.MinValue, vm.MinFY)
	}
	return err
}
