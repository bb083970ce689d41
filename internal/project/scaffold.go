package project

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Result holds the outcome of a scaffold run.
type Result struct {
	Dir   string
	Files []string
}

// Init scaffolds a project in dir. It refuses to run when the descriptor
// already exists with content; an empty descriptor is overwritten. Nothing
// is written when the check fails.
func Init(dir string, l Layout) (*Result, error) {
	state, err := Inspect(dir, l)
	if err != nil {
		return nil, err
	}
	if state == StatePresent {
		return nil, fmt.Errorf("%s: %w", l.Descriptor, ErrDescriptorExists)
	}

	files := []struct {
		tmpl string
		name string
	}{
		{"descriptor.tmpl", l.Descriptor},
		{"starter.tmpl", l.Starter},
	}

	result := &Result{Dir: dir}
	for _, f := range files {
		content, err := render(f.tmpl, l)
		if err != nil {
			return nil, err
		}
		outPath := filepath.Join(dir, f.name)
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, f.name)
	}
	return result, nil
}

func render(name string, l Layout) ([]byte, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, l); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
