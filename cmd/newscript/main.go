package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const scriptsDir = "internal/scripts"

const tmpl = `package scripts

import "dwellglobe/internal/engine"

type {{.Name}} struct {
	engine.BaseComponent
	Speed float32
}

func (s *{{.Name}}) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
}

func init() {
	engine.RegisterScript("{{.Name}}", {{.Lower}}Factory)
}

func {{.Lower}}Factory(props map[string]any) engine.Component {
	speed := float32(1)
	if v, ok := props["speed"].(float64); ok {
		speed = float32(v)
	}
	return &{{.Name}}{Speed: speed}
}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newscript <ScriptName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newscript Wobbler\n")
		os.Exit(1)
	}

	name := os.Args[1]
	outPath, err := create(scriptsDir, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Attach it to the globe in assets/scenes/globe.json:\n\n")
	fmt.Print(sceneSnippet(name))
}

// create writes the scaffold for name into dir and returns its path.
func create(dir, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	outPath := filepath.Join(dir, toSnakeCase(name)+".go")
	if _, err := os.Stat(outPath); err == nil {
		return "", fmt.Errorf("%s already exists", outPath)
	}
	if err := os.WriteFile(outPath, []byte(render(name)), 0644); err != nil {
		return "", fmt.Errorf("write script: %w", err)
	}
	return outPath, nil
}

func validateName(name string) error {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return errors.New("script name must start with an uppercase letter")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("script name %q must be a Go identifier", name)
		}
	}
	return nil
}

func render(name string) string {
	lower := string(unicode.ToLower(rune(name[0]))) + name[1:]
	content := strings.ReplaceAll(tmpl, "{{.Name}}", name)
	return strings.ReplaceAll(content, "{{.Lower}}", lower)
}

func sceneSnippet(name string) string {
	return fmt.Sprintf("  \"globe\": {\n    \"scripts\": [\n      {\"name\": %q, \"props\": {\"speed\": 1.0}}\n    ]\n  }\n", name)
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
