// Where: internal/generator/renderer.go
// What: Render generated include content in the supported output formats.
// Why: Keep the raw include bit-exact while allowing a standalone header variant.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	shader "github.com/poruru-code/shader-embed/internal/embed"
)

// Format selects the shape of the generated file.
type Format string

const (
	// FormatRaw emits only the raw string literal, for #include inside an expression.
	FormatRaw Format = "raw"
	// FormatHeader emits a self-contained header declaring a constexpr char array.
	FormatHeader Format = "header"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatRaw), string(FormatHeader)}
}

// ParseFormat maps a user supplied name to a Format. Empty means raw.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatRaw:
		return FormatRaw, nil
	case FormatHeader:
		return FormatHeader, nil
	}
	return "", fmt.Errorf("unknown format %q (expected one of %s)", value, strings.Join(Formats(), ", "))
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

var (
	symbolPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	nonIdentifiers = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

type headerTemplateData struct {
	Source  string
	Stem    string
	Symbol  string
	Literal string
}

// ValidateSymbol checks that an explicit symbol is a C++ identifier.
func ValidateSymbol(symbol string) error {
	if symbol == "" || symbolPattern.MatchString(symbol) {
		return nil
	}
	return fmt.Errorf("symbol %q is not a valid identifier", symbol)
}

// Render produces the file content for src. Only the base name of sourceName
// reaches the output.
func Render(format Format, sourceName, symbol string, src []byte, d shader.Delimiter) ([]byte, error) {
	switch format {
	case "", FormatRaw:
		return shader.Wrap(src, d), nil
	case FormatHeader:
		if err := ValidateSymbol(symbol); err != nil {
			return nil, err
		}
		base := filepath.Base(sourceName)
		data := headerTemplateData{
			Source:  base,
			Stem:    identifierStem(base),
			Symbol:  symbol,
			Literal: strings.TrimSuffix(string(shader.Wrap(src, d)), "\n"),
		}
		return renderTemplate("header.tmpl", data)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// identifierStem turns "sha256d-miner.metal" into "sha256d_miner".
func identifierStem(base string) string {
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.Trim(nonIdentifiers.ReplaceAllString(stem, "_"), "_")
	if stem == "" {
		return "shader"
	}
	return strings.ToLower(stem)
}

func renderTemplate(name string, data any) ([]byte, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
