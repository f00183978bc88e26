package adapters

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devrando/internal/ports"
	"devrando/internal/types"
)

//go:embed templates/*
var starterTemplates embed.FS

// StarterTemplateAdapter renders the static part of a locally synthesized
// bundle: readme, entry point, ignore file and the in-project validator.
type StarterTemplateAdapter struct{}

func NewStarterTemplateAdapter() StarterTemplateAdapter {
	return StarterTemplateAdapter{}
}

type starterData struct {
	PackageName string
	Config      types.BundleConfig
}

var renderedStarterFiles = map[string]string{
	types.ReadmeFileName: "templates/README.md.tmpl",
	types.EntryFileName:  "templates/index.js.tmpl",
	types.IgnoreFileName: "templates/gitignore.tmpl",
}

func (a StarterTemplateAdapter) Render(packageName string, config types.BundleConfig) (map[string]string, error) {
	data := starterData{PackageName: packageName, Config: config}
	files := make(map[string]string, len(renderedStarterFiles)+1)
	for target, source := range renderedStarterFiles {
		content, err := renderStarterTemplate(source, data)
		if err != nil {
			return nil, err
		}
		files[target] = content
	}
	validator, err := starterTemplates.ReadFile("templates/verify-deps.mjs")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("validator script template missing").
			WithCause(err)
	}
	files[types.ValidatorFileName] = string(validator)
	return files, nil
}

func renderStarterTemplate(source string, data starterData) (string, error) {
	tmpl, err := template.New(source).
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(starterTemplates, source)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to parse template %s", source)).
			WithCause(err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, templateBaseName(source), data); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to render template %s", source)).
			WithCause(err)
	}
	return buf.String(), nil
}

func templateBaseName(source string) string {
	if idx := strings.LastIndex(source, "/"); idx >= 0 {
		return source[idx+1:]
	}
	return source
}

var _ ports.StarterTemplatePort = StarterTemplateAdapter{}
