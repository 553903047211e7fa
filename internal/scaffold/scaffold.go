package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/unnarize/uvm/internal/branding"
	"github.com/unnarize/uvm/internal/manifest"
	"github.com/unnarize/uvm/internal/platform"
)

//go:embed scaffolds
var scaffoldFS embed.FS

// DefaultProjectName is used when init is not given a name.
const DefaultProjectName = "my-unnarize-project"

// GitAttributesFile is the language-detection hint file name.
const GitAttributesFile = ".gitattributes"

// ProjectData holds the template variables for a new project.
type ProjectData struct {
	Name      string // Project name written to the manifest
	Language  string // e.g., "Unnarize"
	SourceExt string // e.g., ".gi"
}

// NewProjectData returns ProjectData for name, falling back to
// DefaultProjectName when name is empty.
func NewProjectData(name string) *ProjectData {
	if name == "" {
		name = DefaultProjectName
	}
	return &ProjectData{
		Name:      name,
		Language:  branding.Language(),
		SourceExt: branding.SourceExt(),
	}
}

// FileResult reports what Init did with one file.
type FileResult struct {
	Path    string
	Skipped bool // already existed and was left untouched
}

// Result holds the outcome of Init. Files are in the order they were processed.
type Result struct {
	Files    []FileResult
	Warnings []string
}

// Created returns the paths Init wrote.
func (r *Result) Created() []string { return r.paths(false) }

// Skipped returns the paths that already existed.
func (r *Result) Skipped() []string { return r.paths(true) }

func (r *Result) paths(skipped bool) []string {
	var out []string
	for _, f := range r.Files {
		if f.Skipped == skipped {
			out = append(out, f.Path)
		}
	}
	return out
}

// file pairs an embedded template with the path it renders to.
type file struct {
	template string
	outPath  string
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}

// Init writes the manifest (at manifestPath, relative to dir unless absolute)
// and the .gitattributes hint into dir. Files that already exist are reported
// as skipped and left untouched.
func Init(dir, manifestPath string, data *ProjectData) (*Result, error) {
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(dir, manifestPath)
	}

	files := []file{
		{template: "manifest.tmpl", outPath: manifestPath},
		{template: "gitattributes.tmpl", outPath: filepath.Join(dir, GitAttributesFile)},
	}

	result := &Result{}
	for _, f := range files {
		if platform.Exists(f.outPath) {
			result.Files = append(result.Files, FileResult{Path: f.outPath, Skipped: true})
			continue
		}

		content, err := render(f.template, data)
		if err != nil {
			return result, err
		}

		if err := os.MkdirAll(filepath.Dir(f.outPath), platform.DirPerm); err != nil {
			return result, fmt.Errorf("creating directory for %s: %w", f.outPath, err)
		}
		if err := os.WriteFile(f.outPath, content, platform.FilePerm); err != nil {
			return result, fmt.Errorf("writing %s: %w", f.outPath, err)
		}
		result.Files = append(result.Files, FileResult{Path: f.outPath})

		if f.outPath == manifestPath {
			result.Warnings = append(result.Warnings, validate(content)...)
		}
	}

	return result, nil
}

func render(name string, data *ProjectData) ([]byte, error) {
	tmplPath := path.Join("scaffolds", "project", name)
	tmplBytes, err := scaffoldFS.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// validate checks a generated manifest against the schema and returns any
// problems as warnings.
func validate(content []byte) []string {
	valResult, err := manifest.Validate(content)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate manifest: %v", err)}
	}
	var warnings []string
	for _, issue := range valResult.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		warnings = append(warnings, msg)
	}
	return warnings
}
