package bloopmodel

import (
	"encoding/json/jsontext"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mikeschinkel/go-dt"
)

// Project is one build unit: its sources, classpath, language settings and
// the platform it targets.
type Project struct {
	Name         string
	Directory    Path
	WorkspaceDir Path
	Sources      []Path
	SourcesGlobs []SourcesGlobs
	SourceRoots  []Path
	Dependencies []string
	Classpath    []Path
	Out          Path
	ClassesDir   Path
	Resources    []Path
	Scala        *Scala
	Java         *Java
	Test         *Test
	Platform     Platform
	// Resolution is dependency resolution output, kept verbatim.
	Resolution jsontext.Value
	Tags       []string
	Unknown    Members
}

// Validate checks invariants decoding does not enforce on its own, and that
// every value in p can be encoded.
func (p Project) Validate() (err error) {
	var c checker
	var seen map[string]struct{}

	if strings.TrimSpace(p.Name) == "" {
		c.fail(dt.NewErr(ErrInvalidProject, "reason", "name is empty"))
	}
	c.text("name", p.Name)
	if p.Directory.IsEmpty() {
		c.fail(dt.NewErr(ErrInvalidProject, "reason", "directory is empty"))
	}
	c.path("directory", p.Directory)
	c.path("workspaceDir", p.WorkspaceDir)
	c.paths("sources", p.Sources)
	c.paths("sourceRoots", p.SourceRoots)
	c.paths("classpath", p.Classpath)
	c.path("out", p.Out)
	c.path("classesDir", p.ClassesDir)
	c.paths("resources", p.Resources)
	c.platform(p.Platform)
	seen = make(map[string]struct{}, len(p.Dependencies))
	for _, dep := range p.Dependencies {
		c.text("dependencies", dep)
		if _, ok := seen[dep]; ok {
			c.fail(dt.NewErr(ErrInvalidProject, "reason", "duplicate dependency", "dependency", dep))
			continue
		}
		seen[dep] = struct{}{}
	}
	for _, g := range p.SourcesGlobs {
		c.fail(g.Validate())
	}
	c.scala(p.Scala)
	c.java(p.Java)
	c.test(p.Test)
	if len(p.Resolution) > 0 && !p.Resolution.IsValid() {
		c.fail(dt.NewErr(ErrInvalidProject, "reason", "resolution is not a JSON value"))
	}
	c.texts("tags", p.Tags)
	c.members("project", p.Unknown)
	err = dt.CombineErrs(c.errs)
	if err != nil {
		err = dt.WithErr(err, "project", p.Name)
	}
	return err
}

// SourcesGlobs selects source files under Directory by include and exclude
// patterns. Patterns may carry the "glob:" prefix written by build tools.
type SourcesGlobs struct {
	Directory Path
	WalkDepth *int
	Includes  []string
	Excludes  []string
	Unknown   Members
}

const globPrefix = "glob:"

func globPattern(p string) string {
	return strings.TrimPrefix(p, globPrefix)
}

// Matches reports whether rel, a slash-separated path relative to
// Directory, is selected.
func (g SourcesGlobs) Matches(rel string) (ok bool) {
	var matched bool

	if g.WalkDepth != nil && strings.Count(rel, "/")+1 > *g.WalkDepth {
		goto end
	}
	for _, inc := range g.Includes {
		matched, _ = doublestar.Match(globPattern(inc), rel)
		if matched {
			ok = true
			break
		}
	}
	if !ok {
		goto end
	}
	for _, exc := range g.Excludes {
		matched, _ = doublestar.Match(globPattern(exc), rel)
		if matched {
			ok = false
			break
		}
	}
end:
	return ok
}

func (g SourcesGlobs) Validate() (err error) {
	var c checker
	c.path("sourcesGlobs.directory", g.Directory)
	for _, p := range append(append([]string{}, g.Includes...), g.Excludes...) {
		c.text("sourcesGlobs.pattern", p)
		if doublestar.ValidatePattern(globPattern(p)) {
			continue
		}
		c.fail(dt.NewErr(ErrInvalidGlob, "pattern", p))
	}
	if g.WalkDepth != nil && *g.WalkDepth < 0 {
		c.fail(dt.NewErr(ErrInvalidGlob, "walk_depth", *g.WalkDepth))
	}
	c.members("sourcesGlobs", g.Unknown)
	return dt.CombineErrs(c.errs)
}

type Scala struct {
	Organization string
	Name         string
	Version      string
	Options      []string
	Jars         []Path
	Analysis     Path
	Setup        *CompileSetup
	Unknown      Members
}

type CompileSetup struct {
	Order                      CompileOrder
	AddLibraryToBootClasspath  bool
	AddCompilerToClasspath     bool
	AddExtraJarsToClasspath    bool
	ManageBootClasspath        bool
	FilterLibraryFromClasspath bool
	Unknown                    Members
}

type Java struct {
	Options []string
	Unknown Members
}

type Test struct {
	Frameworks []TestFramework
	Options    TestOptions
	Unknown    Members
}

type TestFramework struct {
	Names   []string
	Unknown Members
}

type TestOptions struct {
	Excludes  []string
	Arguments []TestArgument
	Unknown   Members
}

type TestArgument struct {
	Args      []string
	Framework *TestFramework
	Unknown   Members
}
