package bloopmodel

import (
	"fmt"
	"unicode/utf8"

	"github.com/mikeschinkel/go-dt"
)

// checker collects every reason a value tree could not be written as JSON.
type checker struct {
	errs []error
}

func (c *checker) fail(err error) {
	c.errs = dt.AppendErr(c.errs, err)
}

func (c *checker) text(field, s string) {
	if utf8.ValidString(s) {
		return
	}
	c.fail(dt.NewErr(ErrInvalidText, "field", field, "text", fmt.Sprintf("%q", s)))
}

func (c *checker) texts(field string, ss []string) {
	for _, s := range ss {
		c.text(field, s)
	}
}

func (c *checker) path(field string, p Path) {
	err := p.Validate()
	if err != nil {
		c.fail(dt.WithErr(err, "field", field))
	}
}

func (c *checker) paths(field string, ps []Path) {
	for _, p := range ps {
		c.path(field, p)
	}
}

func (c *checker) mainClass(mainClass *string) {
	if mainClass != nil {
		c.text("mainClass", *mainClass)
	}
}

func (c *checker) members(field string, ms Members) {
	for _, m := range ms {
		c.text(field, m.Name)
		if !m.Value.IsValid() {
			c.fail(dt.NewErr(ErrInvalidText, "field", field, "member", m.Name, "reason", "not a JSON value"))
		}
	}
}

func checkEnum[T comparable](c *checker, table EnumTable[T], field string, v T) {
	if _, ok := table.ByValue(v); ok {
		return
	}
	c.fail(dt.NewErr(ErrUndeclaredEnumValue, "field", field, "value", v))
}

func (c *checker) platform(pl Platform) {
	switch v := pl.(type) {
	case nil:
		c.fail(dt.NewErr(ErrInvalidProject, "reason", "platform is missing"))
	case JvmPlatform:
		c.path("platform.config.home", v.Config.Home)
		c.texts("platform.config.options", v.Config.Options)
		c.members("platform.config", v.Config.Unknown)
		c.mainClass(v.Main)
		c.members("platform", v.Unknown)
	case JsPlatform:
		c.text("platform.config.version", v.Config.Version)
		checkEnum(c, LinkerModeEntries, "platform.config.mode", v.Config.Mode)
		checkEnum(c, ModuleKindJSEntries, "platform.config.kind", v.Config.Kind)
		c.path("platform.config.output", v.Config.Output)
		c.path("platform.config.nodePath", v.Config.NodePath)
		c.paths("platform.config.toolchain", v.Config.Toolchain)
		c.members("platform.config", v.Config.Unknown)
		c.mainClass(v.Main)
		c.members("platform", v.Unknown)
	case NativePlatform:
		c.text("platform.config.version", v.Config.Version)
		checkEnum(c, LinkerModeEntries, "platform.config.mode", v.Config.Mode)
		c.text("platform.config.gc", v.Config.GC)
		c.text("platform.config.targetTriple", v.Config.TargetTriple)
		c.path("platform.config.clang", v.Config.Clang)
		c.path("platform.config.clangpp", v.Config.Clangpp)
		c.paths("platform.config.toolchain", v.Config.Toolchain)
		c.texts("platform.config.options.linker", v.Config.Options.Linker)
		c.texts("platform.config.options.compiler", v.Config.Options.Compiler)
		c.members("platform.config.options", v.Config.Options.Unknown)
		c.path("platform.config.output", v.Config.Output)
		c.members("platform.config", v.Config.Unknown)
		c.mainClass(v.Main)
		c.members("platform", v.Unknown)
	default:
		c.fail(dt.NewErr(ErrInvalidProject, "reason", "platform must be JvmPlatform, JsPlatform or NativePlatform", "type", fmt.Sprintf("%T", pl)))
	}
}

func (c *checker) scala(s *Scala) {
	if s == nil {
		return
	}
	c.text("scala.organization", s.Organization)
	c.text("scala.name", s.Name)
	c.text("scala.version", s.Version)
	c.texts("scala.options", s.Options)
	c.paths("scala.jars", s.Jars)
	c.path("scala.analysis", s.Analysis)
	if s.Setup != nil {
		checkEnum(c, CompileOrderEntries, "scala.setup.order", s.Setup.Order)
		c.members("scala.setup", s.Setup.Unknown)
	}
	c.members("scala", s.Unknown)
}

func (c *checker) java(j *Java) {
	if j == nil {
		return
	}
	c.texts("java.options", j.Options)
	c.members("java", j.Unknown)
}

func (c *checker) framework(field string, f TestFramework) {
	c.texts(field+".names", f.Names)
	c.members(field, f.Unknown)
}

func (c *checker) test(t *Test) {
	if t == nil {
		return
	}
	for _, f := range t.Frameworks {
		c.framework("test.frameworks", f)
	}
	c.texts("test.options.excludes", t.Options.Excludes)
	for _, a := range t.Options.Arguments {
		c.texts("test.options.arguments.args", a.Args)
		if a.Framework != nil {
			c.framework("test.options.arguments.framework", *a.Framework)
		}
		c.members("test.options.arguments", a.Unknown)
	}
	c.members("test.options", t.Options.Unknown)
	c.members("test", t.Unknown)
}

// ValidatePlatform reports whether pl is one of the three platform values
// and can be encoded: every string valid UTF-8, every path free of NUL bytes
// and every enumeration value declared.
func ValidatePlatform(pl Platform) error {
	var c checker
	c.platform(pl)
	return dt.CombineErrs(c.errs)
}
