package bloopmodel

// EnumEntry binds one variant of a closed string enumeration to its canonical
// wire identifier and its variant name.
type EnumEntry[T comparable] struct {
	Value T
	ID    string
	Name  string
}

// EnumTable is the ordered {identifier <-> variant} bijection for one
// enumeration type. Order is stable and is the order used in diagnostics.
type EnumTable[T comparable] []EnumEntry[T]

// ByValue returns the entry for v.
func (t EnumTable[T]) ByValue(v T) (e EnumEntry[T], ok bool) {
	for _, e = range t {
		if e.Value == v {
			ok = true
			goto end
		}
	}
	e = EnumEntry[T]{}
end:
	return e, ok
}

// ByID returns the entry whose canonical identifier is id.
func (t EnumTable[T]) ByID(id string) (e EnumEntry[T], ok bool) {
	for _, e = range t {
		if e.ID == id {
			ok = true
			goto end
		}
	}
	e = EnumEntry[T]{}
end:
	return e, ok
}

func (t EnumTable[T]) IDs() []string {
	ids := make([]string, len(t))
	for i, e := range t {
		ids[i] = e.ID
	}
	return ids
}

func (t EnumTable[T]) Names() []string {
	names := make([]string, len(t))
	for i, e := range t {
		names[i] = e.Name
	}
	return names
}

func (t EnumTable[T]) id(v T) string {
	e, _ := t.ByValue(v)
	return e.ID
}

func (t EnumTable[T]) name(v T) string {
	e, ok := t.ByValue(v)
	if !ok {
		return "Unknown"
	}
	return e.Name
}

// CompileOrder selects how mixed Java/Scala sources are compiled.
type CompileOrder byte

const (
	Mixed CompileOrder = iota
	JavaThenScala
	ScalaThenJava
)

var CompileOrderEntries = EnumTable[CompileOrder]{
	{Value: Mixed, ID: "mixed", Name: "Mixed"},
	{Value: JavaThenScala, ID: "java->scala", Name: "JavaThenScala"},
	{Value: ScalaThenJava, ID: "scala->java", Name: "ScalaThenJava"},
}

// ID returns the canonical wire identifier, or "" for an undeclared value.
func (o CompileOrder) ID() string     { return CompileOrderEntries.id(o) }
func (o CompileOrder) String() string { return CompileOrderEntries.name(o) }

// LinkerMode selects the optimisation level of the Scala.js and Scala Native
// linkers.
type LinkerMode byte

const (
	Debug LinkerMode = iota
	Release
)

var LinkerModeEntries = EnumTable[LinkerMode]{
	{Value: Debug, ID: "debug", Name: "Debug"},
	{Value: Release, ID: "release", Name: "Release"},
}

func (m LinkerMode) ID() string     { return LinkerModeEntries.id(m) }
func (m LinkerMode) String() string { return LinkerModeEntries.name(m) }

// ModuleKindJS is the module system emitted by the Scala.js linker.
type ModuleKindJS byte

const (
	CommonJSModule ModuleKindJS = iota
	NoModule
)

var ModuleKindJSEntries = EnumTable[ModuleKindJS]{
	{Value: CommonJSModule, ID: "commonjs", Name: "CommonJSModule"},
	{Value: NoModule, ID: "none", Name: "NoModule"},
}

func (k ModuleKindJS) ID() string     { return ModuleKindJSEntries.id(k) }
func (k ModuleKindJS) String() string { return ModuleKindJSEntries.name(k) }
