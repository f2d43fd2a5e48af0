package bloopmodel

// PlatformKind identifies which runtime a project targets.
type PlatformKind byte

const (
	JvmKind PlatformKind = iota
	JsKind
	NativeKind
)

// PlatformKindEntries is the single {discriminator tag <-> variant} table for
// the Platform union.
var PlatformKindEntries = EnumTable[PlatformKind]{
	{Value: JvmKind, ID: "jvm", Name: "Jvm"},
	{Value: JsKind, ID: "js", Name: "Js"},
	{Value: NativeKind, ID: "native", Name: "Native"},
}

// Tag returns the discriminator written to the "name" member.
func (k PlatformKind) Tag() string    { return PlatformKindEntries.id(k) }
func (k PlatformKind) String() string { return PlatformKindEntries.name(k) }

// Platform is the runtime a project is built for. Exactly one of JvmPlatform,
// JsPlatform or NativePlatform; no other type can implement it. Pointers to
// those types satisfy the interface too but are rejected by ValidatePlatform.
type Platform interface {
	Kind() PlatformKind
	// MainClass returns the entry point, or nil when none is configured.
	MainClass() *string
	UnknownMembers() Members
	platform()
}

var (
	_ Platform = JvmPlatform{}
	_ Platform = JsPlatform{}
	_ Platform = NativePlatform{}
)

type JvmPlatform struct {
	Config  JvmConfig
	Main    *string
	Unknown Members
}

func NewJvmPlatform(cfg JvmConfig, mainClass *string) (p JvmPlatform, err error) {
	err = ValidatePlatform(JvmPlatform{Config: cfg, Main: mainClass})
	if err != nil {
		goto end
	}
	p = JvmPlatform{Config: cfg, Main: mainClass}
end:
	return p, err
}

func (JvmPlatform) Kind() PlatformKind        { return JvmKind }
func (p JvmPlatform) MainClass() *string      { return p.Main }
func (p JvmPlatform) UnknownMembers() Members { return p.Unknown }
func (JvmPlatform) platform()                 {}

type JsPlatform struct {
	Config  JsConfig
	Main    *string
	Unknown Members
}

func NewJsPlatform(cfg JsConfig, mainClass *string) (p JsPlatform, err error) {
	err = ValidatePlatform(JsPlatform{Config: cfg, Main: mainClass})
	if err != nil {
		goto end
	}
	p = JsPlatform{Config: cfg, Main: mainClass}
end:
	return p, err
}

func (JsPlatform) Kind() PlatformKind        { return JsKind }
func (p JsPlatform) MainClass() *string      { return p.Main }
func (p JsPlatform) UnknownMembers() Members { return p.Unknown }
func (JsPlatform) platform()                 {}

type NativePlatform struct {
	Config  NativeConfig
	Main    *string
	Unknown Members
}

func NewNativePlatform(cfg NativeConfig, mainClass *string) (p NativePlatform, err error) {
	err = ValidatePlatform(NativePlatform{Config: cfg, Main: mainClass})
	if err != nil {
		goto end
	}
	p = NativePlatform{Config: cfg, Main: mainClass}
end:
	return p, err
}

func (NativePlatform) Kind() PlatformKind        { return NativeKind }
func (p NativePlatform) MainClass() *string      { return p.Main }
func (p NativePlatform) UnknownMembers() Members { return p.Unknown }
func (NativePlatform) platform()                 {}

// MainClassOf returns a main class value for use with the platform
// constructors.
func MainClassOf(name string) *string {
	return &name
}

// JvmConfig describes the JVM a project runs and tests on.
type JvmConfig struct {
	Home    Path
	Options []string
	Unknown Members
}

// JsConfig describes the Scala.js linker setup.
type JsConfig struct {
	Version        string
	Mode           LinkerMode
	Kind           ModuleKindJS
	EmitSourceMaps bool
	JSDom          *bool
	Output         Path
	NodePath       Path
	Toolchain      []Path
	Unknown        Members
}

// NativeConfig describes the Scala Native toolchain.
type NativeConfig struct {
	Version      string
	Mode         LinkerMode
	GC           string
	TargetTriple string
	Clang        Path
	Clangpp      Path
	Toolchain    []Path
	Options      NativeOptions
	LinkStubs    bool
	Check        bool
	Dump         bool
	Output       Path
	Unknown      Members
}

type NativeOptions struct {
	Linker   []string
	Compiler []string
	Unknown  Members
}
