package bloopcodec

import (
	"bytes"
	"encoding/json/jsontext"
	"errors"
	"io"
	"sync"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"

	"github.com/mikeschinkel/go-dt"
)

// LeafCodecs are the scalar, list and enumeration codecs shared by the record
// codecs.
type LeafCodecs struct {
	String       Codec[string]
	Strings      Codec[[]string]
	Bool         Codec[bool]
	Int          Codec[int]
	Raw          Codec[jsontext.Value]
	Path         Codec[bloopmodel.Path]
	Paths        Codec[[]bloopmodel.Path]
	CompileOrder Codec[bloopmodel.CompileOrder]
	LinkerMode   Codec[bloopmodel.LinkerMode]
	ModuleKindJS Codec[bloopmodel.ModuleKindJS]
	MainClass    Codec[*string]
}

func NewLeafCodecs() *LeafCodecs {
	strs := NewListCodec[string](StringCodec{})
	return &LeafCodecs{
		String:       StringCodec{},
		Strings:      strs,
		Bool:         BoolCodec{},
		Int:          IntCodec{},
		Raw:          RawCodec{},
		Path:         PathCodec{},
		Paths:        NewListCodec[bloopmodel.Path](PathCodec{}),
		CompileOrder: NewCompileOrderCodec(),
		LinkerMode:   NewLinkerModeCodec(),
		ModuleKindJS: NewModuleKindJSCodec(),
		MainClass:    NewMainClassCodec(StringCodec{}, strs),
	}
}

// Codecs is the complete, immutable codec graph for configuration files.
type Codecs struct {
	Leaves       *LeafCodecs
	JvmConfig    Codec[bloopmodel.JvmConfig]
	JsConfig     Codec[bloopmodel.JsConfig]
	NativeConfig Codec[bloopmodel.NativeConfig]
	Platform     Codec[bloopmodel.Platform]
	SourcesGlobs Codec[bloopmodel.SourcesGlobs]
	CompileSetup Codec[bloopmodel.CompileSetup]
	Scala        Codec[bloopmodel.Scala]
	Java         Codec[bloopmodel.Java]
	Test         Codec[bloopmodel.Test]
	Project      Codec[bloopmodel.Project]
	File         Codec[*bloopmodel.File]
}

type CodecsArgs struct {
	// RejectUnknown makes members the model does not know a decode error
	// rather than pass-through data.
	RejectUnknown bool
}

func NewCodecs(args CodecsArgs) *Codecs {
	strict := args.RejectUnknown
	leaves := NewLeafCodecs()

	c := &Codecs{Leaves: leaves}
	c.JvmConfig = NewJvmConfigCodec(leaves, strict)
	c.JsConfig = NewJsConfigCodec(leaves, strict)
	c.NativeConfig = NewNativeConfigCodec(leaves, NewNativeOptionsCodec(leaves, strict), strict)
	c.Platform = NewPlatformCodec(PlatformCodecArgs{
		Tag:           leaves.String,
		MainClass:     leaves.MainClass,
		Jvm:           c.JvmConfig,
		Js:            c.JsConfig,
		Native:        c.NativeConfig,
		RejectUnknown: strict,
	})
	c.SourcesGlobs = NewSourcesGlobsCodec(leaves, strict)
	c.CompileSetup = NewCompileSetupCodec(leaves, strict)
	c.Scala = NewScalaCodec(leaves, c.CompileSetup, strict)
	c.Java = NewJavaCodec(leaves, strict)

	framework := NewTestFrameworkCodec(leaves, strict)
	c.Test = NewTestCodec(
		framework,
		NewTestOptionsCodec(leaves, NewTestArgumentCodec(leaves, framework, strict), strict),
		strict,
	)
	c.Project = NewProjectCodec(ProjectCodecArgs{
		Leaves:        leaves,
		SourcesGlobs:  c.SourcesGlobs,
		Scala:         c.Scala,
		Java:          c.Java,
		Test:          c.Test,
		Platform:      c.Platform,
		RejectUnknown: strict,
	})
	c.File = NewFileCodec(leaves.String, c.Project, strict)
	return c
}

var defaultCodecs = sync.OnceValue(func() *Codecs {
	return NewCodecs(CodecsArgs{})
})

// Default returns the shared lenient codec graph.
func Default() *Codecs {
	return defaultCodecs()
}

// DecodeFile decodes exactly one document; anything but whitespace after it
// is an error.
func (c *Codecs) DecodeFile(data []byte) (f *bloopmodel.File, err error) {
	var dec *jsontext.Decoder

	dec = jsontext.NewDecoder(bytes.NewReader(data))
	f, err = c.File.Decode(dec)
	if err != nil {
		goto end
	}
	_, err = dec.ReadToken()
	switch {
	case errors.Is(err, io.EOF):
		err = nil
	case err == nil:
		err = dt.NewErr(ErrStructural, ErrTrailingData, "offset", dec.InputOffset())
	default:
		err = dt.NewErr(ErrStructural, ErrTrailingData, err)
	}
	if err != nil {
		f = nil
	}
end:
	return f, err
}

// EncodeFile writes f with two-space indentation and a trailing newline.
func (c *Codecs) EncodeFile(f *bloopmodel.File) (data []byte, err error) {
	var buf bytes.Buffer
	var enc *jsontext.Encoder

	enc = jsontext.NewEncoder(&buf, jsontext.WithIndent("  "))
	err = c.File.Encode(enc, f)
	if err != nil {
		goto end
	}
	data = buf.Bytes()
end:
	return data, err
}
