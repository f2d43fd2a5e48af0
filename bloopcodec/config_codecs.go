package bloopcodec

import (
	"encoding/json/jsontext"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

type JvmConfigCodec struct {
	obj    objectCodec
	leaves *LeafCodecs
}

var _ Codec[bloopmodel.JvmConfig] = (*JvmConfigCodec)(nil)

func NewJvmConfigCodec(leaves *LeafCodecs, rejectUnknown bool) *JvmConfigCodec {
	return &JvmConfigCodec{
		obj:    newObjectCodec("jvm config", rejectUnknown),
		leaves: leaves,
	}
}

func (c *JvmConfigCodec) Encode(enc *jsontext.Encoder, cfg bloopmodel.JvmConfig) error {
	w := c.obj.begin(enc)
	writePath(w, "home", c.leaves.Path, cfg.Home)
	writeList(w, "options", c.leaves.Strings, cfg.Options)
	return w.end(cfg.Unknown)
}

func (c *JvmConfigCodec) Decode(dec *jsontext.Decoder) (cfg bloopmodel.JvmConfig, err error) {
	cfg.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "home":
			cfg.Home, err = c.leaves.Path.Decode(dec)
		case "options":
			cfg.Options, err = c.leaves.Strings.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	return cfg, err
}

type JsConfigCodec struct {
	obj    objectCodec
	leaves *LeafCodecs
}

var _ Codec[bloopmodel.JsConfig] = (*JsConfigCodec)(nil)

func NewJsConfigCodec(leaves *LeafCodecs, rejectUnknown bool) *JsConfigCodec {
	return &JsConfigCodec{
		obj:    newObjectCodec("js config", rejectUnknown, "version", "mode", "kind"),
		leaves: leaves,
	}
}

func (c *JsConfigCodec) Encode(enc *jsontext.Encoder, cfg bloopmodel.JsConfig) error {
	w := c.obj.begin(enc)
	writeMember(w, "version", c.leaves.String, cfg.Version)
	writeMember(w, "mode", c.leaves.LinkerMode, cfg.Mode)
	writeMember(w, "kind", c.leaves.ModuleKindJS, cfg.Kind)
	writeMember(w, "emitSourceMaps", c.leaves.Bool, cfg.EmitSourceMaps)
	writeOptional(w, "jsdom", c.leaves.Bool, cfg.JSDom)
	writePath(w, "output", c.leaves.Path, cfg.Output)
	writePath(w, "nodePath", c.leaves.Path, cfg.NodePath)
	writeList(w, "toolchain", c.leaves.Paths, cfg.Toolchain)
	return w.end(cfg.Unknown)
}

func (c *JsConfigCodec) Decode(dec *jsontext.Decoder) (cfg bloopmodel.JsConfig, err error) {
	cfg.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "version":
			cfg.Version, err = c.leaves.String.Decode(dec)
		case "mode":
			cfg.Mode, err = c.leaves.LinkerMode.Decode(dec)
		case "kind":
			cfg.Kind, err = c.leaves.ModuleKindJS.Decode(dec)
		case "emitSourceMaps":
			cfg.EmitSourceMaps, err = c.leaves.Bool.Decode(dec)
		case "jsdom":
			cfg.JSDom, err = decodeOptional(dec, c.leaves.Bool)
		case "output":
			cfg.Output, err = c.leaves.Path.Decode(dec)
		case "nodePath":
			cfg.NodePath, err = c.leaves.Path.Decode(dec)
		case "toolchain":
			cfg.Toolchain, err = c.leaves.Paths.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	return cfg, err
}

type NativeConfigCodec struct {
	obj     objectCodec
	leaves  *LeafCodecs
	options Codec[bloopmodel.NativeOptions]
}

var _ Codec[bloopmodel.NativeConfig] = (*NativeConfigCodec)(nil)

func NewNativeConfigCodec(leaves *LeafCodecs, options Codec[bloopmodel.NativeOptions], rejectUnknown bool) *NativeConfigCodec {
	return &NativeConfigCodec{
		obj:     newObjectCodec("native config", rejectUnknown, "version", "mode"),
		leaves:  leaves,
		options: options,
	}
}

func (c *NativeConfigCodec) Encode(enc *jsontext.Encoder, cfg bloopmodel.NativeConfig) error {
	w := c.obj.begin(enc)
	writeMember(w, "version", c.leaves.String, cfg.Version)
	writeMember(w, "mode", c.leaves.LinkerMode, cfg.Mode)
	writeString(w, "gc", c.leaves.String, cfg.GC)
	writeString(w, "targetTriple", c.leaves.String, cfg.TargetTriple)
	writePath(w, "clang", c.leaves.Path, cfg.Clang)
	writePath(w, "clangpp", c.leaves.Path, cfg.Clangpp)
	writeList(w, "toolchain", c.leaves.Paths, cfg.Toolchain)
	writeMember(w, "options", c.options, cfg.Options)
	writeMember(w, "linkStubs", c.leaves.Bool, cfg.LinkStubs)
	writeMember(w, "check", c.leaves.Bool, cfg.Check)
	writeMember(w, "dump", c.leaves.Bool, cfg.Dump)
	writePath(w, "output", c.leaves.Path, cfg.Output)
	return w.end(cfg.Unknown)
}

func (c *NativeConfigCodec) Decode(dec *jsontext.Decoder) (cfg bloopmodel.NativeConfig, err error) {
	cfg.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "version":
			cfg.Version, err = c.leaves.String.Decode(dec)
		case "mode":
			cfg.Mode, err = c.leaves.LinkerMode.Decode(dec)
		case "gc":
			cfg.GC, err = c.leaves.String.Decode(dec)
		case "targetTriple":
			cfg.TargetTriple, err = c.leaves.String.Decode(dec)
		case "clang":
			cfg.Clang, err = c.leaves.Path.Decode(dec)
		case "clangpp":
			cfg.Clangpp, err = c.leaves.Path.Decode(dec)
		case "toolchain":
			cfg.Toolchain, err = c.leaves.Paths.Decode(dec)
		case "options":
			cfg.Options, err = c.options.Decode(dec)
		case "linkStubs":
			cfg.LinkStubs, err = c.leaves.Bool.Decode(dec)
		case "check":
			cfg.Check, err = c.leaves.Bool.Decode(dec)
		case "dump":
			cfg.Dump, err = c.leaves.Bool.Decode(dec)
		case "output":
			cfg.Output, err = c.leaves.Path.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	return cfg, err
}

type NativeOptionsCodec struct {
	obj    objectCodec
	leaves *LeafCodecs
}

var _ Codec[bloopmodel.NativeOptions] = (*NativeOptionsCodec)(nil)

func NewNativeOptionsCodec(leaves *LeafCodecs, rejectUnknown bool) *NativeOptionsCodec {
	return &NativeOptionsCodec{
		obj:    newObjectCodec("native options", rejectUnknown),
		leaves: leaves,
	}
}

func (c *NativeOptionsCodec) Encode(enc *jsontext.Encoder, opts bloopmodel.NativeOptions) error {
	w := c.obj.begin(enc)
	writeList(w, "linker", c.leaves.Strings, opts.Linker)
	writeList(w, "compiler", c.leaves.Strings, opts.Compiler)
	return w.end(opts.Unknown)
}

func (c *NativeOptionsCodec) Decode(dec *jsontext.Decoder) (opts bloopmodel.NativeOptions, err error) {
	opts.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "linker":
			opts.Linker, err = c.leaves.Strings.Decode(dec)
		case "compiler":
			opts.Compiler, err = c.leaves.Strings.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	return opts, err
}
