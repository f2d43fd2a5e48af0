package bloopcodec

import (
	"bytes"
	"encoding/json/jsontext"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"

	"github.com/mikeschinkel/go-dt"
)

const (
	platformTagField    = "name"
	platformConfigField = "config"
	mainClassField      = "mainClass"
)

// platformWire is the variant-independent shape of a platform object. Both
// directions go through it so that tag handling is written once.
type platformWire struct {
	kind      bloopmodel.PlatformKind
	config    func(enc *jsontext.Encoder) error
	rawConfig jsontext.Value
	mainClass *string
	unknown   bloopmodel.Members
}

// PlatformCodec encodes the Platform union as an object whose "name" member
// selects the variant and whose "config" member holds the variant's
// configuration.
type PlatformCodec struct {
	obj       objectCodec
	tag       Codec[string]
	mainClass Codec[*string]
	jvm       Codec[bloopmodel.JvmConfig]
	js        Codec[bloopmodel.JsConfig]
	native    Codec[bloopmodel.NativeConfig]
}

var _ Codec[bloopmodel.Platform] = (*PlatformCodec)(nil)

type PlatformCodecArgs struct {
	Tag           Codec[string]
	MainClass     Codec[*string]
	Jvm           Codec[bloopmodel.JvmConfig]
	Js            Codec[bloopmodel.JsConfig]
	Native        Codec[bloopmodel.NativeConfig]
	RejectUnknown bool
}

func NewPlatformCodec(args PlatformCodecArgs) *PlatformCodec {
	return &PlatformCodec{
		obj:       newObjectCodec("platform", args.RejectUnknown, platformTagField, platformConfigField),
		tag:       args.Tag,
		mainClass: args.MainClass,
		jvm:       args.Jvm,
		js:        args.Js,
		native:    args.Native,
	}
}

func (c *PlatformCodec) Encode(enc *jsontext.Encoder, p bloopmodel.Platform) (err error) {
	var w platformWire
	var ow *objectWriter

	w, err = c.toWire(p)
	if err != nil {
		goto end
	}
	ow = c.obj.begin(enc)
	writeMember(ow, platformTagField, c.tag, w.kind.Tag())
	if ow.name(platformConfigField) {
		ow.err = withSegment(w.config(enc), platformConfigField)
	}
	if w.mainClass != nil {
		writeMember(ow, mainClassField, c.mainClass, w.mainClass)
	}
	err = ow.end(w.unknown)
end:
	return err
}

// Decode reads members in any order. The configuration is held raw until the
// whole object has been read, since "name" may come after it.
func (c *PlatformCodec) Decode(dec *jsontext.Decoder) (p bloopmodel.Platform, err error) {
	var w platformWire
	var tag string

	w.unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case platformTagField:
			tag, err = c.tag.Decode(dec)
		case platformConfigField:
			w.rawConfig, err = readRaw(dec)
		case mainClassField:
			w.mainClass, err = c.mainClass.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	if err != nil {
		goto end
	}
	w.kind, err = c.kindOf(tag)
	if err != nil {
		err = withSegment(err, platformTagField)
		goto end
	}
	p, err = c.fromWire(w)
end:
	return p, err
}

func (c *PlatformCodec) kindOf(tag string) (kind bloopmodel.PlatformKind, err error) {
	entry, ok := bloopmodel.PlatformKindEntries.ByID(tag)
	if !ok {
		err = &DiscriminatorError{
			Tag:      tag,
			Accepted: bloopmodel.PlatformKindEntries.IDs(),
		}
		goto end
	}
	kind = entry.Value
end:
	return kind, err
}

// toWire accepts only the value variants. Pointers, typed nil included, fall
// through to ErrNilPlatform.
func (c *PlatformCodec) toWire(p bloopmodel.Platform) (w platformWire, err error) {
	switch p := p.(type) {
	case bloopmodel.JvmPlatform:
		w = c.jvmWire(p)
	case bloopmodel.JsPlatform:
		w = c.jsWire(p)
	case bloopmodel.NativePlatform:
		w = c.nativeWire(p)
	default:
		err = dt.NewErr(ErrNilPlatform)
	}
	return w, err
}

func (c *PlatformCodec) jvmWire(p bloopmodel.JvmPlatform) platformWire {
	return platformWire{
		kind:      bloopmodel.JvmKind,
		config:    func(enc *jsontext.Encoder) error { return c.jvm.Encode(enc, p.Config) },
		mainClass: p.Main,
		unknown:   p.Unknown,
	}
}

func (c *PlatformCodec) jsWire(p bloopmodel.JsPlatform) platformWire {
	return platformWire{
		kind:      bloopmodel.JsKind,
		config:    func(enc *jsontext.Encoder) error { return c.js.Encode(enc, p.Config) },
		mainClass: p.Main,
		unknown:   p.Unknown,
	}
}

func (c *PlatformCodec) nativeWire(p bloopmodel.NativePlatform) platformWire {
	return platformWire{
		kind:      bloopmodel.NativeKind,
		config:    func(enc *jsontext.Encoder) error { return c.native.Encode(enc, p.Config) },
		mainClass: p.Main,
		unknown:   p.Unknown,
	}
}

func (c *PlatformCodec) fromWire(w platformWire) (p bloopmodel.Platform, err error) {
	var dec *jsontext.Decoder

	dec = jsontext.NewDecoder(bytes.NewReader(w.rawConfig))
	switch w.kind {
	case bloopmodel.JvmKind:
		var cfg bloopmodel.JvmConfig
		cfg, err = c.jvm.Decode(dec)
		p = bloopmodel.JvmPlatform{Config: cfg, Main: w.mainClass, Unknown: w.unknown}
	case bloopmodel.JsKind:
		var cfg bloopmodel.JsConfig
		cfg, err = c.js.Decode(dec)
		p = bloopmodel.JsPlatform{Config: cfg, Main: w.mainClass, Unknown: w.unknown}
	case bloopmodel.NativeKind:
		var cfg bloopmodel.NativeConfig
		cfg, err = c.native.Decode(dec)
		p = bloopmodel.NativePlatform{Config: cfg, Main: w.mainClass, Unknown: w.unknown}
	}
	if err != nil {
		p = nil
		err = withSegment(err, platformConfigField)
	}
	return p, err
}
