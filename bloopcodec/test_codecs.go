package bloopcodec

import (
	"encoding/json/jsontext"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

// TestFrameworkCodec, TestOptionsCodec, TestArgumentCodec and TestCodec cover
// the "test" member of a project.

type TestFrameworkCodec struct {
	obj    objectCodec
	leaves *LeafCodecs
}

var _ Codec[bloopmodel.TestFramework] = (*TestFrameworkCodec)(nil)

func NewTestFrameworkCodec(leaves *LeafCodecs, rejectUnknown bool) *TestFrameworkCodec {
	return &TestFrameworkCodec{
		obj:    newObjectCodec("test framework", rejectUnknown),
		leaves: leaves,
	}
}

func (c *TestFrameworkCodec) Encode(enc *jsontext.Encoder, f bloopmodel.TestFramework) error {
	w := c.obj.begin(enc)
	writeList(w, "names", c.leaves.Strings, f.Names)
	return w.end(f.Unknown)
}

func (c *TestFrameworkCodec) Decode(dec *jsontext.Decoder) (f bloopmodel.TestFramework, err error) {
	f.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		if name != "names" {
			return false, nil
		}
		f.Names, err = c.leaves.Strings.Decode(dec)
		return true, err
	})
	return f, err
}

type TestArgumentCodec struct {
	obj       objectCodec
	leaves    *LeafCodecs
	framework Codec[bloopmodel.TestFramework]
}

var _ Codec[bloopmodel.TestArgument] = (*TestArgumentCodec)(nil)

func NewTestArgumentCodec(leaves *LeafCodecs, framework Codec[bloopmodel.TestFramework], rejectUnknown bool) *TestArgumentCodec {
	return &TestArgumentCodec{
		obj:       newObjectCodec("test argument", rejectUnknown),
		leaves:    leaves,
		framework: framework,
	}
}

func (c *TestArgumentCodec) Encode(enc *jsontext.Encoder, a bloopmodel.TestArgument) error {
	w := c.obj.begin(enc)
	writeList(w, "args", c.leaves.Strings, a.Args)
	writeOptional(w, "framework", c.framework, a.Framework)
	return w.end(a.Unknown)
}

func (c *TestArgumentCodec) Decode(dec *jsontext.Decoder) (a bloopmodel.TestArgument, err error) {
	a.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "args":
			a.Args, err = c.leaves.Strings.Decode(dec)
		case "framework":
			a.Framework, err = decodeOptional(dec, c.framework)
		default:
			handled = false
		}
		return handled, err
	})
	return a, err
}

type TestOptionsCodec struct {
	obj       objectCodec
	leaves    *LeafCodecs
	arguments Codec[[]bloopmodel.TestArgument]
}

var _ Codec[bloopmodel.TestOptions] = (*TestOptionsCodec)(nil)

func NewTestOptionsCodec(leaves *LeafCodecs, argument Codec[bloopmodel.TestArgument], rejectUnknown bool) *TestOptionsCodec {
	return &TestOptionsCodec{
		obj:       newObjectCodec("test options", rejectUnknown),
		leaves:    leaves,
		arguments: NewListCodec(argument),
	}
}

func (c *TestOptionsCodec) Encode(enc *jsontext.Encoder, o bloopmodel.TestOptions) error {
	w := c.obj.begin(enc)
	writeList(w, "excludes", c.leaves.Strings, o.Excludes)
	writeList(w, "arguments", c.arguments, o.Arguments)
	return w.end(o.Unknown)
}

func (c *TestOptionsCodec) Decode(dec *jsontext.Decoder) (o bloopmodel.TestOptions, err error) {
	o.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "excludes":
			o.Excludes, err = c.leaves.Strings.Decode(dec)
		case "arguments":
			o.Arguments, err = c.arguments.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	return o, err
}

type TestCodec struct {
	obj        objectCodec
	frameworks Codec[[]bloopmodel.TestFramework]
	options    Codec[bloopmodel.TestOptions]
}

var _ Codec[bloopmodel.Test] = (*TestCodec)(nil)

func NewTestCodec(framework Codec[bloopmodel.TestFramework], options Codec[bloopmodel.TestOptions], rejectUnknown bool) *TestCodec {
	return &TestCodec{
		obj:        newObjectCodec("test", rejectUnknown),
		frameworks: NewListCodec(framework),
		options:    options,
	}
}

func (c *TestCodec) Encode(enc *jsontext.Encoder, t bloopmodel.Test) error {
	w := c.obj.begin(enc)
	writeList(w, "frameworks", c.frameworks, t.Frameworks)
	writeMember(w, "options", c.options, t.Options)
	return w.end(t.Unknown)
}

func (c *TestCodec) Decode(dec *jsontext.Decoder) (t bloopmodel.Test, err error) {
	t.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "frameworks":
			t.Frameworks, err = c.frameworks.Decode(dec)
		case "options":
			t.Options, err = c.options.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	return t, err
}
