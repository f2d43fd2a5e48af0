package bloopcodec

import (
	"encoding/json/jsontext"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

type ScalaCodec struct {
	obj    objectCodec
	leaves *LeafCodecs
	setup  Codec[bloopmodel.CompileSetup]
}

var _ Codec[bloopmodel.Scala] = (*ScalaCodec)(nil)

func NewScalaCodec(leaves *LeafCodecs, setup Codec[bloopmodel.CompileSetup], rejectUnknown bool) *ScalaCodec {
	return &ScalaCodec{
		obj:    newObjectCodec("scala", rejectUnknown, "organization", "name", "version"),
		leaves: leaves,
		setup:  setup,
	}
}

func (c *ScalaCodec) Encode(enc *jsontext.Encoder, s bloopmodel.Scala) error {
	w := c.obj.begin(enc)
	writeMember(w, "organization", c.leaves.String, s.Organization)
	writeMember(w, "name", c.leaves.String, s.Name)
	writeMember(w, "version", c.leaves.String, s.Version)
	writeList(w, "options", c.leaves.Strings, s.Options)
	writeList(w, "jars", c.leaves.Paths, s.Jars)
	writePath(w, "analysis", c.leaves.Path, s.Analysis)
	writeOptional(w, "setup", c.setup, s.Setup)
	return w.end(s.Unknown)
}

func (c *ScalaCodec) Decode(dec *jsontext.Decoder) (s bloopmodel.Scala, err error) {
	s.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "organization":
			s.Organization, err = c.leaves.String.Decode(dec)
		case "name":
			s.Name, err = c.leaves.String.Decode(dec)
		case "version":
			s.Version, err = c.leaves.String.Decode(dec)
		case "options":
			s.Options, err = c.leaves.Strings.Decode(dec)
		case "jars":
			s.Jars, err = c.leaves.Paths.Decode(dec)
		case "analysis":
			s.Analysis, err = c.leaves.Path.Decode(dec)
		case "setup":
			s.Setup, err = decodeOptional(dec, c.setup)
		default:
			handled = false
		}
		return handled, err
	})
	return s, err
}

type CompileSetupCodec struct {
	obj    objectCodec
	leaves *LeafCodecs
}

var _ Codec[bloopmodel.CompileSetup] = (*CompileSetupCodec)(nil)

func NewCompileSetupCodec(leaves *LeafCodecs, rejectUnknown bool) *CompileSetupCodec {
	return &CompileSetupCodec{
		obj:    newObjectCodec("compile setup", rejectUnknown, "order"),
		leaves: leaves,
	}
}

func (c *CompileSetupCodec) Encode(enc *jsontext.Encoder, s bloopmodel.CompileSetup) error {
	w := c.obj.begin(enc)
	writeMember(w, "order", c.leaves.CompileOrder, s.Order)
	writeMember(w, "addLibraryToBootClasspath", c.leaves.Bool, s.AddLibraryToBootClasspath)
	writeMember(w, "addCompilerToClasspath", c.leaves.Bool, s.AddCompilerToClasspath)
	writeMember(w, "addExtraJarsToClasspath", c.leaves.Bool, s.AddExtraJarsToClasspath)
	writeMember(w, "manageBootClasspath", c.leaves.Bool, s.ManageBootClasspath)
	writeMember(w, "filterLibraryFromClasspath", c.leaves.Bool, s.FilterLibraryFromClasspath)
	return w.end(s.Unknown)
}

func (c *CompileSetupCodec) Decode(dec *jsontext.Decoder) (s bloopmodel.CompileSetup, err error) {
	s.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "order":
			s.Order, err = c.leaves.CompileOrder.Decode(dec)
		case "addLibraryToBootClasspath":
			s.AddLibraryToBootClasspath, err = c.leaves.Bool.Decode(dec)
		case "addCompilerToClasspath":
			s.AddCompilerToClasspath, err = c.leaves.Bool.Decode(dec)
		case "addExtraJarsToClasspath":
			s.AddExtraJarsToClasspath, err = c.leaves.Bool.Decode(dec)
		case "manageBootClasspath":
			s.ManageBootClasspath, err = c.leaves.Bool.Decode(dec)
		case "filterLibraryFromClasspath":
			s.FilterLibraryFromClasspath, err = c.leaves.Bool.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	return s, err
}

type JavaCodec struct {
	obj    objectCodec
	leaves *LeafCodecs
}

var _ Codec[bloopmodel.Java] = (*JavaCodec)(nil)

func NewJavaCodec(leaves *LeafCodecs, rejectUnknown bool) *JavaCodec {
	return &JavaCodec{
		obj:    newObjectCodec("java", rejectUnknown),
		leaves: leaves,
	}
}

func (c *JavaCodec) Encode(enc *jsontext.Encoder, j bloopmodel.Java) error {
	w := c.obj.begin(enc)
	writeList(w, "options", c.leaves.Strings, j.Options)
	return w.end(j.Unknown)
}

func (c *JavaCodec) Decode(dec *jsontext.Decoder) (j bloopmodel.Java, err error) {
	j.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		if name != "options" {
			return false, nil
		}
		j.Options, err = c.leaves.Strings.Decode(dec)
		return true, err
	})
	return j, err
}
