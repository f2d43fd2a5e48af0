package bloopcodec

import (
	"encoding/json/jsontext"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

type SourcesGlobsCodec struct {
	obj    objectCodec
	leaves *LeafCodecs
}

var _ Codec[bloopmodel.SourcesGlobs] = (*SourcesGlobsCodec)(nil)

func NewSourcesGlobsCodec(leaves *LeafCodecs, rejectUnknown bool) *SourcesGlobsCodec {
	return &SourcesGlobsCodec{
		obj:    newObjectCodec("sources globs", rejectUnknown, "directory"),
		leaves: leaves,
	}
}

func (c *SourcesGlobsCodec) Encode(enc *jsontext.Encoder, g bloopmodel.SourcesGlobs) error {
	w := c.obj.begin(enc)
	writeMember(w, "directory", c.leaves.Path, g.Directory)
	writeOptional(w, "walkDepth", c.leaves.Int, g.WalkDepth)
	writeList(w, "includes", c.leaves.Strings, g.Includes)
	writeList(w, "excludes", c.leaves.Strings, g.Excludes)
	return w.end(g.Unknown)
}

func (c *SourcesGlobsCodec) Decode(dec *jsontext.Decoder) (g bloopmodel.SourcesGlobs, err error) {
	g.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "directory":
			g.Directory, err = c.leaves.Path.Decode(dec)
		case "walkDepth":
			g.WalkDepth, err = decodeOptional(dec, c.leaves.Int)
		case "includes":
			g.Includes, err = c.leaves.Strings.Decode(dec)
		case "excludes":
			g.Excludes, err = c.leaves.Strings.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	return g, err
}

// ProjectCodec encodes one project. Members are written in the order build
// tools emit them; decoding accepts any order.
type ProjectCodec struct {
	obj      objectCodec
	leaves   *LeafCodecs
	globs    Codec[[]bloopmodel.SourcesGlobs]
	scala    Codec[bloopmodel.Scala]
	java     Codec[bloopmodel.Java]
	test     Codec[bloopmodel.Test]
	platform Codec[bloopmodel.Platform]
}

var _ Codec[bloopmodel.Project] = (*ProjectCodec)(nil)

type ProjectCodecArgs struct {
	Leaves        *LeafCodecs
	SourcesGlobs  Codec[bloopmodel.SourcesGlobs]
	Scala         Codec[bloopmodel.Scala]
	Java          Codec[bloopmodel.Java]
	Test          Codec[bloopmodel.Test]
	Platform      Codec[bloopmodel.Platform]
	RejectUnknown bool
}

func NewProjectCodec(args ProjectCodecArgs) *ProjectCodec {
	return &ProjectCodec{
		obj:      newObjectCodec("project", args.RejectUnknown, "name", "directory", "platform"),
		leaves:   args.Leaves,
		globs:    NewListCodec(args.SourcesGlobs),
		scala:    args.Scala,
		java:     args.Java,
		test:     args.Test,
		platform: args.Platform,
	}
}

func (c *ProjectCodec) Encode(enc *jsontext.Encoder, p bloopmodel.Project) error {
	w := c.obj.begin(enc)
	writeMember(w, "name", c.leaves.String, p.Name)
	writeMember(w, "directory", c.leaves.Path, p.Directory)
	writePath(w, "workspaceDir", c.leaves.Path, p.WorkspaceDir)
	writeList(w, "sources", c.leaves.Paths, p.Sources)
	writeList(w, "sourcesGlobs", c.globs, p.SourcesGlobs)
	writeList(w, "sourceRoots", c.leaves.Paths, p.SourceRoots)
	writeList(w, "dependencies", c.leaves.Strings, p.Dependencies)
	writeList(w, "classpath", c.leaves.Paths, p.Classpath)
	writePath(w, "out", c.leaves.Path, p.Out)
	writePath(w, "classesDir", c.leaves.Path, p.ClassesDir)
	writeList(w, "resources", c.leaves.Paths, p.Resources)
	writeOptional(w, "scala", c.scala, p.Scala)
	writeOptional(w, "java", c.java, p.Java)
	writeOptional(w, "test", c.test, p.Test)
	writeMember(w, "platform", c.platform, p.Platform)
	if len(p.Resolution) > 0 {
		writeMember(w, "resolution", c.leaves.Raw, p.Resolution)
	}
	writeList(w, "tags", c.leaves.Strings, p.Tags)
	return w.end(p.Unknown)
}

func (c *ProjectCodec) Decode(dec *jsontext.Decoder) (p bloopmodel.Project, err error) {
	p.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "name":
			p.Name, err = c.leaves.String.Decode(dec)
		case "directory":
			p.Directory, err = c.leaves.Path.Decode(dec)
		case "workspaceDir":
			p.WorkspaceDir, err = c.leaves.Path.Decode(dec)
		case "sources":
			p.Sources, err = c.leaves.Paths.Decode(dec)
		case "sourcesGlobs":
			p.SourcesGlobs, err = c.globs.Decode(dec)
		case "sourceRoots":
			p.SourceRoots, err = c.leaves.Paths.Decode(dec)
		case "dependencies":
			p.Dependencies, err = c.leaves.Strings.Decode(dec)
		case "classpath":
			p.Classpath, err = c.leaves.Paths.Decode(dec)
		case "out":
			p.Out, err = c.leaves.Path.Decode(dec)
		case "classesDir":
			p.ClassesDir, err = c.leaves.Path.Decode(dec)
		case "resources":
			p.Resources, err = c.leaves.Paths.Decode(dec)
		case "scala":
			p.Scala, err = decodeOptional(dec, c.scala)
		case "java":
			p.Java, err = decodeOptional(dec, c.java)
		case "test":
			p.Test, err = decodeOptional(dec, c.test)
		case "platform":
			p.Platform, err = c.platform.Decode(dec)
		case "resolution":
			p.Resolution, err = c.leaves.Raw.Decode(dec)
		case "tags":
			p.Tags, err = c.leaves.Strings.Decode(dec)
		default:
			handled = false
		}
		return handled, err
	})
	return p, err
}
