package bloopcodec

import (
	"encoding/json/jsontext"

	"github.com/mikeschinkel/bloopcfg/bloopmodel"

	"github.com/mikeschinkel/go-dt"
)

const (
	projectsField      = "projects"
	legacyProjectField = "project"
)

// FileCodec encodes a whole configuration document. Older documents hold a
// single "project" object instead of a "projects" array; both are read, and
// the array form is always written.
type FileCodec struct {
	obj      objectCodec
	version  Codec[string]
	project  Codec[bloopmodel.Project]
	projects Codec[[]bloopmodel.Project]
}

var _ Codec[*bloopmodel.File] = (*FileCodec)(nil)

func NewFileCodec(version Codec[string], project Codec[bloopmodel.Project], rejectUnknown bool) *FileCodec {
	return &FileCodec{
		obj:      newObjectCodec("file", rejectUnknown, "version"),
		version:  version,
		project:  project,
		projects: NewListCodec(project),
	}
}

func (c *FileCodec) Encode(enc *jsontext.Encoder, f *bloopmodel.File) (err error) {
	var w *objectWriter

	if len(f.Projects) == 0 {
		err = dt.NewErr(ErrNoProjects)
		goto end
	}
	w = c.obj.begin(enc)
	writeMember(w, "version", c.version, f.Version)
	writeMember(w, projectsField, c.projects, f.Projects)
	err = w.end(f.Unknown)
end:
	return err
}

func (c *FileCodec) Decode(dec *jsontext.Decoder) (f *bloopmodel.File, err error) {
	var projects []bloopmodel.Project
	var legacy *bloopmodel.Project

	f = &bloopmodel.File{}
	f.Unknown, err = c.obj.decode(dec, func(dec *jsontext.Decoder, name string) (handled bool, err error) {
		handled = true
		switch name {
		case "version":
			f.Version, err = c.version.Decode(dec)
		case projectsField:
			projects, err = c.projects.Decode(dec)
		case legacyProjectField:
			legacy, err = decodeOptional(dec, c.project)
		default:
			handled = false
		}
		return handled, err
	})
	if err != nil {
		goto end
	}
	switch {
	case projects != nil && legacy != nil:
		err = dt.NewErr(ErrConflictingField, "fields", []string{projectsField, legacyProjectField})
		goto end
	case legacy != nil:
		projects = []bloopmodel.Project{*legacy}
	}
	if len(projects) == 0 {
		err = dt.NewErr(ErrNoProjects)
		goto end
	}
	f.Projects = projects
end:
	if err != nil {
		f = nil
	}
	return f, err
}
