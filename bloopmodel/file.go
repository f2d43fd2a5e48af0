package bloopmodel

import (
	"github.com/mikeschinkel/go-dt"
)

// File is one persisted configuration document.
type File struct {
	Version  string
	Projects []Project
	Unknown  Members
}

// NewFile builds a File and validates it; a File always holds at least one
// project.
func NewFile(version string, projects ...Project) (f *File, err error) {
	f = &File{
		Version:  version,
		Projects: projects,
	}
	err = f.Validate()
	if err != nil {
		f = nil
	}
	return f, err
}

func (f *File) Validate() (err error) {
	var c checker
	var seen map[string]struct{}

	if len(f.Projects) == 0 {
		err = dt.NewErr(ErrNoProjects)
		goto end
	}
	c.text("version", f.Version)
	seen = make(map[string]struct{}, len(f.Projects))
	for _, p := range f.Projects {
		c.fail(p.Validate())
		if _, ok := seen[p.Name]; ok {
			c.fail(dt.NewErr(ErrDuplicateProject, "project", p.Name))
			continue
		}
		seen[p.Name] = struct{}{}
	}
	c.members("file", f.Unknown)
	err = dt.CombineErrs(c.errs)
end:
	return err
}

// Project returns the project named name.
func (f *File) Project(name string) (p Project, ok bool) {
	for _, p = range f.Projects {
		if p.Name == name {
			ok = true
			goto end
		}
	}
	p = Project{}
end:
	return p, ok
}
