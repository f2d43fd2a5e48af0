package bloopstore

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/mikeschinkel/go-cfgstore"
	"github.com/mikeschinkel/go-dt"

	"github.com/mikeschinkel/bloopcfg/bloop"
)

// ConfigDir returns the configuration directory of a workspace, i.e.
// <workspace>/.bloop. The directory need not exist.
func ConfigDir(workspace dt.DirPath) (dir dt.DirPath, err error) {
	var dirsProvider *cfgstore.DirsProvider

	dirsProvider = cfgstore.DefaultDirsProviderWithArgs(cfgstore.DirsProviderArgs{
		CustomDirPath: workspace,
	})
	dir, err = cfgstore.ConfigDir(cfgstore.CustomConfigDirType, bloop.ConfigSlug, dirsProvider)
	if err != nil {
		err = dt.NewErr(ErrFailedToFindConfigDir, "workspace", workspace, err)
	}
	return dir, err
}

// ListConfigFiles returns the configuration documents directly inside dir,
// sorted by name. A missing directory holds no documents.
func ListConfigFiles(dir dt.DirPath) (files []dt.Filepath, err error) {
	var entries []os.DirEntry

	entries, err = dir.ReadDir()
	if os.IsNotExist(err) {
		err = nil
		goto end
	}
	if err != nil {
		err = dt.NewErr(ErrFailedToListConfigs, "dir", dir, err)
		goto end
	}
	files = make([]dt.Filepath, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != bloop.ConfigFileExt {
			continue
		}
		files = append(files, dt.FilepathJoin(dir, dt.RelFilepath(entry.Name())))
	}
	slices.Sort(files)
end:
	return files, err
}
