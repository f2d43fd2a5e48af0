package bloopstore

import (
	"context"
	"runtime"

	"github.com/mikeschinkel/go-dt"
	"golang.org/x/sync/errgroup"

	"github.com/mikeschinkel/bloopcfg"
	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

// Loaded pairs a document with the file it came from.
type Loaded struct {
	Filepath dt.Filepath
	File     *bloopmodel.File
}

type LoadAllArgs struct {
	// Dir is the configuration directory, usually from ConfigDir.
	Dir dt.DirPath
	// Limit caps concurrent decodes; zero means GOMAXPROCS.
	Limit int
	// Cache is optional.
	Cache *Cache
}

// LoadAll decodes every configuration document in args.Dir in parallel. The
// result is in file name order. The first failure cancels the remaining work
// and is returned.
func LoadAll(ctx context.Context, args LoadAllArgs) (loaded []Loaded, err error) {
	var files []dt.Filepath
	var g *errgroup.Group
	var limit int

	files, err = ListConfigFiles(args.Dir)
	if err != nil {
		goto end
	}
	limit = args.Limit
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	loaded = make([]Loaded, len(files))
	g, ctx = errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, fp := range files {
		g.Go(func() (err error) {
			var f *bloopmodel.File

			err = ctx.Err()
			if err != nil {
				goto end
			}
			f, err = loadOne(args.Cache, fp)
			if err != nil {
				err = dt.NewErr(ErrFailedToLoadConfig, err)
				goto end
			}
			loaded[i] = Loaded{Filepath: fp, File: f}
		end:
			return err
		})
	}
	err = g.Wait()
	if err != nil {
		loaded = nil
		goto end
	}
	logger.Debug("Loaded configuration files", "dir", args.Dir, "count", len(loaded))
end:
	return loaded, err
}

func loadOne(cache *Cache, fp dt.Filepath) (f *bloopmodel.File, err error) {
	if cache == nil {
		return bloopcfg.ReadFile(fp)
	}
	f, _, err = cache.Get(fp)
	return f, err
}
