package bloopstore

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mikeschinkel/go-dt"
	"github.com/zeebo/blake3"

	"github.com/mikeschinkel/bloopcfg"
	"github.com/mikeschinkel/bloopcfg/bloopmodel"
)

const DefaultCacheSize = 256

type contentKey [32]byte

// Cache remembers decoded documents by the hash of their bytes, so a file
// rewritten with identical content is not decoded again. Returned Files are
// shared between callers and must not be modified. Safe for concurrent use.
type Cache struct {
	files *lru.Cache[contentKey, *bloopmodel.File]
}

func NewCache(size int) (c *Cache, err error) {
	var files *lru.Cache[contentKey, *bloopmodel.File]

	if size <= 0 {
		err = dt.NewErr(ErrInvalidCacheSize, "size", size)
		goto end
	}
	files, err = lru.New[contentKey, *bloopmodel.File](size)
	if err != nil {
		err = dt.NewErr(ErrInvalidCacheSize, "size", size, err)
		goto end
	}
	c = &Cache{files: files}
end:
	return c, err
}

// Get reads fp and returns its decoded document. hit reports whether the
// document came from the cache.
func (c *Cache) Get(fp dt.Filepath) (f *bloopmodel.File, hit bool, err error) {
	var data []byte

	data, err = fp.ReadFile()
	if err != nil {
		err = dt.NewErr(bloopcfg.ErrFailedToReadConfig, dt.ErrFailedToReadFile, "filepath", fp, err)
		goto end
	}
	f, hit, err = c.Decode(data)
	if err != nil {
		err = dt.WithErr(err, "filepath", fp)
	}
end:
	return f, hit, err
}

// Decode is Get for bytes already in memory.
func (c *Cache) Decode(data []byte) (f *bloopmodel.File, hit bool, err error) {
	key := contentKey(blake3.Sum256(data))

	f, hit = c.files.Get(key)
	if hit {
		logger.Debug("Configuration cache hit", "entries", c.files.Len())
		goto end
	}
	f, err = bloopcfg.ReadBytes(data)
	if err != nil {
		goto end
	}
	c.files.Add(key, f)
end:
	return f, hit, err
}

func (c *Cache) Len() int {
	return c.files.Len()
}

func (c *Cache) Purge() {
	c.files.Purge()
}
