package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/naborly/naborly/config"
	"github.com/naborly/naborly/utils"
)

// errCorruptDataset marks a dataset file that exists but cannot be parsed.
// It never escapes the store; corrupt files are moved aside and reseeded.
var errCorruptDataset = errors.New("corrupt dataset file")

// FileStore is the flat-file backend. Each dataset is one JSON document on
// disk. Mutations take the dataset lock, re-read the file fresh, apply the
// change and write back, so concurrent writers never clobber each other
// inside this process.
type FileStore struct {
	cfg   config.AppConfig
	locks map[Dataset]*sync.Mutex
}

// NewFileStore wires a file store over the configured dataset paths.
func NewFileStore(cfg config.AppConfig) *FileStore {
	return &FileStore{
		cfg: cfg,
		locks: map[Dataset]*sync.Mutex{
			DatasetPosts:      {},
			DatasetComplaints: {},
			DatasetListings:   {},
		},
	}
}

func (f *FileStore) lock(d Dataset) *sync.Mutex {
	return f.locks[d]
}

func (f *FileStore) path(d Dataset) string {
	switch d {
	case DatasetPosts:
		return f.cfg.PostsPath()
	case DatasetComplaints:
		return f.cfg.ComplaintsPath()
	default:
		return f.cfg.ListingsPath()
	}
}

// readDocument parses the raw dataset file into out. A file that exists but
// is empty or malformed reads as errCorruptDataset.
func (f *FileStore) readDocument(d Dataset, out interface{}) error {
	data, err := os.ReadFile(f.path(d))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return errCorruptDataset
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errCorruptDataset
	}
	return nil
}

// quarantine moves an unreadable dataset file aside so its contents survive
// for inspection while the dataset resets to defaults.
func (f *FileStore) quarantine(d Dataset) {
	path := f.path(d)
	backup := path + ".backup"
	if err := os.Rename(path, backup); err != nil {
		utils.Sugar.Warnf("could not move corrupt %s dataset aside: %v", d, err)
		return
	}
	utils.Sugar.Warnf("%s dataset was unreadable, moved to %s and reset to defaults", d, backup)
}

// writeDocument writes a dataset file in place, creating the data directory
// on first touch. Used for seeding; mutations go through saveDocument.
func (f *FileStore) writeDocument(d Dataset, doc interface{}) error {
	path := f.path(d)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// saveDocument replaces a dataset file with rollback. The current contents
// are copied to .bak first; when the write fails the copy is moved back and
// the returned error says so. Caller holds the dataset lock.
func (f *FileStore) saveDocument(d Dataset, doc interface{}) error {
	path := f.path(d)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	bak := path + ".bak"
	hadPrevious := false
	if prev, rerr := os.ReadFile(path); rerr == nil {
		hadPrevious = true
		if werr := os.WriteFile(bak, prev, 0644); werr != nil {
			return fmt.Errorf("back up %s before save: %w", path, werr)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		if hadPrevious {
			if rerr := os.Rename(bak, path); rerr == nil {
				return fmt.Errorf("write %s failed, previous contents restored: %w", path, err)
			}
		}
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// loadPosts returns the posts dataset, seeding the sample posts when the
// file does not exist yet and resetting it when it cannot be parsed. Caller
// holds the posts lock.
func (f *FileStore) loadPosts() ([]PostDocument, error) {
	var docs []PostDocument
	err := f.readDocument(DatasetPosts, &docs)
	switch {
	case err == nil:
		return docs, nil
	case errors.Is(err, os.ErrNotExist), errors.Is(err, errCorruptDataset):
		if errors.Is(err, errCorruptDataset) {
			f.quarantine(DatasetPosts)
		}
		docs = defaultPosts()
		if werr := f.writeDocument(DatasetPosts, docs); werr != nil {
			utils.Sugar.Warnf("could not seed posts dataset: %v", werr)
		}
		return docs, nil
	default:
		return nil, err
	}
}

// loadComplaints mirrors loadPosts for the complaints dataset, which seeds
// empty. Caller holds the complaints lock.
func (f *FileStore) loadComplaints() ([]ComplaintDocument, error) {
	var docs []ComplaintDocument
	err := f.readDocument(DatasetComplaints, &docs)
	switch {
	case err == nil:
		return docs, nil
	case errors.Is(err, os.ErrNotExist), errors.Is(err, errCorruptDataset):
		if errors.Is(err, errCorruptDataset) {
			f.quarantine(DatasetComplaints)
		}
		docs = defaultComplaints()
		if werr := f.writeDocument(DatasetComplaints, docs); werr != nil {
			utils.Sugar.Warnf("could not seed complaints dataset: %v", werr)
		}
		return docs, nil
	default:
		return nil, err
	}
}

// loadListings mirrors loadPosts for the listings dataset. Caller holds the
// listings lock.
func (f *FileStore) loadListings() (ListingsDocument, error) {
	var doc ListingsDocument
	err := f.readDocument(DatasetListings, &doc)
	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, os.ErrNotExist), errors.Is(err, errCorruptDataset):
		if errors.Is(err, errCorruptDataset) {
			f.quarantine(DatasetListings)
		}
		doc = defaultListings()
		if werr := f.writeDocument(DatasetListings, doc); werr != nil {
			utils.Sugar.Warnf("could not seed listings dataset: %v", werr)
		}
		return doc, nil
	default:
		return ListingsDocument{}, err
	}
}
