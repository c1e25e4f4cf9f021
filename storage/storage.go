// Package storage is the blob store the catalog keeps its images in. The
// rest of the system only sees opaque URLs.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type File struct {
	Name   string
	Reader io.Reader
}

// Store saves blobs and returns stable URLs for them. SaveAll is
// all-or-nothing: a failure after partial success cleans up the already
// stored blobs before returning. Delete is best-effort; callers log failures
// and move on.
type Store interface {
	Save(name string, r io.Reader) (string, error)
	SaveAll(files []File) ([]string, error)
	Delete(urls ...string) error
}

// Disk stores blobs as uuid-named files under a local directory, served by
// the HTTP layer under baseURL.
type Disk struct {
	dir     string
	baseURL string
}

func NewDisk(dir, baseURL string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (d *Disk) Save(name string, r io.Reader) (string, error) {
	filename := uuid.New().String() + filepath.Ext(name)
	f, err := os.Create(filepath.Join(d.dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return d.baseURL + "/" + filename, nil
}

func (d *Disk) SaveAll(files []File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := d.Save(file.Name, file.Reader)
		if err != nil {
			// roll back the ones that made it
			d.Delete(urls...)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (d *Disk) Delete(urls ...string) error {
	var firstErr error
	for _, url := range urls {
		name := filepath.Base(url)
		if name == "." || name == "/" || name == "" {
			continue
		}
		if err := os.Remove(filepath.Join(d.dir, name)); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
