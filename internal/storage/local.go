package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const thumbDir = ".thumbs"

var localBuckets = []string{"photos", "videos", "music"}

// LocalLibrary keeps simple per-type upload buckets on disk, served back as
// /{bucket}/{filename} by the HTTP layer.
type LocalLibrary struct {
	root string
}

func NewLocalLibrary(root string) (*LocalLibrary, error) {
	for _, b := range localBuckets {
		if err := os.MkdirAll(filepath.Join(root, b, thumbDir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &LocalLibrary{root: root}, nil
}

func (l *LocalLibrary) Root() string { return l.root }

// BucketFor maps a content type onto its upload bucket.
func BucketFor(contentType string) (string, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "photos", true
	case strings.HasPrefix(contentType, "video/"):
		return "videos", true
	case strings.HasPrefix(contentType, "audio/"):
		return "music", true
	default:
		return "", false
	}
}

// Save writes one upload into its bucket and returns the serving path. The
// partial file is removed when the copy fails.
func (l *LocalLibrary) Save(filename, contentType string, r io.Reader) (string, error) {
	bucket, ok := BucketFor(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	name := uuid.NewString() + safeExt(filename)
	dst := filepath.Join(l.root, bucket, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close file: %w", err)
	}

	if bucket == "photos" {
		l.writeThumb(dst, filepath.Join(l.root, bucket, thumbDir, name))
	}
	return "/" + bucket + "/" + name, nil
}

// List returns the serving paths of every file in a bucket.
func (l *LocalLibrary) List(bucket string) ([]string, error) {
	if !validBucket(bucket) {
		return nil, fmt.Errorf("unknown media type %q", bucket)
	}
	entries, err := os.ReadDir(filepath.Join(l.root, bucket))
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}
	files := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, "/"+bucket+"/"+e.Name())
	}
	sort.Strings(files)
	return files, nil
}

// writeThumb is best effort; a photo that cannot be decoded simply has no
// thumbnail.
func (l *LocalLibrary) writeThumb(src, dst string) {
	img, err := imaging.Open(src)
	if err != nil {
		return
	}
	_ = imaging.Save(imaging.Resize(img, 300, 0, imaging.Lanczos), dst+".jpg")
}

func validBucket(b string) bool {
	for _, v := range localBuckets {
		if v == b {
			return true
		}
	}
	return false
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) > 8 {
		return ""
	}
	return ext
}
