package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedType = errors.New("unsupported media type")
	ErrTooLarge        = errors.New("payload too large")
)

// Resource is the provider-side pipeline a file is routed through.
type Resource string

const (
	ResourceImage Resource = "image"
	ResourceVideo Resource = "video"
	ResourceRaw   Resource = "raw"
)

// Classify maps a declared content type onto a resource pipeline and reports
// whether a thumbnail can be derived. Audio rides the video codec path but
// has no frame to thumbnail.
func Classify(contentType string) (Resource, bool) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return ResourceImage, true
	case strings.HasPrefix(contentType, "video/"):
		return ResourceVideo, true
	case strings.HasPrefix(contentType, "audio/"):
		return ResourceVideo, false
	default:
		return ResourceRaw, false
	}
}

type Result struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Remote persists a validated stream in a single atomic provider call.
type Remote interface {
	Put(ctx context.Context, key, contentType string, resource Resource, wantThumb bool, body io.Reader, size int64) (*Result, error)
}

// Store guards a Remote with the upload policy: content-type allow-list and
// byte ceiling. Nothing reaches the remote until both checks pass.
type Store struct {
	remote   Remote
	maxBytes int64
	allowed  map[string]struct{}
}

func NewStore(remote Remote, maxBytes int64, allowedTypes []string) *Store {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return &Store{remote: remote, maxBytes: maxBytes, allowed: allowed}
}

// Upload validates and stores one file. The size is measured by seeking to
// the end and back since the declared length is not trusted.
func (s *Store) Upload(ctx context.Context, f io.ReadSeeker, folder, contentType string) (*Result, error) {
	ct := strings.ToLower(contentType)
	if len(s.allowed) > 0 {
		if _, ok := s.allowed[ct]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
		}
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("measure upload: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}
	if s.maxBytes > 0 && size > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes over %d limit", ErrTooLarge, size, s.maxBytes)
	}

	resource, wantThumb := Classify(ct)
	key := path.Join(folder, uuid.NewString())
	return s.remote.Put(ctx, key, ct, resource, wantThumb, f, size)
}
