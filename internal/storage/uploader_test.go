package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type remoteCall struct {
	key         string
	contentType string
	resource    Resource
	wantThumb   bool
	size        int64
	body        []byte
}

type fakeRemote struct {
	calls []remoteCall
}

func (f *fakeRemote) Put(_ context.Context, key, contentType string, resource Resource, wantThumb bool, body io.Reader, size int64) (*Result, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	f.calls = append(f.calls, remoteCall{key: key, contentType: contentType, resource: resource, wantThumb: wantThumb, size: size, body: data})
	return &Result{URL: "https://cdn.example.com/" + key}, nil
}

func TestStoreUpload(t *testing.T) {
	remote := &fakeRemote{}
	store := NewStore(remote, 1<<20, []string{"image/jpeg", "video/mp4"})

	payload := []byte("fake jpeg bytes")
	res, err := store.Upload(context.Background(), bytes.NewReader(payload), "media", "image/jpeg")
	require.NoError(t, err)
	assert.Contains(t, res.URL, "https://cdn.example.com/media/")

	require.Len(t, remote.calls, 1)
	call := remote.calls[0]
	assert.True(t, strings.HasPrefix(call.key, "media/"))
	assert.Equal(t, ResourceImage, call.resource)
	assert.True(t, call.wantThumb)
	assert.Equal(t, int64(len(payload)), call.size)
	assert.Equal(t, payload, call.body, "body must be rewound before the remote reads it")
}

func TestStoreUploadRejectsUnsupportedType(t *testing.T) {
	remote := &fakeRemote{}
	store := NewStore(remote, 1<<20, []string{"image/jpeg"})

	_, err := store.Upload(context.Background(), bytes.NewReader([]byte("MZ")), "media", "application/x-msdownload")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Empty(t, remote.calls, "rejected uploads must never reach the remote")
}

func TestStoreUploadRejectsOversize(t *testing.T) {
	remote := &fakeRemote{}
	store := NewStore(remote, 16, []string{"image/jpeg"})

	_, err := store.Upload(context.Background(), bytes.NewReader(make([]byte, 17)), "media", "image/jpeg")
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, remote.calls)
}

func TestStoreUploadCaseInsensitiveAllowList(t *testing.T) {
	remote := &fakeRemote{}
	store := NewStore(remote, 1<<20, []string{"Image/JPEG"})

	_, err := store.Upload(context.Background(), bytes.NewReader([]byte("x")), "media", "image/jpeg")
	assert.NoError(t, err)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		contentType string
		resource    Resource
		wantThumb   bool
	}{
		{"image/png", ResourceImage, true},
		{"video/mp4", ResourceVideo, true},
		{"audio/mpeg", ResourceVideo, false},
		{"application/pdf", ResourceRaw, false},
	}
	for _, tc := range cases {
		resource, wantThumb := Classify(tc.contentType)
		assert.Equal(t, tc.resource, resource, tc.contentType)
		assert.Equal(t, tc.wantThumb, wantThumb, tc.contentType)
	}
}

func TestThumbnailURL(t *testing.T) {
	imageURL := "https://res.cloudinary.com/demo/image/upload/v1/media/abc.png"
	assert.Equal(t,
		"https://res.cloudinary.com/demo/image/upload/c_scale,w_300/v1/media/abc.png",
		thumbnailURL(imageURL, ResourceImage))

	videoURL := "https://res.cloudinary.com/demo/video/upload/v1/media/clip.mp4"
	assert.Equal(t,
		"https://res.cloudinary.com/demo/video/upload/c_scale,w_300/v1/media/clip.jpg",
		thumbnailURL(videoURL, ResourceVideo))

	assert.Empty(t, thumbnailURL("https://example.com/no-marker.png", ResourceImage))
}
