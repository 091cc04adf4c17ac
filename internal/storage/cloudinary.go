package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const thumbTransform = "c_scale,w_300"

// CloudinaryRemote stores files on Cloudinary and derives thumbnail URLs by
// delivery transformation, so no second upload is needed.
type CloudinaryRemote struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryRemote(cloudName, apiKey, apiSecret string) (*CloudinaryRemote, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}
	return &CloudinaryRemote{cld: cld}, nil
}

func (r *CloudinaryRemote) Put(ctx context.Context, key, contentType string, resource Resource, wantThumb bool, body io.Reader, size int64) (*Result, error) {
	resp, err := r.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		PublicID:     key,
		ResourceType: string(resource),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return nil, errors.New("cloudinary upload: no secure URL in response")
	}

	res := &Result{URL: resp.SecureURL}
	if wantThumb {
		res.ThumbnailURL = thumbnailURL(resp.SecureURL, resource)
	}
	return res, nil
}

// thumbnailURL rewrites a delivery URL to a 300px scaled rendition. Video
// thumbnails are still frames, delivered as jpg.
func thumbnailURL(secureURL string, resource Resource) string {
	const marker = "/upload/"
	i := strings.Index(secureURL, marker)
	if i < 0 {
		return ""
	}
	out := secureURL[:i+len(marker)] + thumbTransform + "/" + secureURL[i+len(marker):]
	if resource == ResourceVideo {
		out = strings.TrimSuffix(out, path.Ext(out)) + ".jpg"
	}
	return out
}
