package services

import (
	"context"
	"errors"
	"io"

	"github.com/ParthDhengle/ClipHub/internal/models"
	"github.com/ParthDhengle/ClipHub/internal/repository"
	"github.com/ParthDhengle/ClipHub/internal/storage"
)

var ErrInvalidMediaType = errors.New("invalid media type")

// MediaService covers media records, their counters, the remote upload
// pipeline, and the on-disk library.
type MediaService struct {
	repo    repository.MediaRepository
	store   *storage.Store
	library *storage.LocalLibrary
}

func NewMediaService(repo repository.MediaRepository, store *storage.Store, library *storage.LocalLibrary) *MediaService {
	return &MediaService{repo: repo, store: store, library: library}
}

func (s *MediaService) CreateRecord(ctx context.Context, ownerID string, draft *models.MediaDraft) (*models.Media, error) {
	if !draft.Type.Valid() {
		return nil, ErrInvalidMediaType
	}
	m := &models.Media{
		OwnerID:      ownerID,
		Title:        draft.Title,
		URL:          draft.URL,
		ThumbnailURL: draft.ThumbnailURL,
		Type:         draft.Type,
		CategoryID:   draft.CategoryID,
		IsPremium:    draft.IsPremium,
		Tags:         draft.Tags,
		Status:       models.MediaStatusPending,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MediaService) GetRecord(ctx context.Context, id string) (*models.Media, error) {
	return s.repo.Get(ctx, id)
}

func (s *MediaService) ListByOwner(ctx context.Context, ownerID string) ([]models.Media, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Adjust moves one counter by ±1 through the database's atomic increment.
func (s *MediaService) Adjust(ctx context.Context, id string, counter repository.Counter, delta int64) error {
	return s.repo.IncrementCounter(ctx, id, counter, delta)
}

// UploadRemote pushes a validated stream to the configured CDN/object store.
func (s *MediaService) UploadRemote(ctx context.Context, f io.ReadSeeker, contentType string) (*storage.Result, error) {
	return s.store.Upload(ctx, f, "media", contentType)
}

func (s *MediaService) SaveLocal(filename, contentType string, r io.Reader) (string, error) {
	return s.library.Save(filename, contentType, r)
}

func (s *MediaService) ListLocal(bucket string) ([]string, error) {
	return s.library.List(bucket)
}

func (s *MediaService) Leaderboard(ctx context.Context) ([]repository.CreatorStat, error) {
	return s.repo.TopCreators(ctx, 10)
}
