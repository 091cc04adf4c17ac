package services

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ParthDhengle/ClipHub/internal/models"
	"github.com/ParthDhengle/ClipHub/internal/repository"
)

// fakeMediaRepo mirrors the real repository's contract: counters move only
// through IncrementCounter, one mutation at a time.
type fakeMediaRepo struct {
	mu       sync.Mutex
	items    map[string]*models.Media
	nextID   int
	topStats []repository.CreatorStat
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{items: map[string]*models.Media{}}
}

func (r *fakeMediaRepo) Create(_ context.Context, m *models.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = "media-" + strconv.Itoa(r.nextID)
	if m.Status == "" {
		m.Status = models.MediaStatusPending
	}
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r *fakeMediaRepo) Get(_ context.Context, id string) (*models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, repository.ErrMediaNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMediaRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Media{}
	for _, m := range r.items {
		if m.OwnerID == ownerID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMediaRepo) IncrementCounter(_ context.Context, id string, counter repository.Counter, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return repository.ErrMediaNotFound
	}
	switch counter {
	case repository.CounterLikes:
		m.Likes += delta
	case repository.CounterViews:
		m.Views += delta
	case repository.CounterDownloads:
		m.Downloads += delta
	}
	return nil
}

func (r *fakeMediaRepo) TopCreators(_ context.Context, _ int64) ([]repository.CreatorStat, error) {
	return r.topStats, nil
}

func TestCreateRecord(t *testing.T) {
	repo := newFakeMediaRepo()
	svc := NewMediaService(repo, nil, nil)

	m, err := svc.CreateRecord(context.Background(), "uid-1", &models.MediaDraft{
		Title: "sunset",
		URL:   "https://cdn.example.com/sunset.jpg",
		Type:  models.MediaTypePhoto,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "uid-1", m.OwnerID)
	assert.Equal(t, models.MediaStatusPending, m.Status)

	got, err := svc.GetRecord(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "sunset", got.Title)
}

func TestCreateRecordInvalidType(t *testing.T) {
	svc := NewMediaService(newFakeMediaRepo(), nil, nil)

	_, err := svc.CreateRecord(context.Background(), "uid-1", &models.MediaDraft{
		Title: "bad",
		Type:  models.MediaType("podcast"),
	})
	assert.ErrorIs(t, err, ErrInvalidMediaType)
}

func TestAdjustUnknownMedia(t *testing.T) {
	svc := NewMediaService(newFakeMediaRepo(), nil, nil)

	err := svc.Adjust(context.Background(), "missing", repository.CounterLikes, 1)
	assert.ErrorIs(t, err, repository.ErrMediaNotFound)
}

func TestAdjustConcurrentLikeUnlike(t *testing.T) {
	repo := newFakeMediaRepo()
	svc := NewMediaService(repo, nil, nil)

	m, err := svc.CreateRecord(context.Background(), "uid-1", &models.MediaDraft{
		Title: "clip",
		Type:  models.MediaTypeVideo,
	})
	require.NoError(t, err)

	const n = 64
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.Adjust(context.Background(), m.ID, repository.CounterLikes, 1))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.Adjust(context.Background(), m.ID, repository.CounterLikes, -1))
		}()
	}
	wg.Wait()

	got, err := svc.GetRecord(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Likes, "paired like/unlike must net to zero")
}

func TestAdjustCountersAreIndependent(t *testing.T) {
	repo := newFakeMediaRepo()
	svc := NewMediaService(repo, nil, nil)

	m, err := svc.CreateRecord(context.Background(), "uid-1", &models.MediaDraft{
		Title: "clip",
		Type:  models.MediaTypeVideo,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Adjust(context.Background(), m.ID, repository.CounterViews, 1))
	require.NoError(t, svc.Adjust(context.Background(), m.ID, repository.CounterViews, 1))
	require.NoError(t, svc.Adjust(context.Background(), m.ID, repository.CounterDownloads, 1))

	got, err := svc.GetRecord(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Views)
	assert.Equal(t, int64(1), got.Downloads)
	assert.Equal(t, int64(0), got.Likes)
}

func TestLeaderboard(t *testing.T) {
	repo := newFakeMediaRepo()
	repo.topStats = []repository.CreatorStat{
		{CreatorID: "uid-1", Count: 12, CreatorName: "Ada"},
		{CreatorID: "uid-2", Count: 3, CreatorName: "Unknown"},
	}
	svc := NewMediaService(repo, nil, nil)

	stats, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "uid-1", stats[0].CreatorID)
	assert.Equal(t, int64(12), stats[0].Count)
}
