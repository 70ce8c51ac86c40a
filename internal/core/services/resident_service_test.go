package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeResidentRepo struct {
	residents map[string]*models.Resident
	nextID    uint
}

func newFakeResidentRepo() *fakeResidentRepo {
	return &fakeResidentRepo{residents: make(map[string]*models.Resident)}
}

func (f *fakeResidentRepo) Create(ctx context.Context, resident *models.Resident) error {
	f.nextID++
	resident.ID = f.nextID
	stored := *resident
	f.residents[resident.PublicID] = &stored
	return nil
}

func (f *fakeResidentRepo) List(ctx context.Context) ([]*models.Resident, error) {
	var all []*models.Resident
	for _, resident := range f.residents {
		copied := *resident
		all = append(all, &copied)
	}
	return all, nil
}

func (f *fakeResidentRepo) GetByPublicID(ctx context.Context, publicID string) (*models.Resident, error) {
	resident, ok := f.residents[publicID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *resident
	return &copied, nil
}

func (f *fakeResidentRepo) Update(ctx context.Context, resident *models.Resident) error {
	if _, ok := f.residents[resident.PublicID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *resident
	f.residents[resident.PublicID] = &stored
	return nil
}

func (f *fakeResidentRepo) Delete(ctx context.Context, publicID string) error {
	delete(f.residents, publicID)
	return nil
}

type fakeActivityRepo struct {
	entries   []*models.ResidentActivity
	createErr error
}

func (f *fakeActivityRepo) Create(ctx context.Context, activity *models.ResidentActivity) error {
	if f.createErr != nil {
		return f.createErr
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}
	copied := *activity
	f.entries = append(f.entries, &copied)
	return nil
}

func (f *fakeActivityRepo) ListRecent(ctx context.Context, limit int) ([]*models.ResidentActivity, error) {
	// Newest first, like the timestamp DESC query
	var recent []*models.ResidentActivity
	for i := len(f.entries) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, f.entries[i])
	}
	return recent, nil
}

func (f *fakeActivityRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var kept []*models.ResidentActivity
	var removed int64
	for _, entry := range f.entries {
		if entry.Timestamp.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	f.entries = kept
	return removed, nil
}

func sampleResident(first, last string) *models.Resident {
	return &models.Resident{
		FirstName:   first,
		LastName:    last,
		DOB:         "1990-05-12",
		Age:         36,
		Sex:         "Male",
		Address:     "Purok 3, Zone 2",
		Contact:     "09171234567",
		CivilStatus: "Single",
		Occupation:  "Farmer",
		VoterStatus: "Registered",
	}
}

func TestResidentCreateAssignsIDAndLogs(t *testing.T) {
	residentRepo := newFakeResidentRepo()
	activityRepo := &fakeActivityRepo{}
	svc := NewResidentService(residentRepo, activityRepo)
	ctx := context.Background()

	resident := sampleResident("Juan", "Dela Cruz")
	require.NoError(t, svc.Create(ctx, resident))

	assert.NotEmpty(t, resident.PublicID)

	fetched, err := svc.Get(ctx, resident.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "Juan", fetched.FirstName)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, models.ActivityAdded, activityRepo.entries[0].Action)
	assert.Equal(t, "Juan Dela Cruz", activityRepo.entries[0].ResidentName)
}

func TestResidentCreateToleratesActivityFailure(t *testing.T) {
	residentRepo := newFakeResidentRepo()
	activityRepo := &fakeActivityRepo{createErr: errors.New("activity store down")}
	svc := NewResidentService(residentRepo, activityRepo)

	resident := sampleResident("Juan", "Dela Cruz")
	require.NoError(t, svc.Create(context.Background(), resident))
	assert.Len(t, residentRepo.residents, 1)
}

func TestResidentBulkCreate(t *testing.T) {
	residentRepo := newFakeResidentRepo()
	activityRepo := &fakeActivityRepo{}
	svc := NewResidentService(residentRepo, activityRepo)

	batch := []*models.Resident{
		sampleResident("Juan", "Dela Cruz"),
		sampleResident("Maria", "Santos"),
		sampleResident("Pedro", "Reyes"),
	}
	require.NoError(t, svc.BulkCreate(context.Background(), batch))

	assert.Len(t, residentRepo.residents, 3)
	assert.Len(t, activityRepo.entries, 3)

	// Each import row gets its own UUID
	ids := map[string]bool{}
	for _, resident := range batch {
		require.NotEmpty(t, resident.PublicID)
		ids[resident.PublicID] = true
	}
	assert.Len(t, ids, 3)
}

func TestResidentUpdate(t *testing.T) {
	residentRepo := newFakeResidentRepo()
	activityRepo := &fakeActivityRepo{}
	svc := NewResidentService(residentRepo, activityRepo)
	ctx := context.Background()

	resident := sampleResident("Juan", "Dela Cruz")
	require.NoError(t, svc.Create(ctx, resident))

	updated := sampleResident("Juan", "Dela Cruz")
	updated.Address = "Purok 5, Zone 1"
	updated.Occupation = "Fisherman"
	require.NoError(t, svc.Update(ctx, resident.PublicID, updated))

	fetched, err := svc.Get(ctx, resident.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "Purok 5, Zone 1", fetched.Address)
	assert.Equal(t, "Fisherman", fetched.Occupation)
	// Identity survives the profile swap
	assert.Equal(t, resident.PublicID, fetched.PublicID)

	require.Len(t, activityRepo.entries, 2)
	assert.Equal(t, models.ActivityUpdated, activityRepo.entries[1].Action)
}

func TestResidentUpdateUnknown(t *testing.T) {
	svc := NewResidentService(newFakeResidentRepo(), &fakeActivityRepo{})

	err := svc.Update(context.Background(), "no-such-id", sampleResident("X", "Y"))
	assert.ErrorIs(t, err, domain.ErrResidentNotFound)
}

func TestResidentDelete(t *testing.T) {
	residentRepo := newFakeResidentRepo()
	activityRepo := &fakeActivityRepo{}
	svc := NewResidentService(residentRepo, activityRepo)
	ctx := context.Background()

	resident := sampleResident("Juan", "Dela Cruz")
	require.NoError(t, svc.Create(ctx, resident))
	require.NoError(t, svc.Delete(ctx, resident.PublicID))

	_, err := svc.Get(ctx, resident.PublicID)
	assert.ErrorIs(t, err, domain.ErrResidentNotFound)

	require.Len(t, activityRepo.entries, 2)
	assert.Equal(t, models.ActivityDeleted, activityRepo.entries[1].Action)
	assert.Equal(t, "Juan Dela Cruz", activityRepo.entries[1].ResidentName)
}

func TestResidentDeleteUnknown(t *testing.T) {
	svc := NewResidentService(newFakeResidentRepo(), &fakeActivityRepo{})

	err := svc.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrResidentNotFound)
}

func TestRecentActivitiesCappedAtFive(t *testing.T) {
	residentRepo := newFakeResidentRepo()
	activityRepo := &fakeActivityRepo{}
	svc := NewResidentService(residentRepo, activityRepo)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, svc.Create(ctx, sampleResident("Resident", string(rune('A'+i)))))
	}

	recent, err := svc.RecentActivities(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	// Newest entry first
	assert.Equal(t, "Resident G", recent[0].ResidentName)
	assert.Equal(t, "Resident C", recent[4].ResidentName)
}
