package repository

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/slot-booker/internal/db"
	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/httperr"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

// openTestDB needs TEST_DATABASE_URL pointing at a disposable database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))
	require.NoError(t, db.Exec("TRUNCATE reservations, clients, audit_logs").Error)
	return db
}

func seedClient(t *testing.T, clients *ClientGormRepository) *models.Client {
	t.Helper()
	c := &models.Client{
		ID:        uuid.New(),
		Name:      "Ana",
		Email:     uuid.NewString() + "@example.com",
		CreatedAt: domain.Normalize(time.Now()),
	}
	require.NoError(t, clients.CreateClient(context.Background(), c))
	return c
}

func pgReservation(t *testing.T, clientID uuid.UUID, start, end time.Time) *models.Reservation {
	t.Helper()
	slot, err := domain.NewTimeSlot(start, end)
	require.NoError(t, err)
	return domain.New(clientID, slot, "", time.Now())
}

func TestPostgresExclusion(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	store := NewReservationGormRepository(db)
	c := seedClient(t, NewClientGormRepository(db))

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	first := pgReservation(t, c.ID, base, base.Add(time.Hour))
	require.NoError(t, store.InsertIfNonOverlapping(ctx, first))

	err := store.InsertIfNonOverlapping(ctx, pgReservation(t, c.ID, base.Add(30*time.Minute), base.Add(90*time.Minute)))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOverlapConflict), "got %v", err)

	require.NoError(t, store.InsertIfNonOverlapping(ctx, pgReservation(t, c.ID, base.Add(time.Hour), base.Add(2*time.Hour))))

	got, err := store.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, first.StartTime.Equal(got.StartTime))
	assert.True(t, first.CreatedAt.Equal(got.CreatedAt))

	cancelled, err := store.SetCancelled(ctx, first.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)

	_, err = store.SetCancelled(ctx, first.ID, time.Now())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyCancelled))

	_, err = store.SetCancelled(ctx, uuid.New(), time.Now())
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

	require.NoError(t, store.InsertIfNonOverlapping(ctx, pgReservation(t, c.ID, base, base.Add(time.Hour))))

	busy, err := store.ListOverlapping(ctx, domain.TimeSlot{Start: base.Add(-time.Hour), End: base.Add(3 * time.Hour)})
	require.NoError(t, err)
	assert.Len(t, busy, 2)
	assert.True(t, busy[0].StartTime.Before(busy[1].StartTime))

	// touching the window at an endpoint is not overlapping
	edge, err := store.ListOverlapping(ctx, domain.TimeSlot{Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, edge)

	inner, err := store.ListOverlapping(ctx, domain.TimeSlot{Start: base.Add(90 * time.Minute), End: base.Add(100 * time.Minute)})
	require.NoError(t, err)
	require.Len(t, inner, 1)
	assert.True(t, inner[0].StartTime.Equal(base.Add(time.Hour)))

	all, err := store.ListByClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPostgresUnknownClientAndDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	store := NewReservationGormRepository(db)
	clients := NewClientGormRepository(db)

	base := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	err := store.InsertIfNonOverlapping(ctx, pgReservation(t, uuid.New(), base, base.Add(time.Hour)))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnknownClient), "got %v", err)

	c := seedClient(t, clients)
	err = clients.CreateClient(ctx, &models.Client{ID: uuid.New(), Name: "x", Email: c.Email, CreatedAt: time.Now()})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateEmail), "got %v", err)

	ok, err := clients.ClientExists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPostgresConcurrentInserts(t *testing.T) {
	db := openTestDB(t)
	store := NewReservationGormRepository(db)
	c := seedClient(t, NewClientGormRepository(db))

	base := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	const n = 20
	var (
		wg sync.WaitGroup
		ok atomic.Int32
	)
	reservations := make([]*models.Reservation, n)
	for i := range reservations {
		reservations[i] = pgReservation(t, c.ID, base, base.Add(time.Hour))
	}

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.InsertIfNonOverlapping(context.Background(), reservations[i]); err == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
}
