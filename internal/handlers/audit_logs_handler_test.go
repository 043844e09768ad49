package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/slot-booker/internal/audit"
	dbpkg "github.com/BruksfildServices01/slot-booker/internal/db"
	"github.com/BruksfildServices01/slot-booker/internal/httpresp"
	"github.com/BruksfildServices01/slot-booker/internal/models"
)

// needs TEST_DATABASE_URL pointing at a disposable database
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
	require.NoError(t, db.Exec("TRUNCATE audit_logs").Error)
	return db
}

func TestAuditLogsList(t *testing.T) {
	db := openTestDB(t)
	gin.SetMode(gin.TestMode)

	sink := audit.New(db)
	now := time.Now().UTC()
	for i, action := range []string{
		audit.ActionReservationCreated,
		audit.ActionReservationCreated,
		audit.ActionReservationCancelled,
		audit.ActionClientCreated,
	} {
		id := uuid.New()
		require.NoError(t, sink.Write(context.Background(), audit.Event{
			Action:   action,
			Entity:   audit.EntityReservation,
			EntityID: &id,
			At:       now.Add(time.Duration(i) * time.Second),
		}))
	}

	r := gin.New()
	r.GET("/audit-logs", NewAuditLogsHandler(db).List)

	list := func(query string) httpresp.PageResponse[models.AuditLog] {
		t.Helper()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit-logs"+query, nil))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page httpresp.PageResponse[models.AuditLog]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		return page
	}

	all := list("")
	assert.Equal(t, int64(4), all.Total)
	require.Len(t, all.Data, 4)
	assert.Equal(t, audit.ActionClientCreated, all.Data[0].Action)

	created := list("?action=" + audit.ActionReservationCreated)
	assert.Equal(t, int64(2), created.Total)
	assert.Len(t, created.Data, 2)

	second := list("?limit=3&page=2")
	assert.Equal(t, 2, second.Page)
	assert.Equal(t, 3, second.Limit)
	assert.Equal(t, int64(4), second.Total)
	assert.Len(t, second.Data, 1)
}
