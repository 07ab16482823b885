package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"traza/entities"
	"traza/pkg/clock"
	"traza/pkg/health/controller"
	"traza/pkg/rules"
)

const checkTimeout = 800 * time.Millisecond

type HealthCtrl struct {
	db      *gorm.DB
	clock   clock.Clock
	started time.Time
}

var _ controller.HealthController = (*HealthCtrl)(nil)

func NewHealthCtrl(db *gorm.DB, clk clock.Clock) *HealthCtrl {
	if clk == nil {
		clk = clock.System()
	}
	return &HealthCtrl{db: db, clock: clk, started: clk.Now()}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	db := h.pingDatabase(ctx)
	schema := check{OK: false, Err: "skipped"}
	if db.OK {
		schema = h.checkSchema(ctx)
	}

	allOK := db.OK && schema.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}
	now := h.clock.Now()
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(now.Sub(h.started).Seconds()),
		"checks": map[string]any{
			"database": db,
			"schema":   schema,
		},
		"time": rules.FormatTimestamp(now),
	})
}

func (h *HealthCtrl) pingDatabase(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

// checkSchema confirms the traceability tables were migrated.
func (h *HealthCtrl) checkSchema(ctx context.Context) check {
	m := h.db.WithContext(ctx).Migrator()
	for _, model := range []any{&entities.Lot{}, &entities.Process{}, &entities.QualityControl{}, &entities.Transport{}} {
		if !m.HasTable(model) {
			return check{Err: "missing table " + tableOf(model)}
		}
	}
	return check{OK: true}
}

func tableOf(model any) string {
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return "unknown model"
}
