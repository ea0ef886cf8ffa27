package finder

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EmpoweredVote/mdb-finder/internal/db"
)

// Recorder receives the outcome of every postal-code search.
type Recorder interface {
	Record(ctx context.Context, code string, outcome ResponseType)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, string, ResponseType) {}

// PlzLookup counts searches per postal code and outcome, so that frequent
// not_found codes can be added to the curated ranges.
type PlzLookup struct {
	PLZ        string    `gorm:"primaryKey;column:plz;size:5"`
	Outcome    string    `gorm:"primaryKey;column:outcome"`
	Count      int64     `gorm:"column:count;not null;default:0"`
	LastSeenAt time.Time `gorm:"column:last_seen_at"`
}

func (PlzLookup) TableName() string { return "bundestag.plz_lookups" }

// LookupLog persists outcomes with an upsert per request.
type LookupLog struct {
	db *gorm.DB
}

// NewLookupLog migrates the lookup table.
func NewLookupLog(gdb *gorm.DB) (*LookupLog, error) {
	if err := db.EnsureSchema(gdb, db.Schema); err != nil {
		return nil, err
	}
	if err := gdb.AutoMigrate(&PlzLookup{}); err != nil {
		return nil, err
	}
	return &LookupLog{db: gdb}, nil
}

// Record upserts the counter for every outcome except invalid input. A failed
// write is logged and never fails a search.
func (l *LookupLog) Record(ctx context.Context, code string, outcome ResponseType) {
	if outcome == TypeInvalid {
		return
	}
	now := time.Now()
	row := PlzLookup{PLZ: code, Outcome: string(outcome), Count: 1, LastSeenAt: now}
	err := l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "plz"}, {Name: "outcome"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":        gorm.Expr("plz_lookups.count + 1"),
			"last_seen_at": now,
		}),
	}).Create(&row).Error
	if err != nil {
		log.Printf("[finder] lookup log plz=%s outcome=%s err=%v", code, outcome, err)
	}
}

// Gaps returns the most searched codes that did not resolve to members.
func (l *LookupLog) Gaps(ctx context.Context, limit int) ([]PlzLookup, error) {
	var rows []PlzLookup
	err := l.db.WithContext(ctx).
		Where("outcome <> ?", string(TypeMembers)).
		Order("count DESC, plz").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
