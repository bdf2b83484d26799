package save

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/news/queue"
)

// ErrSlotNotFound is returned when no slot has the requested id.
var ErrSlotNotFound = errors.New("save: slot not found")

// Restorer receives a loaded message log.
type Restorer interface {
	InitQueue()
	Restore(recent, archived []news.Record)
}

// Open opens (creating if needed) the save database at path and migrates it.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared across calls.
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the save tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("save: auto-migrate: %w", err)
	}
	return nil
}

// Save stores every occupied slot of q under a new slot.
func Save(db *gorm.DB, name, park string, q *queue.Queues) (*Slot, error) {
	slot := Slot{
		ID:   uuid.New().String(),
		Name: name,
		Park: park,
	}
	q.ForEachRecent(func(i int, rec *news.Record) {
		slot.Messages = append(slot.Messages, rowFromRecord(slot.ID, i, rec))
	})
	q.ForEachArchived(func(i int, rec *news.Record) {
		slot.Messages = append(slot.Messages, rowFromRecord(slot.ID, i, rec))
	})

	if err := db.Create(&slot).Error; err != nil {
		return nil, fmt.Errorf("save: create slot %q: %w", name, err)
	}
	return &slot, nil
}

// Get returns the slot with its messages ordered by position.
func Get(db *gorm.DB, id string) (*Slot, error) {
	var slot Slot
	err := db.Preload("Messages", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	}).Where("id = ?", id).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("save: get slot %s: %w", id, err)
	}
	return &slot, nil
}

// Load replaces the message log held by r with the slot's.
func Load(db *gorm.DB, id string, r Restorer) (*Slot, error) {
	slot, err := Get(db, id)
	if err != nil {
		return nil, err
	}
	recent, archived := split(slot.Messages)
	r.InitQueue()
	r.Restore(recent, archived)
	return slot, nil
}

func split(rows []MessageRow) (recent, archived []news.Record) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })
	for _, row := range rows {
		if row.Position < news.HistoryStart {
			recent = append(recent, row.record())
		} else {
			archived = append(archived, row.record())
		}
	}
	return recent, archived
}

// List returns every slot without messages, newest first.
func List(db *gorm.DB) ([]Slot, error) {
	var slots []Slot
	if err := db.Order("created_at DESC").Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("save: list slots: %w", err)
	}
	return slots, nil
}

// Delete removes a slot and its messages.
func Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slot_id = ?", id).Delete(&MessageRow{}).Error; err != nil {
			return fmt.Errorf("save: delete messages of %s: %w", id, err)
		}
		res := tx.Where("id = ?", id).Delete(&Slot{})
		if res.Error != nil {
			return fmt.Errorf("save: delete slot %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrSlotNotFound, id)
		}
		return nil
	})
}
