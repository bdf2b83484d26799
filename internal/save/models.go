// Package save stores park message logs in SQLite save slots.
package save

import (
	"time"

	"github.com/zappabad/parkcraft/internal/news"
)

// Slot is one saved message log.
type Slot struct {
	ID        string       `gorm:"primaryKey;size:36"`
	Name      string       `gorm:"size:128;not null"`
	Park      string       `gorm:"size:128"`
	Messages  []MessageRow `gorm:"foreignKey:SlotID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `gorm:"index"`
}

// MessageRow is one occupied queue slot. Position is the global index the
// record was saved from.
type MessageRow struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	SlotID    string `gorm:"size:36;not null;index"`
	Position  int    `gorm:"not null"`
	Kind      uint8  `gorm:"not null"`
	Flags     uint8
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	Text      string `gorm:"size:256"`
}

func rowFromRecord(slotID string, pos int, rec *news.Record) MessageRow {
	return MessageRow{
		SlotID:    slotID,
		Position:  pos,
		Kind:      uint8(rec.Kind),
		Flags:     uint8(rec.Flags),
		Assoc:     rec.Assoc,
		Ticks:     rec.Ticks,
		MonthYear: rec.MonthYear,
		Day:       rec.Day,
		Text:      rec.Text,
	}
}

func (r MessageRow) record() news.Record {
	return news.Record{
		Kind:      news.Kind(r.Kind),
		Flags:     news.Flags(r.Flags),
		Assoc:     r.Assoc,
		Ticks:     r.Ticks,
		MonthYear: r.MonthYear,
		Day:       r.Day,
		Text:      r.Text,
	}
}

// AllModels returns the models to migrate.
func AllModels() []interface{} {
	return []interface{}{
		&Slot{},
		&MessageRow{},
	}
}
