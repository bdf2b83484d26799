package script

import (
	"fmt"

	"github.com/zappabad/parkcraft/internal/news"
)

// MessageDesc is the exported form of a message, as read from and written to
// message files.
type MessageDesc struct {
	IsArchived bool   `yaml:"isArchived"`
	Month      uint16 `yaml:"month"`
	Day        uint8  `yaml:"day"`
	TickCount  uint16 `yaml:"tickCount"`
	Type       string `yaml:"type"`
	Subject    uint32 `yaml:"subject"`
	Text       string `yaml:"text"`
}

// Record converts d to a queue record. Unknown type names become blank.
func (d MessageDesc) Record() news.Record {
	return news.Record{
		Kind:      news.ParseKindName(d.Type),
		Assoc:     d.Subject,
		Ticks:     d.TickCount,
		MonthYear: d.Month,
		Day:       d.Day,
		Text:      news.TruncateText(d.Text),
	}
}

// Message is a handle to the slot at a global index. It reads whatever is in
// the slot when used, so handles go stale when the queue moves.
type Message struct {
	park  *Park
	index int
}

// Index returns the global slot index.
func (m Message) Index() int { return m.index }

func (m Message) record() *news.Record {
	if m.park == nil {
		return nil
	}
	return m.park.news.Get(m.index)
}

func (m Message) writable() (*news.Record, error) {
	if m.park == nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, m.index)
	}
	if err := m.park.checkMutable(); err != nil {
		return nil, err
	}
	rec := m.record()
	if rec == nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, m.index)
	}
	return rec, nil
}

func (m Message) IsArchived() bool { return m.index >= news.HistoryStart }

func (m Message) Month() uint16 {
	if rec := m.record(); rec != nil {
		return rec.MonthYear
	}
	return 0
}

func (m Message) SetMonth(v uint16) error {
	rec, err := m.writable()
	if err != nil {
		return err
	}
	rec.MonthYear = v
	return nil
}

func (m Message) Day() uint8 {
	if rec := m.record(); rec != nil {
		return rec.Day
	}
	return 0
}

func (m Message) SetDay(v uint8) error {
	rec, err := m.writable()
	if err != nil {
		return err
	}
	rec.Day = v
	return nil
}

func (m Message) TickCount() uint16 {
	if rec := m.record(); rec != nil {
		return rec.Ticks
	}
	return 0
}

func (m Message) SetTickCount(v uint16) error {
	rec, err := m.writable()
	if err != nil {
		return err
	}
	rec.Ticks = v
	return nil
}

// Type returns the external type name, or "" for an empty slot.
func (m Message) Type() string {
	if rec := m.record(); rec != nil {
		return news.KindName(rec.Kind)
	}
	return ""
}

func (m Message) SetType(name string) error {
	rec, err := m.writable()
	if err != nil {
		return err
	}
	rec.Kind = news.ParseKindName(name)
	return nil
}

func (m Message) Subject() uint32 {
	if rec := m.record(); rec != nil {
		return rec.Assoc
	}
	return 0
}

func (m Message) SetSubject(v uint32) error {
	rec, err := m.writable()
	if err != nil {
		return err
	}
	rec.Assoc = v
	return nil
}

func (m Message) Text() string {
	if rec := m.record(); rec != nil {
		return rec.Text
	}
	return ""
}

func (m Message) SetText(v string) error {
	rec, err := m.writable()
	if err != nil {
		return err
	}
	rec.SetText(v)
	return nil
}

// Remove deletes the message and closes the gap in its ring.
func (m Message) Remove() error {
	if m.park == nil || !m.park.news.IsValidIndex(m.index) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, m.index)
	}
	m.park.news.Remove(m.index)
	return nil
}

// Desc copies the message into its exported form.
func (m Message) Desc() MessageDesc {
	return MessageDesc{
		IsArchived: m.IsArchived(),
		Month:      m.Month(),
		Day:        m.Day(),
		TickCount:  m.TickCount(),
		Type:       m.Type(),
		Subject:    m.Subject(),
		Text:       m.Text(),
	}
}
