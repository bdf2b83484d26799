// Package script exposes the park message log the way plugin scripts see it:
// index handles with getters and setters, bulk replacement and posting.
package script

import (
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/zappabad/parkcraft/internal/news"
	"github.com/zappabad/parkcraft/internal/news/service"
)

var (
	ErrGameStateNotMutable = errors.New("script: game state is not mutable")
	ErrInvalidMessage      = errors.New("script: invalid message argument")
	ErrRateLimited         = errors.New("script: message rate limit exceeded")
	ErrInvalidIndex        = errors.New("script: message index out of range")
)

// DefaultSubject is the association of a posted message that names no
// subject.
const DefaultSubject uint32 = 0xFFFFFFFF

// Park is the scripting view of one park's messages.
type Park struct {
	news    *service.NewsService
	limiter *rate.Limiter
	mutable func() bool
}

// NewPark creates a Park. mutable reports whether scripts may change game
// state right now; nil means always.
func NewPark(cfg Config, svc *service.NewsService, mutable func() bool) *Park {
	limit := rate.Inf
	if cfg.PostRate > 0 {
		limit = rate.Limit(cfg.PostRate)
	}
	burst := cfg.PostBurst
	if burst <= 0 {
		burst = 1
	}
	if mutable == nil {
		mutable = func() bool { return true }
	}
	return &Park{
		news:    svc,
		limiter: rate.NewLimiter(limit, burst),
		mutable: mutable,
	}
}

func (p *Park) checkMutable() error {
	if !p.mutable() {
		return ErrGameStateNotMutable
	}
	return nil
}

// Messages returns a handle for every recent message followed by every
// archived one.
func (p *Park) Messages() []Message {
	var out []Message
	q := p.news.Queues()
	q.ForEachRecent(func(i int, _ *news.Record) {
		out = append(out, Message{park: p, index: i})
	})
	q.ForEachArchived(func(i int, _ *news.Record) {
		out = append(out, Message{park: p, index: i})
	})
	return out
}

// Message returns the handle for global index i.
func (p *Park) Message(i int) (Message, error) {
	if !p.news.IsValidIndex(i) {
		return Message{}, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return Message{park: p, index: i}, nil
}

// Describe copies every message into its exported form.
func (p *Park) Describe() []MessageDesc {
	msgs := p.Messages()
	out := make([]MessageDesc, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Desc())
	}
	return out
}

// SetMessages replaces the whole log. Entries go to the recent or archived
// ring according to IsArchived, in order; entries beyond a ring's capacity
// are dropped. It is a script write like the handle setters, so it fails
// with ErrGameStateNotMutable outside a mutable game state.
func (p *Park) SetMessages(list []MessageDesc) error {
	if err := p.checkMutable(); err != nil {
		return err
	}
	var recent, archived []news.Record
	for _, d := range list {
		if d.IsArchived {
			archived = append(archived, d.Record())
		} else {
			recent = append(recent, d.Record())
		}
	}
	p.news.Restore(recent, archived)
	return nil
}

// Post is a message posted by a script. An empty Type means blank. A nil
// Subject uses the default association for the type.
type Post struct {
	Type    string
	Text    string
	Subject *uint32
}

// PostText posts a blank message with no subject.
func (p *Park) PostText(text string) error {
	if err := p.checkMutable(); err != nil {
		return err
	}
	return p.post(news.KindBlank, text, DefaultSubject)
}

// PostMessage posts a typed message. A blank message without a subject gets
// a null map location. Empty text is rejected with ErrInvalidMessage instead
// of queuing an empty ticker line.
func (p *Park) PostMessage(msg Post) error {
	if err := p.checkMutable(); err != nil {
		return err
	}
	if msg.Text == "" {
		return ErrInvalidMessage
	}
	kind := news.ParseKindName(msg.Type)
	assoc := DefaultSubject
	if kind == news.KindBlank {
		assoc = news.NullCoordsAssoc
	}
	if msg.Subject != nil {
		assoc = *msg.Subject
	}
	return p.post(kind, msg.Text, assoc)
}

func (p *Park) post(kind news.Kind, text string, assoc uint32) error {
	if !p.limiter.Allow() {
		return ErrRateLimited
	}
	p.news.AddToQueueRaw(kind, text, assoc)
	return nil
}

// Import queues a fully described message, keeping its date, age and text.
func (p *Park) Import(d MessageDesc) error {
	if err := p.checkMutable(); err != nil {
		return err
	}
	p.news.AddToQueueCustom(d.Record())
	return nil
}
