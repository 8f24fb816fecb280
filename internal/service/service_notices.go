package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-desk-widget/internal/logger"
	"github.com/MKhiriev/go-desk-widget/models"
)

// maxNotices bounds how many notices are kept, active or not.
const maxNotices = 5

type noticeBoard struct {
	ttl    time.Duration
	now    func() time.Time
	logger *logger.Logger

	mu      sync.Mutex
	notices []models.Notice
}

// NewNoticeBoard returns a NoticeBoard whose notices expire after ttl.
func NewNoticeBoard(ttl time.Duration, logger *logger.Logger) NoticeBoard {
	return &noticeBoard{ttl: ttl, now: time.Now, logger: logger}
}

func (b *noticeBoard) Publish(severity models.Severity, message string) {
	notice := models.Notice{Message: message, Severity: severity, At: b.now()}

	b.mu.Lock()
	b.notices = append(b.notices, notice)
	if over := len(b.notices) - maxNotices; over > 0 {
		b.notices = append(b.notices[:0], b.notices[over:]...)
	}
	b.mu.Unlock()

	b.logger.Debug().Str("func", "noticeBoard.Publish").Str("severity", string(severity)).Msg(message)
}

func (b *noticeBoard) Success(message string) { b.Publish(models.SeveritySuccess, message) }
func (b *noticeBoard) Error(message string)   { b.Publish(models.SeverityError, message) }
func (b *noticeBoard) Info(message string)    { b.Publish(models.SeverityInfo, message) }

func (b *noticeBoard) Active() []models.Notice {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	active := make([]models.Notice, 0, len(b.notices))
	for _, n := range b.notices {
		if now.Sub(n.At) < b.ttl {
			active = append(active, n)
		}
	}
	return active
}

func (b *noticeBoard) Latest() (models.Notice, bool) {
	active := b.Active()
	if len(active) == 0 {
		return models.Notice{}, false
	}
	return active[len(active)-1], true
}
