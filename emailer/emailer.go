package emailer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mallelamanojkumar90/Sermon/model"
	"golang.org/x/exp/slog"
)

const (
	subject = "మీ రోజువారీ తెలుగు బైబిల్ ప్రసంగం (Your Daily Telugu Bible Sermon)"

	bodyTemplate = `
నమస్కారం (Greetings),

ఈ రోజు మీకోసం ఎంచుకోబడిన ప్రసంగం ఇక్కడ ఉంది (Here is the sermon selected for you today):

ప్రసంగం పేరు (Sermon Title): %s
ప్రసంగకర్త (Speaker): %s
వినడానికి/చూడటానికి లింక్ (Link to listen/watch): %s

దేవుడు మిమ్మును దీవించును గాక (May God bless you),
మీ తెలుగు ప్రసంగాల సహాయకుడు (Your Telugu Sermons Assistant)
`

	pollCadence = time.Minute
	dateLayout  = "2006-01-02"
)

// SermonPicker selects one video at random across the configured channels,
// avoiding excludeID when possible.
type SermonPicker interface {
	SelectRandom(channelIDs []model.YoutubeChannelID, excludeID model.YoutubeVideoID) *model.Sermon
}

// Sender delivers one notification message.
type Sender interface {
	Send(subject, body string) error
}

// State records what was last delivered. It only lives in memory; a restart
// starts fresh.
type State struct {
	LastSentID   model.YoutubeVideoID
	LastSentDate string
}

type Emailer struct {
	picker     SermonPicker
	sender     Sender
	channelIDs []model.YoutubeChannelID
	interval   time.Duration
	poll       time.Duration
	state      State
	now        func() time.Time
	logger     *slog.Logger
}

func New(picker SermonPicker, sender Sender, channelIDs []model.YoutubeChannelID, interval time.Duration, logger *slog.Logger) *Emailer {
	return &Emailer{
		picker:     picker,
		sender:     sender,
		channelIDs: channelIDs,
		interval:   interval,
		poll:       pollCadence,
		now:        time.Now,
		logger:     logger,
	}
}

// Run sends one sermon right away, then keeps polling at a coarse cadence
// whether the configured interval has elapsed. Delivery time drifts by up to
// one cadence. Run returns when ctx is cancelled.
func (e *Emailer) Run(ctx context.Context) {
	e.logger.Info("starting sermon emailer service",
		slog.Int("channels", len(e.channelIDs)),
		slog.Duration("interval", e.interval))

	e.SendDailySermon()
	next := e.now().Add(e.interval)

	ticker := time.NewTicker(e.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("sermon emailer service stopped")
			return
		case <-ticker.C:
			if e.now().Before(next) {
				continue
			}
			e.SendDailySermon()
			next = e.now().Add(e.interval)
		}
	}
}

// SendDailySermon runs one selection and delivery cycle. At most one
// delivery is recorded per calendar day. Whatever goes wrong, including a
// panic, ends the cycle without touching the delivery state, so a later
// cycle tries again.
func (e *Emailer) SendDailySermon() {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("sermon cycle failed", fmt.Errorf("%v", r))
		}
	}()

	today := e.now().Format(dateLayout)
	if e.state.LastSentDate == today {
		e.logger.Info("sermon already sent today")
		return
	}

	cycleID := uuid.New().String()
	sermon := e.picker.SelectRandom(e.channelIDs, e.state.LastSentID)
	if sermon == nil {
		e.logger.Error("no sermons found in configured channels", nil, slog.String("cycle", cycleID))
		return
	}

	body := fmt.Sprintf(bodyTemplate, sermon.Title, sermon.ChannelTitle, sermon.URL)
	if err := e.sender.Send(subject, body); err != nil {
		e.logger.Error("failed to send sermon email", err, slog.String("cycle", cycleID))
		return
	}

	e.state.LastSentID = sermon.YoutubeID
	e.state.LastSentDate = today
	e.logger.Info("successfully sent sermon",
		slog.String("cycle", cycleID),
		slog.String("title", sermon.Title),
		slog.String("channel", sermon.ChannelTitle))
}

// LastSent reports the current delivery state.
func (e *Emailer) LastSent() State {
	return e.state
}
