package sermon

import (
	"math/rand"

	"github.com/mallelamanojkumar90/Sermon/model"
	"golang.org/x/exp/slog"
)

const maxVideosPerChannel = 50

// VideoLister lists the videos a channel has uploaded. Implementations
// report failures as empty results, so a failing channel simply contributes
// no candidates.
type VideoLister interface {
	ChannelVideos(channelID model.YoutubeChannelID, maxResults int64) []model.Video
	VideoDetails(videoID model.YoutubeVideoID) *model.VideoDetails
}

type Selector struct {
	lister VideoLister
	logger *slog.Logger
}

func NewSelector(lister VideoLister, logger *slog.Logger) *Selector {
	return &Selector{lister: lister, logger: logger}
}

// SelectRandom picks one video uniformly at random from everything the
// given channels uploaded. The previous pick is excluded unless that would
// leave nothing to choose from, in which case the exclusion is dropped and
// an immediate repeat is possible. Returns nil when no channel yields any
// videos.
func (s *Selector) SelectRandom(channelIDs []model.YoutubeChannelID, excludeID model.YoutubeVideoID) *model.Sermon {
	var pool []model.Video
	for _, channelID := range channelIDs {
		pool = append(pool, s.lister.ChannelVideos(channelID, maxVideosPerChannel)...)
	}
	if len(pool) == 0 {
		return nil
	}

	available := make([]model.Video, 0, len(pool))
	for _, video := range pool {
		if excludeID == "" || video.YoutubeID != excludeID {
			available = append(available, video)
		}
	}
	if len(available) == 0 {
		available = pool
	}

	selected := available[rand.Intn(len(available))]

	attrs := []any{
		slog.String("videoid", string(selected.YoutubeID)),
		slog.String("title", selected.Title),
		slog.Int("pool", len(available)),
	}
	if details := s.lister.VideoDetails(selected.YoutubeID); details != nil {
		attrs = append(attrs,
			slog.String("duration", details.Duration),
			slog.Uint64("views", details.ViewCount))
	}
	s.logger.Info("selected sermon", attrs...)

	return &model.Sermon{
		YoutubeID:    selected.YoutubeID,
		Title:        selected.Title,
		URL:          selected.YoutubeID.WatchURL(),
		ChannelTitle: selected.ChannelTitle,
	}
}
