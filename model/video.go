package model

const watchURLPrefix = "https://www.youtube.com/watch?v="

type YoutubeVideoID string

// WatchURL returns the canonical YouTube watch link for the video.
func (id YoutubeVideoID) WatchURL() string {
	return watchURLPrefix + string(id)
}

type YoutubeChannelID string

// Video is one entry of a channel's uploads listing. It lives for the
// duration of a single selection cycle and is never persisted.
type Video struct {
	YoutubeID    YoutubeVideoID
	Title        string
	ChannelTitle string
	PublishedAt  string
}

// VideoDetails carries the extended metadata of a single video.
type VideoDetails struct {
	YoutubeID    YoutubeVideoID
	Title        string
	Description  string
	ChannelTitle string
	PublishedAt  string
	Duration     string
	ViewCount    uint64
	LikeCount    uint64
}

// Sermon is the selected video, ready to be put in a notification.
type Sermon struct {
	YoutubeID    YoutubeVideoID
	Title        string
	URL          string
	ChannelTitle string
}
