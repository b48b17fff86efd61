package fetch

import (
	"github.com/mallelamanojkumar90/Sermon/model"
	"golang.org/x/exp/slog"
	"google.golang.org/api/youtube/v3"
)

// YouTube caps playlist pages at 50 items regardless of what is asked for.
const pageSize = 50

type Youtube struct {
	Client *youtube.Service
	logger *slog.Logger
}

func NewYoutube(client *youtube.Service, logger *slog.Logger) *Youtube {
	return &Youtube{Client: client, logger: logger}
}

// ChannelVideos lists up to maxResults videos uploaded to a channel, paging
// through the channel's uploads playlist. A channel that cannot be resolved
// and any provider error are logged and yield an empty result, so callers
// treat a broken channel the same as an empty one.
func (y *Youtube) ChannelVideos(channelID model.YoutubeChannelID, maxResults int64) []model.Video {
	playlistID, err := y.uploadsPlaylistID(channelID)
	if err != nil {
		y.logger.Error("failed to resolve uploads playlist", err, slog.String("channelid", string(channelID)))
		return []model.Video{}
	}
	if playlistID == "" {
		y.logger.Error("channel not found", nil, slog.String("channelid", string(channelID)))
		return []model.Video{}
	}

	videos := make([]model.Video, 0, maxResults)
	pageToken := ""
	for int64(len(videos)) < maxResults {
		call := y.Client.PlaylistItems.
			List([]string{"snippet"}).
			PlaylistId(playlistID).
			MaxResults(min(pageSize, maxResults-int64(len(videos))))
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			y.logger.Error("failed to list channel videos", err, slog.String("channelid", string(channelID)))
			return []model.Video{}
		}

		for _, item := range response.Items {
			if item.Snippet == nil || item.Snippet.ResourceId == nil {
				continue
			}
			videos = append(videos, model.Video{
				YoutubeID:    model.YoutubeVideoID(item.Snippet.ResourceId.VideoId),
				Title:        item.Snippet.Title,
				ChannelTitle: item.Snippet.ChannelTitle,
				PublishedAt:  item.Snippet.PublishedAt,
			})
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}
	}

	y.logger.Info("retrieved channel videos", slog.String("channelid", string(channelID)), slog.Int("count", len(videos)))
	return videos
}

// VideoDetails looks up the extended metadata of a single video. Lookup
// failures are logged and reported as absence.
func (y *Youtube) VideoDetails(videoID model.YoutubeVideoID) *model.VideoDetails {
	response, err := y.Client.Videos.
		List([]string{"snippet,contentDetails,statistics"}).
		Id(string(videoID)).
		Do()
	if err != nil {
		y.logger.Error("failed to fetch video details", err, slog.String("videoid", string(videoID)))
		return nil
	}
	if len(response.Items) == 0 {
		y.logger.Error("video not found", nil, slog.String("videoid", string(videoID)))
		return nil
	}

	item := response.Items[0]
	details := &model.VideoDetails{YoutubeID: videoID}
	if item.Snippet != nil {
		details.Title = item.Snippet.Title
		details.Description = item.Snippet.Description
		details.ChannelTitle = item.Snippet.ChannelTitle
		details.PublishedAt = item.Snippet.PublishedAt
	}
	if item.ContentDetails != nil {
		details.Duration = item.ContentDetails.Duration
	}
	if item.Statistics != nil {
		details.ViewCount = item.Statistics.ViewCount
		details.LikeCount = item.Statistics.LikeCount
	}

	return details
}

func (y *Youtube) uploadsPlaylistID(channelID model.YoutubeChannelID) (string, error) {
	response, err := y.Client.Channels.
		List([]string{"contentDetails"}).
		Id(string(channelID)).
		Do()
	if err != nil {
		return "", err
	}
	if len(response.Items) == 0 {
		return "", nil
	}
	details := response.Items[0].ContentDetails
	if details == nil || details.RelatedPlaylists == nil {
		return "", nil
	}

	return details.RelatedPlaylists.Uploads, nil
}
