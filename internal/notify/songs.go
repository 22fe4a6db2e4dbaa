package notify

import (
	"html"

	"github.com/rs/zerolog"

	"github.com/llehouerou/waveradio/internal/playback"
)

const (
	songIcon    = "audio-x-generic"
	songTimeout = 5000
)

// SongNotification builds the notification for a song change. ok is false
// when the stream stopped announcing a title.
func SongNotification(e playback.SongChange) (Notification, bool) {
	if e.Current == "" {
		return Notification{}, false
	}
	return Notification{
		Title:   e.Current,
		Body:    html.EscapeString(e.Station),
		Icon:    songIcon,
		Timeout: songTimeout,
		Urgency: UrgencyLow,
	}, true
}

// WatchSongs shows a notification for every song change until done is
// closed. Each notification replaces the previous one so they do not pile up.
func WatchSongs(songs <-chan playback.SongChange, done <-chan struct{}, n Notifier, logger zerolog.Logger) {
	var last uint32
	for {
		select {
		case <-done:
			return
		case e, ok := <-songs:
			if !ok {
				return
			}
			notif, show := SongNotification(e)
			if !show {
				continue
			}
			notif.ReplacesID = last
			id, err := n.Notify(notif)
			if err != nil {
				logger.Debug().Err(err).Str("song", e.Current).Msg("song notification failed")
				continue
			}
			last = id
		}
	}
}
