package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"second-brain/internal/logger"
)

// ErrNoCaptions is returned when the video has no usable caption track
// in the target language. The acquirer treats it as the signal to fall
// back to speech recognition.
var ErrNoCaptions = errors.New("no caption track available")

const (
	ytPlayerURL      = "https://www.youtube.com/youtubei/v1/player?prettyPrint=false"
	ytAndroidVersion = "19.09.37"
	ytAndroidUA      = "com.google.android.youtube/" + ytAndroidVersion + " (Linux; U; Android 11) gzip"
)

// Innertube /player request and the slices of its response we care about.

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion"`
	Hl                string `json:"hl"`
	Gl                string `json:"gl"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type playerResp struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

// YouTubeCaptions fetches existing caption tracks through the ANDROID
// Innertube player endpoint and returns them as cleaned transcript text.
type YouTubeCaptions struct {
	Language string
	Client   *http.Client
}

func NewYouTubeCaptions(language string) *YouTubeCaptions {
	return &YouTubeCaptions{
		Language: language,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch returns the caption transcript for the video URL, or
// ErrNoCaptions when the video has no track in the target language.
func (y *YouTubeCaptions) Fetch(ctx context.Context, videoURL string) (string, error) {
	videoID, ok := VideoID(videoURL)
	if !ok {
		return "", fmt.Errorf("no video id in url %s: %w", videoURL, ErrNoCaptions)
	}

	tracks, err := y.listTracks(ctx, videoID)
	if err != nil {
		return "", err
	}

	track, ok := pickTrack(tracks, y.Language)
	if !ok {
		return "", ErrNoCaptions
	}
	logger.Log.Debugf("caption track found video=%s lang=%s kind=%s", videoID, track.LanguageCode, track.Kind)

	vtt, err := y.fetchVTT(ctx, track.BaseURL)
	if err != nil {
		return "", err
	}

	text := ParseVTT(vtt)
	if text == "" {
		return "", fmt.Errorf("caption track for %s is empty: %w", videoID, ErrNoCaptions)
	}
	return text, nil
}

func (y *YouTubeCaptions) listTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ytPlayerURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ytAndroidUA)

	resp, err := y.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("innertube player: %w", err)
	}
	defer resp.Body.Close()

	var player playerResp
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	if player.Captions == nil {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable (%s): %w", player.PlayabilityStatus.Reason, ErrNoCaptions)
		}
		return nil, ErrNoCaptions
	}
	return player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// pickTrack selects a track in the target language, preferring a manual
// track over an auto-generated ("asr" kind) one.
func pickTrack(tracks []captionTrack, lang string) (captionTrack, bool) {
	for _, t := range tracks {
		if t.LanguageCode == lang && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == lang {
			return t, true
		}
	}
	return captionTrack{}, false
}

func (y *YouTubeCaptions) fetchVTT(ctx context.Context, baseURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"&fmt=vtt", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", ytAndroidUA)

	resp, err := y.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch vtt: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
