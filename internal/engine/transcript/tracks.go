package transcript

// CaptionTrack is one available transcript stream for a video, in one
// language, located at its own fetch address. Track order is the platform's
// and is significant: it is the default-selection tie-break.
type CaptionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
}

// captionList is the JSON shape of the captions block, shared by the watch
// page and the InnerTube player response. The renderer pointer distinguishes
// "captions disabled" from "zero tracks".
type captionList struct {
	PlayerCaptionsTracklistRenderer *struct {
		CaptionTracks []CaptionTrack `json:"captionTracks"`
	} `json:"playerCaptionsTracklistRenderer"`
}

// VideoMeta is best-effort metadata carried alongside the track list.
// Either field may be empty; absence is never an error.
type VideoMeta struct {
	Title   string `json:"title,omitempty"`
	Channel string `json:"channel,omitempty"`
}

// trackList is what a strategy's acquisition step produces.
type trackList struct {
	tracks []CaptionTrack
	meta   VideoMeta
}

// selectTrack picks exactly one track. No preference: the first track, in
// platform order. With a preference: the first exact language-code match —
// case-sensitive, no locale fallback ("en" does not match "en-US").
func selectTrack(tracks []CaptionTrack, lang, videoID string) (CaptionTrack, error) {
	if len(tracks) == 0 {
		return CaptionTrack{}, &NotAvailableError{VideoID: videoID}
	}
	if lang == "" {
		return tracks[0], nil
	}
	for _, t := range tracks {
		if t.LanguageCode == lang {
			return t, nil
		}
	}
	available := make([]string, len(tracks))
	for i, t := range tracks {
		available[i] = t.LanguageCode
	}
	return CaptionTrack{}, &NotAvailableLanguageError{
		Lang:           lang,
		AvailableLangs: available,
		VideoID:        videoID,
	}
}
