package transcript

import (
	"encoding/xml"
	"strings"
)

// ytInitialPlayerResponseMarker precedes the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

const (
	browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	maxWatchPageSize = 6 << 20
	maxCaptionSize   = 2 << 20
)

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

func (t captionTrack) generated() bool {
	return t.Kind == "asr"
}

// timedText is the caption XML served from a track's baseUrl.
type timedText struct {
	XMLName xml.Name   `xml:"transcript"`
	Lines   []timedCue `xml:"text"`
}

type timedCue struct {
	Start    string `xml:"start,attr"`
	Duration string `xml:"dur,attr"`
	Text     string `xml:",chardata"`
}

// pickTrack prefers a manual track in the earliest listed language, then an
// auto-generated one.
func pickTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	for _, generated := range []bool{false, true} {
		for _, lang := range langs {
			for _, t := range tracks {
				if t.generated() == generated && strings.EqualFold(t.LanguageCode, lang) {
					return t, true
				}
			}
		}
	}
	return captionTrack{}, false
}

// extractJSON returns the balanced JSON object at the start of b.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}
