package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: en

00:00:00.320 --> 00:00:02.950 align:start position:0%
welcome to the course

00:00:02.950 --> 00:00:05.190 align:start position:0%
welcome to the course
on design of interfaces

00:00:05.190 --> 00:00:07.000
on design of interfaces
let us know
`

func TestParseVTTStripsTimingAndHeader(t *testing.T) {
	out := ParseVTT(sampleVTT)

	assert.NotContains(t, out, "-->")
	assert.NotContains(t, out, "WEBVTT")
	assert.NotContains(t, out, "Kind:")
	assert.Equal(t, strings.Join([]string{
		"welcome to the course",
		"on design of interfaces",
		"let us know",
	}, "\n"), out)
}

func TestParseVTTCollapsesAdjacentOnly(t *testing.T) {
	vtt := "WEBVTT\n\nalpha\nalpha\nbeta\nalpha\n"
	out := ParseVTT(vtt)
	// Adjacent repeats collapse; a later reappearance survives. The
	// global dedup is the normalizer's job, not this pass's.
	assert.Equal(t, "alpha\nbeta\nalpha", out)
}

func TestParseVTTSkipsCueIdentifiers(t *testing.T) {
	vtt := "WEBVTT\n\n1\n00:00:00.000 --> 00:00:01.000\nhello\n\n2\n00:00:01.000 --> 00:00:02.000\nworld\n"
	out := ParseVTT(vtt)
	assert.Equal(t, "hello\nworld", out)
}

func TestParseVTTSkipsNoteBlocks(t *testing.T) {
	vtt := "WEBVTT\n\nNOTE this block\nspans lines\n\nhello\n"
	out := ParseVTT(vtt)
	assert.Equal(t, "hello", out)
}

func TestParseVTTEmptyInput(t *testing.T) {
	assert.Equal(t, "", ParseVTT(""))
	assert.Equal(t, "", ParseVTT("WEBVTT\n\n00:00:00.000 --> 00:00:01.000\n"))
}

func TestPickTrackPrefersManualOverASR(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "auto", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "manual", LanguageCode: "en", Kind: ""},
	}
	track, ok := pickTrack(tracks, "en")
	assert.True(t, ok)
	assert.Equal(t, "manual", track.BaseURL)
}

func TestPickTrackFallsBackToAutoGenerated(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "auto", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "fr", LanguageCode: "fr", Kind: ""},
	}
	track, ok := pickTrack(tracks, "en")
	assert.True(t, ok)
	assert.Equal(t, "auto", track.BaseURL)
}

func TestPickTrackNoMatch(t *testing.T) {
	tracks := []captionTrack{{BaseURL: "fr", LanguageCode: "fr"}}
	_, ok := pickTrack(tracks, "en")
	assert.False(t, ok)
}
