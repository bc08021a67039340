package usecase

import (
	"strings"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

// Language musiqa tili
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
	LanguageTelugu  Language = "telugu"
)

// Playlist tanlangan Spotify pleylisti
type Playlist struct {
	Language Language `json:"language"`
	ID       string   `json:"id"`
	EmbedURL string   `json:"embedUrl"`
	Calming  bool     `json:"calming"`
}

type playlistPair struct {
	calming string
	regular string
}

var playlists = map[Language]playlistPair{
	LanguageEnglish: {calming: "37i9dQZF1DWZqd5JICZI0u", regular: "37i9dQZF1DXcBWIGoYBM5M"},
	LanguageHindi:   {calming: "37i9dQZF1DWTbX3R4Lh9zJ", regular: "37i9dQZF1DX0XUZAe4Hr2V"},
	LanguageTelugu:  {calming: "37i9dQZF1DX5cO1uP1j4q2", regular: "37i9dQZF1DWWylE7aaeade"},
}

// ParseLanguage noma'lum til english bo'ladi
func ParseLanguage(raw string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := playlists[lang]; ok {
		return lang
	}
	return LanguageEnglish
}

// PlaylistFor jahl chiqqanda tinchlantiruvchi, aks holda odatiy pleylist
func PlaylistFor(language Language, emotion entity.Emotion) Playlist {
	language = ParseLanguage(string(language))
	pair := playlists[language]

	p := Playlist{Language: language, ID: pair.regular}
	if emotion == entity.EmotionAngry {
		p.ID = pair.calming
		p.Calming = true
	}
	p.EmbedURL = "https://open.spotify.com/embed/playlist/" + p.ID + "?utm_source=generator&theme=0"
	return p
}
