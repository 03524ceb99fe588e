package dim

// MediaType discriminates between the two kinds of media Dim manages.
type MediaType string

const (
	// MediaTypeMovie represents a movie
	MediaTypeMovie MediaType = "movie"
	// MediaTypeTV represents a TV show
	MediaTypeTV MediaType = "tv"
)

// Valid reports whether the media type is one the server accepts.
func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// Library represents a media library registered with the server.
type Library struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	MediaType MediaType `json:"media_type"`
	Locations []string  `json:"locations,omitempty"`
}

// MediaItem represents a matched movie or TV show.
type MediaItem struct {
	ID          int       `json:"id"`
	LibraryID   int       `json:"library_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MediaType   MediaType `json:"media_type,omitempty"`
	Year        int       `json:"year,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	Poster      string    `json:"poster_path,omitempty"`
	Backdrop    string    `json:"backdrop_path,omitempty"`
}

// MediaFile represents one file on disk backing a media item.
type MediaFile struct {
	ID         int    `json:"id"`
	MediaID    int    `json:"media_id,omitempty"`
	LibraryID  int    `json:"library_id,omitempty"`
	TargetFile string `json:"target_file"`
	RawName    string `json:"raw_name"`
	RawYear    int    `json:"raw_year,omitempty"`
	Quality    string `json:"quality,omitempty"`
	Codec      string `json:"codec,omitempty"`
	Container  string `json:"container,omitempty"`
	Audio      string `json:"audio,omitempty"`
	Resolution string `json:"original_resolution,omitempty"`
	Duration   int    `json:"duration,omitempty"`
	Season     int    `json:"season,omitempty"`
	Episode    int    `json:"episode,omitempty"`
	Corrupt    bool   `json:"corrupt,omitempty"`
}

// Season represents one season of a TV show.
type Season struct {
	ID           int       `json:"id"`
	SeasonNumber int       `json:"season_number"`
	Poster       string    `json:"poster,omitempty"`
	Episodes     []Episode `json:"episodes,omitempty"`
}

// Episode represents one episode of a TV season.
type Episode struct {
	ID          int    `json:"id"`
	Episode     int    `json:"episode"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Backdrop    string `json:"backdrop,omitempty"`
}

// ExternalMedia is a search result from the external metadata provider.
type ExternalMedia struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Year        int       `json:"year,omitempty"`
	Overview    string    `json:"overview,omitempty"`
	MediaType   MediaType `json:"media_type,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	PosterPath  string    `json:"poster_path,omitempty"`
	PosterFile  string    `json:"poster_file,omitempty"`
}

// UserInfo describes the authenticated user.
type UserInfo struct {
	Username      string   `json:"username"`
	Picture       string   `json:"picture,omitempty"`
	SpentWatching int64    `json:"spentWatching,omitempty"`
	Roles         []string `json:"roles,omitempty"`
}

// UserSettings holds the per-user playback and UI preferences.
type UserSettings struct {
	DefaultSubtitleLanguage string `json:"default_subtitle_language,omitempty"`
	DefaultAudioLanguage    string `json:"default_audio_language,omitempty"`
	ShowCardNames           bool   `json:"show_card_names,omitempty"`
	ShowHoverCards          bool   `json:"show_hovercards,omitempty"`
	FilmGrain               bool   `json:"filmgrain,omitempty"`
	AutoplayEnabled         bool   `json:"autoplay_enabled,omitempty"`
	Theme                   string `json:"theme,omitempty"`
}

// Dashboard groups recently relevant media by section name, e.g.
// "CONTINUE WATCHING" and "FRESHLY ADDED".
type Dashboard map[string][]MediaItem

// BannerCard is one rotating entry of the dashboard banner.
type BannerCard struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year,omitempty"`
	Synopsis string `json:"synopsis,omitempty"`
	Backdrop string `json:"backdrop,omitempty"`
	Delta    int    `json:"delta,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Caption  string `json:"banner_caption,omitempty"`
	Season   int    `json:"season,omitempty"`
	Episode  int    `json:"episode,omitempty"`
}

// VirtualManifest describes the tracks the transcoder offers for a stream.
type VirtualManifest struct {
	Tracks []StreamTrack `json:"tracks"`
}

// StreamTrack is a single audio, video or subtitle track of a virtual
// manifest.
type StreamTrack struct {
	ID          string `json:"id"`
	ContentType string `json:"content_type,omitempty"`
	Codecs      string `json:"codecs,omitempty"`
	Bandwidth   int    `json:"bandwidth,omitempty"`
	Label       string `json:"label,omitempty"`
	Language    string `json:"lang,omitempty"`
}
