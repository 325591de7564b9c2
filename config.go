package relscrape

import "strings"

// Output formats.
const (
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Config is the toggle matrix controlling which fields are extracted and
// emitted. Every toggle is independent.
type Config struct {
	Output   OutputConfig   `yaml:"output" json:"output"`
	Page     PageToggles    `yaml:"page" json:"page"`
	Post     PostToggles    `yaml:"post" json:"post"`
	Release  ReleaseToggles `yaml:"release" json:"release"`
	Sections SectionToggles `yaml:"sections" json:"sections"`
	Torrents TorrentToggles `yaml:"torrents" json:"torrents"`
	Links    LinkToggles    `yaml:"links" json:"links"`
	Profile  ProfileConfig  `yaml:"profile" json:"profile"`
}

// OutputConfig controls result serialization.
type OutputConfig struct {
	PrettyJSON bool   `yaml:"prettyJson" json:"prettyJson"`
	Format     string `yaml:"format" json:"format"`
}

// PageToggles controls the page group.
type PageToggles struct {
	Title        bool `yaml:"title" json:"title"`
	CanonicalURL bool `yaml:"canonicalUrl" json:"canonicalUrl"`
	MetaTags     bool `yaml:"metaTags" json:"metaTags"`
}

// Any reports whether at least one page field is enabled.
func (t PageToggles) Any() bool {
	return t.Title || t.CanonicalURL || t.MetaTags
}

// PostToggles controls the post group.
type PostToggles struct {
	PostID        bool `yaml:"postId" json:"postId"`
	Categories    bool `yaml:"categories" json:"categories"`
	WPTags        bool `yaml:"wpTags" json:"wpTags"`
	EntryTitle    bool `yaml:"entryTitle" json:"entryTitle"`
	EntryDatetime bool `yaml:"entryDatetime" json:"entryDatetime"`
	Author        bool `yaml:"author" json:"author"`
	CommentsCount bool `yaml:"commentsCount" json:"commentsCount"`
}

// Any reports whether at least one post field is enabled.
func (t PostToggles) Any() bool {
	return t.PostID || t.Categories || t.WPTags || t.EntryTitle ||
		t.EntryDatetime || t.Author || t.CommentsCount
}

// ReleaseToggles controls the release group.
type ReleaseToggles struct {
	ReleaseNumber bool `yaml:"releaseNumber" json:"releaseNumber"`
	GameTitleLine bool `yaml:"gameTitleLine" json:"gameTitleLine"`
	GenresTags    bool `yaml:"genresTags" json:"genresTags"`
	Companies     bool `yaml:"companies" json:"companies"`
	Languages     bool `yaml:"languages" json:"languages"`
	OriginalSize  bool `yaml:"originalSize" json:"originalSize"`
	RepackSize    bool `yaml:"repackSize" json:"repackSize"`
}

// Any reports whether at least one release field is enabled.
func (t ReleaseToggles) Any() bool {
	return t.ReleaseNumber || t.GameTitleLine || t.NeedsDetails()
}

// NeedsDetails reports whether any field read from the genres paragraph is
// enabled.
func (t ReleaseToggles) NeedsDetails() bool {
	return t.GenresTags || t.Companies || t.Languages || t.OriginalSize || t.RepackSize
}

// SectionToggles controls post body sections.
type SectionToggles struct {
	SpoilerSections         bool `yaml:"spoilerSections" json:"spoilerSections"`
	DownloadSectionPresence bool `yaml:"downloadSectionPresence" json:"downloadSectionPresence"`
}

// TorrentToggles controls torrent and magnet link output.
type TorrentToggles struct {
	TorrentFile      bool `yaml:"torrentFile" json:"torrentFile"`
	TorrentFileNames bool `yaml:"torrentFileNames" json:"torrentFileNames"`
	TorrentFileLinks bool `yaml:"torrentFileLinks" json:"torrentFileLinks"`
	MagnetLinks      bool `yaml:"magnetLinks" json:"magnetLinks"`
}

// Any reports whether at least one torrent field is enabled.
func (t TorrentToggles) Any() bool {
	return t.TorrentFile || t.TorrentFileNames || t.TorrentFileLinks || t.MagnetLinks
}

// LinkToggles controls domain aggregation.
type LinkToggles struct {
	DomainCounts               bool `yaml:"domainCounts" json:"domainCounts"`
	IgnoreMagnetInDomainCounts bool `yaml:"ignoreMagnetInDomainCounts" json:"ignoreMagnetInDomainCounts"`
}

// ProfileConfig controls layout detection and spoiler filtering.
type ProfileConfig struct {
	WordPressReleaseLayout bool     `yaml:"wordpressReleaseLayout" json:"wordpressReleaseLayout"`
	SpoilerDenylist        []string `yaml:"spoilerDenylist" json:"spoilerDenylist"`
}

// DefaultSpoilerDenylist lists spoiler titles that hide download links.
var DefaultSpoilerDenylist = []string{
	"click to show direct links",
	"direct links",
	"magnet",
	"torrent",
}

// DefaultConfig returns a config with every toggle enabled.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{PrettyJSON: true, Format: FormatJSON},
		Page:   PageToggles{Title: true, CanonicalURL: true, MetaTags: true},
		Post: PostToggles{
			PostID: true, Categories: true, WPTags: true,
			EntryTitle: true, EntryDatetime: true, Author: true, CommentsCount: true,
		},
		Release: ReleaseToggles{
			ReleaseNumber: true, GameTitleLine: true, GenresTags: true,
			Companies: true, Languages: true, OriginalSize: true, RepackSize: true,
		},
		Sections: SectionToggles{SpoilerSections: true, DownloadSectionPresence: true},
		Torrents: TorrentToggles{
			TorrentFile: true, TorrentFileNames: true, TorrentFileLinks: true, MagnetLinks: true,
		},
		Links: LinkToggles{DomainCounts: true, IgnoreMagnetInDomainCounts: true},
		Profile: ProfileConfig{
			WordPressReleaseLayout: true,
			SpoilerDenylist:        append([]string(nil), DefaultSpoilerDenylist...),
		},
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", FormatJSON, FormatNDJSON:
	default:
		return Errorf(EINVALID, "unknown output format %q (want %q or %q)", c.Output.Format, FormatJSON, FormatNDJSON)
	}
	return nil
}

// Denylist returns the spoiler denylist lowercased, with blank terms removed.
func (c *Config) Denylist() []string {
	var out []string
	for _, term := range c.Profile.SpoilerDenylist {
		if term = strings.ToLower(strings.TrimSpace(term)); term != "" {
			out = append(out, term)
		}
	}
	return out
}
