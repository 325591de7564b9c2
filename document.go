package relscrape

// Site identifies the extraction variant chosen for a page.
type Site string

// Supported extraction variants.
const (
	SiteGeneric          Site = "generic"
	SiteWordPressRelease Site = "wordpress_release"
)

// SiteDetector classifies raw HTML into an extraction variant.
type SiteDetector interface {
	// Detect returns the variant for the page. It never fails; pages that
	// are not recognized are SiteGeneric.
	Detect(html string) Site
}

// DocumentParser turns the HTML of one page into a ParsedDocument.
// The returned document has no Source information; callers fill it in.
type DocumentParser interface {
	ParseDocument(html string) (*ParsedDocument, error)
}

// ParsedDocument is the normalized record extracted from one input file.
// Optional fields are omitted when their toggle is off or when extraction
// found nothing.
type ParsedDocument struct {
	Source SourceInfo `json:"source"`
	Site   Site       `json:"site"`

	Page    *PageMeta    `json:"page,omitempty"`
	Post    *PostMeta    `json:"post,omitempty"`
	Release *ReleaseMeta `json:"release,omitempty"`

	SpoilerSections         []SpoilerSection `json:"spoilerSections,omitempty"`
	LinkDomainCounts        map[string]int   `json:"linkDomainCounts,omitempty"`
	DownloadSectionHeadings []string         `json:"downloadSectionHeadings,omitempty"`

	TorrentFile      *bool    `json:"torrentFile,omitempty"`
	TorrentFileNames []string `json:"torrentFileNames,omitempty"`
	TorrentFileLinks []string `json:"torrentFileLinks,omitempty"`
	MagnetLinks      []string `json:"magnetLinks,omitempty"`
}

// ReleaseNumber returns the release number, if one was extracted.
func (d *ParsedDocument) ReleaseNumber() (uint64, bool) {
	if d.Release == nil || d.Release.ReleaseNumber == nil {
		return 0, false
	}
	return *d.Release.ReleaseNumber, true
}

// SourceInfo identifies the file a document was extracted from.
type SourceInfo struct {
	Path   string `json:"path"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// PageMeta holds document head metadata.
type PageMeta struct {
	Title        string            `json:"title,omitempty"`
	CanonicalURL string            `json:"canonicalUrl,omitempty"`
	Meta         map[string]string `json:"meta,omitempty"`
}

// IsEmpty reports whether no page field was extracted.
func (m *PageMeta) IsEmpty() bool {
	return m.Title == "" && m.CanonicalURL == "" && len(m.Meta) == 0
}

// PostMeta holds WordPress post metadata.
type PostMeta struct {
	PostID        *uint64  `json:"postId,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	WPTags        []string `json:"wpTags,omitempty"`
	EntryTitle    string   `json:"entryTitle,omitempty"`
	EntryDatetime string   `json:"entryDatetime,omitempty"`
	Author        string   `json:"author,omitempty"`
	CommentsCount *uint64  `json:"commentsCount,omitempty"`
}

// IsEmpty reports whether no post field was extracted.
func (m *PostMeta) IsEmpty() bool {
	return m.PostID == nil && len(m.Categories) == 0 && len(m.WPTags) == 0 &&
		m.EntryTitle == "" && m.EntryDatetime == "" && m.Author == "" &&
		m.CommentsCount == nil
}

// ReleaseMeta holds the release description of a post. Languages and sizes
// are kept as free text.
type ReleaseMeta struct {
	ReleaseNumber   *uint64  `json:"releaseNumber,omitempty"`
	GameTitleLine   string   `json:"gameTitleLine,omitempty"`
	GenresTags      []string `json:"genresTags,omitempty"`
	Companies       []string `json:"companies,omitempty"`
	LanguagesRaw    string   `json:"languagesRaw,omitempty"`
	OriginalSizeRaw string   `json:"originalSizeRaw,omitempty"`
	RepackSizeRaw   string   `json:"repackSizeRaw,omitempty"`
}

// IsEmpty reports whether no release field was extracted.
func (m *ReleaseMeta) IsEmpty() bool {
	return m.ReleaseNumber == nil && m.GameTitleLine == "" &&
		len(m.GenresTags) == 0 && len(m.Companies) == 0 &&
		m.LanguagesRaw == "" && m.OriginalSizeRaw == "" && m.RepackSizeRaw == ""
}

// SpoilerSection is a collapsible block of the post body.
type SpoilerSection struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}
