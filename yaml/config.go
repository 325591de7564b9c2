// Package yaml loads and writes relscrape configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/relscrape"
	yamlv3 "gopkg.in/yaml.v3"
)

// LoadConfig reads the config file at path on top of the defaults. Keys
// missing from the file keep their default values. An empty path or a
// missing file yields the defaults.
func LoadConfig(path string) (relscrape.Config, error) {
	cfg := relscrape.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, relscrape.Errorf(relscrape.EINVALID, "read config %s: %v", path, err)
	}

	cfg, err = ParseConfig(data)
	if err != nil {
		return cfg, relscrape.Errorf(relscrape.EINVALID, "parse config %s: %s", path, relscrape.ErrorMessage(err))
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of the defaults and validates the result.
func ParseConfig(data []byte) (relscrape.Config, error) {
	cfg := relscrape.DefaultConfig()

	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, relscrape.Errorf(relscrape.EINVALID, "%v", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML.
func MarshalConfig(cfg relscrape.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultTemplate is the commented config written by init-config. It
// decodes to relscrape.DefaultConfig().
const DefaultTemplate = `# relscrape configuration
# Field toggles control exactly what is extracted. A disabled field is
# never emitted; an enabled field is omitted when nothing was found.

output:
  prettyJson: true
  # json writes one document; ndjson writes one line per document,
  # then one per error, then a summary line.
  format: json

page:
  title: true
  canonicalUrl: true
  metaTags: true

post:
  postId: true
  categories: true
  wpTags: true
  entryTitle: true
  entryDatetime: true
  author: true
  commentsCount: true

release:
  releaseNumber: true
  gameTitleLine: true
  genresTags: true
  companies: true
  languages: true
  originalSize: true
  repackSize: true

sections:
  spoilerSections: true
  downloadSectionPresence: true

torrents:
  torrentFile: true
  torrentFileNames: true
  torrentFileLinks: true
  magnetLinks: true

links:
  domainCounts: true
  ignoreMagnetInDomainCounts: true

profile:
  wordpressReleaseLayout: true
  # Spoiler blocks whose title contains any of these (case-insensitive)
  # are dropped.
  spoilerDenylist:
    - click to show direct links
    - direct links
    - magnet
    - torrent
`
