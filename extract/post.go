package extract

import (
	"strings"

	"github.com/fwojciec/relscrape"
)

const (
	articleSelector = "article[id^='post-']"
	tagClassPrefix  = "tag-"
)

// ExtractPost reads WordPress post metadata. It returns nil when every post
// toggle is off or nothing was found.
func ExtractPost(root relscrape.Selection, toggles relscrape.PostToggles) *relscrape.PostMeta {
	if !toggles.Any() {
		return nil
	}

	post := &relscrape.PostMeta{}

	if toggles.PostID || toggles.WPTags {
		if article, ok := root.First(articleSelector); ok {
			if toggles.PostID {
				id, _ := article.Attr("id")
				post.PostID, _ = matchUint(postIDPattern, id)
			}
			if toggles.WPTags {
				class, _ := article.Attr("class")
				post.WPTags = classTags(class)
			}
		}
	}

	if toggles.Categories {
		post.Categories = relscrape.SortedUnique(allTexts(root, "span.cat-links a"))
	}
	if toggles.EntryTitle {
		post.EntryTitle = firstText(root, "h1.entry-title")
	}
	if toggles.EntryDatetime {
		post.EntryDatetime = entryDatetime(root)
	}
	if toggles.Author {
		post.Author = firstText(root, "span.author a")
	}
	if toggles.CommentsCount {
		if text := firstText(root, "span.tolstoycomments-cc"); text != "" {
			post.CommentsCount, _ = matchUint(firstNumberPattern, text)
		}
	}

	if post.IsEmpty() {
		return nil
	}
	return post
}

// classTags returns the tag-* tokens of a class attribute without prefix.
func classTags(class string) []string {
	var tags []string
	for _, tok := range strings.Fields(class) {
		if tag, ok := strings.CutPrefix(tok, tagClassPrefix); ok && tag != "" {
			tags = append(tags, tag)
		}
	}
	return relscrape.SortedUnique(tags)
}

// entryDatetime prefers the machine-readable datetime attribute and falls
// back to the visible text.
func entryDatetime(root relscrape.Selection) string {
	el, ok := root.First("time.entry-date")
	if !ok {
		return ""
	}
	if dt, ok := el.Attr("datetime"); ok {
		if dt = strings.TrimSpace(dt); dt != "" {
			return dt
		}
	}
	return el.Text()
}
