// Package models defines the closed tag vocabulary and its processing order.
package models

// Tag kinds. The vocabulary is closed: unknown t-* tags are carried through
// as raw markup.
const (
	TagIcon        = "t-icon"
	TagDivider     = "t-divider"
	TagImage       = "t-image"
	TagVideo       = "t-video"
	TagHeadline    = "t-headline"
	TagSubheadline = "t-subheadline"
	TagParagraph   = "t-paragraph"
	TagButton      = "t-button"
	TagInput       = "t-input"
	TagTextarea    = "t-textarea"
	TagSelect      = "t-select"
	TagList        = "t-list"
	TagProgress    = "t-progress"
	TagPopup       = "t-popup"
	TagCountdown   = "t-countdown"
	TagFlex        = "t-flex"
	TagInnerColumn = "t-innercolumn"
	TagColumn      = "t-column"
	TagRow         = "t-row"
	TagSection     = "t-section"
	TagModal       = "t-modal"
	TagPage        = "t-page"
)

// KindOrder is the fixed leaf-first processing order: every atomic content
// kind resolves before any structural container kind, so a container always
// snapshots fully resolved child markup. This is a total order over kinds,
// not a per-instance topological sort.
var KindOrder = []string{
	TagIcon,
	TagDivider,
	TagImage,
	TagVideo,
	TagHeadline,
	TagSubheadline,
	TagParagraph,
	TagButton,
	TagInput,
	TagTextarea,
	TagSelect,
	TagList,
	TagProgress,
	TagPopup,
	TagCountdown,
	TagFlex,
	TagInnerColumn,
	TagColumn,
	TagRow,
	TagSection,
	TagModal,
	TagPage,
}

// KnownKinds indexes the vocabulary for parser lookups.
var KnownKinds = func() map[string]struct{} {
	kinds := make(map[string]struct{}, len(KindOrder))
	for _, k := range KindOrder {
		kinds[k] = struct{}{}
	}
	return kinds
}()

// IsKnownKind reports whether name is part of the tag vocabulary.
func IsKnownKind(name string) bool {
	_, ok := KnownKinds[name]
	return ok
}
