package domain

// TagColor is one of the fixed palette entries a tag can use.
type TagColor string

const (
	TagRed    TagColor = "red"
	TagOrange TagColor = "orange"
	TagYellow TagColor = "yellow"
	TagGreen  TagColor = "green"
	TagBlue   TagColor = "blue"
	TagPurple TagColor = "purple"
	TagPink   TagColor = "pink"
	TagGray   TagColor = "gray"
)

// TagPalette lists the allowed tag colors in display order.
var TagPalette = []TagColor{TagRed, TagOrange, TagYellow, TagGreen, TagBlue, TagPurple, TagPink, TagGray}

func (c TagColor) Valid() bool {
	for _, p := range TagPalette {
		if p == c {
			return true
		}
	}
	return false
}

// Tag is identified by its label; there is no separate tag id.
type Tag struct {
	Label string
	Color TagColor
}
