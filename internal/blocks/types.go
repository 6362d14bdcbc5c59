package blocks

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type identifies one member of the closed block type enumeration.
type Type string

const (
	TypeParagraph   Type = "paragraph"
	TypeText        Type = "text"
	TypeHeading     Type = "heading"
	TypeImage       Type = "image"
	TypeGallery     Type = "gallery"
	TypeList        Type = "list"
	TypeQuote       Type = "quote"
	TypeVideo       Type = "video"
	TypeAudio       Type = "audio"
	TypeCode        Type = "code"
	TypeDivider     Type = "divider"
	TypeButton      Type = "button"
	TypeHero        Type = "hero"
	TypeEmbed       Type = "embed"
	TypeSocial      Type = "social"
	TypeMap         Type = "map"
	TypeAccordion   Type = "accordion"
	TypeHTML        Type = "html"
	TypeTable       Type = "table"
	TypeForm        Type = "form"
	TypeCalendar    Type = "calendar"
	TypeSearch      Type = "search"
	TypeRecentPosts Type = "recentPosts"
	TypeColumns     Type = "columns"
	TypeGroup       Type = "group"
	TypeRow         Type = "row"
	TypeStack       Type = "stack"
)

var allTypes = []Type{
	TypeParagraph, TypeText, TypeHeading, TypeImage, TypeGallery,
	TypeList, TypeQuote, TypeVideo, TypeAudio, TypeCode,
	TypeDivider, TypeButton, TypeHero, TypeEmbed, TypeSocial,
	TypeMap, TypeAccordion, TypeHTML, TypeTable, TypeForm,
	TypeCalendar, TypeSearch, TypeRecentPosts,
	TypeColumns, TypeGroup, TypeRow, TypeStack,
}

// Types returns the enumeration in stable declaration order.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// Valid reports whether the tag belongs to the closed enumeration.
func (t Type) Valid() bool {
	for _, known := range allTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsContainer reports whether blocks of this type hold nested block
// collections in their payload.
func (t Type) IsContainer() bool {
	switch t {
	case TypeColumns, TypeGroup, TypeRow, TypeStack:
		return true
	default:
		return false
	}
}

// BlockData is the type-specific payload carried by a block. Payload shapes
// are owned by the editing widgets; the mutation engine treats them as opaque
// values that can be deep-copied.
type BlockData interface {
	BlockType() Type
	Clone() BlockData
}

// Block is one atomic unit of article content. IDs are `temp-<token>` strings
// until the block is persisted, after which the durable id takes over.
type Block struct {
	ID        string    `json:"id"`
	ArticleID uuid.UUID `json:"article_id"`
	Type      Type      `json:"type"`
	Order     int       `json:"order"`
	Data      BlockData `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone deep-copies the block, including any nested block collections inside
// container payloads.
func (b Block) Clone() Block {
	clone := b
	if b.Data != nil {
		clone.Data = b.Data.Clone()
	}
	return clone
}

// CloneList deep-copies a block list.
func CloneList(list []Block) []Block {
	if list == nil {
		return nil
	}
	out := make([]Block, len(list))
	for i, block := range list {
		out[i] = block.Clone()
	}
	return out
}

const tempIDPrefix = "temp-"

// NewTempID mints a client-side block id of shape `temp-<token>`.
func NewTempID() string {
	return tempIDPrefix + uuid.NewString()
}

// IsTempID reports whether the id is a client-side placeholder.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}
