package blocks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DecodeData unmarshals a raw payload into the strongly-typed struct for the
// given tag. Tags outside the enumeration decode into UnknownData so loading
// never fails on unrecognized content.
func DecodeData(t Type, raw json.RawMessage) (BlockData, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	switch t {
	case TypeParagraph:
		return decodeInto[ParagraphData](t, raw)
	case TypeText:
		return decodeInto[TextData](t, raw)
	case TypeHeading:
		return decodeInto[HeadingData](t, raw)
	case TypeImage:
		return decodeInto[ImageData](t, raw)
	case TypeGallery:
		return decodeInto[GalleryData](t, raw)
	case TypeList:
		return decodeInto[ListData](t, raw)
	case TypeQuote:
		return decodeInto[QuoteData](t, raw)
	case TypeVideo:
		return decodeInto[VideoData](t, raw)
	case TypeAudio:
		return decodeInto[AudioData](t, raw)
	case TypeCode:
		return decodeInto[CodeData](t, raw)
	case TypeDivider:
		return decodeInto[DividerData](t, raw)
	case TypeButton:
		return decodeInto[ButtonData](t, raw)
	case TypeHero:
		return decodeInto[HeroData](t, raw)
	case TypeEmbed:
		return decodeInto[EmbedData](t, raw)
	case TypeSocial:
		return decodeInto[SocialData](t, raw)
	case TypeMap:
		return decodeInto[MapData](t, raw)
	case TypeAccordion:
		return decodeInto[AccordionData](t, raw)
	case TypeHTML:
		return decodeInto[HTMLData](t, raw)
	case TypeTable:
		return decodeInto[TableData](t, raw)
	case TypeForm:
		return decodeInto[FormData](t, raw)
	case TypeCalendar:
		return decodeInto[CalendarData](t, raw)
	case TypeSearch:
		return decodeInto[SearchData](t, raw)
	case TypeRecentPosts:
		return decodeInto[RecentPostsData](t, raw)
	case TypeColumns:
		return decodeInto[ColumnsData](t, raw)
	case TypeGroup:
		return decodeInto[GroupData](t, raw)
	case TypeRow:
		return decodeInto[RowData](t, raw)
	case TypeStack:
		return decodeInto[StackData](t, raw)
	default:
		return UnknownData{Tag: t, Raw: append(json.RawMessage(nil), raw...)}, nil
	}
}

func decodeInto[T BlockData](t Type, raw json.RawMessage) (BlockData, error) {
	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("blocks: decode %s payload: %w", t, err)
	}
	return data, nil
}

// EncodeData marshals a payload to JSON. A nil payload encodes as an empty
// object.
func EncodeData(data BlockData) (json.RawMessage, error) {
	if data == nil {
		return json.RawMessage("{}"), nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("blocks: encode %s payload: %w", data.BlockType(), err)
	}
	return raw, nil
}

type blockJSON struct {
	ID        string          `json:"id"`
	ArticleID uuid.UUID       `json:"article_id"`
	Type      Type            `json:"type"`
	Order     int             `json:"order"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UnmarshalJSON decodes the payload through the type tag so Data carries the
// concrete struct for the block's type.
func (b *Block) UnmarshalJSON(raw []byte) error {
	var wire blockJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return err
	}

	data, err := DecodeData(wire.Type, wire.Data)
	if err != nil {
		return err
	}

	b.ID = wire.ID
	b.ArticleID = wire.ArticleID
	b.Type = wire.Type
	b.Order = wire.Order
	b.Data = data
	b.CreatedAt = wire.CreatedAt
	b.UpdatedAt = wire.UpdatedAt
	return nil
}

// MarshalJSON mirrors UnmarshalJSON for symmetric round-trips.
func (b Block) MarshalJSON() ([]byte, error) {
	data, err := EncodeData(b.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blockJSON{
		ID:        b.ID,
		ArticleID: b.ArticleID,
		Type:      b.Type,
		Order:     b.Order,
		Data:      data,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	})
}
