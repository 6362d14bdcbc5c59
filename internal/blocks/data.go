package blocks

import "encoding/json"

// ParagraphData backs the paragraph block. Content is raw markup; formatting
// is applied by string splicing in the editor, not by a rich-text buffer.
type ParagraphData struct {
	Content string `json:"content"`
	Align   string `json:"align,omitempty"`
	DropCap bool   `json:"dropCap,omitempty"`
}

func (ParagraphData) BlockType() Type    { return TypeParagraph }
func (d ParagraphData) Clone() BlockData { return d }

// TextData backs the plain text block.
type TextData struct {
	Content string `json:"content"`
}

func (TextData) BlockType() Type    { return TypeText }
func (d TextData) Clone() BlockData { return d }

// HeadingData backs the heading block. Level is clamped to 1..6 by the widget.
type HeadingData struct {
	Content string `json:"content"`
	Level   int    `json:"level"`
	Align   string `json:"align,omitempty"`
}

func (HeadingData) BlockType() Type    { return TypeHeading }
func (d HeadingData) Clone() BlockData { return d }

type ImageData struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
	Width   int    `json:"width,omitempty"`
}

func (ImageData) BlockType() Type    { return TypeImage }
func (d ImageData) Clone() BlockData { return d }

type GalleryImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type GalleryData struct {
	Images  []GalleryImage `json:"images"`
	Columns int            `json:"columns"`
}

func (GalleryData) BlockType() Type { return TypeGallery }

func (d GalleryData) Clone() BlockData {
	clone := d
	clone.Images = append([]GalleryImage(nil), d.Images...)
	return clone
}

type ListData struct {
	Style string   `json:"style"`
	Items []string `json:"items"`
}

func (ListData) BlockType() Type { return TypeList }

func (d ListData) Clone() BlockData {
	clone := d
	clone.Items = append([]string(nil), d.Items...)
	return clone
}

type QuoteData struct {
	Content     string `json:"content"`
	Attribution string `json:"attribution,omitempty"`
	Style       string `json:"style,omitempty"`
}

func (QuoteData) BlockType() Type    { return TypeQuote }
func (d QuoteData) Clone() BlockData { return d }

type VideoData struct {
	URL      string `json:"url"`
	Provider string `json:"provider,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Autoplay bool   `json:"autoplay,omitempty"`
}

func (VideoData) BlockType() Type    { return TypeVideo }
func (d VideoData) Clone() BlockData { return d }

type AudioData struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

func (AudioData) BlockType() Type    { return TypeAudio }
func (d AudioData) Clone() BlockData { return d }

type CodeData struct {
	Content  string `json:"content"`
	Language string `json:"language,omitempty"`
}

func (CodeData) BlockType() Type    { return TypeCode }
func (d CodeData) Clone() BlockData { return d }

type DividerData struct {
	Style string `json:"style,omitempty"`
}

func (DividerData) BlockType() Type    { return TypeDivider }
func (d DividerData) Clone() BlockData { return d }

type ButtonData struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Style string `json:"style,omitempty"`
}

func (ButtonData) BlockType() Type    { return TypeButton }
func (d ButtonData) Clone() BlockData { return d }

type HeroData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	CTALabel string `json:"ctaLabel,omitempty"`
	CTAURL   string `json:"ctaUrl,omitempty"`
	Overlay  bool   `json:"overlay,omitempty"`
}

func (HeroData) BlockType() Type    { return TypeHero }
func (d HeroData) Clone() BlockData { return d }

type EmbedData struct {
	URL  string `json:"url"`
	HTML string `json:"html,omitempty"`
}

func (EmbedData) BlockType() Type    { return TypeEmbed }
func (d EmbedData) Clone() BlockData { return d }

type SocialData struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

func (SocialData) BlockType() Type    { return TypeSocial }
func (d SocialData) Clone() BlockData { return d }

type MapData struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Zoom    int     `json:"zoom"`
	Address string  `json:"address,omitempty"`
}

func (MapData) BlockType() Type    { return TypeMap }
func (d MapData) Clone() BlockData { return d }

type AccordionItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type AccordionData struct {
	Items []AccordionItem `json:"items"`
}

func (AccordionData) BlockType() Type { return TypeAccordion }

func (d AccordionData) Clone() BlockData {
	clone := d
	clone.Items = append([]AccordionItem(nil), d.Items...)
	return clone
}

type HTMLData struct {
	Content string `json:"content"`
}

func (HTMLData) BlockType() Type    { return TypeHTML }
func (d HTMLData) Clone() BlockData { return d }

type TableData struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func (TableData) BlockType() Type { return TypeTable }

func (d TableData) Clone() BlockData {
	clone := d
	clone.Header = append([]string(nil), d.Header...)
	clone.Rows = make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		clone.Rows[i] = append([]string(nil), row...)
	}
	return clone
}

type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Required bool   `json:"required,omitempty"`
}

type FormData struct {
	Fields      []FormField `json:"fields"`
	SubmitLabel string      `json:"submitLabel"`
}

func (FormData) BlockType() Type { return TypeForm }

func (d FormData) Clone() BlockData {
	clone := d
	clone.Fields = append([]FormField(nil), d.Fields...)
	return clone
}

type CalendarEvent struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

type CalendarData struct {
	Title  string          `json:"title,omitempty"`
	Events []CalendarEvent `json:"events"`
}

func (CalendarData) BlockType() Type { return TypeCalendar }

func (d CalendarData) Clone() BlockData {
	clone := d
	clone.Events = append([]CalendarEvent(nil), d.Events...)
	return clone
}

type SearchData struct {
	Placeholder string `json:"placeholder,omitempty"`
}

func (SearchData) BlockType() Type    { return TypeSearch }
func (d SearchData) Clone() BlockData { return d }

type RecentPostsData struct {
	Count    int    `json:"count"`
	Category string `json:"category,omitempty"`
}

func (RecentPostsData) BlockType() Type    { return TypeRecentPosts }
func (d RecentPostsData) Clone() BlockData { return d }

// Column is one bucket inside a columns block. Widths are percentages and
// should sum to 100 across siblings; the editor caps siblings at 6.
type Column struct {
	ID        string  `json:"id"`
	Width     int     `json:"width"`
	WidthUnit string  `json:"widthUnit"`
	Blocks    []Block `json:"blocks"`
}

// ColumnsData holds an ordered list of columns, each owning its child blocks
// outright. The block tree is recursive through this payload.
type ColumnsData struct {
	Columns []Column `json:"columns"`
}

func (ColumnsData) BlockType() Type { return TypeColumns }

func (d ColumnsData) Clone() BlockData {
	clone := d
	clone.Columns = make([]Column, len(d.Columns))
	for i, col := range d.Columns {
		copied := col
		copied.Blocks = CloneList(col.Blocks)
		clone.Columns[i] = copied
	}
	return clone
}

// GroupData holds a flat nested block list.
type GroupData struct {
	Blocks []Block `json:"blocks"`
}

func (GroupData) BlockType() Type { return TypeGroup }

func (d GroupData) Clone() BlockData {
	return GroupData{Blocks: CloneList(d.Blocks)}
}

type RowData struct {
	Blocks []Block `json:"blocks"`
}

func (RowData) BlockType() Type { return TypeRow }

func (d RowData) Clone() BlockData {
	return RowData{Blocks: CloneList(d.Blocks)}
}

type StackData struct {
	Blocks []Block `json:"blocks"`
}

func (StackData) BlockType() Type { return TypeStack }

func (d StackData) Clone() BlockData {
	return StackData{Blocks: CloneList(d.Blocks)}
}

// UnknownData preserves the raw payload of a block whose type tag is not in
// the enumeration, so round-tripping never drops content. It renders as a
// placeholder.
type UnknownData struct {
	Tag Type            `json:"-"`
	Raw json.RawMessage `json:"-"`
}

func (d UnknownData) BlockType() Type { return d.Tag }

func (d UnknownData) Clone() BlockData {
	clone := d
	clone.Raw = append(json.RawMessage(nil), d.Raw...)
	return clone
}

func (d UnknownData) MarshalJSON() ([]byte, error) {
	if len(d.Raw) == 0 {
		return []byte("{}"), nil
	}
	return d.Raw, nil
}
