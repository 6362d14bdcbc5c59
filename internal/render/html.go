// Package render turns block trees into public HTML.
package render

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-newsroom/internal/blocks"
)

// HTMLRenderer renders blocks for the reader-facing article page. Text
// content is treated as Markdown and run through goldmark; structural blocks
// emit semantic wrappers. Types without a renderer fall back to the
// registry's labeled placeholder.
type HTMLRenderer struct {
	registry *blocks.Registry
	markdown goldmark.Markdown
}

// NewHTMLRenderer constructs a renderer and installs its render functions
// into the registry.
func NewHTMLRenderer(registry *blocks.Registry) *HTMLRenderer {
	r := &HTMLRenderer{
		registry: registry,
		markdown: goldmark.New(
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		),
	}
	r.install()
	return r
}

func (r *HTMLRenderer) install() {
	r.registry.RegisterRenderer(blocks.TypeParagraph, r.renderParagraph)
	r.registry.RegisterRenderer(blocks.TypeText, r.renderText)
	r.registry.RegisterRenderer(blocks.TypeHeading, r.renderHeading)
	r.registry.RegisterRenderer(blocks.TypeImage, r.renderImage)
	r.registry.RegisterRenderer(blocks.TypeGallery, r.renderGallery)
	r.registry.RegisterRenderer(blocks.TypeList, r.renderList)
	r.registry.RegisterRenderer(blocks.TypeQuote, r.renderQuote)
	r.registry.RegisterRenderer(blocks.TypeVideo, r.renderVideo)
	r.registry.RegisterRenderer(blocks.TypeAudio, r.renderAudio)
	r.registry.RegisterRenderer(blocks.TypeCode, r.renderCode)
	r.registry.RegisterRenderer(blocks.TypeDivider, r.renderDivider)
	r.registry.RegisterRenderer(blocks.TypeButton, r.renderButton)
	r.registry.RegisterRenderer(blocks.TypeHero, r.renderHero)
	r.registry.RegisterRenderer(blocks.TypeEmbed, r.renderEmbed)
	r.registry.RegisterRenderer(blocks.TypeHTML, r.renderHTML)
	r.registry.RegisterRenderer(blocks.TypeTable, r.renderTable)
	r.registry.RegisterRenderer(blocks.TypeColumns, r.renderColumns)
	r.registry.RegisterRenderer(blocks.TypeGroup, r.renderGroup)
	r.registry.RegisterRenderer(blocks.TypeRow, r.renderRow)
	r.registry.RegisterRenderer(blocks.TypeStack, r.renderStack)
}

// RenderBlocks writes the blocks in order.
func (r *HTMLRenderer) RenderBlocks(w io.Writer, list []blocks.Block) error {
	for _, block := range list {
		if err := r.RenderBlock(w, block); err != nil {
			return err
		}
	}
	return nil
}

// RenderBlock dispatches one block through the registry.
func (r *HTMLRenderer) RenderBlock(w io.Writer, block blocks.Block) error {
	fn := r.registry.Renderer(block.Type)
	if err := fn(w, block); err != nil {
		return fmt.Errorf("render: block %s (%s): %w", block.ID, block.Type, err)
	}
	return nil
}

func (r *HTMLRenderer) renderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) renderParagraph(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.ParagraphData)
	if !ok {
		return writePlaceholder(w, block)
	}
	body, err := r.renderMarkdown(data.Content)
	if err != nil {
		return err
	}
	attrs := ""
	if data.Align != "" {
		attrs = ` style="text-align:` + html.EscapeString(data.Align) + `"`
	}
	_, err = fmt.Fprintf(w, `<div class="block-paragraph"%s>%s</div>`, attrs, body)
	return err
}

func (r *HTMLRenderer) renderText(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.TextData)
	if !ok {
		return writePlaceholder(w, block)
	}
	body, err := r.renderMarkdown(data.Content)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, `<div class="block-text">%s</div>`, body)
	return err
}

func (r *HTMLRenderer) renderHeading(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.HeadingData)
	if !ok {
		return writePlaceholder(w, block)
	}
	level := data.Level
	if level < 1 || level > 6 {
		level = 2
	}
	_, err := fmt.Fprintf(w, "<h%d>%s</h%d>", level, html.EscapeString(data.Content), level)
	return err
}

func (r *HTMLRenderer) renderImage(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.ImageData)
	if !ok {
		return writePlaceholder(w, block)
	}
	var buf bytes.Buffer
	buf.WriteString(`<figure class="block-image"><img src="`)
	buf.WriteString(html.EscapeString(data.URL))
	buf.WriteString(`" alt="`)
	buf.WriteString(html.EscapeString(data.Alt))
	buf.WriteString(`"/>`)
	if data.Caption != "" {
		buf.WriteString("<figcaption>")
		buf.WriteString(html.EscapeString(data.Caption))
		buf.WriteString("</figcaption>")
	}
	buf.WriteString("</figure>")
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *HTMLRenderer) renderGallery(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.GalleryData)
	if !ok {
		return writePlaceholder(w, block)
	}
	columns := data.Columns
	if columns < 1 {
		columns = 3
	}
	var buf bytes.Buffer
	buf.WriteString(`<div class="block-gallery" data-columns="`)
	buf.WriteString(strconv.Itoa(columns))
	buf.WriteString(`">`)
	for _, image := range data.Images {
		buf.WriteString(`<figure><img src="`)
		buf.WriteString(html.EscapeString(image.URL))
		buf.WriteString(`" alt="`)
		buf.WriteString(html.EscapeString(image.Alt))
		buf.WriteString(`"/></figure>`)
	}
	buf.WriteString("</div>")
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *HTMLRenderer) renderList(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.ListData)
	if !ok {
		return writePlaceholder(w, block)
	}
	tag := "ul"
	if data.Style == "ordered" {
		tag = "ol"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<%s>", tag)
	for _, item := range data.Items {
		buf.WriteString("<li>")
		buf.WriteString(html.EscapeString(item))
		buf.WriteString("</li>")
	}
	fmt.Fprintf(&buf, "</%s>", tag)
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *HTMLRenderer) renderQuote(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.QuoteData)
	if !ok {
		return writePlaceholder(w, block)
	}
	var buf bytes.Buffer
	buf.WriteString("<blockquote><p>")
	buf.WriteString(html.EscapeString(data.Content))
	buf.WriteString("</p>")
	if data.Attribution != "" {
		buf.WriteString("<cite>")
		buf.WriteString(html.EscapeString(data.Attribution))
		buf.WriteString("</cite>")
	}
	buf.WriteString("</blockquote>")
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *HTMLRenderer) renderVideo(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.VideoData)
	if !ok {
		return writePlaceholder(w, block)
	}
	_, err := fmt.Fprintf(w, `<div class="block-video"><video src="%s" controls></video></div>`,
		html.EscapeString(data.URL))
	return err
}

func (r *HTMLRenderer) renderAudio(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.AudioData)
	if !ok {
		return writePlaceholder(w, block)
	}
	_, err := fmt.Fprintf(w, `<div class="block-audio"><audio src="%s" controls></audio></div>`,
		html.EscapeString(data.URL))
	return err
}

func (r *HTMLRenderer) renderCode(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.CodeData)
	if !ok {
		return writePlaceholder(w, block)
	}
	lang := ""
	if data.Language != "" {
		lang = ` class="language-` + html.EscapeString(data.Language) + `"`
	}
	_, err := fmt.Fprintf(w, "<pre><code%s>%s</code></pre>", lang, html.EscapeString(data.Content))
	return err
}

func (r *HTMLRenderer) renderDivider(w io.Writer, _ blocks.Block) error {
	_, err := io.WriteString(w, "<hr/>")
	return err
}

func (r *HTMLRenderer) renderButton(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.ButtonData)
	if !ok {
		return writePlaceholder(w, block)
	}
	_, err := fmt.Fprintf(w, `<a class="block-button" href="%s">%s</a>`,
		html.EscapeString(data.URL), html.EscapeString(data.Label))
	return err
}

func (r *HTMLRenderer) renderHero(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.HeroData)
	if !ok {
		return writePlaceholder(w, block)
	}
	var buf bytes.Buffer
	buf.WriteString(`<section class="block-hero"`)
	if data.ImageURL != "" {
		buf.WriteString(` style="background-image:url('`)
		buf.WriteString(html.EscapeString(data.ImageURL))
		buf.WriteString(`')"`)
	}
	buf.WriteString("><h1>")
	buf.WriteString(html.EscapeString(data.Title))
	buf.WriteString("</h1>")
	if data.Subtitle != "" {
		buf.WriteString("<p>")
		buf.WriteString(html.EscapeString(data.Subtitle))
		buf.WriteString("</p>")
	}
	if data.CTALabel != "" && data.CTAURL != "" {
		buf.WriteString(`<a href="`)
		buf.WriteString(html.EscapeString(data.CTAURL))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(data.CTALabel))
		buf.WriteString("</a>")
	}
	buf.WriteString("</section>")
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *HTMLRenderer) renderEmbed(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.EmbedData)
	if !ok {
		return writePlaceholder(w, block)
	}
	if data.HTML != "" {
		// Embed HTML is author-provided and trusted at this layer.
		_, err := io.WriteString(w, data.HTML)
		return err
	}
	_, err := fmt.Fprintf(w, `<iframe src="%s"></iframe>`, html.EscapeString(data.URL))
	return err
}

func (r *HTMLRenderer) renderHTML(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.HTMLData)
	if !ok {
		return writePlaceholder(w, block)
	}
	_, err := io.WriteString(w, data.Content)
	return err
}

func (r *HTMLRenderer) renderTable(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.TableData)
	if !ok {
		return writePlaceholder(w, block)
	}
	var buf bytes.Buffer
	buf.WriteString("<table>")
	if len(data.Header) > 0 {
		buf.WriteString("<thead><tr>")
		for _, cell := range data.Header {
			buf.WriteString("<th>")
			buf.WriteString(html.EscapeString(cell))
			buf.WriteString("</th>")
		}
		buf.WriteString("</tr></thead>")
	}
	buf.WriteString("<tbody>")
	for _, row := range data.Rows {
		buf.WriteString("<tr>")
		for _, cell := range row {
			buf.WriteString("<td>")
			buf.WriteString(html.EscapeString(cell))
			buf.WriteString("</td>")
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</tbody></table>")
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *HTMLRenderer) renderColumns(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.ColumnsData)
	if !ok {
		return writePlaceholder(w, block)
	}
	var buf bytes.Buffer
	buf.WriteString(`<div class="block-columns">`)
	for _, column := range data.Columns {
		width := column.Width
		unit := column.WidthUnit
		if unit == "" {
			unit = "%"
		}
		fmt.Fprintf(&buf, `<div class="block-column" style="width:%d%s">`, width, html.EscapeString(unit))
		if err := r.RenderBlocks(&buf, column.Blocks); err != nil {
			return err
		}
		buf.WriteString("</div>")
	}
	buf.WriteString("</div>")
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *HTMLRenderer) renderGroup(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.GroupData)
	if !ok {
		return writePlaceholder(w, block)
	}
	return r.renderNested(w, "block-group", data.Blocks)
}

func (r *HTMLRenderer) renderRow(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.RowData)
	if !ok {
		return writePlaceholder(w, block)
	}
	return r.renderNested(w, "block-row", data.Blocks)
}

func (r *HTMLRenderer) renderStack(w io.Writer, block blocks.Block) error {
	data, ok := block.Data.(blocks.StackData)
	if !ok {
		return writePlaceholder(w, block)
	}
	return r.renderNested(w, "block-stack", data.Blocks)
}

func (r *HTMLRenderer) renderNested(w io.Writer, class string, children []blocks.Block) error {
	var buf bytes.Buffer
	buf.WriteString(`<div class="` + class + `">`)
	if err := r.RenderBlocks(&buf, children); err != nil {
		return err
	}
	buf.WriteString("</div>")
	_, err := w.Write(buf.Bytes())
	return err
}

func writePlaceholder(w io.Writer, block blocks.Block) error {
	return blocks.PlaceholderRenderer(block.Type)(w, block)
}

// RenderToString is a convenience wrapper used by the HTTP layer.
func (r *HTMLRenderer) RenderToString(list []blocks.Block) (string, error) {
	var buf strings.Builder
	if err := r.RenderBlocks(&buf, list); err != nil {
		return "", err
	}
	return buf.String(), nil
}
