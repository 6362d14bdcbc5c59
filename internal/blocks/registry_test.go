package blocks

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultDataCoversEnumeration(t *testing.T) {
	registry := NewRegistry()

	for _, tag := range Types() {
		data := registry.DefaultData(tag)
		if data == nil {
			t.Fatalf("no default payload for %s", tag)
		}
		if data.BlockType() != tag {
			t.Fatalf("default payload for %s reports type %s", tag, data.BlockType())
		}
	}
}

func TestDefaultDataUnknownTag(t *testing.T) {
	registry := NewRegistry()

	data := registry.DefaultData(Type("mystery"))
	unknown, ok := data.(UnknownData)
	if !ok {
		t.Fatalf("expected UnknownData, got %T", data)
	}
	if unknown.Tag != Type("mystery") {
		t.Fatalf("unexpected tag %s", unknown.Tag)
	}
}

func TestPlaceholderRendererLabelsType(t *testing.T) {
	registry := NewRegistry()

	var buf bytes.Buffer
	renderer := registry.Renderer(Type("mystery"))
	if err := renderer(&buf, Block{Type: Type("mystery")}); err != nil {
		t.Fatalf("render placeholder: %v", err)
	}
	if !strings.Contains(buf.String(), "mystery") {
		t.Fatalf("placeholder should name the type: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "block-placeholder") {
		t.Fatalf("placeholder should carry its css hook: %s", buf.String())
	}
}

func TestRegisterSchemaValidatesPayloads(t *testing.T) {
	registry := NewRegistry()

	schema := `{
		"type": "object",
		"properties": {
			"content": {"type": "string", "minLength": 1}
		},
		"required": ["content"]
	}`
	if err := registry.RegisterSchema(TypeQuote, schema); err != nil {
		t.Fatalf("register schema: %v", err)
	}

	if err := registry.ValidateData(QuoteData{Content: "Stop the presses"}); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	if err := registry.ValidateData(QuoteData{}); err == nil {
		t.Fatal("empty quote should fail schema validation")
	}

	// Types without a schema always pass.
	if err := registry.ValidateData(ParagraphData{}); err != nil {
		t.Fatalf("schemaless type should pass: %v", err)
	}
}

func TestBlockJSONRoundTrip(t *testing.T) {
	original := Block{
		ID:    NewTempID(),
		Type:  TypeHeading,
		Order: 3,
		Data:  HeadingData{Content: "Front Page", Level: 2, Align: "left"},
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Block
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	heading, ok := decoded.Data.(HeadingData)
	if !ok {
		t.Fatalf("expected HeadingData, got %T", decoded.Data)
	}
	if heading.Content != "Front Page" || heading.Level != 2 {
		t.Fatalf("payload mangled: %+v", heading)
	}
	if decoded.Order != 3 {
		t.Fatalf("order mangled: %d", decoded.Order)
	}
}

func TestDecodeDataUnknownKeepsRaw(t *testing.T) {
	raw := json.RawMessage(`{"widget":"weather"}`)
	data, err := DecodeData(Type("weather"), raw)
	if err != nil {
		t.Fatalf("decode unknown: %v", err)
	}
	unknown, ok := data.(UnknownData)
	if !ok {
		t.Fatalf("expected UnknownData, got %T", data)
	}
	if string(unknown.Raw) != string(raw) {
		t.Fatalf("raw payload not preserved: %s", unknown.Raw)
	}
}
