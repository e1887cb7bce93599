package a2ui

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNow = "2026-01-02T03:04:05.000006Z"

func TestEncodeAtWireFormat(t *testing.T) {
	got, err := json.Marshal(EncodeAt("Hello <world> & \"you\"", testNow))
	require.NoError(t, err)

	want := `[
	  {"surfaceUpdate": {
	    "surfaceId": "main",
	    "components": [
	      {"id": "root", "component": {"Column": {"children": {"explicitList": ["title_text", "row_buttons"]}}}},
	      {"id": "title_text", "component": {"Text": {"usageHint": "h3", "text": {"literalString": "Hello <world> & \"you\""}}}},
	      {"id": "row_buttons", "component": {"Row": {"alignment": "center", "children": {"explicitList": ["btn_ok", "btn_cancel"]}}}},
	      {"id": "btn_ok_text", "component": {"Text": {"text": {"literalString": "OK"}}}},
	      {"id": "btn_ok", "component": {"Button": {"child": "btn_ok_text", "action": {"name": "clicked_ok"}}}},
	      {"id": "btn_cancel_text", "component": {"Text": {"text": {"literalString": "Cancel"}}}},
	      {"id": "btn_cancel", "component": {"Button": {"child": "btn_cancel_text", "action": {"name": "clicked_cancel"}}}}
	    ]
	  }},
	  {"dataModelUpdate": {
	    "surfaceId": "main",
	    "path": "/",
	    "contents": [{"key": "now", "valueString": "2026-01-02T03:04:05.000006Z"}]
	  }},
	  {"beginRendering": {
	    "surfaceId": "main",
	    "root": "root",
	    "catalogId": "https://a2ui.org/specification/v0_8/standard_catalog_definition.json"
	  }}
	]`

	var gotV, wantV any
	require.NoError(t, json.Unmarshal(got, &gotV))
	require.NoError(t, json.Unmarshal([]byte(want), &wantV))
	if diff := cmp.Diff(wantV, gotV); diff != "" {
		t.Errorf("wire format (-want +got):\n%s", diff)
	}
}

func TestEncodeOrderAndRoot(t *testing.T) {
	msgs := Encode("hi")
	require.Len(t, msgs, 3)

	su, ok := msgs[0].(SurfaceUpdate)
	require.True(t, ok, "first message is %T", msgs[0])
	dm, ok := msgs[1].(DataModelUpdate)
	require.True(t, ok, "second message is %T", msgs[1])
	br, ok := msgs[2].(BeginRendering)
	require.True(t, ok, "third message is %T", msgs[2])

	declared := make(map[string]bool)
	for _, c := range su.Components {
		declared[c.ID] = true
	}
	assert.True(t, declared[br.Root], "root %q not declared", br.Root)
	assert.Equal(t, StandardCatalogID, br.CatalogID)

	require.Len(t, dm.Contents, 1)
	assert.Equal(t, "/", dm.Path)
	assert.Equal(t, NowKey, dm.Contents[0].Key)
	require.NotNil(t, dm.Contents[0].ValueString)
	assert.NotEmpty(t, *dm.Contents[0].ValueString)

	require.NoError(t, Validate(msgs))
}

// shape strips the title and timestamp so two encodings can be compared.
func shape(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		switch m := m.(type) {
		case SurfaceUpdate:
			comps := make([]ComponentInstance, len(m.Components))
			copy(comps, m.Components)
			for j, c := range comps {
				if c.ID == TitleID {
					txt := c.Component.(Text)
					txt.Text = Literal("")
					comps[j].Component = txt
				}
			}
			m.Components = comps
			out[i] = m
		case DataModelUpdate:
			m.Contents = []DataEntry{StringEntry(NowKey, "")}
			out[i] = m
		default:
			out[i] = m
		}
	}
	return out
}

func TestEncodeShapeIndependentOfTitle(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("encodings differ only in title and timestamp", prop.ForAll(
		func(a, b string) bool {
			ma := EncodeAt(a, testNow)
			mb := EncodeAt(b, "2030-12-31T23:59:59.999999Z")
			if Validate(ma) != nil || Validate(mb) != nil {
				return false
			}
			return cmp.Equal(shape(ma), shape(mb))
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("title lands in title_text", prop.ForAll(
		func(title string) bool {
			su := EncodeAt(title, testNow)[0].(SurfaceUpdate)
			for _, c := range su.Components {
				if c.ID == TitleID {
					txt := c.Component.(Text)
					return txt.Text.LiteralString != nil && *txt.Text.LiteralString == title
				}
			}
			return false
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestComponentChildIDs(t *testing.T) {
	tests := map[string]struct {
		c    Component
		kind string
		want []string
	}{
		"column": {c: Column{Children: Children{ExplicitList: []string{"a", "b"}}}, kind: "Column", want: []string{"a", "b"}},
		"row":    {c: Row{Children: Children{ExplicitList: []string{"c"}}}, kind: "Row", want: []string{"c"}},
		"text":   {c: Text{Text: Bound("/now")}, kind: "Text", want: nil},
		"button": {c: Button{Child: "label"}, kind: "Button", want: []string{"label"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.c.Kind())
			assert.Equal(t, tt.want, tt.c.ChildIDs())
		})
	}
}

func TestDataEntryWireFormat(t *testing.T) {
	msg := DataModelUpdate{
		SurfaceID: "s",
		Path:      "/",
		Contents: []DataEntry{
			NumberEntry("count", 2),
			BoolEntry("ready", false),
			MapEntry("user", StringEntry("name", "")),
			MapEntry("empty"),
		},
	}
	got, err := json.Marshal(msg)
	require.NoError(t, err)

	want := `{"dataModelUpdate":{"surfaceId":"s","path":"/","contents":[` +
		`{"key":"count","valueNumber":2},` +
		`{"key":"ready","valueBoolean":false},` +
		`{"key":"user","valueMap":[{"key":"name","valueString":""}]},` +
		`{"key":"empty","valueMap":[]}]}}`
	assert.JSONEq(t, want, string(got))
}
