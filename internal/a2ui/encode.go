package a2ui

import "github.com/BerylCAtieno/a2ui-agent/internal/stamp"

const (
	// MIMEType marks message parts that carry A2UI payloads.
	MIMEType = "application/json+a2ui"

	// StandardCatalogID identifies the v0.8 standard component catalog.
	StandardCatalogID = "https://a2ui.org/specification/v0_8/standard_catalog_definition.json"

	SurfaceID = "main"
	RootID    = "root"
	TitleID   = "title_text"
	NowKey    = "now"
)

// Encode builds the demonstration surface headed by title, stamped with the
// current time.
func Encode(title string) []Message {
	return EncodeAt(title, stamp.Now())
}

// EncodeAt builds the demonstration surface: a column holding an h3 title
// and a row of OK/Cancel buttons, a data model with "now" set to now, and
// the render signal for the column.
func EncodeAt(title, now string) []Message {
	return []Message{
		SurfaceUpdate{
			SurfaceID: SurfaceID,
			Components: []ComponentInstance{
				{ID: RootID, Component: Column{
					Children: Children{ExplicitList: []string{TitleID, "row_buttons"}},
				}},
				{ID: TitleID, Component: Text{UsageHint: "h3", Text: Literal(title)}},
				{ID: "row_buttons", Component: Row{
					Alignment: "center",
					Children:  Children{ExplicitList: []string{"btn_ok", "btn_cancel"}},
				}},
				{ID: "btn_ok_text", Component: Text{Text: Literal("OK")}},
				{ID: "btn_ok", Component: Button{Child: "btn_ok_text", Action: Action{Name: "clicked_ok"}}},
				{ID: "btn_cancel_text", Component: Text{Text: Literal("Cancel")}},
				{ID: "btn_cancel", Component: Button{Child: "btn_cancel_text", Action: Action{Name: "clicked_cancel"}}},
			},
		},
		DataModelUpdate{
			SurfaceID: SurfaceID,
			Path:      "/",
			Contents:  []DataEntry{StringEntry(NowKey, now)},
		},
		BeginRendering{
			SurfaceID: SurfaceID,
			Root:      RootID,
			CatalogID: StandardCatalogID,
		},
	}
}
