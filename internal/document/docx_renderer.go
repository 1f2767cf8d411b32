package document

import (
	"bytes"

	"github.com/fumiama/go-docx"
)

// DocxRenderer produces the structured-paragraph format.
type DocxRenderer struct{}

func NewDocxRenderer() *DocxRenderer { return &DocxRenderer{} }

func (r *DocxRenderer) Ext() string { return "docx" }
func (r *DocxRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (r *DocxRenderer) Render(title string, sections []Section) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	// Sizes are half-points.
	w.AddParagraph().AddText(title).Size("32")

	for _, s := range sections {
		w.AddParagraph().AddText(s.Label).Size("24").Color("1F4E79")

		if len(s.Items) > 0 {
			for _, item := range s.Items {
				w.AddParagraph().AddText(item).Size("22")
			}
			continue
		}
		w.AddParagraph().AddText(s.Text).Size("22")
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
