package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// DocxContentType is the MIME type of a rendered .docx stream.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Section is one content item prepared for export: its title plus the
// blocks parsed from its text.
type Section struct {
	Title  string
	Blocks []Block
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:rPr><w:b/><w:sz w:val="56"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Subtitle"><w:name w:val="Subtitle"/><w:rPr><w:i/><w:sz w:val="28"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:rPr><w:b/><w:sz w:val="28"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:rPr><w:b/><w:sz w:val="26"/></w:rPr></w:style>
</w:styles>`

// RenderDocx builds a minimal WordprocessingML package: a title paragraph,
// an optional subtitle, then each section as a level-1 heading followed by
// its blocks.
func RenderDocx(title, subtitle string, sections []Section) ([]byte, error) {
	var body strings.Builder

	writeStyledParagraph(&body, "Title", title)
	if subtitle != "" {
		writeStyledParagraph(&body, "Subtitle", subtitle)
	}

	for _, section := range sections {
		writeStyledParagraph(&body, "Heading1", section.Title)
		for _, block := range section.Blocks {
			switch block.Kind {
			case BlockHeading:
				writeStyledParagraph(&body, headingStyle(block.Level), block.Text)
			case BlockBullet:
				writeBulletParagraph(&body, block.Level, block.Text)
			default:
				writeStyledParagraph(&body, "", block.Text)
			}
		}
	}

	document := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>%s</w:body>
</w:document>`, body.String())

	parts := []zipPart{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStyles},
		{"word/document.xml", document},
	}
	return writeZip(parts)
}

func headingStyle(level int) string {
	// Item content headings nest under the section's Heading1.
	switch {
	case level <= 1:
		return "Heading2"
	default:
		return "Heading3"
	}
}

func writeStyledParagraph(sb *strings.Builder, styleID, text string) {
	sb.WriteString("<w:p>")
	if styleID != "" {
		fmt.Fprintf(sb, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, styleID)
	}
	writeRun(sb, text)
	sb.WriteString("</w:p>")
}

func writeBulletParagraph(sb *strings.Builder, depth int, text string) {
	if depth < 1 {
		depth = 1
	}
	indent := 360 * depth // twentieths of a point
	sb.WriteString("<w:p>")
	fmt.Fprintf(sb, `<w:pPr><w:ind w:left="%d"/></w:pPr>`, indent)
	writeRun(sb, "• "+text)
	sb.WriteString("</w:p>")
}

func writeRun(sb *strings.Builder, text string) {
	fmt.Fprintf(sb, `<w:r><w:t xml:space="preserve">%s</w:t></w:r>`, escapeXML(text))
}

type zipPart struct {
	name string
	data string
}

func writeZip(parts []zipPart) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize package: %w", err)
	}
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
