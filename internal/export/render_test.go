package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(content)
	}
	t.Fatalf("part %s missing", name)
	return ""
}

func TestRenderDocx(t *testing.T) {
	sections := []Section{
		{
			Title: "Introduction",
			Blocks: []Block{
				{Kind: BlockParagraph, Text: "Opening words."},
				{Kind: BlockBullet, Level: 1, Text: "a bullet"},
			},
		},
	}

	data, err := RenderDocx("My Document", "A short summary", sections)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc := readPart(t, data, "word/document.xml")
	for _, want := range []string{"My Document", "A short summary", "Subtitle", "Introduction", "Opening words.", "a bullet", "Heading1"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}

	// Text is escaped, not injected as markup.
	data, err = RenderDocx("Tom & Jerry <3", "", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc = readPart(t, data, "word/document.xml")
	if strings.Contains(doc, "Tom & Jerry <3") {
		t.Error("unescaped XML in document body")
	}
	if !strings.Contains(doc, "Tom &amp; Jerry &lt;3") {
		t.Error("expected escaped title text")
	}
}

func TestRenderPptx(t *testing.T) {
	sections := []Section{
		{Title: "Problem", Blocks: []Block{{Kind: BlockBullet, Level: 1, Text: "it is broken"}}},
		{Title: "Solution", Blocks: []Block{{Kind: BlockParagraph, Text: "fix it"}}},
	}

	data, err := RenderPptx("Pitch", "Quarterly review", sections)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	// Slide 1 is the title slide; sections start at slide 2.
	title := readPart(t, data, "ppt/slides/slide1.xml")
	if !strings.Contains(title, "Pitch") {
		t.Error("title slide missing project name")
	}
	if !strings.Contains(title, "Quarterly review") {
		t.Error("title slide missing subtitle")
	}

	slide2 := readPart(t, data, "ppt/slides/slide2.xml")
	if !strings.Contains(slide2, "Problem") || !strings.Contains(slide2, "it is broken") {
		t.Error("section slide missing title or body")
	}

	// Every slide is declared in the content types and presentation parts.
	contentTypes := readPart(t, data, "[Content_Types].xml")
	presentation := readPart(t, data, "ppt/presentation.xml")
	for _, part := range []string{"slide1.xml", "slide2.xml", "slide3.xml"} {
		if !strings.Contains(contentTypes, part) {
			t.Errorf("content types missing %s", part)
		}
	}
	if !strings.Contains(presentation, "sldIdLst") {
		t.Error("presentation missing slide list")
	}
}
