package generate_word

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"alvares/internal/constants"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	documentHead = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

	// A4 книжкова, поля 1.5 см
	sectionProps = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="850" w:right="850" w:bottom="850" w:left="850" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr>`

	documentTail = `</w:body></w:document>`

	boldRunProps  = `<w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman" w:eastAsia="Times New Roman"/><w:b/><w:bCs/><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr>`
	titleRunProps = `<w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman" w:eastAsia="Times New Roman"/><w:b/><w:bCs/><w:sz w:val="28"/><w:szCs w:val="28"/></w:rPr>`
	cellRunProps  = `<w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman" w:eastAsia="Times New Roman"/><w:sz w:val="20"/><w:szCs w:val="20"/></w:rPr>`
	cellBoldProps = `<w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman" w:eastAsia="Times New Roman"/><w:b/><w:bCs/><w:sz w:val="20"/><w:szCs w:val="20"/></w:rPr>`
)

// ConfirmationRow - рядок таблиці відомості.
type ConfirmationRow struct {
	Rank   string
	Pib    string
	Period string
	Basis  string
	Amount string
	Note   string
}

// Confirmation is the content of a pay confirmation report.
type Confirmation struct {
	Month       string // "травень 2025"
	Year        string
	Explanation string
	Rows        []ConfirmationRow
}

// WriteConfirmation writes the confirmation report as a standalone .docx:
// centred header, category explanation, the 7-column table and the
// commander's signature block.
func WriteConfirmation(w io.Writer, c Confirmation) error {
	const op = "generate_word.WriteConfirmation"

	zw := zip.NewWriter(w)

	parts := []struct {
		name, body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{documentPart, confirmationDocument(c)},
	}

	for _, p := range parts {
		part, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", op, p.name, err)
		}
		if _, err := io.WriteString(part, p.body); err != nil {
			return fmt.Errorf("%s: %s: %w", op, p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func confirmationDocument(c Confirmation) string {
	var b strings.Builder
	b.WriteString(documentHead)

	// 1. Шапка
	b.WriteString(paragraph("center", titleRunProps, constants.ReportTitle))
	b.WriteString(paragraph("center", defaultRunProps, constants.ReportSubtitle))
	b.WriteString(paragraph("center", defaultRunProps, fmt.Sprintf("за %s місяць", c.Month)))
	b.WriteString(paragraph("", defaultRunProps, ""))
	b.WriteString(paragraph("both", defaultRunProps, c.Explanation))
	b.WriteString(paragraph("", defaultRunProps, ""))

	// 2. Таблиця
	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/><w:tblBorders>`)
	for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(&b, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="000000"/>`, side)
	}
	b.WriteString(`</w:tblBorders><w:tblLayout w:type="fixed"/></w:tblPr><w:tblGrid>`)
	for _, width := range constants.ConfirmationColumnTwips {
		fmt.Fprintf(&b, `<w:gridCol w:w="%d"/>`, width)
	}
	b.WriteString(`</w:tblGrid>`)

	b.WriteString(tableRow(constants.ConfirmationHeaders, cellBoldProps, true))
	for i, r := range c.Rows {
		cells := []string{fmt.Sprint(i + 1), r.Rank, r.Pib, r.Period, r.Basis, r.Amount, r.Note}
		b.WriteString(tableRow(cells, cellRunProps, false))
	}
	b.WriteString(`</w:tbl>`)

	// 3. Підпис
	b.WriteString(paragraph("", defaultRunProps, ""))
	for _, line := range constants.ConfirmationSignature {
		b.WriteString(paragraph("right", defaultRunProps, line))
		b.WriteString(paragraph("", defaultRunProps, ""))
	}
	b.WriteString(paragraph("right", defaultRunProps, "«___» ___________ "+c.Year+" р."))

	b.WriteString(sectionProps)
	b.WriteString(documentTail)
	return b.String()
}

// paragraph - абзац з одним run; порожній text дає порожній абзац.
func paragraph(jc, rPr, text string) string {
	var b strings.Builder
	b.WriteString("<w:p>")
	if jc != "" {
		fmt.Fprintf(&b, `<w:pPr><w:jc w:val="%s"/></w:pPr>`, jc)
	}
	if text != "" {
		b.WriteString(textRun(rPr, text, false))
	}
	b.WriteString("</w:p>")
	return b.String()
}

func tableRow(cells []string, rPr string, header bool) string {
	var b strings.Builder
	b.WriteString("<w:tr>")
	if header {
		b.WriteString("<w:trPr><w:tblHeader/></w:trPr>")
	}
	for i, text := range cells {
		width := 0
		if i < len(constants.ConfirmationColumnTwips) {
			width = constants.ConfirmationColumnTwips[i]
		}
		jc := "left"
		if header || i == 0 || i == 5 {
			jc = "center"
		}
		fmt.Fprintf(&b, `<w:tc><w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr>`, width)
		b.WriteString(paragraph(jc, rPr, text))
		b.WriteString("</w:tc>")
	}
	b.WriteString("</w:tr>")
	return b.String()
}
