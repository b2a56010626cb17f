package generate_word

import (
	"archive/zip"
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alvares/internal/constants"
)

var (
	tableRowRe  = regexp.MustCompile(`(?s)<w:tr>.*?</w:tr>`)
	tableCellRe = regexp.MustCompile(`(?s)<w:tc>.*?</w:tc>`)
)

func TestWriteConfirmation(t *testing.T) {
	c := Confirmation{
		Month:       "травень 2025",
		Year:        "2025",
		Explanation: constants.CategoryExplanations[constants.Category100],
		Rows: []ConfirmationRow{
			{Rank: "сержант", Pib: "Коваленко Іван", Period: "з 01.05.2025 по 03.05.2025", Basis: "№121 від 30.04.2025, №122 від 01.05.2025", Amount: "100 000"},
			{Rank: "солдат", Pib: "Бондар Олег <Петрович>", Period: "05.05.2025", Basis: "№125 від 04.05.2025", Amount: "100 000", Note: "не виплачувати"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteConfirmation(&buf, c))

	// 1. Пакет містить обов'язкові частини
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var names []string
	var doc string
	for _, f := range zr.File {
		names = append(names, f.Name)
		if f.Name == documentPart {
			doc, err = readPart(f)
			require.NoError(t, err)
		}
	}
	assert.Equal(t, []string{"[Content_Types].xml", "_rels/.rels", documentPart}, names)

	// 2. Шапка і підпис - окремі абзаци
	var paragraphs []string
	body := tableRowRe.ReplaceAllString(doc, "")
	for _, p := range paragraphRe.FindAllString(body, -1) {
		if text := paragraphText(p); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	assert.Equal(t, []string{
		constants.ReportTitle,
		constants.ReportSubtitle,
		"за травень 2025 місяць",
		c.Explanation,
		constants.ConfirmationSignature[0],
		constants.ConfirmationSignature[1],
		"«___» ___________ 2025 р.",
	}, paragraphs)
	assert.Contains(t, doc, `<w:jc w:val="center"/>`)

	// 3. Таблиця: заголовок + по рядку на бійця
	var rows [][]string
	for _, tr := range tableRowRe.FindAllString(doc, -1) {
		var cells []string
		for _, tc := range tableCellRe.FindAllString(tr, -1) {
			cells = append(cells, paragraphText(tc))
		}
		rows = append(rows, cells)
	}

	require.Len(t, rows, 3)
	assert.Equal(t, constants.ConfirmationHeaders, rows[0])
	assert.Equal(t, []string{"1", "сержант", "Коваленко Іван", "з 01.05.2025 по 03.05.2025", "№121 від 30.04.2025, №122 від 01.05.2025", "100 000", ""}, rows[1])
	assert.Equal(t, []string{"2", "солдат", "Бондар Олег <Петрович>", "05.05.2025", "№125 від 04.05.2025", "100 000", "не виплачувати"}, rows[2])
	assert.Contains(t, doc, "&lt;Петрович&gt;")
}

func TestWriteConfirmation_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteConfirmation(&buf, Confirmation{Month: "червень 2025", Year: "2025"}))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var doc string
	for _, f := range zr.File {
		if f.Name == documentPart {
			doc, err = readPart(f)
			require.NoError(t, err)
		}
	}

	assert.Len(t, tableRowRe.FindAllString(doc, -1), 1)
	assert.Contains(t, doc, "<w:sectPr>")
}
