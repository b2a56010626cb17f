package generate_word

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"os"
	"regexp"
	"strings"
)

const documentPart = "word/document.xml"

// Абзац, текст і run у WordprocessingML. Вкладені абзаци (написи) не підтримуються.
var (
	paragraphRe = regexp.MustCompile(`(?s)<w:p(?:\s[^>]*?)?(?:/>|>.*?</w:p>)`)
	pOpenRe     = regexp.MustCompile(`^<w:p(?:\s[^>]*?)?>`)
	pPrRe       = regexp.MustCompile(`(?s)<w:pPr>.*?</w:pPr>|<w:pPr/>`)
	runRe       = regexp.MustCompile(`(?s)<w:r(?:\s[^>]*?)?>.*?</w:r>`)
	rPrRe       = regexp.MustCompile(`(?s)<w:rPr>.*?</w:rPr>`)
	textRe      = regexp.MustCompile(`(?s)<w:t(?:\s[^>]*?)?>(.*?)</w:t>`)
)

// defaultRunProps - Times New Roman 12, якщо в абзаці не було власного форматування.
const defaultRunProps = `<w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman" w:cs="Times New Roman" w:eastAsia="Times New Roman"/><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr>`

// paragraphText joins the text of every run, as Word shows it.
func paragraphText(p string) string {
	var b strings.Builder
	for _, m := range textRe.FindAllStringSubmatch(p, -1) {
		b.WriteString(html.UnescapeString(m[1]))
	}
	return b.String()
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// firstRunProps returns the rPr of the first run outside the paragraph properties.
func firstRunProps(p string) string {
	body := pPrRe.ReplaceAllString(p, "")
	run := runRe.FindString(body)
	if run == "" {
		return defaultRunProps
	}
	if rPr := rPrRe.FindString(run); rPr != "" {
		return rPr
	}
	return defaultRunProps
}

func textRun(rPr, text string, lineBreak bool) string {
	var b strings.Builder
	b.WriteString("<w:r>")
	b.WriteString(rPr)
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escape(text))
	b.WriteString("</w:t>")
	if lineBreak {
		b.WriteString("<w:br/>")
	}
	b.WriteString("</w:r>")
	return b.String()
}

// rewriteParagraph replaces all runs of p by runs holding text. "\n" becomes
// a line break; paragraph properties and the first run's format are kept.
func rewriteParagraph(p, text string) string {
	open := pOpenRe.FindString(p)
	if open == "" {
		open = "<w:p>"
	}
	pPr := pPrRe.FindString(p)
	rPr := firstRunProps(p)

	var b strings.Builder
	b.WriteString(open)
	b.WriteString(pPr)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		b.WriteString(textRun(rPr, line, i < len(lines)-1))
	}

	b.WriteString("</w:p>")
	return b.String()
}

// ackParagraph - рядок аркуша доведення з табуляціями по центру і праворуч.
func ackParagraph(rank, signature, name string, center, right int) string {
	var b strings.Builder
	b.WriteString("<w:p><w:pPr><w:tabs>")
	fmt.Fprintf(&b, `<w:tab w:val="center" w:pos="%d" w:leader="none"/>`, center)
	fmt.Fprintf(&b, `<w:tab w:val="right" w:pos="%d" w:leader="none"/>`, right)
	b.WriteString(`</w:tabs><w:jc w:val="left"/><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr>`)

	b.WriteString(textRun(defaultRunProps, rank, false))
	b.WriteString("<w:r><w:tab/></w:r>")
	b.WriteString(textRun(defaultRunProps, signature, false))
	b.WriteString("<w:r><w:tab/></w:r>")
	b.WriteString(textRun(defaultRunProps, name, false))

	b.WriteString("</w:p>")
	return b.String()
}

// paragraphFunc returns the replacement for a paragraph and whether it changed.
type paragraphFunc func(p, text string) (string, bool)

func rewriteDocument(doc string, fn paragraphFunc) string {
	return paragraphRe.ReplaceAllStringFunc(doc, func(p string) string {
		text := paragraphText(p)
		if text == "" {
			return p
		}
		if out, ok := fn(p, text); ok {
			return out
		}
		return p
	})
}

// copyDocx writes template to dst with word/document.xml passed through edit.
func copyDocx(template, dst string, edit func(doc string) string) (err error) {
	r, err := zip.OpenReader(template)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer r.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(dst)
		}
	}()

	w := zip.NewWriter(out)

	found := false
	for _, f := range r.File {
		if f.Name != documentPart {
			if err := w.Copy(f); err != nil {
				return fmt.Errorf("copy %s: %w", f.Name, err)
			}
			continue
		}

		found = true
		doc, err := readPart(f)
		if err != nil {
			return err
		}

		part, err := w.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate, Modified: f.Modified})
		if err != nil {
			return err
		}
		if _, err := io.WriteString(part, edit(doc)); err != nil {
			return err
		}
	}

	if !found {
		return fmt.Errorf("template has no %s", documentPart)
	}

	return w.Close()
}

func readPart(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
