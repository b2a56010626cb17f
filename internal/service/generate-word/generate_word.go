// Package generate_word renders the BR document from a .docx template.
package generate_word

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"alvares/internal/calendar"
	"alvares/internal/constants"
	"alvares/internal/pib"
	"alvares/internal/service/roster"
)

type WordRenderer struct {
	log          *slog.Logger
	templatePath string
	br4ShBPath   string
	outputDir    string
}

// NewWordRenderer: br4ShBPath may be empty, then {{бр}} gets the day number label.
func NewWordRenderer(log *slog.Logger, templatePath, br4ShBPath, outputDir string) *WordRenderer {
	return &WordRenderer{
		log:          log,
		templatePath: templatePath,
		br4ShBPath:   br4ShBPath,
		outputDir:    outputDir,
	}
}

// FileName - "БР_01_05_2025.docx".
func FileName(c *roster.Composition) string {
	return "БР_" + c.BRDate.Format("02_01_2006") + ".docx"
}

// Render writes output/БР_dd_mm_yyyy.docx for the composition.
func (w *WordRenderer) Render(ctx context.Context, c *roster.Composition) (string, error) {
	const op = "generate_word.Render"

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, err := os.Stat(w.templatePath); err != nil {
		return "", fmt.Errorf("%s: шаблон: %w", op, err)
	}

	br4ShB := calendar.DayNumberLabel(c.TabelDate)
	if w.br4ShBPath != "" {
		num, err := LookupBR4ShB(w.br4ShBPath, c.TabelDate)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		br4ShB = num
	}

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("%s: output dir: %w", op, err)
	}

	path := filepath.Join(w.outputDir, FileName(c))
	fill := newFiller(c, br4ShB)

	if err := copyDocx(w.templatePath, path, func(doc string) string {
		return rewriteDocument(doc, fill.paragraph)
	}); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	w.log.Debug("БР збережено", slog.String("path", path), slog.Int("members", len(c.All())))
	return path, nil
}

type filler struct {
	replacer *strings.Replacer
	ack      []roster.Member
}

func newFiller(c *roster.Composition, br4ShB string) *filler {
	brDate := calendar.FormatDate(c.BRDate)

	pairs := []string{
		constants.PlaceholderBR4ShB, br4ShB,
		constants.PlaceholderBRDate, brDate,
		constants.PlaceholderExecutionDate, calendar.FormatDate(c.TabelDate),
		constants.PlaceholderDayNumber, fmt.Sprintf("№%d", c.TabelDate.YearDay()),
		constants.PlaceholderFromDate, "від " + brDate + " р.",
	}

	for _, role := range constants.DefaultRoles {
		pairs = append(pairs, constants.RolePlaceholders[role], roleValue(c.Members(role)))
	}

	ack := c.All()
	if len(ack) == 0 {
		pairs = append(pairs, constants.PlaceholderAckList, constants.EmptyValue)
	}

	return &filler{replacer: strings.NewReplacer(pairs...), ack: ack}
}

func roleValue(members []roster.Member) string {
	if len(members) == 0 {
		return constants.EmptyValue
	}

	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, pib.DocumentFormat(m.Pib, m.Rank))
	}
	return strings.Join(parts, ", ")
}

func (f *filler) paragraph(p, text string) (string, bool) {
	if len(f.ack) > 0 && strings.Contains(text, constants.PlaceholderAckList) {
		return f.ackList(), true
	}

	replaced := f.replacer.Replace(text)
	if replaced == text {
		return "", false
	}
	return rewriteParagraph(p, replaced), true
}

// ackList - окремий абзац на кожного учасника замість {{ACK_LIST}}.
func (f *filler) ackList() string {
	var b strings.Builder
	for _, m := range f.ack {
		b.WriteString(ackParagraph(m.Rank, constants.AckSignatureLine, pib.TableFormat(m.Pib, ""), constants.AckTabCenter, constants.AckTabRight))
	}
	return b.String()
}
