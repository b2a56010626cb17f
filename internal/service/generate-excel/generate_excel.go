// Package generate_excel builds the monthly pay reports: DGV spreadsheets
// (100к, 30к, 0к) and confirmation documents in Word (100к, 30к).
package generate_excel

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"alvares/internal/apperr"
	"alvares/internal/calendar"
	"alvares/internal/constants"
	"alvares/internal/grid"
	"alvares/internal/service/attendance"
	generate_word "alvares/internal/service/generate-word"
)

type Kind string

const (
	KindDGV          Kind = "dgv"
	KindConfirmation Kind = "confirmation"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	DOCXContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Report - тип рапорту: вид + категорія ("100", "30", "0").
type Report struct {
	Kind     Kind   `json:"kind"`
	Category string `json:"category"`
}

// AllReports - п'ять рапортів, які створюються за місяць.
var AllReports = []Report{
	{Kind: KindDGV, Category: constants.Category100},
	{Kind: KindDGV, Category: constants.Category30},
	{Kind: KindConfirmation, Category: constants.Category100},
	{Kind: KindConfirmation, Category: constants.Category30},
	{Kind: KindDGV, Category: constants.Category0},
}

func (r Report) Validate() error {
	switch {
	case r.Kind == KindDGV && (r.Category == constants.Category100 || r.Category == constants.Category30 || r.Category == constants.Category0):
		return nil
	case r.Kind == KindConfirmation && (r.Category == constants.Category100 || r.Category == constants.Category30):
		return nil
	default:
		return apperr.NewParse(string(r.Kind)+" "+r.Category, fmt.Errorf("невідомий тип рапорту"))
	}
}

func (r Report) prefix() string {
	if r.Kind == KindConfirmation {
		return "Підтвердження"
	}
	return "ДГВ"
}

func (r Report) SheetName() string {
	return fmt.Sprintf("%s_%sк", r.prefix(), r.Category)
}

// Extension: ДГВ - таблиця, підтвердження - документ Word.
func (r Report) Extension() string {
	if r.Kind == KindConfirmation {
		return ".docx"
	}
	return ".xlsx"
}

func (r Report) ContentType() string {
	if r.Kind == KindConfirmation {
		return DOCXContentType
	}
	return XLSXContentType
}

// FileName - "ДГВ_100к_травень 2025.xlsx", "Підтвердження_30к_травень 2025.docx".
func (r Report) FileName(monthSheet string) string {
	return fmt.Sprintf("%s_%s%s", r.SheetName(), calendar.MonthDisplay(monthSheet), r.Extension())
}

// includeNoPayment: підтвердження містять усіх, ДГВ - без "не виплачувати".
func (r Report) includeNoPayment() bool {
	return r.Kind == KindConfirmation
}

type MonthReader interface {
	ReadMonth(book grid.Workbook, sheetName string) ([]attendance.Soldier, error)
}

type GenerateExcelService struct {
	log       *slog.Logger
	reader    MonthReader
	open      grid.Opener
	tabelPath string
	outputDir string
}

func NewGenerateService(log *slog.Logger, reader MonthReader, open grid.Opener, tabelPath, outputDir string) *GenerateExcelService {
	return &GenerateExcelService{
		log:       log,
		reader:    reader,
		open:      open,
		tabelPath: tabelPath,
		outputDir: outputDir,
	}
}

// ReportResult - підсумок по одному файлу.
type ReportResult struct {
	Report
	Path    string `json:"path,omitempty"`
	Persons int    `json:"persons"`
	Skipped bool   `json:"skipped,omitempty"`
}

func (g *GenerateExcelService) readMonth(monthSheet string) ([]attendance.Soldier, error) {
	book, err := g.open(g.tabelPath)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	return g.reader.ReadMonth(book, monthSheet)
}

// GenerateExcel builds one report in memory and returns it with its file name.
// No soldiers for the report is a LookupError.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, monthSheet string, report Report) ([]byte, string, error) {
	const op = "generate_excel.GenerateExcel"

	if err := report.Validate(); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	soldiers, err := g.readMonth(monthSheet)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	selected := attendance.FilterByCategory(soldiers, report.Category, report.includeNoPayment())
	if len(selected) == 0 {
		return nil, "", fmt.Errorf("%s: %w", op, apperr.NewLookup("військовослужбовці для рапорту", report.SheetName()))
	}

	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	data, err := render(selected, monthSheet, report)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return data, report.FileName(monthSheet), nil
}

// GenerateAll reads the month once and writes every report that has
// soldiers into the output directory. Files are written concurrently.
func (g *GenerateExcelService) GenerateAll(ctx context.Context, monthSheet string, reports []Report) ([]ReportResult, error) {
	const op = "generate_excel.GenerateAll"

	if len(reports) == 0 {
		reports = AllReports
	}
	for _, r := range reports {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	soldiers, err := g.readMonth(monthSheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: output dir: %w", op, err)
	}

	results := make([]ReportResult, len(reports))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, report := range reports {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			results[i] = ReportResult{Report: report}

			selected := attendance.FilterByCategory(soldiers, report.Category, report.includeNoPayment())
			if len(selected) == 0 {
				g.log.Info("немає військовослужбовців для рапорту", slog.String("report", report.SheetName()))
				results[i].Skipped = true
				return nil
			}

			path := filepath.Join(g.outputDir, report.FileName(monthSheet))
			if err := g.write(selected, monthSheet, report, path); err != nil {
				return fmt.Errorf("%s: %w", report.SheetName(), err)
			}

			g.log.Info("рапорт створено", slog.String("path", path), slog.Int("persons", len(selected)))
			results[i].Path = path
			results[i].Persons = len(selected)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return results, nil
}

func (g *GenerateExcelService) write(soldiers []attendance.Soldier, monthSheet string, report Report, path string) error {
	data, err := render(soldiers, monthSheet, report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// render returns the file body: xlsx for DGV, docx for confirmations.
func render(soldiers []attendance.Soldier, monthSheet string, report Report) ([]byte, error) {
	if report.Kind == KindConfirmation {
		var buf bytes.Buffer
		if err := generate_word.WriteConfirmation(&buf, confirmation(soldiers, monthSheet, report.Category)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	f, err := Build(soldiers, monthSheet, report.Category)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// confirmation maps soldiers onto the rows of the confirmation document.
func confirmation(soldiers []attendance.Soldier, monthSheet, category string) generate_word.Confirmation {
	c := generate_word.Confirmation{
		Month:       calendar.MonthDisplay(monthSheet),
		Year:        yearOf(monthSheet),
		Explanation: constants.CategoryExplanations[category],
		Rows:        make([]generate_word.ConfirmationRow, 0, len(soldiers)),
	}

	for i := range soldiers {
		s := &soldiers[i]

		note := ""
		if s.NoPayment() {
			note = constants.NoPaymentPhrase
		}

		c.Rows = append(c.Rows, generate_word.ConfirmationRow{
			Rank:   s.Rank,
			Pib:    s.Pib,
			Period: calendar.PeriodString(attendance.TierDays(s, category)),
			Basis:  basisList(s, category),
			Amount: constants.CategoryAmounts[category],
			Note:   note,
		})
	}

	return c
}

type styles struct {
	title, subtitle, tableHeader, center, left int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	var (
		s   styles
		err error
	)

	specs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 14},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&s.subtitle, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&s.tableHeader, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"CCCCCC"}, Pattern: 1},
			Border:    border,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}},
		{&s.center, &excelize.Style{
			Font:      &excelize.Font{Size: 10},
			Border:    border,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&s.left, &excelize.Style{
			Font:      &excelize.Font{Size: 10},
			Border:    border,
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		}},
	}

	for _, spec := range specs {
		if *spec.dst, err = f.NewStyle(spec.style); err != nil {
			return styles{}, err
		}
	}

	return s, nil
}

// Build lays out the DGV spreadsheet for already filtered soldiers, in tabel order.
func Build(soldiers []attendance.Soldier, monthSheet, category string) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := Report{Kind: KindDGV, Category: category}.SheetName()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("styles: %w", err)
	}

	w := &sheetWriter{f: f, sheet: sheet}

	// 1. Шапка
	month := calendar.MonthDisplay(monthSheet)
	w.set("C1", constants.ReportTitle, st.title)
	w.set("C2", constants.ReportSubtitle, st.subtitle)
	w.set("C3", fmt.Sprintf("за %s місяць", month), st.subtitle)
	w.set("C5", constants.CategoryExplanations[category], 0)

	// 2. Заголовки таблиці
	for i, h := range constants.DGVHeaders {
		w.set(cellName(i+1, constants.ReportHeaderRow), h, st.tableHeader)
	}

	// 3. Дані
	amount := constants.CategoryAmounts[category]
	for i := range soldiers {
		s := &soldiers[i]
		row := constants.ReportHeaderRow + 1 + i
		days := attendance.TierDays(s, category)

		note := ""
		if s.NoPayment() {
			note = constants.NoPaymentPhrase
		}

		w.set(cellName(1, row), i+1, st.center)
		w.set(cellName(2, row), s.Rank, st.left)
		w.set(cellName(3, row), s.Pib, st.left)
		w.set(cellName(4, row), calendar.PeriodString(days), st.left)
		w.set(cellName(5, row), len(days), st.center)
		w.set(cellName(6, row), amount, st.center)
		w.set(cellName(7, row), note, st.left)
	}

	// 4. Ширина колонок і закріплення заголовків
	for i, width := range constants.ReportColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		w.err(f.SetColWidth(sheet, col, col, width))
	}
	w.err(f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      constants.ReportHeaderRow,
		TopLeftCell: cellName(1, constants.ReportHeaderRow+1),
		ActivePane:  "bottomLeft",
	}))

	if w.firstErr != nil {
		f.Close()
		return nil, w.firstErr
	}

	return f, nil
}

// basisList - номери БР через кому для колонки "Підстава".
func basisList(s *attendance.Soldier, category string) string {
	if category == constants.Category30 {
		return calendar.BRList(s.BRNumbers30())
	}
	return calendar.BRList(s.BRNumbers100())
}

func yearOf(monthSheet string) string {
	if i := strings.LastIndex(monthSheet, "_"); i >= 0 {
		return monthSheet[i+1:]
	}
	return ""
}

// sheetWriter запам'ятовує першу помилку excelize, щоб не перевіряти кожну комірку.
type sheetWriter struct {
	f        *excelize.File
	sheet    string
	firstErr error
}

func (w *sheetWriter) set(cell string, value any, style int) {
	w.err(w.f.SetCellValue(w.sheet, cell, value))
	if style != 0 {
		w.err(w.f.SetCellStyle(w.sheet, cell, cell, style))
	}
}

func (w *sheetWriter) err(err error) {
	if err != nil && w.firstErr == nil {
		w.firstErr = err
	}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
