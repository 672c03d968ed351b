package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/entity"
)

// Service renders a MatchReport into spreadsheet-friendly summaries for the
// presentation layer to offer as downloads.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

type summaryRow struct {
	Item        string `csv:"item"`
	Verdict     string `csv:"verdict"`
	Contract    string `csv:"contract"`
	Certificate string `csv:"certificate"`
	Invoice     string `csv:"invoice"`
	Explanation string `csv:"explanation"`
}

func summaryRows(rep entity.MatchReport) []summaryRow {
	rows := make([]summaryRow, 0, len(rep.Results)+1)
	for _, r := range rep.Results {
		item := strings.ToLower(string(r.Kind))
		if r.Rule != "" {
			item = r.Rule
		}
		rows = append(rows, summaryRow{
			Item:        item,
			Verdict:     string(r.Verdict),
			Contract:    r.Values[constants.RoleContract],
			Certificate: r.Values[constants.RoleCertificate],
			Invoice:     r.Values[constants.RoleInvoice],
			Explanation: r.Explanation,
		})
	}
	overall := "NOT MATCHED"
	if rep.FullyMatched {
		overall = "MATCHED"
	}
	rows = append(rows, summaryRow{
		Item:        "overall",
		Verdict:     overall,
		Explanation: fmt.Sprintf("generated at %s", rep.GeneratedAt.UTC().Format(time.RFC3339)),
	})
	return rows
}

// SummaryXLSX returns an XLSX workbook with one row per match result plus
// an overall row.
func (s *Service) SummaryXLSX(rep entity.MatchReport) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Summary"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Item", "Verdict", "Contract", "Certificate", "Invoice", "Explanation"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range summaryRows(rep) {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Item)
		write(2, r.Verdict)
		write(3, r.Contract)
		write(4, r.Certificate)
		write(5, r.Invoice)
		write(6, r.Explanation)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Debug("summary xlsx built",
		"report_id", rep.ID,
		"rows", len(rep.Results)+1,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// SummaryCSV returns the same summary as CSV bytes.
func (s *Service) SummaryCSV(rep entity.MatchReport) ([]byte, error) {
	rows := summaryRows(rep)
	b, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("marshal csv: %w", err)
	}
	return b, nil
}
