// Package report renders the outcome journal as a PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/util"
	"github.com/go-pdf/fpdf"
)

// Summary tallies journal entries per screen and outcome.
type Summary struct {
	Total    int
	ByScreen map[string]map[models.Outcome]int
}

func Summarize(records []models.OutcomeRecord) Summary {
	s := Summary{ByScreen: make(map[string]map[models.Outcome]int)}
	for _, r := range records {
		if s.ByScreen[r.Screen] == nil {
			s.ByScreen[r.Screen] = make(map[models.Outcome]int)
		}
		s.ByScreen[r.Screen][r.Outcome]++
		s.Total++
	}
	return s
}

// Screens returns the screens present in the summary, sorted.
func (s Summary) Screens() []string {
	out := make([]string, 0, len(s.ByScreen))
	for screen := range s.ByScreen {
		out = append(out, screen)
	}
	sort.Strings(out)
	return out
}

// Generate writes a PDF report of records to w.
func Generate(w io.Writer, records []models.OutcomeRecord, at time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Conciergerie activity report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Activity Report: %s", at.Format("2006-01-02")))
	pdf.Ln(12)

	sum := Summarize(records)

	// Summary
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Total outcomes: %d", sum.Total))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if sum.Total == 0 {
		pdf.Cell(0, 8, "  - Nothing recorded yet.")
		pdf.Ln(8)
	}
	for _, screen := range sum.Screens() {
		counts := sum.ByScreen[screen]
		outcomes := make([]string, 0, len(counts))
		for o := range counts {
			outcomes = append(outcomes, string(o))
		}
		sort.Strings(outcomes)
		parts := make([]string, len(outcomes))
		for i, o := range outcomes {
			parts[i] = fmt.Sprintf("%s %d", o, counts[models.Outcome(o)])
		}
		pdf.Cell(0, 8, fmt.Sprintf("  %s: %s", screen, strings.Join(parts, ", ")))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	// Journal
	if len(records) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Journal")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, r := range records {
			line := fmt.Sprintf("[%s] %s/%s  %s", r.CreatedAt.Local().Format("01-02 15:04"), r.Screen, r.Outcome, plain(r.Title))
			if id := util.Deref(r.ItemID); id != "" {
				line += " (#" + id + ")"
			}
			if body := plain(r.Body); body != "" {
				line += " - " + body
			}
			pdf.MultiCell(0, 7, line, "", "", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteFile writes the report into dir and returns its path.
func WriteFile(dir string, records []models.OutcomeRecord, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", at.Format("2006-01-02")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := Generate(f, records, at); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}

// plain drops runes the core PDF fonts cannot draw.
func plain(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
