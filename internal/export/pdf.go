package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/stats"
	"github.com/mandolyte/mdtopdf"
)

// MarkdownReport renders a summary report of the given range: overall
// totals, accuracy, streak, weakest category, and a per-session table.
func MarkdownReport(logs []record.SessionLog, notes []record.ReviewNote, target record.ExamTarget, now time.Time) string {
	var b strings.Builder

	totals := stats.ComputeTotals(logs)
	b.WriteString(fmt.Sprintf("# %s — Practice Report\n\n", target.Name))
	b.WriteString(fmt.Sprintf("Exam date: %s (%d days left)\n\n", target.ExamDate, target.DaysLeft(now)))
	b.WriteString(fmt.Sprintf("- Sessions: %d\n", len(logs)))
	b.WriteString(fmt.Sprintf("- Questions: %d\n", totals.Questions))
	b.WriteString(fmt.Sprintf("- Correct: %d (%d%%)\n", totals.Correct, stats.Accuracy(totals.Questions, totals.Correct)))
	b.WriteString(fmt.Sprintf("- Time spent: %d minutes\n", totals.Duration))
	b.WriteString(fmt.Sprintf("- Streak: %d days\n", stats.Streak(logs, now)))
	if weakest, ok := stats.WeakestCategory(logs); ok {
		b.WriteString(fmt.Sprintf("- Weakest category: %s\n", weakest.DisplayName()))
	}
	b.WriteString("\n## Sessions\n\n")

	b.WriteString("| Date | Time | Total | Accuracy |")
	for _, c := range record.Categories {
		b.WriteString(" " + c.DisplayName() + " |")
	}
	b.WriteString("\n|---|---|---|---|")
	for range record.Categories {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, log := range logs {
		logTotals := stats.ComputeTotals([]record.SessionLog{log})
		b.WriteString(fmt.Sprintf("| %s | %s | %d | %d%% |",
			log.Date, timeOfDay(log.Timestamp), logTotals.Questions,
			stats.Accuracy(logTotals.Questions, logTotals.Correct)))
		for _, c := range record.Categories {
			qr := log.Categories[c]
			b.WriteString(fmt.Sprintf(" %d/%d/%d |", qr.Correct, qr.Total, qr.Duration))
		}
		b.WriteString("\n")
	}

	if len(notes) > 0 {
		b.WriteString("\n## Notes\n\n")
		for _, note := range notes {
			b.WriteString(fmt.Sprintf("- **%s %s** %s\n", dayOf(note.Timestamp), timeOfDay(note.Timestamp), note.Content))
		}
	}
	return b.String()
}

// PDF writes the markdown report next to the requested path and converts
// it with mdtopdf. Returns the absolute path of the generated PDF.
func PDF(pdfPath string, logs []record.SessionLog, notes []record.ReviewNote, target record.ExamTarget, now time.Time) (string, error) {
	if !strings.HasSuffix(pdfPath, ".pdf") {
		return "", fmt.Errorf("output file must have .pdf extension: %s", pdfPath)
	}

	markdown := MarkdownReport(logs, notes, target, now)
	markdownPath := strings.TrimSuffix(pdfPath, ".pdf") + ".md"
	if err := os.WriteFile(markdownPath, []byte(markdown), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process([]byte(markdown)); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
