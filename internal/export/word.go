package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/lixm/gokao/internal/record"
	"github.com/lixm/gokao/internal/stats"
)

// WordHTML renders the logs and notes as a Word-compatible HTML document.
// Word opens an .doc file containing HTML with the office namespaces as a
// regular document, which keeps the export dependency-free.
func WordHTML(logs []record.SessionLog, notes []record.ReviewNote, targetName string) string {
	var b strings.Builder

	b.WriteString(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word">` + "\n")
	b.WriteString("<head><meta charset=\"utf-8\"><title>" + html.EscapeString(targetName) + "</title></head>\n<body>\n")
	b.WriteString(fmt.Sprintf("<h1>%s — Practice History</h1>\n", html.EscapeString(targetName)))

	b.WriteString("<table border=\"1\" cellspacing=\"0\" cellpadding=\"4\">\n<tr>")
	b.WriteString("<th>Date</th><th>Time</th><th>Total</th><th>Accuracy</th>")
	for _, c := range record.Categories {
		b.WriteString("<th>" + html.EscapeString(c.DisplayName()) + "</th>")
	}
	b.WriteString("</tr>\n")

	for _, log := range logs {
		totals := stats.ComputeTotals([]record.SessionLog{log})
		b.WriteString("<tr>")
		b.WriteString("<td>" + log.Date + "</td>")
		b.WriteString("<td>" + timeOfDay(log.Timestamp) + "</td>")
		b.WriteString(fmt.Sprintf("<td>%d</td>", totals.Questions))
		b.WriteString(fmt.Sprintf("<td>%d%%</td>", stats.Accuracy(totals.Questions, totals.Correct)))
		for _, c := range record.Categories {
			qr := log.Categories[c]
			b.WriteString(fmt.Sprintf("<td>%d/%d/%d</td>", qr.Correct, qr.Total, qr.Duration))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")

	b.WriteString("<h2>Notes</h2>\n")
	if len(notes) == 0 {
		b.WriteString("<p>No notes in range.</p>\n")
	}
	for _, note := range notes {
		b.WriteString(fmt.Sprintf("<p><b>%s %s</b><br>%s</p>\n",
			dayOf(note.Timestamp), timeOfDay(note.Timestamp), html.EscapeString(note.Content)))
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
