package exporter

import (
	"fmt"
	"html"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/diario/internal/model"
)

// DefaultExportPath returns the default export file path inside dir.
// Format: <dir>/diario-YYYY-MM-DD.html
func DefaultExportPath(dir string) string {
	filename := fmt.Sprintf("diario-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(dir, filename)
}

// badgeColors maps a status to its badge background and text colours.
var badgeColors = map[model.Status][2]string{
	model.StatusCompleted:  {"#dcfce7", "#166534"},
	model.StatusInProgress: {"#dbeafe", "#1e40af"},
	model.StatusUpcoming:   {"#f3f4f6", "#1f2937"},
	model.StatusExam:       {"#fef9c3", "#854d0e"},
}

func badgeStyle(s model.Status) string {
	colors, ok := badgeColors[s]
	if !ok {
		colors = badgeColors[model.StatusUpcoming]
	}
	return fmt.Sprintf("background:%s;color:%s", colors[0], colors[1])
}

const pageStyle = `body{font-family:system-ui,sans-serif;background:#f8fafc;color:#1f2937;margin:0}
header,main,footer{max-width:64rem;margin:0 auto;padding:1.5rem}
header{border-bottom:1px solid #e5e7eb}
.profile{color:#4b5563}
.card{background:#fff;border:1px solid #e5e7eb;border-radius:.75rem;padding:1rem 1.5rem;margin-bottom:1rem}
.week{font-size:.75rem;font-weight:600;color:#6b7280;text-transform:uppercase}
.badge{font-size:.75rem;padding:.125rem .5rem;border-radius:9999px;float:right}
.tag{display:inline-block;font-size:.75rem;background:#eef2ff;color:#3730a3;padding:.125rem .5rem;border-radius:.375rem;margin:0 .25rem .25rem 0}
pre{background:#111827;color:#e5e7eb;padding:.75rem;border-radius:.5rem;overflow-x:auto}
footer{color:#6b7280;font-size:.875rem;text-align:center}`

// ExportHTML renders the catalog as a self-contained HTML page.
// Entry content is reduced to a small set of formatting tags first, so a
// catalog from elsewhere cannot inject scripts or attributes.
func ExportHTML(c *model.Catalog) string {
	var b strings.Builder
	info := c.Info()

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"es\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(info.Title))
	fmt.Fprintf(&b, "<style>\n%s\n</style>\n", pageStyle)
	b.WriteString("</head>\n<body>\n")

	// Header and profile
	b.WriteString("<header>\n")
	fmt.Fprintf(&b, "  <h1>%s</h1>\n", html.EscapeString(info.Title))
	if info.Author != "" {
		fmt.Fprintf(&b, "  <p class=\"author\">%s</p>\n", html.EscapeString(info.Author))
	}
	if profile := info.Profile(); profile != "" {
		fmt.Fprintf(&b, "  <p class=\"profile\">%s</p>\n", html.EscapeString(profile))
	}
	b.WriteString("</header>\n")

	b.WriteString("<main>\n")
	b.WriteString("  <h2>Semanas del Cuatrimestre</h2>\n")
	for _, e := range c.Entries() {
		writeEntry(&b, e)
	}
	b.WriteString("</main>\n")

	if info.Footer != "" {
		fmt.Fprintf(&b, "<footer>%s</footer>\n", html.EscapeString(info.Footer))
	}
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

func writeEntry(b *strings.Builder, e model.Entry) {
	fmt.Fprintf(b, "  <article class=\"card\" id=\"semana-%d\">\n", e.ID)
	fmt.Fprintf(b, "    <span class=\"badge\" style=\"%s\">%s</span>\n", badgeStyle(e.Status), html.EscapeString(e.Status.Label()))
	fmt.Fprintf(b, "    <div class=\"week\">Semana %d</div>\n", e.ID)
	fmt.Fprintf(b, "    <h3>%s</h3>\n", html.EscapeString(e.Title))
	if e.Subtitle != "" {
		fmt.Fprintf(b, "    <p><em>%s</em></p>\n", html.EscapeString(e.Subtitle))
	}
	fmt.Fprintf(b, "    <p>%s</p>\n", html.EscapeString(e.Description))

	if len(e.Tags) > 0 {
		b.WriteString("    <div class=\"tags\">")
		for _, tag := range e.Tags {
			fmt.Fprintf(b, "<span class=\"tag\">%s</span>", html.EscapeString(tag))
		}
		b.WriteString("</div>\n")
	}

	if content := strings.TrimSpace(sanitizeContent(e.Content)); content != "" {
		b.WriteString("    <details>\n      <summary>Ver detalles</summary>\n")
		b.WriteString(content)
		b.WriteString("\n    </details>\n")
	}
	b.WriteString("  </article>\n")
}
