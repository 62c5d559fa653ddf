package exporter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nikbrunner/diario/internal/model"
)

func newCatalog(t *testing.T, entries ...model.Entry) *model.Catalog {
	t.Helper()
	c, err := model.NewCatalog(model.Journal{
		Info: model.Info{
			Title:       "Diario de Base de Datos Avanzada",
			Author:      "Autor",
			Role:        "Estudiante",
			Institution: "Universidad",
			Term:        "II Cuatrimestre 2025",
			Footer:      "Pie de página",
		},
		Entries: entries,
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestDefaultExportPath(t *testing.T) {
	path := DefaultExportPath("/tmp/out")

	want := filepath.Join("/tmp/out", "diario-"+time.Now().Format("2006-01-02")+".html")
	if path != want {
		t.Errorf("expected %q, got %q", want, path)
	}
}

func TestExportHTML_Chrome(t *testing.T) {
	c := newCatalog(t, model.Entry{ID: 1, Title: "Semana uno", Status: model.StatusCompleted})

	html := ExportHTML(c)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Diario de Base de Datos Avanzada</title>",
		"<h1>Diario de Base de Datos Avanzada</h1>",
		"Estudiante · Universidad · II Cuatrimestre 2025",
		"<h2>Semanas del Cuatrimestre</h2>",
		"<footer>Pie de página</footer>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in export", want)
		}
	}
}

func TestExportHTML_EntryCard(t *testing.T) {
	c := newCatalog(t, model.Entry{
		ID:          1,
		Title:       "GraphQL con Apollo Server",
		Subtitle:    "Implementación práctica",
		Description: "Construcción de un servidor",
		Tags:        []string{"GraphQL", "Node.js"},
		Status:      model.StatusExam,
		Content:     "<h4>Servidor</h4><p>Detalle</p>",
	})

	html := ExportHTML(c)

	for _, want := range []string{
		`id="semana-1"`,
		"Semana 1",
		"<h3>GraphQL con Apollo Server</h3>",
		"<em>Implementación práctica</em>",
		`<span class="tag">GraphQL</span><span class="tag">Node.js</span>`,
		">Examen</span>",
		"<details>",
		"<h4>Servidor</h4><p>Detalle</p>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in export", want)
		}
	}
}

func TestExportHTML_EscapesText(t *testing.T) {
	c := newCatalog(t, model.Entry{ID: 1, Title: "<script>x</script>", Tags: []string{"a&b"}})

	html := ExportHTML(c)

	if strings.Contains(html, "<script>x</script>") {
		t.Error("expected title to be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;x&lt;/script&gt;") {
		t.Error("expected escaped title")
	}
	if !strings.Contains(html, "a&amp;b") {
		t.Error("expected escaped tag")
	}
}

func TestExportHTML_SanitizesContent(t *testing.T) {
	c := newCatalog(t, model.Entry{
		ID:    1,
		Title: "X",
		Content: `<p onclick="steal()">Hola <strong>mundo</strong> 1 &lt; 2</p>` +
			`<script>alert(1)</script><img src=x onerror="y()"><br/>` +
			`<!-- nota --><a href="javascript:z()">enlace</a><style>p{}</style>`,
	})

	html := ExportHTML(c)

	if !strings.Contains(html, "<p>Hola <strong>mundo</strong> 1 &lt; 2</p><br>enlace") {
		t.Errorf("expected formatting kept and text escaped, got:\n%s", html)
	}
	for _, unwanted := range []string{"onclick", "steal", "<script", "alert", "<img", "onerror", "nota", "javascript", "<a ", "p{}"} {
		if strings.Contains(html, unwanted) {
			t.Errorf("unexpected %q in export", unwanted)
		}
	}
}

func TestExportHTML_ScriptOnlyContentHasNoDetails(t *testing.T) {
	c := newCatalog(t, model.Entry{ID: 1, Title: "X", Content: "<script>alert(1)</script>"})

	html := ExportHTML(c)

	if strings.Contains(html, "<details>") || strings.Contains(html, "alert") {
		t.Error("expected script-only content to be dropped")
	}
}

func TestExportHTML_UnknownStatusBadge(t *testing.T) {
	c := newCatalog(t, model.Entry{ID: 1, Title: "X", Status: model.Status("cancelled")})

	html := ExportHTML(c)

	if !strings.Contains(html, ">Sin estado</span>") {
		t.Error("expected fallback badge label")
	}
}

func TestExportHTML_NoContentNoDetails(t *testing.T) {
	c := newCatalog(t, model.Entry{ID: 1, Title: "X"})

	html := ExportHTML(c)

	if strings.Contains(html, "<details>") {
		t.Error("expected no details block without content")
	}
}

func TestExportHTML_EntriesInOrder(t *testing.T) {
	c := newCatalog(t,
		model.Entry{ID: 2, Title: "Segunda"},
		model.Entry{ID: 1, Title: "Primera"},
		model.Entry{ID: 3, Title: "Tercera"},
	)

	html := ExportHTML(c)

	first := strings.Index(html, "Primera")
	second := strings.Index(html, "Segunda")
	third := strings.Index(html, "Tercera")
	if !(first < second && second < third) {
		t.Errorf("expected entries in id order, got %d %d %d", first, second, third)
	}
}
