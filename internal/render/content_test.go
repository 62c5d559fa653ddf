package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/diario/internal/model"
)

func plain(lines []string) string {
	return ansi.Strip(strings.Join(lines, "\n"))
}

func TestEntryLines_DescriptionOnly(t *testing.T) {
	entry := model.Entry{Description: "Solo la descripción"}

	got := plain(EntryLines(entry, 80))
	assert.Equal(t, got, "Solo la descripción")
}

func TestEntryLines_DescriptionThenContent(t *testing.T) {
	entry := model.Entry{Description: "Resumen", Content: "<p>Detalle</p>"}

	assert.DeepEqual(t, strings.Split(plain(EntryLines(entry, 80)), "\n"), []string{"Resumen", "", "Detalle"})
}

func TestEntryLines_ContentOnly(t *testing.T) {
	entry := model.Entry{Content: "<p>Detalle</p>"}

	assert.Equal(t, plain(EntryLines(entry, 80)), "Detalle")
}

func TestEntryLines_EmptyEntry(t *testing.T) {
	assert.Assert(t, is.Len(EntryLines(model.Entry{}, 80), 0))
}

func TestFragmentLines_CommonElements(t *testing.T) {
	raw := `<h4>Conceptos Clave</h4>
		<p>Tipos de datos <strong>personalizados</strong> en SQL Server.</p>
		<ul><li><strong>Herencia</strong>: Clases heredan atributos</li><li>Polimorfismo</li></ul>
		<ol><li>Crear tipo</li><li>Crear tabla</li></ol>
		<pre><code>CREATE TYPE Telefono
  FROM varchar(20);</code></pre>`

	got := plain(FragmentLines(raw, 80))

	for _, want := range []string{
		"▌ Conceptos Clave",
		"Tipos de datos personalizados en SQL Server.",
		"• Herencia: Clases heredan atributos",
		"• Polimorfismo",
		"1. Crear tipo",
		"2. Crear tabla",
		"    CREATE TYPE Telefono",
		"      FROM varchar(20);",
	} {
		assert.Assert(t, is.Contains(got, want))
	}
}

func TestFragmentLines_BlocksSeparatedByBlankLine(t *testing.T) {
	lines := FragmentLines("<p>uno</p><p>dos</p>", 80)

	assert.DeepEqual(t, lines, []string{"uno", "", "dos"})
}

func TestFragmentLines_WrapsToWidth(t *testing.T) {
	raw := "<p>Sistema donde los datos se almacenan en múltiples nodos conectados por red</p>" +
		"<ul><li>Ejecución en diferentes nodos para reducir tiempo de respuesta</li></ul>"

	lines := FragmentLines(raw, 20)

	assert.Assert(t, len(lines) > 3)
	for _, line := range lines {
		assert.Assert(t, ansi.StringWidth(line) <= 20, "line too wide: %q", line)
	}
}

func TestFragmentLines_ListContinuationIndented(t *testing.T) {
	lines := FragmentLines("<ul><li>alfa beta gamma delta</li></ul>", 12)

	assert.Assert(t, len(lines) >= 2)
	assert.Assert(t, strings.HasPrefix(ansi.Strip(lines[0]), "• "))
	assert.Assert(t, strings.HasPrefix(ansi.Strip(lines[1]), "  "))
}

func TestFragmentLines_NestedList(t *testing.T) {
	got := plain(FragmentLines("<ul><li>padre<ul><li>hijo</li></ul></li></ul>", 80))

	assert.Assert(t, is.Contains(got, "• padre"))
	assert.Assert(t, is.Contains(got, "  ◦ hijo"))
}

func TestFragmentLines_BreakBecomesNewline(t *testing.T) {
	lines := FragmentLines("<p>línea uno<br>línea dos</p>", 80)

	assert.DeepEqual(t, lines, []string{"línea uno", "línea dos"})
}

func TestFragmentLines_DropsScripts(t *testing.T) {
	got := plain(FragmentLines("<p>visible</p><script>alert(1)</script>", 80))

	assert.Equal(t, got, "visible")
}

func TestFragmentLines_NoWrapWhenWidthUnset(t *testing.T) {
	long := strings.Repeat("palabra ", 40)
	lines := FragmentLines("<p>"+long+"</p>", 0)

	assert.Equal(t, len(lines), 1)
}

func TestPlainText(t *testing.T) {
	got := PlainText("<h3>Título</h3><p><em>Nota</em> importante</p>")

	assert.Equal(t, got, "▌ Título\n\nNota importante")
}
