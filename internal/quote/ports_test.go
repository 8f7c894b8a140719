package quote

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DirExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "quotes")
	exporter := NewDirExporter(dir)

	err := exporter.Export([]byte("resumen"), "cotizacion_BOT-103_1.txt")

	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "cotizacion_BOT-103_1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "resumen", string(data))
}

func Test_SessionClipboard(t *testing.T) {
	clipboard := NewSessionClipboard()

	_, ok := clipboard.Read()
	assert.False(t, ok)

	require.NoError(t, clipboard.Write("resumen copiado"))

	text, ok := clipboard.Read()
	assert.True(t, ok)
	assert.Equal(t, "resumen copiado", text)
}
