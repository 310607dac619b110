package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileField(t *testing.T) {
	_, err := CompileField(`Absender:\s*([^\n]+)`, false)
	assert.NoError(t, err)

	_, err = CompileField(`no capture group`, false)
	assert.Error(t, err)

	_, err = CompileField(`(two)(groups)`, false)
	assert.Error(t, err)

	_, err = CompileField(`broken(`, false)
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	p := MustCompileField(`Rechnungs Nr\.:\s*(\d+)`, false)

	v, ok := p.Locate("Rechnungs Nr.: 4711\nAbsender: ACME")
	require.True(t, ok)
	assert.Equal(t, "4711", v)

	_, ok = p.Locate("no invoice number here")
	assert.False(t, ok)
}

func TestLocateSpansLineBreaks(t *testing.T) {
	// Values are frequently pushed onto the next line by text recovery.
	p := MustCompileField(`Seefracht(.*?)EUR`, false)
	v, ok := p.Locate("Seefracht\n  see waybill 123\nEUR 1.000,00")
	require.True(t, ok)
	assert.Equal(t, "see waybill 123", v)
}

func TestLocateFirstMatchOnly(t *testing.T) {
	p := MustCompileField(`Nr\.:\s*(\d+)`, false)
	v, ok := p.Locate("Nr.: 1 and later Nr.: 2")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestLocateCaseInsensitive(t *testing.T) {
	p := MustCompileField(`volumen\s*([\d.,]+)`, true)
	v, ok := p.Locate("VOLUMEN 12,5 CBM")
	require.True(t, ok)
	assert.Equal(t, "12,5", v)
}
