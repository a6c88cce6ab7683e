package hexfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chezka-gaddi/t34/cpu"
)

func TestLoadDepositsDataAtLoadAddress(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}

	// bytecount=03, address=0300, type=00, data=A9 04 85, checksum=00
	src := ":03030000A9048500\n"
	err := Load(strings.NewReader(src), mem)

	assert.NoError(err)
	assert.Equal([]byte{0xA9, 0x04, 0x85}, mem.ReadRange(0x0300, 0x0302))
}

func TestLoadMultipleRecordsAndBlankLines(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}

	src := "" +
		":02030000EA1000\n" +
		"\n" +
		":02030200850000\n"
	err := Load(strings.NewReader(src), mem)

	assert.NoError(err)
	assert.Equal(byte(0xEA), mem.Read(0x0300))
	assert.Equal(byte(0x10), mem.Read(0x0301))
	assert.Equal(byte(0x85), mem.Read(0x0302))
	assert.Equal(byte(0x00), mem.Read(0x0303))
}

func TestLoadRejectsMissingMarker(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}

	err := Load(strings.NewReader("0203000EA910\n"), mem)

	assert.Error(err)
	var recErr *RecordError
	assert.ErrorAs(err, &recErr)
	assert.Equal(1, recErr.Line)
}

func TestLoadRejectsShortData(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}

	// bytecount claims 4 bytes but only 1 (A9) follows the record type
	err := Load(strings.NewReader(":0403000EA9\n"), mem)

	assert.Error(err)
}

func TestLoadRejectsNonHexToken(t *testing.T) {
	assert := assert.New(t)
	mem := &cpu.Memory{}

	err := Load(strings.NewReader(":02030ZZEA9100\n"), mem)

	assert.Error(err)
}
