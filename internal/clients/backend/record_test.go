package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IDString_CollapsesNumericForms(t *testing.T) {

	assert := assert.New(t)

	assert.Equal("7", IDString(float64(7)))
	assert.Equal("7", IDString(7))
	assert.Equal("7", IDString("7"))
	assert.Equal("7.5", IDString(7.5))
	assert.Equal("", IDString(nil))
}

func Test_DecodeRecords_AcceptsBareArrayAndEnvelope(t *testing.T) {

	assert := assert.New(t)

	records, total, err := decodeRecords([]byte(`[{"id": 1}, {"id": 2}]`))
	assert.NoError(err)
	assert.Equal(2, total)
	assert.Equal("1", records[0].ID())

	records, total, err = decodeRecords([]byte(`{"data": [{"id": 3}], "total": 120}`))
	assert.NoError(err)
	assert.Equal(120, total)
	assert.Equal("3", records[0].ID())
}

func Test_DecodeRecords_SingleObjectBecomesOneElementList(t *testing.T) {

	assert := assert.New(t)

	records, total, err := decodeRecords([]byte(`{"id": 9, "name": "単独"}`))
	assert.NoError(err)
	assert.Equal(1, total)
	assert.Equal("9", records[0].ID())
	assert.Equal("単独", records[0].GetString("name"))
}

func Test_DecodeRecord_StringifiesID(t *testing.T) {

	assert := assert.New(t)

	record, err := decodeRecord([]byte(`{"id": 42, "name": "要件"}`))
	assert.NoError(err)
	assert.Equal("42", record["id"])
}
