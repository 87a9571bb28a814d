package fm

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestDecodeEnvelopeFlattensFieldValues(t *testing.T) {
	env, err := decodeEnvelope(response(200, `{
		"response": {"data": [{"recordId": "7", "modId": "2", "fieldData": {
			"DeliverableName": "Dieline",
			"EstimatedHours_Graphics": 12.5,
			"zci_Sum_ActualHours_Total": 8,
			"bool_flag": true,
			"Notes": null
		}}]},
		"messages": [{"code": "0", "message": "OK"}]
	}`))
	require.NoError(t, err)

	records := env.records()
	require.Len(t, records, 1)
	assert.Equal(t, "7", records[0].ID)
	assert.Equal(t, "Dieline", records[0].Field("DeliverableName"))
	assert.Equal(t, "12.5", records[0].Field("EstimatedHours_Graphics"))
	assert.Equal(t, "8", records[0].Field("zci_Sum_ActualHours_Total"))
	assert.Equal(t, "1", records[0].Field("bool_flag"))
	assert.Equal(t, "", records[0].Field("Notes"))
}

func TestDecodeEnvelopeSurfacesMessageCode(t *testing.T) {
	_, err := decodeEnvelope(response(500, `{
		"response": {},
		"messages": [{"code": "401", "message": "No records match the request"}]
	}`))

	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.noRecords())
	assert.False(t, apiErr.authExpired())
	assert.Equal(t, 500, apiErr.Status)
}

func TestDecodeEnvelopeUndecodableErrorBody(t *testing.T) {
	_, err := decodeEnvelope(response(502, `<html>bad gateway</html>`))

	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.Status)
}

func TestAPIErrorSignatures(t *testing.T) {
	assert.True(t, (&apiError{Status: 401}).authExpired())
	assert.True(t, (&apiError{Status: 500, Code: "952"}).authExpired())
	assert.False(t, (&apiError{Status: 500, Code: "401"}).authExpired())
	assert.True(t, (&apiError{Code: "101"}).recordMissing())
	assert.True(t, (&apiError{Code: "401"}).recordMissing())
}
