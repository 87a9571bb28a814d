package fm

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"studiohub/internal/domain"
)

const maxResponseBytes = 8 << 20

// envelope is the Data API response wrapper shared by every endpoint.
type envelope struct {
	Response struct {
		Token         string       `json:"token"`
		Data          []recordData `json:"data"`
		FieldMetaData []fieldMeta  `json:"fieldMetaData"`
	} `json:"response"`
	Messages []message `json:"messages"`
}

type message struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type recordData struct {
	FieldData map[string]any `json:"fieldData"`
	RecordID  string         `json:"recordId"`
	ModID     string         `json:"modId"`
}

type fieldMeta struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Result string `json:"result"`
	Global bool   `json:"global"`
}

type findRequest struct {
	Query domain.Query `json:"query"`
	// The Data API expects the find limit as a string.
	Limit string `json:"limit"`
}

// decodeEnvelope parses a Data API response and surfaces any non-OK
// message code as an *apiError carrying both the code and HTTP status.
func decodeEnvelope(resp *http.Response) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&env); err != nil {
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, &apiError{Status: resp.StatusCode, Message: "undecodable error response"}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(env.Messages) > 0 && env.Messages[0].Code != codeOK {
		return nil, &apiError{
			Status:  resp.StatusCode,
			Code:    env.Messages[0].Code,
			Message: env.Messages[0].Message,
		}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &apiError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	return &env, nil
}

func (e *envelope) records() []domain.RawRecord {
	records := make([]domain.RawRecord, 0, len(e.Response.Data))
	for _, data := range e.Response.Data {
		fields := make(map[string]string, len(data.FieldData))
		for name, value := range data.FieldData {
			fields[name] = fieldValue(value)
		}
		records = append(records, domain.RawRecord{ID: data.RecordID, Fields: fields})
	}
	return records
}

func (e *envelope) layoutMetadata() domain.LayoutMetadata {
	meta := domain.LayoutMetadata{Fields: make([]domain.FieldMetadata, 0, len(e.Response.FieldMetaData))}
	for _, f := range e.Response.FieldMetaData {
		meta.Fields = append(meta.Fields, domain.FieldMetadata{
			Name:   f.Name,
			Type:   f.Type,
			Result: f.Result,
			Global: f.Global,
		})
	}
	return meta
}

// The store returns loosely typed field values (numbers for empty
// calculation fields, "1"/"0" strings for booleans). Everything is
// flattened to strings here so coercion happens once, downstream.
func fieldValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
