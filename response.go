package tinkoff

import (
	"encoding/json"
	"strconv"
)

// unknownError is what the gateway's diagnostic fields default to when the
// response omits them.
const unknownError = "Unknown error."

// interpret turns a decoded gateway response into a Payment or a
// *GatewayError. A non-zero ErrorCode marks failure; on success PaymentId,
// PaymentURL and Status may each be absent, which is tolerated.
func interpret(response map[string]any) (*Payment, error) {
	if code := intField(response, "ErrorCode"); code != 0 {
		return nil, &GatewayError{
			Code:    code,
			Message: stringField(response, "Message", unknownError),
			Details: stringField(response, "Details", unknownError),
		}
	}
	return &Payment{
		ID:     stringField(response, "PaymentId", ""),
		URL:    stringField(response, "PaymentURL", ""),
		Status: stringField(response, "Status", ""),
	}, nil
}

// stringField reads a response field as a string. The gateway is loose
// about types here: PaymentId in particular arrives as a JSON number on
// some endpoints and as a string on others.
func stringField(response map[string]any, key, fallback string) string {
	switch v := response[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fallback
	}
}

// intField reads a response field as an integer, treating absent or
// unparsable values as zero. ErrorCode is transmitted as a quoted string.
func intField(response map[string]any, key string) int {
	switch v := response[key].(type) {
	case string:
		n, _ := strconv.Atoi(v)
		return n
	case json.Number:
		n, _ := strconv.Atoi(v.String())
		return n
	default:
		return 0
	}
}
