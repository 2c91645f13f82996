package session

import (
	"encoding/json"

	"snake-classic/constants"
)

// Encode builds an outbound message in the {"type": ..., ...fields} shape.
func Encode(msgType string, data map[string]any) ([]byte, error) {
	message := map[string]any{
		"type": msgType,
	}
	for k, v := range data {
		message[k] = v
	}
	return json.Marshal(message)
}

// DecodeKey extracts the key from a {"type":"key","key":"ArrowUp"} message.
func DecodeKey(raw []byte) (string, bool) {
	var msg map[string]any
	if err := json.Unmarshal(raw, &msg); err != nil {
		return "", false
	}
	if msgType, ok := msg["type"].(string); !ok || msgType != constants.MSG_KEY {
		return "", false
	}
	key, ok := msg["key"].(string)
	return key, ok
}
