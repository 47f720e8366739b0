package session

import (
	"encoding/json"
	"fmt"
	"time"
)

// EnvelopeVersion は現在の永続化フォーマットのバージョンです。
const EnvelopeVersion = 1

type envelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Session json.RawMessage `json:"session"`
}

// Encode はセッションをバージョン付きエンベロープへ変換します。
func Encode(s *Session, savedAt time.Time) ([]byte, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("session: encode: %w", err)
	}
	data, err := json.Marshal(envelope{Version: EnvelopeVersion, SavedAt: savedAt, Session: body})
	if err != nil {
		return nil, fmt.Errorf("session: encode envelope: %w", err)
	}
	return data, nil
}

// Decode はエンベロープを検証してセッションを復元します。
func Decode(data []byte) (*Session, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if env.Version != EnvelopeVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, env.Version, EnvelopeVersion)
	}
	if len(env.Session) == 0 || string(env.Session) == "null" {
		return nil, fmt.Errorf("%w: missing session body", ErrCorruptSession)
	}

	var s Session
	if err := json.Unmarshal(env.Session, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if s.ID == "" || s.User.Username == "" || !s.User.Role.IsValid() {
		return nil, fmt.Errorf("%w: incomplete session record", ErrCorruptSession)
	}
	return &s, nil
}
