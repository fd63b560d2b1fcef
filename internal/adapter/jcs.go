package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JCS canonicalizes JSON documents (RFC 8785)
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS,PayloadHasher=MockPayloadHasher
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

type rfc8785 struct{}

// NewJCS returns the gowebpki/jcs canonicalizer
func NewJCS() JCS {
	return rfc8785{}
}

func (rfc8785) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}

// PayloadHasher fingerprints an event payload so a replayed event id can be checked against the original
type PayloadHasher interface {
	// Hash returns the hex sha256 of the canonical JSON form of v
	Hash(v interface{}) (string, error)
}

type payloadHasher struct {
	json JSON
	jcs  JCS
}

// NewPayloadHasher creates a hasher over the given codec and canonicalizer
func NewPayloadHasher(json JSON, jcs JCS) PayloadHasher {
	return &payloadHasher{json: json, jcs: jcs}
}

func (h *payloadHasher) Hash(v interface{}) (string, error) {
	raw, err := h.json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	canonical, err := h.jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize payload: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
