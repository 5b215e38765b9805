package redacted

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// fingerprintPrefix marks the fingerprint line in generated files.
const fingerprintPrefix = "// redactgen:fingerprint "

// fingerprintInput is the canonical form hashed by Fingerprint.
type fingerprintInput struct {
	Request  Request `json:"request"`
	Fold     bool    `json:"fold"`
	Receiver string  `json:"receiver"`
}

// Fingerprint returns a BLAKE2b-256 hex digest of the request and the options
// that shape the output. Equal fingerprints mean byte-identical output.
func Fingerprint(req Request, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// Request holds no maps, so the encoding is deterministic.
	data, err := json.Marshal(fingerprintInput{Request: req, Fold: o.fold, Receiver: o.receiver})
	if err != nil {
		return ""
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ReadFingerprint extracts the fingerprint from a generated file's header.
func ReadFingerprint(src []byte) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "package ") {
			break
		}
		if fp, ok := strings.CutPrefix(line, fingerprintPrefix); ok {
			return strings.TrimSpace(fp), true
		}
	}
	return "", false
}
