package redacted

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitGenerateStart(_ *testing.T) {
	// Should not panic
	emitGenerateStart(context.Background(), "User", 3)
}

func TestEmitGenerateDeclined(_ *testing.T) {
	emitGenerateDeclined(context.Background(), "User", 3)
}

func TestEmitGenerateComplete_Success(_ *testing.T) {
	emitGenerateComplete(context.Background(), "User", 1, 5, 512, 100*time.Millisecond, nil)
}

func TestEmitGenerateComplete_Error(_ *testing.T) {
	emitGenerateComplete(context.Background(), "User", 0, 0, 0, 100*time.Millisecond, errors.New("test error"))
}

func TestEmitTypeScanned(_ *testing.T) {
	emitTypeScanned(context.Background(), "User", 3, 1)
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalGenerateStart", SignalGenerateStart},
		{"SignalGenerateComplete", SignalGenerateComplete},
		{"SignalGenerateDeclined", SignalGenerateDeclined},
		{"SignalTypeScanned", SignalTypeScanned},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyTypeName", KeyTypeName},
		{"KeyPropertyCount", KeyPropertyCount},
		{"KeyMaskedCount", KeyMaskedCount},
		{"KeyFragmentCount", KeyFragmentCount},
		{"KeySize", KeySize},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
