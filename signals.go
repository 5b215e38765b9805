package redacted

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for generation events.
var (
	SignalGenerateStart    = capitan.NewSignal("redacted.generate.start", "Generation beginning")
	SignalGenerateComplete = capitan.NewSignal("redacted.generate.complete", "Generation finished")
	SignalGenerateDeclined = capitan.NewSignal("redacted.generate.declined", "No redacted property, generation skipped")
	SignalTypeScanned      = capitan.NewSignal("redacted.scan.complete", "Type scanned into a request")
)

// Keys for typed event data.
var (
	KeyTypeName      = capitan.NewStringKey("type_name")
	KeyPropertyCount = capitan.NewIntKey("property_count")
	KeyMaskedCount   = capitan.NewIntKey("masked_count")
	KeyFragmentCount = capitan.NewIntKey("fragment_count")
	KeySize          = capitan.NewIntKey("size")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
)

// emitGenerateStart emits an event when generation begins.
func emitGenerateStart(ctx context.Context, typeName string, properties int) {
	capitan.Emit(ctx, SignalGenerateStart,
		KeyTypeName.Field(typeName),
		KeyPropertyCount.Field(properties),
	)
}

// emitGenerateDeclined emits an event when no property is redacted.
func emitGenerateDeclined(ctx context.Context, typeName string, properties int) {
	capitan.Emit(ctx, SignalGenerateDeclined,
		KeyTypeName.Field(typeName),
		KeyPropertyCount.Field(properties),
	)
}

// emitGenerateComplete emits an event when generation finishes.
func emitGenerateComplete(ctx context.Context, typeName string, masked, fragments, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyMaskedCount.Field(masked),
		KeyFragmentCount.Field(fragments),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalGenerateComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalGenerateComplete, fields...)
	}
}

// emitTypeScanned emits an event when a type is scanned via reflection.
func emitTypeScanned(ctx context.Context, typeName string, properties, masked int) {
	capitan.Emit(ctx, SignalTypeScanned,
		KeyTypeName.Field(typeName),
		KeyPropertyCount.Field(properties),
		KeyMaskedCount.Field(masked),
	)
}
