package memolog

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event names the cache event a log record describes.
type Event string

const (
	// EventHit is logged when a call is answered from the cache.
	EventHit Event = "hit"

	// EventMiss is logged when a call has to invoke the wrapped function.
	EventMiss Event = "miss"

	// EventStored is logged after a computed output is inserted.
	EventStored Event = "stored"

	// EventFailed is logged when the wrapped function returned an error.
	EventFailed Event = "failed"

	// EventCleared is logged when the cache is emptied.
	EventCleared Event = "cleared"
)

// Logger emits memo events to a zap.Logger.
// Every record carries the memo's instance id and name.
type Logger struct {
	z *zap.Logger
}

// New returns a Logger bound to a fresh instance id.
// A nil zap logger disables logging.
func New(z *zap.Logger, name string) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{
		z: z.With(
			zap.String("memo_id", uuid.New().String()),
			zap.String("memo", name),
		),
	}
}

func (l *Logger) Hit(key any)    { l.debug(EventHit, key) }
func (l *Logger) Miss(key any)   { l.debug(EventMiss, key) }
func (l *Logger) Stored(key any) { l.debug(EventStored, key) }

// Failed records a wrapped-function error. The error itself is not altered.
func (l *Logger) Failed(key any, err error) {
	if ce := l.z.Check(zap.WarnLevel, string(EventFailed)); ce != nil {
		ce.Write(zap.Uint64("key_digest", KeyDigest(key)), zap.Error(err))
	}
}

// Cleared records how many entries a clear dropped.
func (l *Logger) Cleared(dropped int) {
	l.z.Info(string(EventCleared), zap.Int("dropped", dropped))
}

// debug skips the key digest entirely unless debug records are wanted.
func (l *Logger) debug(ev Event, key any) {
	if ce := l.z.Check(zap.DebugLevel, string(ev)); ce != nil {
		ce.Write(zap.Uint64("key_digest", KeyDigest(key)))
	}
}

// KeyDigest hashes the %v rendering of key so records never carry raw keys.
func KeyDigest(key any) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%v", key))
}
