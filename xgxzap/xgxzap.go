// Package xgxzap encodes xgxsubtype instances as structured zap fields and
// picks log levels by dispatching on an error's lineage.
//
//	logger.Error("put failed", xgxzap.Error(err))
//	xgxzap.Log(logger, "put failed", err, xgxzap.Levels{
//		"KeyNotFound":  zapcore.InfoLevel,
//		"StorageError": zapcore.WarnLevel,
//	})
package xgxzap

import (
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxsubtype "github.com/xgx-io/xgx-subtype"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package's logger, used by Log when called with a nil
// logger. It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	logger.CompareAndSwap(nil, zap.NewNop())
	return logger.Load()
}

// SetLogger configures the package's logger. It may be called at any time,
// including while other goroutines are logging; a nil l restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

type config struct {
	stack   bool
	details bool
}

// Option tunes how an instance is encoded.
type Option func(*config)

// WithStack includes the construction stack as a "stack" array.
func WithStack() Option { return func(c *config) { c.stack = true } }

// WithoutDetails omits the "details" entry.
func WithoutDetails() Option { return func(c *config) { c.details = false } }

func newConfig(opts []Option) config {
	c := config{details: true}
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return c
}

// Error returns a field keyed "error" for err. Instances (found anywhere in
// err's chain via errors.As) are encoded as objects; other errors fall back
// to zap.Error.
func Error(err error, opts ...Option) zap.Field {
	return NamedError("error", err, opts...)
}

// NamedError is Error with a caller-chosen key.
func NamedError(key string, err error, opts ...Option) zap.Field {
	e, ok := xgxsubtype.Find(err, xgxsubtype.Root)
	if !ok {
		return zap.NamedError(key, err)
	}
	return zap.Object(key, Marshaler(e, opts...))
}

// Marshaler adapts an instance to zapcore.ObjectMarshaler.
func Marshaler(e *xgxsubtype.Error, opts ...Option) zapcore.ObjectMarshaler {
	return instance{e: e, cfg: newConfig(opts)}
}

type instance struct {
	e   *xgxsubtype.Error
	cfg config
}

func (o instance) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	e := o.e
	if e == nil {
		enc.AddString("message", "<nil>")
		return nil
	}
	enc.AddString("type", e.Type().Name())
	enc.AddString("code", e.Code().String())
	enc.AddString("message", e.Message())
	if err := enc.AddArray("lineage", lineage(e.Type().Lineage())); err != nil {
		return err
	}
	if o.cfg.details && e.HasDetails() {
		if err := enc.AddReflected("details", e.Details()); err != nil {
			return err
		}
	}
	if c := e.Cause(); c != nil {
		if ce, ok := c.(*xgxsubtype.Error); ok {
			if err := enc.AddObject("cause", instance{e: ce, cfg: o.cfg}); err != nil {
				return err
			}
		} else {
			enc.AddString("cause", c.Error())
		}
	}
	if o.cfg.stack && len(e.Stack()) > 0 {
		if err := enc.AddArray("stack", frames(e.Stack())); err != nil {
			return err
		}
	}
	return nil
}

type lineage []string

func (l lineage) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, name := range l {
		enc.AppendString(name)
	}
	return nil
}

type frames xgxsubtype.Stack

func (s frames) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, fr := range s {
		enc.AppendString(fr.Function + " " + fr.File + ":" + strconv.Itoa(fr.Line))
	}
	return nil
}
