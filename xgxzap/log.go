package xgxzap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxsubtype "github.com/xgx-io/xgx-subtype"
)

// Levels maps dispatch level names (type names, "error", "any") to log levels.
type Levels map[string]zapcore.Level

// DefaultLevel is used when no entry of Levels matches.
const DefaultLevel = zapcore.ErrorLevel

// LevelFor dispatches err against levels, most specific type first. When an
// instance is wrapped (fmt.Errorf("%w"), errors.Join), the first instance in
// the chain is dispatched instead of the wrapper. A nil err reports
// DefaultLevel.
func LevelFor(err error, levels Levels) zapcore.Level {
	if err == nil {
		return DefaultLevel
	}
	var subject any = err
	if e, ok := xgxsubtype.Find(err, xgxsubtype.Root); ok {
		subject = e
	}
	cases := make(xgxsubtype.Cases[zapcore.Level], len(levels))
	for name, lvl := range levels {
		cases[name] = func(any) zapcore.Level { return lvl }
	}
	lvl, serr := xgxsubtype.Switch(subject, cases, func(any) zapcore.Level { return DefaultLevel })
	if serr != nil {
		return DefaultLevel
	}
	return lvl
}

// Log writes msg with err encoded under "error", at the level LevelFor
// picks. A nil l uses Logger().
func Log(l *zap.Logger, msg string, err error, levels Levels, opts ...Option) {
	if l == nil {
		l = Logger()
	}
	if ce := l.Check(LevelFor(err, levels), msg); ce != nil {
		ce.Write(Error(err, opts...))
	}
}
