// Package flowfn implements lifp's flow:* intrinsics: basic control over
// program execution timing.
//
//	(flow:sleep! 1000) ; pauses execution for ~1 second
package flowfn

import (
	"time"

	"github.com/shikaan/lifp/stdlib/argcheck"
	"github.com/shikaan/lifp/token"
	"github.com/shikaan/lifp/value"
)

// Register installs the flow:* intrinsics into builtins.
func Register(builtins *value.Map) {
	builtins.Set("flow:sleep!", &value.Value{Kind: value.BUILTIN, Builtin: sleep})
}

// sleep suspends execution for a given number of milliseconds.
//
//	(flow:sleep! 1000) ; pauses for ~1 second
func sleep(args []*value.Value, pos token.Position) (*value.Value, error) {
	if err := argcheck.AtLeast("flow:sleep!", args, 1, pos); err != nil {
		return nil, err
	}
	ms, err := argcheck.Number("flow:sleep!", args, 0)
	if err != nil {
		return nil, err
	}
	if ms < 0 {
		return nil, argcheck.RuntimeError(args[0].Position, "flow:sleep! requires a non-negative number.")
	}

	time.Sleep(time.Duration(ms) * time.Millisecond)
	return value.Nil(pos), nil
}
