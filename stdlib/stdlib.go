// Package stdlib wires together lifp's intrinsic library: every
// subpackage registers its builtins into a single shared map.
package stdlib

import (
	"bufio"
	"os"

	"github.com/shikaan/lifp/stdlib/core"
	"github.com/shikaan/lifp/stdlib/flowfn"
	"github.com/shikaan/lifp/stdlib/iofn"
	"github.com/shikaan/lifp/stdlib/listfn"
	"github.com/shikaan/lifp/stdlib/mathfn"
	"github.com/shikaan/lifp/stdlib/strfn"
	"github.com/shikaan/lifp/value"
)

// Streams is an alias for iofn.Streams, re-exported so callers never need
// to import the iofn subpackage directly.
type Streams = iofn.Streams

// StandardStreams returns a Streams wired to the process's stdout, stderr
// and stdin.
func StandardStreams() *Streams {
	return &Streams{Out: os.Stdout, Err: os.Stderr, In: bufio.NewReader(os.Stdin)}
}

// Register installs every intrinsic into builtins. invoke is supplied by
// the vm package and lets the list:* higher-order functions call back
// into user closures without stdlib importing vm.
func Register(builtins *value.Map, invoke listfn.Invoke, streams *Streams) {
	core.Register(builtins)
	listfn.Register(builtins, invoke)
	strfn.Register(builtins)
	mathfn.Register(builtins)
	flowfn.Register(builtins)
	iofn.Register(builtins, streams)
}
