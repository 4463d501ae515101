package mongoschema

import (
	"github.com/udohjeremiah/zod-to-mongo-schema/schema"
)

// ConvertOpt configures the conversion entry points. When several options
// are given the last one wins.
type ConvertOpt struct {
	// Hook runs for every node exported from a builder, after the node's
	// raw tree is built and after the built-in designation checks pass.
	// It may adjust the raw node in place; an error aborts the conversion.
	Hook schema.Hook
	// CompileCheck runs the pre-conversion tree through a Draft-4
	// compiler and aborts the conversion when it does not compile.
	CompileCheck bool
}

// WithHook returns a ConvertOpt carrying a per-node hook.
func WithHook(h schema.Hook) ConvertOpt {
	return ConvertOpt{Hook: h}
}

// WithCompileCheck returns a ConvertOpt enabling the Draft-4 compile
// check.
func WithCompileCheck() ConvertOpt {
	return ConvertOpt{CompileCheck: true}
}

func pickOpt(opts []ConvertOpt) ConvertOpt {
	var opt ConvertOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}
