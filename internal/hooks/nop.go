package hooks

import (
	"context"

	"github.com/arloliu/stdioworker/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks in the engine loop.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.State, types.State) error = (*NopHooks)(nil).OnStateChanged
	_ func(context.Context, types.Request, int) error       = (*NopHooks)(nil).OnBlockWritten
	_ func(context.Context, error) error                    = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnStateChanged: h.OnStateChanged,
		OnBlockWritten: h.OnBlockWritten,
		OnError:        h.OnError,
	}
}

// Fill returns a copy of hooks where every nil callback is replaced by its no-op.
//
// Parameters:
//   - hooks: User hooks (may be nil)
//
// Returns:
//   - types.Hooks: Hooks with all callbacks set
func Fill(hooks *types.Hooks) types.Hooks {
	filled := NewNop()
	if hooks == nil {
		return filled
	}
	if hooks.OnStateChanged != nil {
		filled.OnStateChanged = hooks.OnStateChanged
	}
	if hooks.OnBlockWritten != nil {
		filled.OnBlockWritten = hooks.OnBlockWritten
	}
	if hooks.OnError != nil {
		filled.OnError = hooks.OnError
	}

	return filled
}

// OnStateChanged is a no-op implementation.
func (h *NopHooks) OnStateChanged(ctx context.Context, from, to types.State) error {
	return nil
}

// OnBlockWritten is a no-op implementation.
func (h *NopHooks) OnBlockWritten(ctx context.Context, req types.Request, lines int) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
