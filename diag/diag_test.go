package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitPermissionDeniedDelivers(t *testing.T) {
	EmitPermissionDenied("/api/chef/wallet", "read", 42)

	select {
	case ev := <-Events():
		assert.Equal(t, "/api/chef/wallet", ev.Path)
		assert.Equal(t, "read", ev.Operation)
		assert.Equal(t, uint(42), ev.UserID)
		require.False(t, ev.At.IsZero())
	default:
		t.Fatal("expected an event on the stream")
	}
}

func TestEmitNeverBlocksWhenFull(t *testing.T) {
	for i := 0; i < 200; i++ {
		EmitPermissionDenied("/api/admin/users", "list", uint(i))
	}
	// Drain whatever survived; the loop above must have returned.
	for {
		select {
		case <-Events():
		default:
			return
		}
	}
}
