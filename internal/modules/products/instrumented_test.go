package products

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedOp struct{ op, status string }

type fakeRecorder struct{ ops []recordedOp }

func (f *fakeRecorder) RecordStoreOperation(op, status string, _ time.Duration) {
	f.ops = append(f.ops, recordedOp{op, status})
}

func TestInstrumented_RecordsOutcomes(t *testing.T) {
	rec := &fakeRecorder{}
	s := NewInstrumented(NewMemoryStore(), rec)
	ctx := context.Background()

	p, err := s.Insert(ctx, Fields{Name: "A"})
	require.NoError(t, err)
	_, err = s.List(ctx)
	require.NoError(t, err)
	_, err = s.Update(ctx, "missing", Fields{})
	require.Error(t, err)
	require.NoError(t, s.Delete(ctx, p.ID))
	require.Error(t, s.Delete(ctx, ""))

	assert.Equal(t, []recordedOp{
		{"insert", "ok"},
		{"list", "ok"},
		{"update", "not_found"},
		{"delete", "ok"},
		{"delete", "error"},
	}, rec.ops)
}
