package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteSequence(t *testing.T) {
	t.Parallel()

	t.Run("writes in order", func(t *testing.T) {
		t.Parallel()

		rec := NewRecorder(NewRand(0))
		WriteSequence(rec, []int64{3, 1, 2})
		require.Equal(t, []RecordedOp{
			{Kind: OpInt64, Int: 3},
			{Kind: OpInt64, Int: 1},
			{Kind: OpInt64, Int: 2},
		}, rec.Ops())
	})

	t.Run("empty sequence writes nothing", func(t *testing.T) {
		t.Parallel()

		rec := NewRecorder(NewRand(0))
		WriteSequence(rec, []int64{})
		require.Empty(t, rec.Ops())
	})

	t.Run("generic over element and slice types", func(t *testing.T) {
		t.Parallel()

		type ids []int32
		rec := NewRecorder(NewRand(0))
		WriteSequence(rec, []int{1})
		WriteSequence(rec, ids{2})
		WriteSequence(rec, []int8{3})
		require.Equal(t, []RecordedOp{
			{Kind: OpInt64, Int: 1},
			{Kind: OpInt64, Int: 2},
			{Kind: OpInt64, Int: 3},
		}, rec.Ops())
	})
}

func TestRandInt64Array(t *testing.T) {
	t.Parallel()

	rec := NewRecorder(NewRand(3))

	arr := RandInt64Array(rec, 50, -4, 4)
	require.Len(t, arr, 50)
	for _, v := range arr {
		require.GreaterOrEqual(t, v, int64(-4))
		require.LessOrEqual(t, v, int64(4))
	}

	empty := RandInt64Array(rec, 0, -4, 4)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	// Shape-equivalent to the pull-model array under the same seed; with
	// draws delegated to the same generator the values match exactly.
	require.Equal(t, NewRand(9).Int64Array(10, 0, 99),
		RandInt64Array(NewRecorder(NewRand(9)), 10, 0, 99))
}

func TestGenerateEntryPoint(t *testing.T) {
	t.Parallel()

	rec := NewRecorder(NewRand(0))
	Generate(rec, func(w Writer) {
		w.WriteInt64(1)
		w.WriteNewline()
	})
	require.Equal(t, []RecordedOp{
		{Kind: OpInt64, Int: 1},
		{Kind: OpNewline},
	}, rec.Ops())
}
