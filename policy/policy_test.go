package policy

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/arloliu/stdioworker/internal/logger"
	"github.com/arloliu/stdioworker/types"
	"github.com/stretchr/testify/require"
)

type sliceWriter struct {
	lines []string
	err   error
}

func (w *sliceWriter) WriteLine(line string) error {
	if w.err != nil {
		return w.err
	}
	w.lines = append(w.lines, line)

	return nil
}

type recordingMetrics struct {
	delays []float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{}
}

func (m *recordingMetrics) RecordRequest(string, types.PartitionID) {}
func (m *recordingMetrics) RecordEmptyLine() {}
func (m *recordingMetrics) RecordUnknownPartition(types.PartitionID) {}
func (m *recordingMetrics) RecordState(types.State) {}
func (m *recordingMetrics) RecordLines(string, int) {}
func (m *recordingMetrics) RecordDelay(_ string, seconds float64) { m.delays = append(m.delays, seconds) }

func TestVolume_Respond(t *testing.T) {
	t.Run("writes n ascending rows", func(t *testing.T) {
		pol := NewVolume()
		w := &sliceWriter{}

		err := pol.Respond(types.Request{Counter: 1, Partition: "part_b", Param: 15}, w)

		require.NoError(t, err)
		require.Len(t, w.lines, 15)
		for i, line := range w.lines {
			require.Equal(t, fmt.Sprintf("1:%d:part_b", i), line)
		}
	})

	t.Run("zero rows writes nothing", func(t *testing.T) {
		pol := NewVolume()
		w := &sliceWriter{}

		require.NoError(t, pol.Respond(types.Request{Counter: 0, Partition: "none", Param: 0}, w))
		require.Empty(t, w.lines)
	})

	t.Run("logs row notice", func(t *testing.T) {
		log := logger.NewTest(t)
		pol := NewVolume(WithLogger(log))

		require.NoError(t, pol.Respond(types.Request{Partition: "part_a", Param: 10}, &sliceWriter{}))

		require.Equal(t, []string{"returning 10 rows"}, log.Messages())
	})

	t.Run("stops on write error", func(t *testing.T) {
		boom := errors.New("broken pipe")
		pol := NewVolume()

		err := pol.Respond(types.Request{Partition: "part_a", Param: 10}, &sliceWriter{err: boom})
		require.ErrorIs(t, err, boom)
	})

	t.Run("name", func(t *testing.T) {
		require.Equal(t, "volume", NewVolume().Name())
	})
}

func TestLatency_Respond(t *testing.T) {
	t.Run("reports cumulative delay", func(t *testing.T) {
		var slept []time.Duration
		pol := NewLatency(WithSleeper(func(d time.Duration) { slept = append(slept, d) }))
		w := &sliceWriter{}

		require.NoError(t, pol.Respond(types.Request{Counter: 0, Partition: "part_a", Param: 10}, w))
		require.NoError(t, pol.Respond(types.Request{Counter: 1, Partition: "part_b", Param: 5}, w))
		require.NoError(t, pol.Respond(types.Request{Counter: 2, Partition: "part_c", Param: 12}, w))
		require.NoError(t, pol.Respond(types.Request{Counter: 3, Partition: "part_d", Param: 11}, w))

		require.Equal(t, []string{"0:10:part_a", "1:15:part_b", "2:27:part_c", "3:38:part_d"}, w.lines)
		require.Equal(t, []time.Duration{10 * time.Second, 5 * time.Second, 12 * time.Second, 11 * time.Second}, slept)
		require.Equal(t, 38, pol.Cumulative())
	})

	t.Run("timer is advanced before sleeping", func(t *testing.T) {
		var pol *Latency
		var seen int
		pol = NewLatency(WithSleeper(func(time.Duration) { seen = pol.Cumulative() }))

		require.NoError(t, pol.Respond(types.Request{Partition: "part_b", Param: 5}, &sliceWriter{}))
		require.Equal(t, 5, seen)
	})

	t.Run("logs wait notice and records delay", func(t *testing.T) {
		log := logger.NewTest(t)
		m := newRecordingMetrics()
		pol := NewLatency(WithLogger(log), WithMetrics(m), WithSleeper(func(time.Duration) {}))

		require.NoError(t, pol.Respond(types.Request{Partition: "part_b", Param: 5}, &sliceWriter{}))

		require.Equal(t, []string{"Waiting 5 seconds"}, log.Messages())
		require.Equal(t, []float64{5}, m.delays)
	})

	t.Run("zero delay still writes one line", func(t *testing.T) {
		pol := NewLatency(WithSleeper(func(time.Duration) {}))
		w := &sliceWriter{}

		require.NoError(t, pol.Respond(types.Request{Counter: 4, Partition: "instant", Param: 0}, w))
		require.Equal(t, []string{"4:0:instant"}, w.lines)
	})

	t.Run("default sleeper blocks on the wall clock", func(t *testing.T) {
		pol := NewLatency()
		start := time.Now()

		require.NoError(t, pol.Respond(types.Request{Partition: "part_z", Param: 0}, &sliceWriter{}))
		require.Less(t, time.Since(start), time.Second)
	})
}

func TestNew(t *testing.T) {
	t.Run("builds known variants", func(t *testing.T) {
		for _, name := range Names() {
			pol, err := New(name)
			require.NoError(t, err)
			require.Equal(t, name, pol.Name())
		}
	})

	t.Run("rejects unknown variant", func(t *testing.T) {
		_, err := New("bursty")
		require.ErrorIs(t, err, types.ErrUnknownVariant)
		require.Contains(t, err.Error(), "bursty")
	})

	t.Run("nil options keep defaults", func(t *testing.T) {
		pol, err := New(LatencyName, WithLogger(nil), WithMetrics(nil), WithSleeper(nil))
		require.NoError(t, err)
		require.NotNil(t, pol.(*Latency).opts.sleep)
	})
}
