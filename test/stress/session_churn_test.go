package stress_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/arloliu/stdioworker"
	"github.com/arloliu/stdioworker/policy"
	"github.com/arloliu/stdioworker/source"
	workertest "github.com/arloliu/stdioworker/testing"
	"github.com/arloliu/stdioworker/test/testutil"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, variant string, pol stdioworker.Policy) *stdioworker.Engine {
	t.Helper()

	table, err := source.Builtin(variant).LoadTable(t.Context())
	require.NoError(t, err)

	cfg := stdioworker.TestConfig(variant)
	eng, err := stdioworker.NewEngine(&cfg, table, pol)
	require.NoError(t, err)

	return eng
}

// runSessions starts workers concurrent sessions, each serving requests identifiers.
func runSessions(t *testing.T, workers, requests int) {
	t.Helper()

	ids := []string{"part_a", "part_b", "part_c", "part_d"}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := range workers {
		var eng *stdioworker.Engine
		if w%2 == 0 {
			eng = newEngine(t, "volume", policy.NewVolume())
		} else {
			sleeper := workertest.NewRecordingSleeper()
			eng = newEngine(t, "latency", policy.NewLatency(policy.WithSleeper(sleeper.Sleep)))
		}

		wg.Go(func() {
			s := workertest.Start(t.Context(), eng)
			defer func() { _ = s.Close() }()

			if err := s.WaitReady(); err != nil {
				errs <- err
				return
			}
			for i := range requests {
				lines, err := s.Run(ids[i%len(ids)])
				if err != nil {
					errs <- err
					return
				}
				if len(lines) == 0 {
					errs <- fmt.Errorf("worker %d: empty block for request %d", w, i)
					return
				}
			}
			if err := s.Close(); err != nil {
				errs <- err
				return
			}
			if eng.Requests() != requests {
				errs <- fmt.Errorf("worker %d: served %d of %d requests", w, eng.Requests(), requests)
			}
		})
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

// TestSessionSmoke runs a short churn to keep the stress infrastructure working.
func TestSessionSmoke(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping smoke test in short mode")
	}

	monitor := testutil.NewResourceMonitor()
	monitor.Start(50 * time.Millisecond)

	runSessions(t, 8, 50)

	report := monitor.Stop()
	t.Log(report.Summary())
	require.LessOrEqual(t, report.GoroutineGrowth(), 2, "session goroutines must exit")
}

func TestSessionChurn(t *testing.T) {
	requireStressEnabled(t)

	monitor := testutil.NewResourceMonitor()
	monitor.Start(time.Second)

	for round := range 20 {
		t.Logf("round %d", round)
		runSessions(t, 64, 1000)
	}

	report := monitor.Stop()
	t.Log(report.Summary())
	require.LessOrEqual(t, report.GoroutineGrowth(), 2, "session goroutines must exit")
	require.Less(t, report.HeapGrowthMB(), 50.0, "retained heap must stay flat")
}
