package printer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pampa-pos/dashboard/internal/printer"
	"go.uber.org/zap"
)

type mockProber struct {
	healthFn func(ctx context.Context) (bool, error)
	printFn  func(ctx context.Context, id int64) error

	printCalls []int64
}

func (m *mockProber) PrinterHealth(ctx context.Context) (bool, error) {
	return m.healthFn(ctx)
}

func (m *mockProber) PrintOrder(ctx context.Context, id int64) error {
	m.printCalls = append(m.printCalls, id)
	if m.printFn != nil {
		return m.printFn(ctx, id)
	}
	return nil
}

func newGateway(prober *mockProber) *printer.Gateway {
	return printer.NewGateway(prober, time.Second, zap.NewNop().Sugar())
}

func TestHealthStartsUnknown(t *testing.T) {
	g := newGateway(&mockProber{})
	if g.Health() != printer.HealthUnknown {
		t.Fatalf("got %v, want unknown", g.Health())
	}
	if g.OK() != nil {
		t.Fatal("OK should be nil before the first probe")
	}
}

func TestCheckRecordsProbeResult(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		err  error
		want printer.Health
	}{
		{name: "explicit ok", ok: true, want: printer.HealthOK},
		{name: "explicit not ok", ok: false, want: printer.HealthDown},
		{name: "probe error", err: errors.New("timeout"), want: printer.HealthDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGateway(&mockProber{
				healthFn: func(ctx context.Context) (bool, error) { return tt.ok, tt.err },
			})
			if got := g.Check(context.Background()); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if g.Health() == printer.HealthUnknown {
				t.Error("health must never return to unknown after a probe")
			}
			if ok := g.OK(); ok == nil || *ok != (tt.want == printer.HealthOK) {
				t.Errorf("OK pointer does not match health %v", tt.want)
			}
		})
	}
}

func TestCheckLastResultWins(t *testing.T) {
	up := true
	g := newGateway(&mockProber{
		healthFn: func(ctx context.Context) (bool, error) { return up, nil },
	})

	g.Check(context.Background())
	up = false
	g.Check(context.Background())

	if g.Health() != printer.HealthDown {
		t.Fatalf("got %v, want down after the later probe", g.Health())
	}
}

func TestPrintRefusedWhileDown(t *testing.T) {
	prober := &mockProber{
		healthFn: func(ctx context.Context) (bool, error) { return false, nil },
	}
	g := newGateway(prober)
	g.Check(context.Background())

	if err := g.Print(context.Background(), 5); !errors.Is(err, printer.ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
	if len(prober.printCalls) != 0 {
		t.Error("refused print must not reach the backend")
	}
}

func TestPrintAllowedWhileUnknownOrUp(t *testing.T) {
	prober := &mockProber{
		healthFn: func(ctx context.Context) (bool, error) { return true, nil },
	}
	g := newGateway(prober)

	// Unknown health does not block.
	if err := g.Print(context.Background(), 1); err != nil {
		t.Fatalf("print while unknown: %v", err)
	}

	g.Check(context.Background())
	if err := g.Print(context.Background(), 2); err != nil {
		t.Fatalf("print while up: %v", err)
	}
	if len(prober.printCalls) != 2 {
		t.Fatalf("got %d print calls, want 2", len(prober.printCalls))
	}
}

func TestPrintSurfacesBackendError(t *testing.T) {
	wantErr := errors.New("spooler jam")
	g := newGateway(&mockProber{
		healthFn: func(ctx context.Context) (bool, error) { return true, nil },
		printFn:  func(ctx context.Context, id int64) error { return wantErr },
	})
	g.Check(context.Background())

	if err := g.Print(context.Background(), 1); !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want backend error", err)
	}
}

func TestAutoPrintIgnoresHealthAndSwallowsErrors(t *testing.T) {
	prober := &mockProber{
		healthFn: func(ctx context.Context) (bool, error) { return false, nil },
		printFn:  func(ctx context.Context, id int64) error { return errors.New("offline") },
	}
	g := newGateway(prober)
	g.Check(context.Background())

	g.AutoPrint(context.Background(), 9)

	if len(prober.printCalls) != 1 || prober.printCalls[0] != 9 {
		t.Fatalf("auto-print must always hit the backend, got calls %v", prober.printCalls)
	}
}

func TestRunProbesImmediatelyAndStopsOnCancel(t *testing.T) {
	probed := make(chan struct{}, 1)
	g := printer.NewGateway(&mockProber{
		healthFn: func(ctx context.Context) (bool, error) {
			select {
			case probed <- struct{}{}:
			default:
			}
			return true, nil
		},
	}, time.Hour, zap.NewNop().Sugar())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		g.Run(ctx)
		close(done)
	}()

	select {
	case <-probed:
	case <-time.After(time.Second):
		t.Fatal("Run did not probe immediately")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancel")
	}

	if g.Health() != printer.HealthOK {
		t.Errorf("got %v, want ok after the startup probe", g.Health())
	}
}
