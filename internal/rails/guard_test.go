package rails_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/ARLocke322/Payment-Router/internal/rails"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRail answers Execute with a canned result, optionally blocking until the
// context ends.
type stubRail struct {
	name    string
	outcome *rails.Outcome
	err     error
	block   bool
}

func (s *stubRail) Name() string { return s.name }

func (s *stubRail) Validate(rails.Instruction) rails.ValidationResult {
	return rails.ValidationResult{Valid: true}
}

func (s *stubRail) Execute(ctx context.Context, _ rails.Instruction, _ rails.RandomSource) (*rails.Outcome, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.outcome, s.err
}

func (s *stubRail) EstimateSettlement(rails.Instruction, rails.RandomSource) float64 { return 0 }

func (s *stubRail) CalculateFees(instr rails.Instruction, _ rails.RandomSource) rails.Fee {
	return rails.Fee{Currency: instr.SourceCurrency}
}

func TestGuard_PassesOutcomeThrough(t *testing.T) {
	guard := rails.NewGuard(rails.DefaultGuardConfig(), nil)
	want := &rails.Outcome{Status: rails.OutcomeFailed, Message: "rail said no"}

	outcome, err := guard.Execute(context.Background(), &stubRail{name: "Stub", outcome: want}, sepaInstruction("SEPA Instant", "10"), rails.NewFixedSource(0))
	require.NoError(t, err)
	assert.Same(t, want, outcome)
	assert.Equal(t, gobreaker.StateClosed, guard.State("Stub"))
}

func TestGuard_Timeout(t *testing.T) {
	guard := rails.NewGuard(rails.GuardConfig{Timeout: 20 * time.Millisecond, ConsecutiveFailures: 5}, nil)

	outcome, err := guard.Execute(context.Background(), &stubRail{name: "Slow", block: true}, sepaInstruction("SEPA Instant", "10"), rails.NewFixedSource(0))
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, apperrors.ErrRailTimeout)
}

func TestGuard_OpensAfterConsecutiveErrors(t *testing.T) {
	guard := rails.NewGuard(rails.GuardConfig{ConsecutiveFailures: 2, OpenTimeout: time.Minute}, nil)
	broken := &stubRail{name: "Broken", err: errors.New("connection reset")}
	instr := sepaInstruction("SEPA Instant", "10")

	for i := 0; i < 2; i++ {
		_, err := guard.Execute(context.Background(), broken, instr, rails.NewFixedSource(0))
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, guard.State("Broken"))

	outcome, err := guard.Execute(context.Background(), broken, instr, rails.NewFixedSource(0))
	require.NoError(t, err)
	assert.True(t, outcome.Failed())
	assert.Equal(t, "SEPA Instant temporarily unavailable (circuit open)", outcome.Message)

	// Breakers are per rail.
	healthy := &stubRail{name: "Healthy", outcome: &rails.Outcome{Status: rails.OutcomeProcessing}}
	outcome, err = guard.Execute(context.Background(), healthy, instr, rails.NewFixedSource(0))
	require.NoError(t, err)
	assert.False(t, outcome.Failed())
}

func TestGuard_FailedOutcomesDoNotTrip(t *testing.T) {
	guard := rails.NewGuard(rails.GuardConfig{ConsecutiveFailures: 1, OpenTimeout: time.Minute}, nil)
	declining := &stubRail{name: "Declining", outcome: &rails.Outcome{Status: rails.OutcomeFailed}}

	for i := 0; i < 3; i++ {
		_, err := guard.Execute(context.Background(), declining, sepaInstruction("SEPA Instant", "10"), rails.NewFixedSource(0))
		require.NoError(t, err)
	}
	assert.Equal(t, gobreaker.StateClosed, guard.State("Declining"))
}

func TestGuard_CallerCancellationDoesNotTrip(t *testing.T) {
	guard := rails.NewGuard(rails.GuardConfig{Timeout: time.Second, ConsecutiveFailures: 2, OpenTimeout: time.Minute}, nil)
	slow := &stubRail{name: "Slow", block: true}
	instr := sepaInstruction("SEPA Instant", "10")

	// Cancelled while the rail is working.
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(5*time.Millisecond, cancel)
		_, err := guard.Execute(ctx, slow, instr, rails.NewFixedSource(0))
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, guard.State("Slow"))

	// Cancelled before the call.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	healthy := &stubRail{name: "Slow", outcome: &rails.Outcome{Status: rails.OutcomeProcessing}}
	for i := 0; i < 3; i++ {
		_, err := guard.Execute(cancelled, healthy, instr, rails.NewFixedSource(0))
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, guard.State("Slow"))

	outcome, err := guard.Execute(context.Background(), healthy, instr, rails.NewFixedSource(0))
	require.NoError(t, err)
	assert.False(t, outcome.Failed())
}

func TestGuard_CryptoRailCancellationDoesNotTrip(t *testing.T) {
	guard := rails.NewGuard(rails.DefaultGuardConfig(), nil)
	rail := rails.NewCryptoRail(rails.DefaultCryptoConfig())
	instr := cryptoInstruction("Bitcoin Network", "BTC", "0.5")

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 5; i++ {
		_, err := guard.Execute(cancelled, rail, instr, rails.NewFixedSource(0.1))
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateClosed, guard.State(rail.Name()))

	outcome, err := guard.Execute(context.Background(), rail, instr, rails.NewFixedSource(0.1))
	require.NoError(t, err)
	assert.NotContains(t, outcome.Message, "circuit open")
}
