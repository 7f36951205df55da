package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"agrirent/internal/core/application/usecases/commands"
	"agrirent/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activatorStub struct {
	calls int
	n     int
	err   error
}

func (s *activatorStub) Handle(_ context.Context, cmd commands.ActivateLeasesCommand) (int, error) {
	s.calls++
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return s.n, s.err
}

type expirerStub struct {
	calls int
	n     int
	err   error
}

func (s *expirerStub) Handle(_ context.Context, cmd commands.ExpirePricingRulesCommand) (int, error) {
	s.calls++
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return s.n, s.err
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestLeaseActivationJob_Run(t *testing.T) {
	t.Run("should log activated leases", func(t *testing.T) {
		logger, buf := bufferLogger()
		stub := &activatorStub{n: 3}
		job := jobs.NewLeaseActivationJob(stub, "", logger)

		job.Run(context.Background())

		assert.Equal(t, 1, stub.calls)
		assert.Contains(t, buf.String(), "Leases activated")
		assert.Contains(t, buf.String(), "count=3")
		assert.Contains(t, buf.String(), "component=lease_activation_job")
	})

	t.Run("should stay quiet when nothing is due", func(t *testing.T) {
		logger, buf := bufferLogger()
		jobs.NewLeaseActivationJob(&activatorStub{}, "", logger).Run(context.Background())
		assert.Empty(t, buf.String())
	})

	t.Run("should log failures", func(t *testing.T) {
		logger, buf := bufferLogger()
		stub := &activatorStub{n: 1, err: errors.New("lease 42: stale version")}
		jobs.NewLeaseActivationJob(stub, "", logger).Run(context.Background())

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "stale version")
	})
}

func TestPricingRuleExpiryJob_Run(t *testing.T) {
	logger, buf := bufferLogger()
	stub := &expirerStub{n: 2}

	jobs.NewPricingRuleExpiryJob(stub, "", logger).Run(context.Background())

	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, buf.String(), "count=2")
}

func TestJobs_StartStop(t *testing.T) {
	logger, _ := bufferLogger()

	t.Run("should start and stop with default schedules", func(t *testing.T) {
		jm := jobs.NewJobManager(&expirerStub{}, &activatorStub{}, jobs.Schedules{}, logger)
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewLeaseActivationJob(&activatorStub{}, "every minute", logger)
		require.Error(t, job.Start())
	})

	t.Run("should fail StartAll on the second job", func(t *testing.T) {
		jm := jobs.NewJobManager(&expirerStub{}, &activatorStub{},
			jobs.Schedules{LeaseActivation: "61 * * * * *"}, logger)

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lease activation job")
	})
}
