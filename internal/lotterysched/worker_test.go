package lotterysched

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/outingclub/trip-lottery/internal/dependency/mocks"
	"github.com/outingclub/trip-lottery/internal/entity"
	gerr "github.com/outingclub/trip-lottery/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeRunner struct {
	errs map[string]error
	ran  []string
}

func (f *fakeRunner) RunLottery(_ context.Context, cycleId string) (*entity.LotteryRun, error) {
	f.ran = append(f.ran, cycleId)
	if err := f.errs[cycleId]; err != nil {
		return nil, err
	}
	return &entity.LotteryRun{CycleId: cycleId, Placed: 3, Waitlisted: 1}, nil
}

func newWorker(t *testing.T, cycles []entity.LotteryCycle, dueErr error, runner Runner) *Worker {
	repo := mocks.NewRepository(t)
	lottery := mocks.NewLottery(t)
	repo.EXPECT().Lottery().Return(lottery)
	repo.EXPECT().Now().Return(testNow)
	lottery.EXPECT().GetDueLotteryCycles(mock.Anything, testNow).Return(cycles, dueErr)
	return New(nil, repo, runner)
}

func TestRunDue(t *testing.T) {
	ctx := context.Background()

	t.Run("Runs every due cycle", func(t *testing.T) {
		r := &fakeRunner{errs: map[string]error{
			"b": gerr.LotteryAlreadyRun,
			"c": errors.New("db down"),
		}}
		w := newWorker(t, []entity.LotteryCycle{{Id: "a"}, {Id: "b"}, {Id: "c"}, {Id: "d"}}, nil, r)

		n, err := w.runDue(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"a", "b", "c", "d"}, r.ran)
	})

	t.Run("Nothing due", func(t *testing.T) {
		r := &fakeRunner{}
		w := newWorker(t, nil, nil, r)

		n, err := w.runDue(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, r.ran)
	})

	t.Run("Query fails", func(t *testing.T) {
		r := &fakeRunner{}
		w := newWorker(t, nil, errors.New("boom"), r)

		_, err := w.runDue(ctx)
		assert.Error(t, err)
		assert.Empty(t, r.ran)
	})

	t.Run("Cancelled", func(t *testing.T) {
		r := &fakeRunner{}
		w := newWorker(t, []entity.LotteryCycle{{Id: "a"}}, nil, r)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := w.runDue(cctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, r.ran)
	})
}

func TestStartStop(t *testing.T) {
	w := New(&Config{WorkerInterval: time.Hour}, mocks.NewRepository(t), &fakeRunner{})

	require.NoError(t, w.Start(context.Background()))
	assert.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	assert.Error(t, w.Stop())
}
