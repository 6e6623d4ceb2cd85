// cmd/server/main_test.go
package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/smoradi/stockroom-be/internal/core/domain"
	"github.com/smoradi/stockroom-be/test/helpers"
	"github.com/smoradi/stockroom-be/test/mocks"
)

func TestRunAutosave(t *testing.T) {
	t.Run("saves_on_tick_and_stops_on_cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLedger := mocks.NewMockLedger(ctrl)
		mockStore := mocks.NewMockSnapshotStore(ctrl)

		saved := make(chan struct{}, 1)
		mockLedger.EXPECT().Snapshot().Return(domain.Snapshot{}).AnyTimes()
		mockStore.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, domain.Snapshot) error {
				select {
				case saved <- struct{}{}:
				default:
				}
				return nil
			}).
			AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		deps := &dependencies{store: mockStore, ledger: mockLedger}
		done := make(chan struct{})
		go runAutosave(ctx, 5*time.Millisecond, deps, helpers.TestLogger(), done)

		select {
		case <-saved:
		case <-time.After(2 * time.Second):
			t.Fatal("autosave never saved")
		}

		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("autosave loop did not stop on cancel")
		}
	})

	t.Run("keeps_running_after_a_failed_save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLedger := mocks.NewMockLedger(ctrl)
		mockStore := mocks.NewMockSnapshotStore(ctrl)

		attempts := make(chan struct{}, 2)
		mockLedger.EXPECT().Snapshot().Return(domain.Snapshot{}).AnyTimes()
		mockStore.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, domain.Snapshot) error {
				select {
				case attempts <- struct{}{}:
				default:
				}
				return errors.New("disk full")
			}).
			AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		deps := &dependencies{store: mockStore, ledger: mockLedger}
		done := make(chan struct{})
		go runAutosave(ctx, 5*time.Millisecond, deps, helpers.TestLogger(), done)

		// Two attempts prove the loop survived the first failure
		for i := 0; i < 2; i++ {
			select {
			case <-attempts:
			case <-time.After(2 * time.Second):
				t.Fatalf("autosave stopped after %d attempts", i)
			}
		}
	})
}
