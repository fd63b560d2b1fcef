package temporal_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	sdkmocks "go.temporal.io/sdk/mocks"

	"github.com/feral-file/ff-partner-ledger/internal/mocks"
	"github.com/feral-file/ff-partner-ledger/internal/providers/temporal"
)

func TestRunAndWait(t *testing.T) {
	options := client.StartWorkflowOptions{ID: "settle-cycle-3", TaskQueue: "ledger"}
	settle := func() {}

	tests := []struct {
		name       string
		setupMocks func(o *mocks.MockTemporalOrchestrator)
		wantErr    string
		want       int64
	}{
		{
			name: "returns the workflow result",
			setupMocks: func(o *mocks.MockTemporalOrchestrator) {
				run := &sdkmocks.WorkflowRun{}
				run.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
					*(args.Get(1).(*int64)) = 42
				}).Return(nil)
				o.EXPECT().ExecuteWorkflow(gomock.Any(), options, gomock.Any(), true).Return(run, nil)
			},
			want: 42,
		},
		{
			name: "start failure",
			setupMocks: func(o *mocks.MockTemporalOrchestrator) {
				o.EXPECT().ExecuteWorkflow(gomock.Any(), options, gomock.Any(), true).Return(nil, assert.AnError)
			},
			wantErr: "failed to start workflow settle-cycle-3",
		},
		{
			name: "workflow failure",
			setupMocks: func(o *mocks.MockTemporalOrchestrator) {
				run := &sdkmocks.WorkflowRun{}
				run.On("Get", mock.Anything, mock.Anything).Return(assert.AnError)
				o.EXPECT().ExecuteWorkflow(gomock.Any(), options, gomock.Any(), true).Return(run, nil)
			},
			wantErr: "workflow settle-cycle-3 failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			o := mocks.NewMockTemporalOrchestrator(ctrl)
			tt.setupMocks(o)

			var got int64
			err := temporal.RunAndWait(context.Background(), o, options, &got, settle, true)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
