package subculture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcnursery/internal/core/apperror"
)

func TestTransfer_Validate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*Transfer)
		wantErr string
	}{
		{name: "valid", mutate: func(*Transfer) {}},
		{name: "unknown stage", mutate: func(tr *Transfer) { tr.Stage = "hardening" }, wantErr: "stage"},
		{name: "negative mother bottles", mutate: func(tr *Transfer) { tr.MotherBottles = -2 }, wantErr: "motherBottles"},
		{name: "contamination above output", mutate: func(tr *Transfer) { tr.Contaminated = 41 }, wantErr: "contaminated"},
		{name: "bad date", mutate: func(tr *Transfer) { tr.Date = "2024-13-01" }, wantErr: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransfer("2024-05-02", "Banana", StageMultiplication)
			tr.MotherBottles = 10
			tr.NewBottles = 40
			tt.mutate(tr)

			err := tr.Validate(ctx)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantErr, appErr.Details["field"])
		})
	}
}

func TestTransfer_MultiplicationRate(t *testing.T) {
	tr := NewTransfer("2024-05-02", "Banana", StageMultiplication)
	tr.MotherBottles = 10
	tr.NewBottles = 38
	tr.Contaminated = 3

	assert.Equal(t, "3.5", tr.MultiplicationRate().String())

	tr.MotherBottles = 0
	assert.True(t, tr.MultiplicationRate().IsZero())
}
