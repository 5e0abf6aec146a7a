package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinerary-service/internal/pkg/errors"
)

type dateRequest struct {
	StartDate string `validate:"required,date"`
	EndDate   string `validate:"date"`
}

func TestValidate_Date(t *testing.T) {
	tests := []struct {
		name    string
		req     dateRequest
		wantErr []string
	}{
		{name: "valid", req: dateRequest{StartDate: "2025-03-01", EndDate: "2025-03-04"}},
		{name: "optional date empty", req: dateRequest{StartDate: "2025-03-01"}},
		{name: "wrong layout", req: dateRequest{StartDate: "01/03/2025"}, wantErr: []string{"startdate"}},
		{name: "missing required", req: dateRequest{EndDate: "2025-13-01"}, wantErr: []string{"startdate", "enddate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			appErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrInvalidRequest.Code, appErr.Code)
			for _, field := range tt.wantErr {
				assert.Contains(t, appErr.Details, field)
			}
		})
	}
}
