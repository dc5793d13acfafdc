package http

import (
	"net/http"
	"testing"

	"github.com/espressoflow/pos-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{name: "decimal", input: "4.50", want: 450},
		{name: "integer", input: "5", want: 500},
		{name: "single decimal place", input: "3.5", want: 350},
		{name: "empty", input: "", wantErr: e.ErrInvalidPrice},
		{name: "not a number", input: "four", wantErr: e.ErrInvalidPrice},
		{name: "negative", input: "-1.00", wantErr: e.ErrInvalidPrice},
		{name: "too many decimals", input: "4.999", wantErr: e.ErrPricePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{err: e.ErrEmptyCart, code: http.StatusBadRequest},
		{err: e.ErrInvalidPayment, code: http.StatusBadRequest},
		{err: e.ErrUnknownReportKind, code: http.StatusBadRequest},
		{err: e.ErrSessionNotFound, code: http.StatusUnauthorized},
		{err: e.ErrSessionTokenRequired, code: http.StatusUnauthorized},
		{err: e.ErrCartNotFound, code: http.StatusNotFound},
		{err: e.ErrProductNotFound, code: http.StatusNotFound},
		{err: assert.AnError, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, msg := ToHTTPResponse(e.Wrap("op", tt.err))
		assert.Equal(t, tt.code, code, tt.err)
		assert.NotEmpty(t, msg)
	}
}
