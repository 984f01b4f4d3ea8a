package submit_booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() *Request {
	return &Request{
		SessionID:     "sess-1",
		CustomerName:  "Nguyễn Văn An",
		CustomerEmail: "an.nguyen@example.com",
		CustomerPhone: "0912345678",
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "valid", mutate: func(r *Request) {}},
		{name: "empty name", mutate: func(r *Request) { r.CustomerName = "  " }, wantErr: ErrInvalidName},
		{name: "name too long", mutate: func(r *Request) { r.CustomerName = strings.Repeat("a", 101) }, wantErr: ErrInvalidName},
		{name: "email without at", mutate: func(r *Request) { r.CustomerEmail = "an.example.com" }, wantErr: ErrInvalidEmail},
		{name: "email without domain dot", mutate: func(r *Request) { r.CustomerEmail = "an@example" }, wantErr: ErrInvalidEmail},
		{name: "email with space", mutate: func(r *Request) { r.CustomerEmail = "an nguyen@example.com" }, wantErr: ErrInvalidEmail},
		{name: "phone too short", mutate: func(r *Request) { r.CustomerPhone = "12345" }, wantErr: ErrInvalidPhone},
		{name: "phone too long", mutate: func(r *Request) { r.CustomerPhone = "09123456789" }, wantErr: ErrInvalidPhone},
		{name: "phone with letters", mutate: func(r *Request) { r.CustomerPhone = "09123456ab" }, wantErr: ErrInvalidPhone},
		{name: "phone with separators", mutate: func(r *Request) { r.CustomerPhone = "091-234-567" }, wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
