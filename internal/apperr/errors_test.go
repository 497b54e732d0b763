package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "invalid request", err: InvalidRequest("bad"), want: KindInvalidRequest},
		{name: "duplicate", err: DuplicateResource("dup"), want: KindDuplicateResource},
		{name: "not found", err: ResourceNotFound("gone"), want: KindResourceNotFound},
		{name: "wrapped", err: fmt.Errorf("register: %w", DuplicateResource("dup")), want: KindDuplicateResource},
		{name: "plain error", err: errors.New("boom"), want: KindUnknown},
		{name: "sentinel", err: ErrRecordNotFound, want: KindUnknown},
		{name: "nil", err: nil, want: KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessageIsVerbatim(t *testing.T) {
	err := InvalidRequest("Username cannot be blank")
	assert.Equal(t, "Username cannot be blank", err.Error())
	assert.True(t, IsKind(err, KindInvalidRequest))
	assert.False(t, IsKind(err, KindResourceNotFound))
	assert.False(t, IsKind(nil, KindUnknown))
}
