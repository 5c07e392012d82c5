package pgerr

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	wrap := func(code pq.ErrorCode) error {
		return fmt.Errorf("repository: insert: %w", &pq.Error{Code: code})
	}

	tests := []struct {
		name      string
		err       error
		conflict  bool
		transient bool
	}{
		{name: "unique violation", err: wrap("23505"), conflict: true},
		{name: "exclusion violation", err: wrap("23P01"), conflict: true},
		{name: "serialization failure", err: wrap("40001"), transient: true},
		{name: "deadlock", err: wrap("40P01"), transient: true},
		{name: "admin shutdown", err: wrap("57P01"), transient: true},
		{name: "connection failure", err: wrap("08006"), transient: true},
		{name: "bad connection", err: fmt.Errorf("query: %w", driver.ErrBadConn), transient: true},
		{name: "syntax error", err: wrap("42601")},
		{name: "plain error", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.conflict, IsConflict(tt.err))
			assert.Equal(t, tt.transient, IsTransient(tt.err))
		})
	}
}
