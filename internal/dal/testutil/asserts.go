package testutil

import (
	"github.com/stretchr/testify/assert"
)

// AssertErrorIsAndContains checks both the wrapped sentinel and the wrapping message
func AssertErrorIsAndContains(wantErr error, contains string) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, i ...interface{}) bool {
		return assert.Error(t, err, i...) && assert.ErrorIs(t, err, wantErr) && assert.ErrorContains(t, err, contains)
	}
}

func AssertErrorIs(wantErr error) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, i ...interface{}) bool {
		return assert.ErrorIs(t, err, wantErr, i...)
	}
}
