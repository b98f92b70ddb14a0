package linegrep_test

import (
	"errors"
	"testing"

	"github.com/linegrep/linegrep"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := linegrep.Errorf(linegrep.ENOTFOUND, "file %q not found", "test.txt")

	assert.Equal(t, linegrep.ENOTFOUND, linegrep.ErrorCode(err))
	assert.Equal(t, "file \"test.txt\" not found", linegrep.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, linegrep.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, linegrep.EINTERNAL, linegrep.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, linegrep.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", linegrep.ErrorMessage(errors.New("boom")))
}
