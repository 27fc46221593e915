package forage_test

import (
	"errors"
	"testing"

	"github.com/foragehq/forage"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := forage.Errorf(forage.ENOTFOUND, "group %q not found", "test")

	assert.Equal(t, forage.ENOTFOUND, forage.ErrorCode(err))
	assert.Equal(t, "group \"test\" not found", forage.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, forage.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, forage.EINTERNAL, forage.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, forage.ErrorMessage(nil))
}
