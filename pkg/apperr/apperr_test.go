package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	cause := errors.New("disk full")
	assert.Equal(t, "lot not found", NotFound("lot").Error())
	assert.Equal(t, "error registering delivery: disk full", Persistence("delivery", cause).Error())
	assert.Equal(t, "error deleting lot: disk full", Storage("deleting", "lot", cause).Error())
	assert.ErrorIs(t, Persistence("lot", cause), cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindRuleViolation, KindOf(RuleViolation("x")))
	assert.Equal(t, KindFormat, KindOf(fmt.Errorf("wrapped: %w", Format("x", nil))))
	assert.Equal(t, KindNotFound, KindOf(NotFound("transport")))
	assert.Equal(t, KindPersistence, KindOf(errors.New("raw")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("lot")))
	assert.True(t, IsNotFound(fmt.Errorf("lot 3: %w", ErrNotFound)))
	assert.False(t, IsNotFound(RuleViolation("x")))
}
