// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := Validation("priority", "priority must be between 0 and %d, got %d", 4, 9)

	assert.Equal(t, KindValidation, KindOf(err))
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "priority must be between 0 and 4, got 9")
	assert.Contains(t, err.Error(), "field: priority")
}

func TestNotFoundError(t *testing.T) {
	err := NotFound("task", "01ABC")

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "task not found")
	assert.Contains(t, err.Error(), "id: 01ABC")
}

func TestUnknownToolIsNotFoundClass(t *testing.T) {
	err := UnknownTool("bogus_tool")

	assert.Equal(t, KindUnknownTool, KindOf(err))
	assert.True(t, IsNotFound(err))
}

func TestKindOfWrappedError(t *testing.T) {
	inner := NotFound("memory", "01XYZ")
	wrapped := fmt.Errorf("resolving context: %w", inner)

	assert.Equal(t, KindNotFound, KindOf(wrapped))

	var e *Error
	assert.True(t, errors.As(wrapped, &e))
	assert.Equal(t, "01XYZ", e.ID)
}

func TestKindOfPlainError(t *testing.T) {
	err := errors.New("disk on fire")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}
