package errors

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailErrorUnwrap(t *testing.T) {
	err := NewClassificationError("no children, no geometry", "/assets/Junk", "")
	assert.ErrorIs(t, err, ErrClassification)

	var detail *DetailError
	assert.ErrorAs(t, err, &detail)
	assert.Equal(t, "/assets/Junk", detail.Location)
}

func TestDetailErrorRendering(t *testing.T) {
	err := NewCycleError("components/Loop revisits /assets", "/assets/components/Loop")
	msg := err.Error()
	assert.Contains(t, msg, "cyclic directory structure")
	assert.Contains(t, msg, "/assets/components/Loop")
	assert.Contains(t, msg, "Hint:")
}

func TestDetailErrorContextOrdering(t *testing.T) {
	err := &DetailError{
		Type:    "not an asset node",
		Message: "unusable directory",
		Context: map[string]string{
			"variant": "wood",
			"kind":    "component",
			"node":    "Bishop",
		},
	}

	first := err.Error()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, err.Error())
	}
	assert.Less(t, strings.Index(first, "kind:"), strings.Index(first, "node:"))
	assert.Less(t, strings.Index(first, "node:"), strings.Index(first, "variant:"))
}

func TestExitCodeFor(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		assert.Equal(t, ExitSuccess, ExitCodeFor(nil))
	})

	t.Run("cycle maps to cycle code", func(t *testing.T) {
		assert.Equal(t, ExitCycle, ExitCodeFor(NewCycleError("loop", "/a")))
	})

	t.Run("no valid nodes maps to classification code", func(t *testing.T) {
		assert.Equal(t, ExitClassification, ExitCodeFor(NewNoValidNodesError("empty", "/a")))
	})

	t.Run("plain error maps to general", func(t *testing.T) {
		assert.Equal(t, ExitGeneralError, ExitCodeFor(errors.New("boom")))
	})

	t.Run("missing path maps to not found", func(t *testing.T) {
		assert.Equal(t, ExitNotFound, ExitCodeFor(fs.ErrNotExist))
	})
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Cyclic Structure", ExitCodeName(ExitCycle))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrap(ErrClassification, "scanning /assets")
	assert.ErrorIs(t, err, ErrClassification)
	assert.Contains(t, err.Error(), "scanning /assets")
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := NewCycleError("loop", "/a")
	exit := &ExitError{Code: ExitCycle, Err: inner}
	assert.ErrorIs(t, exit, ErrCycle)
	assert.Equal(t, inner.Error(), exit.Error())
}

func TestTemplateErrorNilCause(t *testing.T) {
	err := NewTemplateError("seed missing", nil)
	assert.ErrorIs(t, err, ErrTemplate)
}
