package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.core")
	defer teardown()
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("anonymous")))
	//
	err := ErrorWithCode(fmt.Errorf("x is a directory"), EFORMAT)
	assert.Equal(t, EFORMAT, Code(err))
	assert.Equal(t, "malformed document", UserMessage(err))
	//
	// ErrorWithCode wraps nil, too
	assert.Equal(t, EIO, Code(ErrorWithCode(nil, EIO)))
}

func TestWrapErrorChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.core")
	defer teardown()
	//
	cause := errors.New("disk on fire")
	err := WrapError(cause, EIO, "cannot write %s", "post.md")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, EIO, Code(err))
	assert.Equal(t, "cannot write post.md", UserMessage(err))
	//
	// wrapping again keeps the innermost code reachable
	outer := fmt.Errorf("saving: %w", err)
	assert.Equal(t, EIO, Code(outer))
	assert.Equal(t, "cannot write post.md", UserMessage(outer))
}

func TestUserMessageFallbacks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockdown.core")
	defer teardown()
	//
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "internal error", UserMessage(errors.New("anonymous")))
	assert.Equal(t, "not found", UserMessage(Error(EMISSING, "not found")))
}
