package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLinkingAndTags(t *testing.T) {
	saved := Tags
	defer func() { Tags = saved }()

	Tags = nil
	linking, tags := GetLinkingAndTags()
	assert.Equal(t, "static", linking)
	assert.Equal(t, "none", tags)

	Tags = []string{"lhash_debug", "cgo", "a_tag"}
	linking, tags = GetLinkingAndTags()
	assert.Equal(t, "dynamic", linking)
	assert.Equal(t, "a_tag lhash_debug", tags)
}
