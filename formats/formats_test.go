// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := Registry()
	for _, path := range []string{"a.wav", "b.WAVE", "c.aif", "d.aiff", "e.mp3", "f.ogg"} {
		_, ok := reg.ForPath(path)
		assert.True(t, ok, path)
	}

	_, ok := reg.ForPath("g.flac")
	assert.False(t, ok)
}
