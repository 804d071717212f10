// SPDX-License-Identifier: EPL-2.0

// Package formats wires every in-process decoder into one registry.
package formats

import (
	"github.com/ik5/audcap/audio"
	"github.com/ik5/audcap/formats/aiff"
	"github.com/ik5/audcap/formats/mp3"
	"github.com/ik5/audcap/formats/vorbis"
	"github.com/ik5/audcap/formats/wav"
)

// Registry returns a registry keyed by file extension with the WAV, AIFF,
// MP3 and Ogg Vorbis decoders.
func Registry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(wav.Decoder{}, "wav", "wave")
	reg.Register(aiff.Decoder{}, "aif", "aiff")
	reg.Register(mp3.Decoder{}, "mp3")
	reg.Register(vorbis.Decoder{}, "ogg", "oga")
	return reg
}
