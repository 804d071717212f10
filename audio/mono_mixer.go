// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages interleaved frames of src into mono samples in dst and
// returns the number of frames written. A trailing partial frame is dropped.
func Downmix(dst, src []float32, channels int) int {
	if channels <= 1 {
		return copy(dst, src)
	}

	frames := min(len(dst), len(src)/channels)
	inv := float32(1) / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			dst[f] = (src[2*f] + src[2*f+1]) * 0.5
		}
	default:
		for f := range frames {
			var sum float32
			for _, v := range src[f*channels : (f+1)*channels] {
				sum += v
			}
			dst[f] = sum * inv
		}
	}

	return frames
}

// MonoMixer turns a multi-channel Source into a mono one by averaging.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{src: src}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) Close() error    { return m.src.Close() }

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	return Downmix(dst, m.tmp[:n], channels), err
}
