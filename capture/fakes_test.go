// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audcap/internal/audiotest"
)

// fakeBackend hands out scripted producers and records every launch.
type fakeBackend struct {
	file   func(path string, rate int) *audiotest.ScriptedProducer
	stream func(call int, p StreamParams) *audiotest.ScriptedProducer
	err    error

	fileCalls   int
	streamCalls int
	paths       []string
	rates       []int
	urls        []string
	params      []StreamParams
	opened      []*audiotest.ScriptedProducer
}

func (b *fakeBackend) OpenFile(_ context.Context, path string, rate int) (Producer, error) {
	b.fileCalls++
	b.paths = append(b.paths, path)
	b.rates = append(b.rates, rate)
	if b.err != nil {
		return nil, b.err
	}
	p := &audiotest.ScriptedProducer{}
	if b.file != nil {
		p = b.file(path, rate)
	}
	b.opened = append(b.opened, p)
	return p, nil
}

func (b *fakeBackend) OpenStream(_ context.Context, url string, params StreamParams) (Producer, error) {
	call := b.streamCalls
	b.streamCalls++
	b.urls = append(b.urls, url)
	b.params = append(b.params, params)
	if b.err != nil {
		return nil, b.err
	}
	p := &audiotest.ScriptedProducer{}
	if b.stream != nil {
		p = b.stream(call, params)
	}
	b.opened = append(b.opened, p)
	return p, nil
}

// data returns a producer that hands out data and then ends.
func data(b []byte) *audiotest.ScriptedProducer {
	return &audiotest.ScriptedProducer{Steps: []audiotest.Step{{Data: b}}}
}

// testLogger writes JSON lines into a buffer for inspection.
func testLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return zerolog.New(buf).Level(zerolog.DebugLevel), buf
}

// loggedStates returns the "state" field of every state transition entry.
func loggedStates(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var states []string
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		if entry["message"] == "capture state" {
			states = append(states, entry["state"].(string))
		}
	}
	require.NoError(t, sc.Err())
	return states
}
