package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/machine-room/core"
)

// cueCache stores pre-rendered unity-gain cue buffers
type cueCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [core.SoundTypeCount]*beep.Buffer
}

func newCueCache(rate beep.SampleRate) *cueCache {
	return &cueCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
	}
}

// get returns the cached buffer, rendering it on first use
func (c *cueCache) get(st core.SoundType) *beep.Buffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[st] != nil {
		return c.store[st]
	}

	s := GetSoundEffect(st, c.format.SampleRate)
	if s == nil {
		return nil
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(s)
	c.store[st] = buf
	return buf
}

// preload renders every cue so the first play does not stall the tick
func (c *cueCache) preload() {
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		c.get(st)
	}
}
