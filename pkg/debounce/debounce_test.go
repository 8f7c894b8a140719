package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Debouncer_OnlyLastCallFires(t *testing.T) {
	// given
	d := New(30 * time.Millisecond)
	var got atomic.Int32

	// when: three rapid calls, each superseding the previous
	d.Do(func() { got.Store(1) })
	d.Do(func() { got.Store(2) })
	d.Do(func() { got.Store(3) })

	// then
	assert.Eventually(t, func() bool { return got.Load() == 3 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(3), got.Load())
}

func Test_Debouncer_Stop(t *testing.T) {
	d := New(20 * time.Millisecond)
	var fired atomic.Bool

	d.Do(func() { fired.Store(true) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load())
}
