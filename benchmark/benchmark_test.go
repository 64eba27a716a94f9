package benchmark

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTime(t *testing.T) {
	arr := []int{3, 1, 2}
	called := 0
	elapsed := Time(func(a []int) {
		called++
		a[0], a[2] = a[2], a[0]
	}, arr)

	assert.Equal(t, 1, called)
	assert.Equal(t, []int{2, 1, 3}, arr)
	assert.GreaterOrEqual(t, elapsed, 0.0)
}

func TestTimeMeasuresCall(t *testing.T) {
	elapsed := Time(func([]int) { time.Sleep(20 * time.Millisecond) }, nil)
	assert.GreaterOrEqual(t, elapsed, 0.02)
	assert.Less(t, elapsed, 5.0)
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	ran := false
	Run("unit", &buf, func() { ran = true })

	assert.True(t, ran)
	out := buf.String()
	assert.Contains(t, out, "[Benchmark] Running: unit")
	assert.Contains(t, out, "[Benchmark] Go Version:")
	assert.Contains(t, out, "[Benchmark] Time Elapsed:")
	assert.Contains(t, out, "[Benchmark] GC Cycles:")
}
