package workflow_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/lingo"
	"github.com/fwojciec/lingo/workflow"
	"github.com/stretchr/testify/assert"
)

func TestState_Defaults(t *testing.T) {
	t.Parallel()

	st := workflow.NewState()
	assert.Equal(t, lingo.LangAuto, st.SourceLang())
	assert.Equal(t, "en", st.TargetLang())
	assert.Equal(t, lingo.DefaultLevel, st.Level())
	assert.False(t, st.Busy())
	assert.False(t, st.Extracting())
	assert.Empty(t, st.Input())
	assert.Empty(t, st.Output())
	assert.Empty(t, st.ErrorMessage())
	assert.Empty(t, st.Changes())
}

func TestState_OnChange(t *testing.T) {
	t.Parallel()

	var fired int32
	st := workflow.NewState(workflow.WithOnChange(func() {
		atomic.AddInt32(&fired, 1)
	}))

	st.SetInput("a")
	st.SetOutput("b")
	st.SetBusy(true)
	assert.Equal(t, int32(3), atomic.LoadInt32(&fired), "every mutation notifies")
}

func TestState_OnChangeReadsStateSafely(t *testing.T) {
	t.Parallel()

	// The hook runs outside the lock, so reading the state back from inside
	// it must not deadlock.
	var got string
	var st *workflow.State
	st = workflow.NewState(workflow.WithOnChange(func() {
		got = st.Output()
	}))

	st.SetOutput("hello")
	assert.Equal(t, "hello", got)
}

func TestState_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	st := workflow.NewState()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				st.SetOutput("x")
				_ = st.Output()
				st.SetBusy(j%2 == 0)
				_ = st.Busy()
			}
		}()
	}
	wg.Wait()
}
