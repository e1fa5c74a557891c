package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRadiusPlan_TaskOrder(t *testing.T) {
	plan := newRadiusPlan([]string{"a", "b", "c"}, 2)
	assert.Equal(t, planPending, plan.State())

	var got []discoveryTask
	for {
		task, ok := plan.Next()
		if !ok {
			break
		}
		assert.Equal(t, planTrying, plan.State())
		got = append(got, task)
	}

	assert.Equal(t, []discoveryTask{
		{"a", 0}, {"a", 1},
		{"b", 0}, {"b", 1},
		{"c", 0}, {"c", 1},
	}, got)
	assert.Equal(t, planExhausted, plan.State())

	_, ok := plan.Next()
	assert.False(t, ok)
}

func TestRadiusPlan_SucceedStops(t *testing.T) {
	plan := newRadiusPlan([]string{"a", "b"}, 2)

	task, ok := plan.Next()
	assert.True(t, ok)
	plan.Fail(task, assert.AnError)

	_, ok = plan.Next()
	assert.True(t, ok)
	plan.Succeed()

	assert.Equal(t, planSucceeded, plan.State())
	assert.False(t, plan.HasNext())
	_, ok = plan.Next()
	assert.False(t, ok)
	assert.Len(t, plan.Failures(), 1)
	assert.Equal(t, discoveryTask{"a", 0}, plan.Failures()[0].Task)
}

func TestRadiusPlan_Empty(t *testing.T) {
	plan := newRadiusPlan(nil, 2)
	assert.False(t, plan.HasNext())

	_, ok := plan.Next()
	assert.False(t, ok)
	assert.Equal(t, planExhausted, plan.State())
	assert.Equal(t, "exhausted", plan.State().String())
}

func TestRadiusPlan_HasNext(t *testing.T) {
	plan := newRadiusPlan([]string{"a"}, 2)

	plan.Next()
	assert.True(t, plan.HasNext())
	plan.Next()
	assert.False(t, plan.HasNext())
}

func TestRetrySchedule(t *testing.T) {
	schedule := retrySchedule{
		attemptTimeout:     30 * time.Second,
		attemptTimeoutStep: 15 * time.Second,
		backoffBase:        time.Second,
		backoffStep:        time.Second,
	}

	assert.Equal(t, 30*time.Second, schedule.Timeout(0))
	assert.Equal(t, 45*time.Second, schedule.Timeout(1))
	assert.Equal(t, time.Second, schedule.Backoff(0))
	assert.Equal(t, 2*time.Second, schedule.Backoff(1))
}
