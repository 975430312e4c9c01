// Package timer 提供由游戏帧驱动的一次性延迟回调
//
// 回调只在 Advance 中执行，与帧更新处于同一逻辑线程，因此不需要加锁。
package timer

import (
	"sort"
	"time"
)

// Handle 已调度回调的句柄
type Handle interface {
	// Cancel 取消尚未执行的回调，返回是否真正取消
	Cancel() bool
	// Pending 回调是否仍在等待执行
	Pending() bool
}

type entry struct {
	due       time.Duration
	seq       uint64
	fn        func()
	cancelled bool
	fired     bool
	owner     *Scheduler
}

func (e *entry) Cancel() bool {
	if e.cancelled || e.fired {
		return false
	}
	e.cancelled = true
	e.owner.pending--
	return true
}

func (e *entry) Pending() bool {
	return !e.cancelled && !e.fired
}

// Scheduler 帧驱动的定时器服务
type Scheduler struct {
	now     time.Duration
	seq     uint64
	queue   []*entry
	pending int
}

// NewScheduler 创建定时器服务
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now 自创建（或 Reset）以来经过的游戏时间
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending 等待执行的回调数量
func (s *Scheduler) Pending() int { return s.pending }

// Schedule 在 delay 之后执行 fn
// delay <= 0 的回调在下一次 Advance 中执行
func (s *Scheduler) Schedule(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	e := &entry{due: s.now + delay, seq: s.seq, fn: fn, owner: s}
	s.queue = append(s.queue, e)
	s.pending++
	return e
}

// Advance 推进游戏时间，按 (到期时间, 调度顺序) 依次执行到期回调
// 回调内新调度且已到期的回调在本次 Advance 中继续执行
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}

	for {
		e := s.popDue()
		if e == nil {
			return
		}
		e.fired = true
		s.pending--
		if e.fn != nil {
			e.fn()
		}
	}
}

// popDue 取出最早到期且未取消的回调，同时清理已取消的条目
func (s *Scheduler) popDue() *entry {
	live := s.queue[:0]
	for _, e := range s.queue {
		if e.Pending() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.queue); i++ {
		s.queue[i] = nil
	}
	s.queue = live

	if len(s.queue) == 0 {
		return nil
	}
	sort.SliceStable(s.queue, func(i, j int) bool {
		if s.queue[i].due != s.queue[j].due {
			return s.queue[i].due < s.queue[j].due
		}
		return s.queue[i].seq < s.queue[j].seq
	})
	head := s.queue[0]
	if head.due > s.now {
		return nil
	}
	s.queue = s.queue[1:]
	return head
}

// Reset 取消所有回调并将时间归零（整局重开时使用）
func (s *Scheduler) Reset() {
	for _, e := range s.queue {
		if e.Pending() {
			e.cancelled = true
		}
	}
	s.queue = nil
	s.pending = 0
	s.now = 0
}
