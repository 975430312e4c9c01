package bullet_test

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/bullet/mocks"
	"github.com/gonewx/bulletprog/pkg/timer"
)

type enemyList []bullet.Enemy

func (l enemyList) Enemies() []bullet.Enemy { return l }

// TestExplodeShieldBreakMock 爆炸伤害带上破盾标志
func TestExplodeShieldBreakMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := mocks.NewMockEnemy(ctrl)
	e.EXPECT().Position().Return(10.0, 0.0).AnyTimes()
	e.EXPECT().TakeDamage(2.0, true).Times(1)

	env := &bullet.Env{World: enemyList{e}, Tuning: bullet.DefaultTuning()}
	b, err := bullet.Fire(env, mustParse(t, "property:shield-break, when:immediate, do:explode"), 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Alive() {
		t.Error("bullet should be destroyed after explode")
	}
}

// TestHomingTrailReleasedOnDestroy 追踪拖尾在子弹销毁时释放一次
func TestHomingTrailReleasedOnDestroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	released := 0
	fx := mocks.NewMockEffects(ctrl)
	fx.EXPECT().Follow(bullet.EffectHomingTrail, gomock.Any()).Return(func() { released++ }, nil).Times(1)

	timers := timer.NewScheduler()
	env := &bullet.Env{World: enemyList{}, Timers: timers, Effects: fx, Tuning: bullet.DefaultTuning()}
	b, err := bullet.Fire(env, mustParse(t, "property:homing, when:timer-1, do:destroy"), 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if released != 0 {
		t.Fatal("trail released before destroy")
	}

	timers.Advance(time.Second)
	if b.Alive() {
		t.Fatal("bullet should be destroyed by timer-1")
	}
	if released != 1 {
		t.Errorf("released = %d, want 1", released)
	}

	b.Destroy()
	if released != 1 {
		t.Errorf("released = %d after second destroy, want 1", released)
	}
}

// TestEffectFailureDoesNotBlock 效果播放失败不影响程序
func TestEffectFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := mocks.NewMockEffects(ctrl)
	fx.EXPECT().Play(bullet.EffectExplode, gomock.Any(), gomock.Any()).Return(errors.New("no particle config"))

	env := &bullet.Env{Effects: fx, Tuning: bullet.DefaultTuning()}
	b, err := bullet.Fire(env, mustParse(t, "when:immediate, do:explode"), 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Alive() || !b.IsExecuted(1) {
		t.Error("explode should still run when the effect fails")
	}
}

// TestSpeedUpEffects 加速播放一次性效果并挂载速度拖尾
func TestSpeedUpEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	released := false
	fx := mocks.NewMockEffects(ctrl)
	gomock.InOrder(
		fx.EXPECT().Play(bullet.EffectSpeedUp, 0.0, 0.0).Return(nil),
		fx.EXPECT().Follow(bullet.EffectSpeedTrail, gomock.Any()).Return(func() { released = true }, nil),
	)

	env := &bullet.Env{Effects: fx, Tuning: bullet.DefaultTuning()}
	b, err := bullet.Fire(env, mustParse(t, "when:immediate, do:speed-up"), 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Destroy()
	if !released {
		t.Error("speed trail not released on destroy")
	}
}

// TestFollowErrorIgnored 跟随效果挂载失败时不登记释放
func TestFollowErrorIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := mocks.NewMockEffects(ctrl)
	fx.EXPECT().Follow(bullet.EffectHomingTrail, gomock.Any()).Return(nil, errors.New("trail pool exhausted"))

	env := &bullet.Env{Effects: fx, Tuning: bullet.DefaultTuning()}
	b, err := bullet.Fire(env, mustParse(t, "property:homing"), 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Destroy()
}
