package game

// GameState 一局游戏的状态
// 每局由场景创建一个实例，重新开始时整体替换
type GameState struct {
	Score int // 当前得分
	Stage int // 当前关卡（从 1 开始）
	Kills int // 击杀数

	// IsGameOver 玩家与敌人接触后置位，之后只响应重新开始
	IsGameOver bool

	// ElapsedTime 本局已进行的时间（秒），游戏结束后停止计时
	ElapsedTime float64
}

// killsPerStage 每击杀多少敌人进入下一关
const killsPerStage = 10

// NewGameState 创建新一局的状态
func NewGameState() *GameState {
	return &GameState{Stage: 1}
}

// AddScore 增加得分，得分不会低于 0
// 游戏结束后调用无效
func (gs *GameState) AddScore(points int) {
	if gs.IsGameOver {
		return
	}
	gs.Score += points
	if gs.Score < 0 {
		gs.Score = 0
	}
}

// RecordKill 记录一次击杀并计分
//
// 返回：
//   - bool: 是否因此进入下一关
func (gs *GameState) RecordKill(points int) bool {
	if gs.IsGameOver {
		return false
	}
	gs.Kills++
	gs.AddScore(points)

	stage := gs.Kills/killsPerStage + 1
	if stage > gs.Stage {
		gs.Stage = stage
		return true
	}
	return false
}

// Tick 推进本局计时
func (gs *GameState) Tick(deltaTime float64) {
	if !gs.IsGameOver {
		gs.ElapsedTime += deltaTime
	}
}

// SetGameOver 结束本局
//
// 返回：
//   - bool: 是否是本次调用结束的（重复调用返回 false）
func (gs *GameState) SetGameOver() bool {
	if gs.IsGameOver {
		return false
	}
	gs.IsGameOver = true
	return true
}
