package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/embedded"
)

// GameConfigPath 嵌入的默认数值配置
const GameConfigPath = "data/game_config.yaml"

// GameConfig 游戏数值配置
//
// 时间字段以毫秒为单位的整数写在 YAML 中，通过 Duration 方法转换。
// 程序语义的常量（接近判定距离、爆炸半径、分裂角度等）不在此配置。
//
// 配置文件位置: data/game_config.yaml
type GameConfig struct {
	World  WorldConfig  `yaml:"world"`
	Bullet BulletConfig `yaml:"bullet"`
	Limits LimitsConfig `yaml:"limits"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Player PlayerConfig `yaml:"player"`
}

// WorldConfig 战场尺寸和边界
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// OutOfBoundsMargin 子弹超出边界多少像素后删除
	OutOfBoundsMargin float64 `yaml:"outOfBoundsMargin"`
	// EnemyDespawnMargin 敌人超出边界多少像素后删除
	EnemyDespawnMargin float64 `yaml:"enemyDespawnMargin"`
}

// BulletConfig 子弹数值
type BulletConfig struct {
	BaseSpeed        float64 `yaml:"baseSpeed"`
	BaseDamage       float64 `yaml:"baseDamage"`
	Radius           float64 `yaml:"radius"`
	MaxBounces       int     `yaml:"maxBounces"`
	BounceMaxBounces int     `yaml:"bounceMaxBounces"`
	MaxLifetime      float64 `yaml:"maxLifetime"` // 秒
	HomingTurnRate   float64 `yaml:"homingTurnRate"`
	MagneticRadius   float64 `yaml:"magneticRadius"`
	MagneticStrength float64 `yaml:"magneticStrength"`
	SlowMultiplier   float64 `yaml:"slowMultiplier"`
	SlowDuration     int     `yaml:"slowDuration"` // 毫秒
}

// LimitsConfig 子弹数量上限
type LimitsConfig struct {
	MaxLiveBullets int `yaml:"maxLiveBullets"`
	MaxGeneration  int `yaml:"maxGeneration"`
	MaxPerShot     int `yaml:"maxPerShot"`
}

// EnemyConfig 敌人数值
type EnemyConfig struct {
	Speed            float64 `yaml:"speed"`
	Health           float64 `yaml:"health"`
	Size             float64 `yaml:"size"`
	SpawnDelay       int     `yaml:"spawnDelay"`      // 毫秒
	InitialCount     int     `yaml:"initialCount"`    // 开局敌人数
	InitialInterval  int     `yaml:"initialInterval"` // 毫秒
	RetargetInterval float64 `yaml:"retargetInterval"`
	ShieldChance     float64 `yaml:"shieldChance"`
	ShieldHealth     float64 `yaml:"shieldHealth"`
	ScorePerKill     int     `yaml:"scorePerKill"`
	PoisonFactor     float64 `yaml:"poisonFactor"`
	PoisonInterval   int     `yaml:"poisonInterval"` // 毫秒
	PoisonDuration   int     `yaml:"poisonDuration"` // 毫秒
}

// PlayerConfig 玩家数值
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`
	Size         float64 `yaml:"size"`
	FireCooldown float64 `yaml:"fireCooldown"` // 秒
	MuzzleOffset float64 `yaml:"muzzleOffset"`
}

// Millis 将毫秒整数转换为 time.Duration
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// DefaultGameConfig 返回默认配置，与 data/game_config.yaml 一致
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Width:              1024,
			Height:             640,
			OutOfBoundsMargin:  50,
			EnemyDespawnMargin: 100,
		},
		Bullet: BulletConfig{
			BaseSpeed:        200,
			BaseDamage:       1,
			Radius:           5,
			MaxBounces:       3,
			BounceMaxBounces: 5,
			MaxLifetime:      10,
			HomingTurnRate:   0.08,
			MagneticRadius:   150,
			MagneticStrength: 120,
			SlowMultiplier:   0.5,
			SlowDuration:     3000,
		},
		Limits: LimitsConfig{
			MaxLiveBullets: 200,
			MaxGeneration:  4,
			MaxPerShot:     64,
		},
		Enemy: EnemyConfig{
			Speed:            50,
			Health:           1,
			Size:             16,
			SpawnDelay:       3000,
			InitialCount:     3,
			InitialInterval:  1000,
			RetargetInterval: 1,
			ShieldChance:     0.2,
			ShieldHealth:     1,
			ScorePerKill:     10,
			PoisonFactor:     0.5,
			PoisonInterval:   1000,
			PoisonDuration:   5000,
		},
		Player: PlayerConfig{
			Speed:        200,
			Size:         14,
			FireCooldown: 0.15,
			MuzzleOffset: 20,
		},
	}
}

// ParseGameConfig 解析 YAML 数据
// 未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// LoadGameConfig 从文件系统加载配置
//
// 参数:
//   - path: 配置文件路径（-config 参数）
//
// 返回:
//   - *GameConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return ParseGameConfig(data)
}

// LoadEmbeddedGameConfig 从嵌入资源加载配置
func LoadEmbeddedGameConfig() (*GameConfig, error) {
	data, err := embedded.ReadFile(GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %.0fx%.0f", c.World.Width, c.World.Height)
	}
	if c.World.OutOfBoundsMargin < 0 || c.World.EnemyDespawnMargin < 0 {
		return fmt.Errorf("margins must be >= 0")
	}

	b := c.Bullet
	if b.BaseSpeed <= 0 {
		return fmt.Errorf("bullet baseSpeed must be positive, got %.1f", b.BaseSpeed)
	}
	if b.BaseDamage < 0 {
		return fmt.Errorf("bullet baseDamage must be >= 0, got %.1f", b.BaseDamage)
	}
	if b.MaxBounces < 1 {
		return fmt.Errorf("bullet maxBounces must be >= 1, got %d", b.MaxBounces)
	}
	if b.BounceMaxBounces < b.MaxBounces {
		return fmt.Errorf("bullet bounceMaxBounces(%d) < maxBounces(%d)", b.BounceMaxBounces, b.MaxBounces)
	}
	if b.MaxLifetime <= 0 {
		return fmt.Errorf("bullet maxLifetime must be positive, got %.1f", b.MaxLifetime)
	}
	if b.HomingTurnRate < 0 {
		return fmt.Errorf("bullet homingTurnRate must be >= 0, got %.2f", b.HomingTurnRate)
	}
	if b.SlowMultiplier < 0 || b.SlowMultiplier > 1 {
		return fmt.Errorf("bullet slowMultiplier must be in [0, 1], got %.2f", b.SlowMultiplier)
	}

	l := c.Limits
	if l.MaxLiveBullets < 1 || l.MaxGeneration < 0 || l.MaxPerShot < 1 {
		return fmt.Errorf("invalid limits: live=%d generation=%d perShot=%d", l.MaxLiveBullets, l.MaxGeneration, l.MaxPerShot)
	}

	e := c.Enemy
	if e.Speed < 0 || e.Health <= 0 || e.Size <= 0 {
		return fmt.Errorf("invalid enemy stats: speed=%.1f health=%.1f size=%.1f", e.Speed, e.Health, e.Size)
	}
	if e.SpawnDelay <= 0 {
		return fmt.Errorf("enemy spawnDelay must be positive, got %d", e.SpawnDelay)
	}
	if e.ShieldChance < 0 || e.ShieldChance > 1 {
		return fmt.Errorf("enemy shieldChance must be in [0, 1], got %.2f", e.ShieldChance)
	}
	if e.PoisonInterval <= 0 {
		return fmt.Errorf("enemy poisonInterval must be positive, got %d", e.PoisonInterval)
	}

	if c.Player.Speed <= 0 || c.Player.Size <= 0 {
		return fmt.Errorf("invalid player stats: speed=%.1f size=%.1f", c.Player.Speed, c.Player.Size)
	}
	return nil
}

// Tuning 转换为子弹运行时数值
func (c *GameConfig) Tuning() bullet.Tuning {
	return bullet.Tuning{
		BaseSpeed:        c.Bullet.BaseSpeed,
		BaseDamage:       c.Bullet.BaseDamage,
		MaxBounces:       c.Bullet.MaxBounces,
		BounceMaxBounces: c.Bullet.BounceMaxBounces,
		HomingTurnRate:   c.Bullet.HomingTurnRate,
		MagneticRadius:   c.Bullet.MagneticRadius,
		MagneticStrength: c.Bullet.MagneticStrength,
		MaxGeneration:    c.Limits.MaxGeneration,
		SlowMultiplier:   c.Bullet.SlowMultiplier,
		SlowDuration:     Millis(c.Bullet.SlowDuration),
	}
}
