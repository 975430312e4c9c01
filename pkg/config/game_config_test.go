package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name:        "空文件使用默认值",
			yamlContent: "",
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Bullet.BaseSpeed != 200 {
					t.Errorf("expected baseSpeed = 200, got %f", cfg.Bullet.BaseSpeed)
				}
				if cfg.Limits.MaxLiveBullets != 200 {
					t.Errorf("expected maxLiveBullets = 200, got %d", cfg.Limits.MaxLiveBullets)
				}
			},
		},
		{
			name: "部分覆盖",
			yamlContent: `
world:
  width: 800
bullet:
  baseSpeed: 300
  slowDuration: 1500
limits:
  maxGeneration: 2
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.World.Width != 800 || cfg.World.Height != 640 {
					t.Errorf("world = %vx%v, want 800x640", cfg.World.Width, cfg.World.Height)
				}
				tuning := cfg.Tuning()
				if tuning.BaseSpeed != 300 {
					t.Errorf("tuning baseSpeed = %v, want 300", tuning.BaseSpeed)
				}
				if tuning.SlowDuration != 1500*time.Millisecond {
					t.Errorf("tuning slowDuration = %v, want 1.5s", tuning.SlowDuration)
				}
				if tuning.MaxGeneration != 2 {
					t.Errorf("tuning maxGeneration = %d, want 2", tuning.MaxGeneration)
				}
				if tuning.MaxBounces != 3 || tuning.BounceMaxBounces != 5 {
					t.Errorf("bounces = %d/%d, want 3/5", tuning.MaxBounces, tuning.BounceMaxBounces)
				}
			},
		},
		{
			name:        "速度非法",
			yamlContent: "bullet:\n  baseSpeed: 0\n",
			wantErr:     true,
			errContains: "baseSpeed",
		},
		{
			name:        "反弹上限小于默认上限",
			yamlContent: "bullet:\n  maxBounces: 4\n  bounceMaxBounces: 2\n",
			wantErr:     true,
			errContains: "bounceMaxBounces",
		},
		{
			name:        "护盾概率越界",
			yamlContent: "enemy:\n  shieldChance: 1.5\n",
			wantErr:     true,
			errContains: "shieldChance",
		},
		{
			name:        "YAML 语法错误",
			yamlContent: "world: [1, 2\n",
			wantErr:     true,
			errContains: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGameConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err, tt.errContains)
				}
				return
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game_config.yaml")
	if err := os.WriteFile(path, []byte("enemy:\n  speed: 80\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Enemy.Speed != 80 {
		t.Errorf("enemy speed = %v, want 80", cfg.Enemy.Speed)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestDataGameConfigMatchesDefault 仓库中的配置文件与默认值一致
func TestDataGameConfigMatchesDefault(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", "data", "game_config.yaml"))
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if *cfg != *DefaultGameConfig() {
		t.Errorf("data/game_config.yaml differs from DefaultGameConfig():\n got %+v\nwant %+v", *cfg, *DefaultGameConfig())
	}
}
