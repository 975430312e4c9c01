// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/bulletprog/pkg/config"
	"github.com/gonewx/bulletprog/pkg/game"
	"github.com/gonewx/bulletprog/pkg/program"
	"github.com/gonewx/bulletprog/pkg/scenes"
)

// AppName gdata 存储目录名
const AppName = "bulletprog"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部数值配置文件，为空时使用嵌入的默认配置
	ConfigPath string
	// Preset 启动时加载到槽位的示例程序，为空不加载
	Preset string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	gameConfig   *config.GameConfig
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	presets, err := config.LoadEmbeddedPresets()
	if err != nil {
		return nil, fmt.Errorf("示例程序加载失败: %w", err)
	}
	authoring := program.NewAuthoring()
	config.RegisterPresets(authoring, presets)
	log.Printf("[Config] 加载 %d 个示例程序", len(presets))

	if cfg.Preset != "" {
		if _, err := authoring.LoadExample(cfg.Preset); err != nil {
			return nil, err
		}
	}

	settings := openSettings()

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		scene, err := scenes.NewGameScene(gameConfig, authoring, settings)
		if err != nil {
			log.Printf("[App] 创建场景失败: %v", err)
			return nil
		}
		return scene
	})
	sceneManager.Restart()
	if sceneManager.GetCurrentScene() == nil {
		return nil, fmt.Errorf("无法创建游戏场景")
	}

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		gameConfig:   gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfig 外部配置优先，否则使用嵌入配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("数值配置加载失败: %w", err)
		}
		log.Printf("[Config] 使用外部配置: %s", path)
		return cfg, nil
	}
	cfg, err := config.LoadEmbeddedGameConfig()
	if err != nil {
		return nil, fmt.Errorf("嵌入配置加载失败: %w", err)
	}
	return cfg, nil
}

// openSettings 打开持久化设置，存储不可用时退化为内存模式
func openSettings() *game.SettingsManager {
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] gdata 不可用，设置不会保存: %v", err)
		manager = nil
	}
	return game.NewSettingsManager(manager)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.settings.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.settings.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸，即战场尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.gameConfig.World.Width), int(a.gameConfig.World.Height)
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
