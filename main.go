package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/bulletprog/pkg/app"
	"github.com/gonewx/bulletprog/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "外部数值配置文件（默认使用内置配置）")
	preset     = flag.String("preset", "", "启动时加载到槽位的示例程序")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Preset:     *preset,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Bullet Programs")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(gameApp)

	// 窗口关闭后保存最高分和设置
	if !gameApp.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] 退出时保存失败")
	}
	if err != nil && err != ebiten.Termination {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
