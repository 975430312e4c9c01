// bulletsim 无头运行子弹程序，打印每次 DO 分派和最终战况
//
// 用法:
//
//	go run ./cmd/bulletsim -preset timer-bomb
//	go run ./cmd/bulletsim -program "when:timer-2, do:explode" -enemies 5 -seconds 4
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/gonewx/bulletprog/pkg/battle"
	"github.com/gonewx/bulletprog/pkg/bullet"
	"github.com/gonewx/bulletprog/pkg/config"
	"github.com/gonewx/bulletprog/pkg/embedded"
	"github.com/gonewx/bulletprog/pkg/program"
)

var (
	programText = flag.String("program", "", "紧凑格式的程序，如 \"when:timer-2, do:explode\"")
	presetName  = flag.String("preset", "", "示例程序名（见 data/presets.yaml）")
	root        = flag.String("root", ".", "项目根目录（包含 data/）")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
	seconds     = flag.Float64("seconds", 5, "模拟时长（秒）")
	enemyCount  = flag.Int("enemies", 3, "敌人数量（纵向排成一列）")
	seed        = flag.Uint64("seed", 1, "随机种子")
	listPresets = flag.Bool("list", false, "列出示例程序后退出")
)

const fixedStep = 1.0 / 60

func main() {
	flag.Parse()

	if !*verbose {
		log.SetFlags(0)
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*root))

	cfg, err := config.LoadEmbeddedGameConfig()
	if err != nil {
		fatalf("加载配置失败: %v", err)
	}
	presets, err := config.LoadEmbeddedPresets()
	if err != nil {
		fatalf("加载示例程序失败: %v", err)
	}
	authoring := program.NewAuthoring()
	config.RegisterPresets(authoring, presets)

	if *listPresets {
		for _, name := range authoring.Presets() {
			fmt.Printf("%-18s %s\n", name, presets[name])
		}
		return
	}

	prog, err := resolveProgram(*programText, *presetName, presets)
	if err != nil {
		fatalf("%v", err)
	}
	prog, result := fireable(prog)
	if !result.Valid {
		fmt.Printf("警告: 程序不合法 (%s)，改为发射默认子弹\n", result.Reason)
	}

	b, err := battle.New(cfg, authoring, battle.Options{
		NoPlayer:  true,
		Rand:      rand.New(rand.NewPCG(*seed, *seed)),
		OnExecute: printDispatch(),
	})
	if err != nil {
		fatalf("创建战斗失败: %v", err)
	}

	// 敌人静止排在发射点右侧
	originX, originY := cfg.World.Width*0.15, cfg.World.Height/2
	for i := 0; i < *enemyCount; i++ {
		y := originY + float64(i-*enemyCount/2)*40
		if _, err := b.SpawnEnemy(originX+300, y, 0, false); err != nil {
			fatalf("生成敌人失败: %v", err)
		}
	}

	fmt.Printf("程序: %s\n", prog)
	if _, err := b.FireProgram(prog, originX, originY, 0); err != nil {
		fatalf("发射失败: %v", err)
	}

	frames := int(*seconds / fixedStep)
	for i := 0; i < frames; i++ {
		b.Update(fixedStep)
	}

	state := b.State()
	fmt.Printf("结束: %.2fs, 击杀 %d/%d, 得分 %d, 剩余子弹 %d\n",
		state.ElapsedTime, state.Kills, *enemyCount, state.Score, b.LiveBullets())
}

// resolveProgram -program 优先于 -preset，都为空时使用默认子弹
func resolveProgram(text, preset string, presets map[string]program.Program) (program.Program, error) {
	if strings.TrimSpace(text) != "" {
		return program.Parse(text)
	}
	if preset != "" {
		p, ok := presets[preset]
		if !ok {
			return nil, fmt.Errorf("%w: %s", program.ErrUnknownPreset, preset)
		}
		return p.Clone(), nil
	}
	return program.DefaultProgram(), nil
}

// fireable 与游戏中的发射规则一致：只发射合法程序，否则使用默认子弹
// 返回实际发射的程序和原程序的校验结果
func fireable(p program.Program) (program.Program, program.ValidationResult) {
	result := p.Validate()
	if !result.Valid {
		return program.DefaultProgram(), result
	}
	return p, result
}

// printDispatch 返回打印分派的回调，每颗子弹按首次出现编号
func printDispatch() func(*bullet.Bullet, int, program.Node) {
	ids := make(map[*bullet.Bullet]int)
	return func(shot *bullet.Bullet, index int, node program.Node) {
		id, ok := ids[shot]
		if !ok {
			id = len(ids) + 1
			ids[shot] = id
		}
		fmt.Printf("  #%d gen=%d (%.0f, %.0f) DO[%d] %s\n", id, shot.Generation, shot.X, shot.Y, index, node.Action())
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
